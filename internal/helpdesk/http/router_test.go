package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	helpdeskhttp "github.com/Best-Company-A-S/masterticket/internal/helpdesk/http"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store/drivers/sqlite"
	"github.com/Best-Company-A-S/masterticket/pkg/cryptox"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepperPath("")
	os.Exit(m.Run())
}

type api struct {
	t      *testing.T
	router *helpdeskhttp.Router
	store  *sqlite.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()

	// Generous limits so tests never trip them unless they mean to.
	limits := httpx.DefaultRateLimits()
	limits.Strict = limits.Public
	limits.Moderate = limits.Public
	limits.Lenient = limits.Public
	return newAPIWithLimits(t, limits)
}

func newAPIWithLimits(t *testing.T, limits httpx.RateLimits) *api {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "masterticket-test")
	require.NoError(t, err)

	authz := &service.Authorizer{Store: st}
	r := helpdeskhttp.NewRouter(st, limits, nil, "test", slogx.Discard())
	r.AccountService = &service.AccountService{Store: st, Signer: signer, Verifier: signer, Issuer: "masterticket-test"}
	r.OrganizationService = &service.OrganizationService{Store: st}
	r.InvitationService = &service.InvitationService{Store: st, Authorizer: authz, Notifier: service.LogNotifier{}}
	r.MembershipService = &service.MembershipService{Store: st, Authorizer: authz}
	r.ApplyRoutes()

	return &api{t: t, router: r, store: st}
}

// do sends a JSON request and decodes a JSON response into out when out is
// non-nil.
func (a *api) do(method, path, token string, body, out any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

// user signs up and signs in, returning the token and user id.
func (a *api) user(email string) (string, string) {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/auth/sign-up", "", helpdesksdk.SignUpRequest{Email: email, Name: email, Password: "password123"}, nil)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var in helpdesksdk.SignInResponse
	rec = a.do(http.MethodPost, "/api/auth/sign-in", "", helpdesksdk.SignInRequest{Email: email, Password: "password123"}, &in)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return in.Token, in.User.ID
}

func (a *api) createOrg(token, name string) helpdesksdk.Organization {
	a.t.Helper()
	var out helpdesksdk.CreateOrganizationResponse
	rec := a.do(http.MethodPost, "/api/organization/create", token, helpdesksdk.CreateOrganizationRequest{Name: name}, &out)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return out.Organization
}

func (a *api) generate(token string, req helpdesksdk.GenerateCodeRequest) helpdesksdk.GenerateCodeResponse {
	a.t.Helper()
	var out helpdesksdk.GenerateCodeResponse
	rec := a.do(http.MethodPost, "/api/organization/generate-code", token, req, &out)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int) string {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
	var body helpdesksdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Error)
	return body.Error
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	var live helpdesksdk.HealthResponse
	rec := a.do(http.MethodGet, "/livez", "", nil, &live)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))

	var ready helpdesksdk.HealthResponse
	rec = a.do(http.MethodGet, "/readyz", "", nil, &ready)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, a.store.Close())
	rec = a.do(http.MethodGet, "/readyz", "", nil, &ready)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "degraded", ready.Status)
}

func TestSessionRequired(t *testing.T) {
	a := newAPI(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/organization/generate-code"},
		{http.MethodPost, "/api/organization/join-with-code"},
		{http.MethodPost, "/api/organization/create-team"},
		{http.MethodPatch, "/api/organization/update-member-role"},
		{http.MethodDelete, "/api/organization/remove-team-member"},
		{http.MethodGet, "/api/organization/members"},
		{http.MethodGet, "/api/auth/session"},
	} {
		rec := a.do(tc.method, tc.path, "", nil, nil)
		requireError(t, rec, http.StatusUnauthorized)

		rec = a.do(tc.method, tc.path, "garbage", nil, nil)
		requireError(t, rec, http.StatusUnauthorized)
	}
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)
	token, userID := a.user("alice@example.com")

	var sess helpdesksdk.SessionResponse
	rec := a.do(http.MethodGet, "/api/auth/session", token, nil, &sess)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID, sess.Session.UserID)
	require.Equal(t, "alice@example.com", sess.User.Email)

	rec = a.do(http.MethodPost, "/api/auth/sign-up", "", helpdesksdk.SignUpRequest{Email: "ALICE@example.com", Name: "A", Password: "password123"}, nil)
	requireError(t, rec, http.StatusBadRequest)

	rec = a.do(http.MethodPost, "/api/auth/sign-in", "", helpdesksdk.SignInRequest{Email: "alice@example.com", Password: "nope-nope"}, nil)
	requireError(t, rec, http.StatusUnauthorized)

	rec = a.do(http.MethodPost, "/api/auth/sign-out", token, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/api/auth/session", token, nil, nil)
	requireError(t, rec, http.StatusUnauthorized)
}

func TestInvitationFlow(t *testing.T) {
	a := newAPI(t)
	ownerToken, _ := a.user("owner@acme.test")
	org := a.createOrg(ownerToken, "Acme")

	gen := a.generate(ownerToken, helpdesksdk.GenerateCodeRequest{Role: "admin"})
	require.True(t, gen.Success)
	require.Len(t, gen.Code, 6)
	require.Equal(t, org.ID, gen.Invitation.OrganizationID, "defaults to the active organization")
	require.Equal(t, "pending", gen.Invitation.Status)

	var info helpdesksdk.InvitationInfoResponse
	rec := a.do(http.MethodGet, "/api/organization/invitation-info?code="+gen.Code, "", nil, &info)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Acme", info.Invitation.Organization.Name)
	require.Equal(t, "owner@acme.test", info.Invitation.Inviter.Email)
	require.Nil(t, info.Invitation.Team)

	joinerToken, joinerID := a.user("new@acme.test")
	var joined helpdesksdk.JoinWithCodeResponse
	rec = a.do(http.MethodPost, "/api/organization/join-with-code", joinerToken, helpdesksdk.JoinWithCodeRequest{Code: gen.Code}, &joined)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, joined.ActiveOrganizationSet)
	require.Equal(t, joinerID, joined.Member.UserID)
	require.Equal(t, "admin", joined.Member.Role)

	var sess helpdesksdk.SessionResponse
	a.do(http.MethodGet, "/api/auth/session", joinerToken, nil, &sess)
	require.Equal(t, org.ID, sess.Session.ActiveOrganizationID)

	rec = a.do(http.MethodGet, "/api/organization/invitation-info?code="+gen.Code, "", nil, nil)
	require.Contains(t, requireError(t, rec, http.StatusBadRequest), "already been used")

	rec = a.do(http.MethodPost, "/api/organization/join-with-code", joinerToken, helpdesksdk.JoinWithCodeRequest{Code: gen.Code}, nil)
	requireError(t, rec, http.StatusBadRequest)
}

func TestInvitationErrors(t *testing.T) {
	a := newAPI(t)
	ownerToken, _ := a.user("owner@acme.test")
	org := a.createOrg(ownerToken, "Acme")
	strangerToken, _ := a.user("stranger@example.test")

	rec := a.do(http.MethodGet, "/api/organization/invitation-info?code=12x456", "", nil, nil)
	requireError(t, rec, http.StatusBadRequest)

	rec = a.do(http.MethodGet, "/api/organization/invitation-info?code=", "", nil, nil)
	requireError(t, rec, http.StatusBadRequest)

	gen := a.generate(ownerToken, helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID})
	missing := "100000"
	if gen.Code == missing {
		missing = "100001"
	}
	rec = a.do(http.MethodGet, "/api/organization/invitation-info?code="+missing, "", nil, nil)
	requireError(t, rec, http.StatusNotFound)

	rec = a.do(http.MethodPost, "/api/organization/generate-code", strangerToken, helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID}, nil)
	requireError(t, rec, http.StatusForbidden)

	rec = a.do(http.MethodPost, "/api/organization/generate-code", ownerToken, helpdesksdk.GenerateCodeRequest{OrganizationID: "nope"}, nil)
	requireError(t, rec, http.StatusNotFound)

	rec = a.do(http.MethodPost, "/api/organization/generate-code", ownerToken, helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID, Role: "king"}, nil)
	require.Equal(t, "invalid role", requireError(t, rec, http.StatusBadRequest))

	rec = a.do(http.MethodPost, "/api/organization/generate-code", strangerToken, helpdesksdk.GenerateCodeRequest{}, nil)
	requireError(t, rec, http.StatusBadRequest)

	rec = a.do(http.MethodPost, "/api/organization/join-with-code", strangerToken, helpdesksdk.JoinWithCodeRequest{Code: missing}, nil)
	requireError(t, rec, http.StatusNotFound)
}

func TestInvitationInfo_Expired(t *testing.T) {
	a := newAPI(t)
	ownerToken, _ := a.user("owner@acme.test")
	a.createOrg(ownerToken, "Acme")
	gen := a.generate(ownerToken, helpdesksdk.GenerateCodeRequest{})

	h := &helpdeskhttp.InvitationInfoHandler{
		InvitationService: a.router.InvitationService,
		Now:               func() time.Time { return time.Now().Add(49 * time.Hour) },
	}
	req := httptest.NewRequest(http.MethodGet, "/api/organization/invitation-info?code="+gen.Code, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Contains(t, requireError(t, rec, http.StatusBadRequest), "expired")
}

func TestTeamsAndMembers(t *testing.T) {
	a := newAPI(t)
	ownerToken, ownerID := a.user("owner@acme.test")
	org := a.createOrg(ownerToken, "Acme")

	var team helpdesksdk.CreateTeamResponse
	rec := a.do(http.MethodPost, "/api/organization/create-team", ownerToken, helpdesksdk.CreateTeamRequest{Name: "Support"}, &team)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, org.ID, team.Team.OrganizationID)

	rec = a.do(http.MethodPost, "/api/organization/create-team", ownerToken, helpdesksdk.CreateTeamRequest{Name: "Support"}, nil)
	requireError(t, rec, http.StatusBadRequest)

	rec = a.do(http.MethodPost, "/api/organization/create-team", ownerToken, helpdesksdk.CreateTeamRequest{}, nil)
	requireError(t, rec, http.StatusBadRequest)

	// Bring in an agent at organization level, then into the team.
	gen := a.generate(ownerToken, helpdesksdk.GenerateCodeRequest{})
	agentToken, agentID := a.user("agent@acme.test")
	rec = a.do(http.MethodPost, "/api/organization/join-with-code", agentToken, helpdesksdk.JoinWithCodeRequest{Code: gen.Code}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var added helpdesksdk.AddTeamMemberResponse
	rec = a.do(http.MethodPost, "/api/organization/add-team-member", ownerToken, helpdesksdk.AddTeamMemberRequest{TeamID: team.Team.ID, UserID: agentID}, &added)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "member", added.Member.Role)

	var list helpdesksdk.ListMembersResponse
	rec = a.do(http.MethodGet, "/api/organization/members?teamId="+team.Team.ID, agentToken, nil, &list)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, list.Members, 2)

	rec = a.do(http.MethodPatch, "/api/organization/update-member-role", agentToken, helpdesksdk.UpdateMemberRoleRequest{MemberID: added.Member.ID, TeamID: team.Team.ID, Role: "admin"}, nil)
	requireError(t, rec, http.StatusForbidden)

	var updated helpdesksdk.UpdateMemberRoleResponse
	rec = a.do(http.MethodPatch, "/api/organization/update-member-role", ownerToken, helpdesksdk.UpdateMemberRoleRequest{MemberID: added.Member.ID, TeamID: team.Team.ID, Role: "admin"}, &updated)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "admin", updated.Member.Role)
	require.NotEmpty(t, updated.Message)

	rec = a.do(http.MethodPatch, "/api/organization/update-member-role", ownerToken, helpdesksdk.UpdateMemberRoleRequest{MemberID: added.Member.ID, Role: "admin"}, nil)
	requireError(t, rec, http.StatusNotFound)

	// The owner's organization row is the last owner.
	var orgList helpdesksdk.ListMembersResponse
	a.do(http.MethodGet, "/api/organization/members?organizationId="+org.ID, ownerToken, nil, &orgList)
	var ownerMemberID string
	for _, m := range orgList.Members {
		if m.UserID == ownerID {
			ownerMemberID = m.ID
		}
	}
	require.NotEmpty(t, ownerMemberID)

	rec = a.do(http.MethodDelete, "/api/organization/remove-team-member?memberId="+ownerMemberID, ownerToken, nil, nil)
	require.Contains(t, requireError(t, rec, http.StatusBadRequest), "last owner")

	var removed helpdesksdk.MessageResponse
	rec = a.do(http.MethodDelete, "/api/organization/remove-team-member?memberId="+added.Member.ID+"&teamId="+team.Team.ID, ownerToken, nil, &removed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.True(t, removed.Success)
}

func TestSetActive(t *testing.T) {
	a := newAPI(t)
	token, _ := a.user("owner@acme.test")
	acme := a.createOrg(token, "Acme")
	globex := a.createOrg(token, "Globex")

	var sess helpdesksdk.SessionResponse
	a.do(http.MethodGet, "/api/auth/session", token, nil, &sess)
	require.Equal(t, acme.ID, sess.Session.ActiveOrganizationID)

	var out helpdesksdk.SetActiveOrganizationResponse
	rec := a.do(http.MethodPost, "/api/organization/set-active", token, helpdesksdk.SetActiveOrganizationRequest{OrganizationID: globex.ID}, &out)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, globex.ID, out.ActiveOrganizationID)

	otherToken, _ := a.user("other@example.test")
	rec = a.do(http.MethodPost, "/api/organization/set-active", otherToken, helpdesksdk.SetActiveOrganizationRequest{OrganizationID: globex.ID}, nil)
	requireError(t, rec, http.StatusForbidden)

	rec = a.do(http.MethodPost, "/api/organization/set-active", otherToken, helpdesksdk.SetActiveOrganizationRequest{OrganizationID: "nope"}, nil)
	requireError(t, rec, http.StatusNotFound)
}

func TestBadJSON(t *testing.T) {
	a := newAPI(t)
	token, _ := a.user("owner@acme.test")

	req := httptest.NewRequest(http.MethodPost, "/api/organization/create", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	require.Equal(t, "Invalid JSON body", requireError(t, rec, http.StatusBadRequest))
}

func TestRateLimit(t *testing.T) {
	limits := httpx.DefaultRateLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	a := newAPIWithLimits(t, limits)

	for range 2 {
		rec := a.do(http.MethodGet, "/api/organization/invitation-info?code=123456", "", nil, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	rec := a.do(http.MethodGet, "/api/organization/invitation-info?code=123456", "", nil, nil)
	requireError(t, rec, http.StatusTooManyRequests)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other buckets are unaffected.
	rec = a.do(http.MethodGet, "/livez", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
