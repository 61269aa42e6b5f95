package helpdesk_test

import (
	"testing"

	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/stretchr/testify/require"
)

// TestInvitationLifecycle walks an owner through creating an organization and
// a team, inviting an agent by code, and the agent joining.
func TestInvitationLifecycle(t *testing.T) {
	c := helpdesksdk.NewClient(setupContainer(t, nil))

	owner := signUpAndIn(t, c, "owner@acme.test")
	org, err := owner.CreateOrganization(t.Context(), helpdesksdk.CreateOrganizationRequest{Name: "Acme Support"})
	require.NoError(t, err)
	require.Equal(t, "acme-support", org.Slug)

	team, err := owner.CreateTeam(t.Context(), helpdesksdk.CreateTeamRequest{OrganizationID: org.ID, Name: "Tier 1"})
	require.NoError(t, err)

	gen, err := owner.GenerateCode(t.Context(), helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID, TeamID: team.ID})
	require.NoError(t, err)
	require.Len(t, gen.Code, 6)

	info, err := c.InvitationInfo(t.Context(), gen.Code)
	require.NoError(t, err)
	require.Equal(t, "Acme Support", info.Organization.Name)
	require.NotNil(t, info.Team)
	require.Equal(t, "Tier 1", info.Team.Name)
	require.Equal(t, "member", info.Role)

	agent := signUpAndIn(t, c, "agent@acme.test")
	joined, err := agent.JoinWithCode(t.Context(), gen.Code)
	require.NoError(t, err)
	require.Equal(t, team.ID, joined.Member.TeamID)
	require.True(t, joined.ActiveOrganizationSet)

	current, err := agent.Current(t.Context())
	require.NoError(t, err)
	require.Equal(t, org.ID, current.Session.ActiveOrganizationID)

	_, err = c.InvitationInfo(t.Context(), gen.Code)
	require.True(t, helpdesksdk.IsBadRequest(err), "used codes are rejected: %v", err)

	members, err := owner.ListMembers(t.Context(), org.ID, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
}

func TestMemberPermissions(t *testing.T) {
	c := helpdesksdk.NewClient(setupContainer(t, nil))

	owner := signUpAndIn(t, c, "owner@acme.test")
	org, err := owner.CreateOrganization(t.Context(), helpdesksdk.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)

	gen, err := owner.GenerateCode(t.Context(), helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID})
	require.NoError(t, err)

	agent := signUpAndIn(t, c, "agent@acme.test")
	joined, err := agent.JoinWithCode(t.Context(), gen.Code)
	require.NoError(t, err)

	_, err = agent.GenerateCode(t.Context(), helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID})
	require.True(t, helpdesksdk.IsForbidden(err), "members cannot invite: %v", err)

	_, err = owner.GenerateCode(t.Context(), helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID, Role: "king"})
	require.True(t, helpdesksdk.IsBadRequest(err))

	promoted, err := owner.UpdateMemberRole(t.Context(), helpdesksdk.UpdateMemberRoleRequest{MemberID: joined.Member.ID, Role: "admin"})
	require.NoError(t, err)
	require.Equal(t, "admin", promoted.Role)

	_, err = agent.GenerateCode(t.Context(), helpdesksdk.GenerateCodeRequest{OrganizationID: org.ID})
	require.NoError(t, err, "admins can invite")

	require.NoError(t, agent.RemoveMember(t.Context(), joined.Member.ID, ""), "members may leave")

	members, err := owner.ListMembers(t.Context(), org.ID, "")
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestSessionLifecycle(t *testing.T) {
	c := helpdesksdk.NewClient(setupContainer(t, nil))

	sess := signUpAndIn(t, c, "someone@example.test")
	_, err := sess.Current(t.Context())
	require.NoError(t, err)

	require.NoError(t, sess.SignOut(t.Context()))

	_, err = sess.Current(t.Context())
	require.True(t, helpdesksdk.IsUnauthorized(err))

	_, err = c.SignIn(t.Context(), helpdesksdk.SignInRequest{Email: "someone@example.test", Password: "wrong-password"})
	require.True(t, helpdesksdk.IsUnauthorized(err))
}

func TestHealth(t *testing.T) {
	c := helpdesksdk.NewClient(setupContainer(t, nil))

	live, err := c.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(t.Context())
	require.NoError(t, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

// TestCodeGuessingIsRateLimited runs with the production strict limit.
func TestCodeGuessingIsRateLimited(t *testing.T) {
	c := helpdesksdk.NewClient(setupContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS": "5",
		"RATELIMIT_STRICT_BURST":    "5",
	}))

	var limited bool
	for range 10 {
		_, err := c.InvitationInfo(t.Context(), "000000")
		if helpdesksdk.IsRateLimited(err) {
			limited = true
			break
		}
		require.True(t, helpdesksdk.IsNotFound(err), "unexpected error: %v", err)
	}
	require.True(t, limited, "lookups should be throttled")
}
