package service

import (
	"testing"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme":                 "acme",
		"Acme Support, Inc.":   "acme-support-inc",
		"  --Hello   World-- ": "hello-world",
		"Café Olé":             "caf-ol",
		"***":                  "",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), in)
	}
}

func TestCreateOrganization(t *testing.T) {
	e := newEnv(t)
	u := e.user("founder@acme.test")
	a := e.session(u, "")

	org, err := e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: "Acme Support"})
	require.NoError(t, err)
	require.Equal(t, "acme-support", org.Slug)

	m, err := e.store.Members().GetMemberInScope(e.ctx, u.ID, org.ID, "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleOwner, m.Role)

	sess, err := e.store.Sessions().GetSessionByID(e.ctx, a.SessionID)
	require.NoError(t, err)
	require.Equal(t, org.ID, sess.ActiveOrganizationID)

	second, err := e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: "Globex", Slug: "Globex HQ"})
	require.NoError(t, err)
	require.Equal(t, "globex-hq", second.Slug)

	sess, err = e.store.Sessions().GetSessionByID(e.ctx, a.SessionID)
	require.NoError(t, err)
	require.Equal(t, org.ID, sess.ActiveOrganizationID, "an existing active organization is kept")
}

func TestCreateOrganization_Rejections(t *testing.T) {
	e := newEnv(t)
	u := e.user("founder@acme.test")
	a := e.session(u, "")

	_, err := e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: "Acme"})
	require.NoError(t, err)

	_, err = e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: "ACME"})
	require.ErrorIs(t, err, ErrDuplicateSlug)

	_, err = e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: " "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.orgs.Create(e.ctx, a, CreateOrganizationInput{Name: "!!!"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetActive(t *testing.T) {
	e := newEnv(t)
	acme := e.org("acme")
	globex := e.org("globex")
	u := e.user("agent@acme.test")
	e.member(u.ID, acme.ID, "", domain.RoleMember)
	support := e.team(globex.ID, "Support")
	e.member(u.ID, globex.ID, support.ID, domain.RoleMember)
	a := e.session(u, acme.ID)

	require.NoError(t, e.orgs.SetActive(e.ctx, a, globex.ID), "team membership is organization membership")
	sess, err := e.store.Sessions().GetSessionByID(e.ctx, a.SessionID)
	require.NoError(t, err)
	require.Equal(t, globex.ID, sess.ActiveOrganizationID)

	other := e.org("initech")
	require.ErrorIs(t, e.orgs.SetActive(e.ctx, a, other.ID), ErrForbidden)
	require.ErrorIs(t, e.orgs.SetActive(e.ctx, a, "nope"), ErrOrganizationNotFound)
	require.ErrorIs(t, e.orgs.SetActive(e.ctx, a, ""), ErrInvalidInput)
}
