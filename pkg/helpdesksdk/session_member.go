package helpdesksdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var out CreateTeamResponse
	if err := s.call(ctx, http.MethodPost, "/api/organization/create-team", req, &out); err != nil {
		return nil, err
	}
	return &out.Team, nil
}

func (s *Session) AddTeamMember(ctx context.Context, req AddTeamMemberRequest) (*Member, error) {
	var out AddTeamMemberResponse
	if err := s.call(ctx, http.MethodPost, "/api/organization/add-team-member", req, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

func (s *Session) UpdateMemberRole(ctx context.Context, req UpdateMemberRoleRequest) (*Member, error) {
	var out UpdateMemberRoleResponse
	if err := s.call(ctx, http.MethodPatch, "/api/organization/update-member-role", req, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

// RemoveMember deletes a membership row. teamID must match the member's team
// and is empty for organization-level rows.
func (s *Session) RemoveMember(ctx context.Context, memberID, teamID string) error {
	q := url.Values{"memberId": {memberID}}
	if teamID != "" {
		q.Set("teamId", teamID)
	}
	var out MessageResponse
	return s.call(ctx, http.MethodDelete, "/api/organization/remove-team-member?"+q.Encode(), nil, &out)
}

// ListMembers lists the organization-level rows, or a team's rows when teamID
// is set. An empty organizationID uses the active organization.
func (s *Session) ListMembers(ctx context.Context, organizationID, teamID string) ([]Member, error) {
	q := url.Values{}
	if organizationID != "" {
		q.Set("organizationId", organizationID)
	}
	if teamID != "" {
		q.Set("teamId", teamID)
	}
	path := "/api/organization/members"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ListMembersResponse
	if err := s.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}
