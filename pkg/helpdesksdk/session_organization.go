package helpdesksdk

import (
	"context"
	"net/http"
)

// CreateOrganization creates an organization owned by the caller.
func (s *Session) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*Organization, error) {
	var out CreateOrganizationResponse
	if err := s.call(ctx, http.MethodPost, "/api/organization/create", req, &out); err != nil {
		return nil, err
	}
	return &out.Organization, nil
}

func (s *Session) SetActiveOrganization(ctx context.Context, organizationID string) error {
	var out SetActiveOrganizationResponse
	return s.call(ctx, http.MethodPost, "/api/organization/set-active",
		SetActiveOrganizationRequest{OrganizationID: organizationID}, &out)
}

// GenerateCode mints a six digit invitation code. An empty OrganizationID
// targets the session's active organization.
func (s *Session) GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GenerateCodeResponse, error) {
	var out GenerateCodeResponse
	if err := s.call(ctx, http.MethodPost, "/api/organization/generate-code", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinWithCode redeems an invitation code for the caller.
func (s *Session) JoinWithCode(ctx context.Context, code string) (*JoinWithCodeResponse, error) {
	var out JoinWithCodeResponse
	if err := s.call(ctx, http.MethodPost, "/api/organization/join-with-code", JoinWithCodeRequest{Code: code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
