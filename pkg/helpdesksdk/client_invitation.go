package helpdesksdk

import (
	"context"
	"net/http"
	"net/url"
)

// InvitationInfo previews an invitation code without redeeming it.
func (c *Client) InvitationInfo(ctx context.Context, code string) (*InvitationInfo, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/organization/invitation-info?code="+url.QueryEscape(code), "", nil)
	if err != nil {
		return nil, err
	}

	var out InvitationInfoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Invitation, nil
}
