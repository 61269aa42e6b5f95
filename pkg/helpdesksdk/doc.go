// Package helpdesksdk is a Go client for the masterticket organization API.
//
// Unauthenticated calls (sign-up, sign-in, invitation lookup, health) live on
// Client. SignIn returns a Session that carries the access token and exposes
// the organization, team and membership operations.
//
//	c := helpdesksdk.NewClient("http://localhost:8080")
//	sess, err := c.SignIn(ctx, helpdesksdk.SignInRequest{Email: "a@example.com", Password: "secret123"})
//	if err != nil {
//		return err
//	}
//	org, err := sess.CreateOrganization(ctx, helpdesksdk.CreateOrganizationRequest{Name: "Acme"})
//
// The request and response types double as the server's wire format.
package helpdesksdk
