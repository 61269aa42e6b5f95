package helpdesksdk

import "time"

// ============================================================================
// Shared
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Resources
// ============================================================================

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Session struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	ActiveOrganizationID string    `json:"activeOrganizationId,omitempty"`
	ExpiresAt            time.Time `json:"expiresAt"`
	CreatedAt            time.Time `json:"createdAt"`
}

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type Team struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Member is one membership row. TeamID is empty for organization-level
// rows. UserName and UserEmail are filled in member listings only.
type Member struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	OrganizationID string    `json:"organizationId"`
	TeamID         string    `json:"teamId,omitempty"`
	Role           string    `json:"role"`
	UserName       string    `json:"userName,omitempty"`
	UserEmail      string    `json:"userEmail,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Invitation struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Email          string     `json:"email,omitempty"`
	OrganizationID string     `json:"organizationId"`
	TeamID         string     `json:"teamId,omitempty"`
	Role           string     `json:"role"`
	InviterID      string     `json:"inviterId"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	AcceptedBy     string     `json:"acceptedBy,omitempty"`
	AcceptedAt     *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// InvitationInfo is the public view of an invitation shown before joining.
type InvitationInfo struct {
	Code         string          `json:"code"`
	Role         string          `json:"role"`
	Status       string          `json:"status"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Organization OrganizationRef `json:"organization"`
	Team         *TeamRef        `json:"team,omitempty"`
	Inviter      InviterRef      `json:"inviter"`
}

type OrganizationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type InviterRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ============================================================================
// Auth
// ============================================================================

type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type SessionResponse struct {
	Success bool    `json:"success"`
	Session Session `json:"session"`
	User    User    `json:"user"`
}

// ============================================================================
// Organization
// ============================================================================

type CreateOrganizationRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type CreateOrganizationResponse struct {
	Success      bool         `json:"success"`
	Organization Organization `json:"organization"`
}

type SetActiveOrganizationRequest struct {
	OrganizationID string `json:"organizationId"`
}

type SetActiveOrganizationResponse struct {
	Success              bool   `json:"success"`
	ActiveOrganizationID string `json:"activeOrganizationId"`
}

type GenerateCodeRequest struct {
	OrganizationID string `json:"organizationId"`
	TeamID         string `json:"teamId,omitempty"`
	Role           string `json:"role,omitempty"`
	Email          string `json:"email,omitempty"`
}

type GenerateCodeResponse struct {
	Success    bool       `json:"success"`
	Code       string     `json:"code"`
	Invitation Invitation `json:"invitation"`
}

type InvitationInfoResponse struct {
	Success    bool           `json:"success"`
	Invitation InvitationInfo `json:"invitation"`
}

type JoinWithCodeRequest struct {
	Code string `json:"code"`
}

type JoinWithCodeResponse struct {
	Success               bool   `json:"success"`
	Member                Member `json:"member"`
	ActiveOrganizationSet bool   `json:"activeOrganizationSet"`
}

type CreateTeamRequest struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
}

type CreateTeamResponse struct {
	Success bool `json:"success"`
	Team    Team `json:"team"`
}

type UpdateMemberRoleRequest struct {
	MemberID string `json:"memberId"`
	TeamID   string `json:"teamId,omitempty"`
	Role     string `json:"role"`
}

type UpdateMemberRoleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Member  Member `json:"member"`
}

type AddTeamMemberRequest struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
}

type AddTeamMemberResponse struct {
	Success bool   `json:"success"`
	Member  Member `json:"member"`
}

type ListMembersResponse struct {
	Success bool     `json:"success"`
	Members []Member `json:"members"`
}
