package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"

	_ "github.com/Best-Company-A-S/masterticket/api/helpdesk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	limits       httpx.RateLimits
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService      *service.AccountService
	OrganizationService *service.OrganizationService
	InvitationService   *service.InvitationService
	MembershipService   *service.MembershipService
}

func NewRouter(
	st store.Store,
	limits httpx.RateLimits,
	corsOrigins []string,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		slogx.Recoverer,
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOrganizations()
	r.registerInvitations()
	r.registerMembers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			MasterTicket Organization API
//	@version		0.1.0
//	@description	Organizations, teams, memberships and invitation codes for the MasterTicket helpdesk.
//	@description
//	@description				Invitation codes are six digits and expire 48 hours after they are generated.
//
//	@contact.name				Best Company A/S
//	@contact.url				https://github.com/Best-Company-A-S/masterticket
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with session authentication and a per-user limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		SessionMiddleware(r.AccountService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// Credential endpoints - strict by IP to slow password guessing
	r.Mux.Handle("POST /api/auth/sign-up",
		httpx.Chain(&SignUpHandler{AccountService: r.AccountService},
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /api/auth/sign-in",
		httpx.Chain(&SignInHandler{AccountService: r.AccountService},
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)

	r.Mux.Handle("POST /api/auth/sign-out",
		r.secured(&SignOutHandler{AccountService: r.AccountService}, r.limits.Moderate))
	r.Mux.Handle("GET /api/auth/session",
		r.secured(&SessionHandler{AccountService: r.AccountService}, r.limits.Lenient))
}

func (r *Router) registerOrganizations() {
	r.Mux.Handle("POST /api/organization/create",
		r.secured(&CreateOrganizationHandler{OrganizationService: r.OrganizationService}, r.limits.Moderate))
	r.Mux.Handle("POST /api/organization/set-active",
		r.secured(&SetActiveOrganizationHandler{OrganizationService: r.OrganizationService}, r.limits.Moderate))
}

func (r *Router) registerInvitations() {
	r.Mux.Handle("POST /api/organization/generate-code",
		r.secured(&GenerateCodeHandler{InvitationService: r.InvitationService}, r.limits.Moderate))

	// Code lookup and redemption are where codes get guessed, so both are strict.
	r.Mux.Handle("GET /api/organization/invitation-info",
		httpx.Chain(&InvitationInfoHandler{InvitationService: r.InvitationService},
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /api/organization/join-with-code",
		r.secured(&JoinWithCodeHandler{InvitationService: r.InvitationService}, r.limits.Strict))
}

func (r *Router) registerMembers() {
	r.Mux.Handle("POST /api/organization/create-team",
		r.secured(&CreateTeamHandler{MembershipService: r.MembershipService}, r.limits.Moderate))
	r.Mux.Handle("PATCH /api/organization/update-member-role",
		r.secured(&UpdateMemberRoleHandler{MembershipService: r.MembershipService}, r.limits.Moderate))
	r.Mux.Handle("DELETE /api/organization/remove-team-member",
		r.secured(&RemoveMemberHandler{MembershipService: r.MembershipService}, r.limits.Moderate))
	r.Mux.Handle("POST /api/organization/add-team-member",
		r.secured(&AddTeamMemberHandler{MembershipService: r.MembershipService}, r.limits.Moderate))
	r.Mux.Handle("GET /api/organization/members",
		r.secured(&ListMembersHandler{MembershipService: r.MembershipService}, r.limits.Lenient))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}
