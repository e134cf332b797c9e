package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/internal/admin/store"
	"github.com/buffalosolar/admin-center/pkg/httpx"
	"github.com/buffalosolar/admin-center/pkg/jwtx"
	"github.com/buffalosolar/admin-center/pkg/slogx"

	_ "github.com/buffalosolar/admin-center/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AdminService      *service.AdminService
	InvitationService *service.InvitationService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerMe()
	r.registerAdmins()
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Buffalo Solar Admin Center API
//	@version		0.1.0
//	@description	Access control service behind the Buffalo Solar admin dashboard. Resolves
//	@description	effective roles and permissions for signed-in staff and runs the invitation
//	@description	lifecycle for onboarding new admins.
//	@description
//	@description				Identity comes from the upstream sign-in provider; this service trusts its
//	@description				JWTs and answers authorization questions about the email they carry.
//
//	@contact.name				Buffalo Solar Engineering
//	@contact.url				https://github.com/buffalosolar/admin-center
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token from the sign-in provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerMe() {
	h := &MeHandler{AdminService: r.AdminService}

	// Per-render introspection endpoints - lenient rate limit by email.
	// No permission guard: every authenticated caller may ask about itself.
	limit := httpx.RateLimitByEmail(httpx.LenientLimit)

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
			limit,
		),
	)
	r.Mux.Handle("GET /v1/me/sidebar",
		httpx.Chain(http.HandlerFunc(h.HandleSidebar),
			httpx.AuthnMiddleware(r.verifier),
			limit,
		),
	)
	r.Mux.Handle("GET /v1/me/routes",
		httpx.Chain(http.HandlerFunc(h.HandleRoutes),
			httpx.AuthnMiddleware(r.verifier),
			limit,
		),
	)
}

func (r *Router) registerAdmins() {
	h := &AdminsHandler{AdminService: r.AdminService}

	// GET /v1/admins - moderate rate limit by email (admin read operation)
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		RequirePermission(r.AdminService, rbac.PermAdminsView),
		httpx.RateLimitByEmail(httpx.ModerateLimit),
	)

	// DELETE /v1/admins/{email} - moderate rate limit by email
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.verifier),
		RequirePermission(r.AdminService, rbac.PermAdminsDelete),
		httpx.RateLimitByEmail(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/admins", securedList)
	r.Mux.Handle("DELETE /v1/admins/{email}", securedDelete)
}

func (r *Router) registerInvitations() {
	createHandler := &InvitationCreateHandler{InvitationService: r.InvitationService}
	validateHandler := &InvitationValidateHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}
	deleteHandler := &InvitationDeleteHandler{InvitationService: r.InvitationService}

	// POST /v1/invitations - strict rate limit by email (invite spam prevention)
	securedCreate := httpx.Chain(createHandler,
		httpx.AuthnMiddleware(r.verifier),
		RequirePermission(r.AdminService, rbac.PermAdminsInvite),
		httpx.RateLimitByEmail(httpx.StrictLimit),
	)

	// DELETE /v1/invitations/{email} - moderate rate limit by email
	securedDelete := httpx.Chain(deleteHandler,
		httpx.AuthnMiddleware(r.verifier),
		RequirePermission(r.AdminService, rbac.PermAdminsInvite),
		httpx.RateLimitByEmail(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/invitations", securedCreate)
	r.Mux.Handle("DELETE /v1/invitations/{email}", securedDelete)

	// Public token endpoints - strict rate limit by IP (token guessing prevention)
	r.Mux.Handle("GET /v1/invitations/{token}",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations/{token}/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
