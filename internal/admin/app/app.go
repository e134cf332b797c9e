package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/buffalosolar/admin-center/internal/admin/http"
	"github.com/buffalosolar/admin-center/internal/admin/notify"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/internal/admin/store"
	"github.com/buffalosolar/admin-center/internal/admin/store/drivers/sqlite"
	"github.com/buffalosolar/admin-center/pkg/jwtx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the admin access service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier
	mailer   notify.Mailer

	// Services
	adminService        *service.AdminService
	invitationService   *service.InvitationService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "admin-center",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initVerifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("admin center starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down admin center...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("admin center stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier selects the token verifier. RS256 against the sign-in
// provider's published key in production, HS256 shared secret for dev.
func (app *Application) initVerifier() error {
	if app.cfg.JWTPubKey != "" {
		pemBytes, err := os.ReadFile(app.cfg.JWTPubKey)
		if err != nil {
			return fmt.Errorf("failed to read JWT public key: %w", err)
		}
		key, err := jwtx.ParseRSAPublicKey(pemBytes)
		if err != nil {
			return fmt.Errorf("failed to parse JWT public key: %w", err)
		}
		app.verifier = jwtx.RS256Verifier{PublicKey: key, Issuer: app.cfg.Issuer}
		return nil
	}

	if app.cfg.JWTSecret == "" {
		return fmt.Errorf("either ADMIN_JWT_PUBLIC_KEY_FILE or ADMIN_JWT_SECRET must be set")
	}
	app.verifier = jwtx.HS256Verifier{Secret: []byte(app.cfg.JWTSecret), Issuer: app.cfg.Issuer}
	return nil
}

// initMailer wires SMTP delivery when configured, otherwise a no-op. A
// missing relay never blocks invitations; links can be shared manually.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("SMTP_HOST not set, invitation emails disabled")
		app.mailer = notify.Noop{}
		return
	}

	mailer, err := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
		Insecure: app.cfg.SMTPInsecure,
	})
	if err != nil {
		app.logger.Error("failed to initialize SMTP mailer, invitation emails disabled", "error", err)
		app.mailer = notify.Noop{}
		return
	}
	app.mailer = mailer
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.adminService = &service.AdminService{
		Store:     app.db,
		Allowlist: rbac.NewAllowlist(app.cfg.BreakGlassEmails...),
	}

	app.invitationService = &service.InvitationService{
		Store:   app.db,
		Mailer:  app.mailer,
		BaseURL: app.cfg.BaseURL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AdminService = app.adminService
	router.InvitationService = app.invitationService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
