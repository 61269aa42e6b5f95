package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Best-Company-A-S/masterticket/internal/helpdesk/http"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store/drivers/sqlite"
	"github.com/Best-Company-A-S/masterticket/pkg/cryptox"
	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the helpdesk organization service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     *sqlite.Store
	signer *jwtx.HS256

	accountService      *service.AccountService
	organizationService *service.OrganizationService
	invitationService   *service.InvitationService
	membershipService   *service.MembershipService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New opens the database and wires services and routes. The returned
// Application owns the database until Run returns.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	db, err := OpenDatabase(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := app.initSigner(); err != nil {
		_ = db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "masterticket",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// OpenDatabase opens the SQLite file and brings its schema up to date.
func OpenDatabase(cfg Config, logger *slog.Logger) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, _, err := db.MigrationVersion()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("database migrations applied", "file", cfg.DatabaseFile, "version", version)
	return db, nil
}

// Run serves HTTP and runs housekeeping until ctx is cancelled, SIGINT or
// SIGTERM arrives, or the listener fails. In-flight requests get
// ShutdownGracePeriod to finish.
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.housekeepingService.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.logger.Info("masterticket listening", "addr", app.server.Addr, "version", BuildVersion)
		if err := app.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.drain()
	})

	err := g.Wait()

	app.housekeepingService.Stop()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error("error closing database", slogx.Err(cerr))
		err = errors.Join(err, cerr)
	}
	app.logger.Info("masterticket stopped")
	return err
}

func (app *Application) drain() error {
	app.logger.Info("draining http server", "grace_period", app.cfg.ShutdownGracePeriod)

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Warn("grace period elapsed, closing connections", slogx.Err(err))
		return app.server.Close()
	}
	return nil
}

// initSigner builds the HS256 signer. Without a configured secret a random
// one is generated, so every restart signs everyone out.
func (app *Application) initSigner() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		secret = generated
		app.logger.Warn("MT_JWT_SECRET not set, using an ephemeral secret; sessions will not survive a restart")
	}

	signer, err := jwtx.NewHS256([]byte(secret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT signer: %w", err)
	}
	app.signer = signer
	return nil
}

func (app *Application) notifier() service.Notifier {
	if app.cfg.SendGridAPIKey == "" {
		app.logger.Info("invitation emails disabled, SENDGRID_API_KEY not set")
		return service.LogNotifier{}
	}
	return service.NewSendGridNotifier(app.cfg.SendGridAPIKey, app.cfg.SendGridFrom, app.cfg.AppURL)
}

func (app *Application) initServices() {
	authz := &service.Authorizer{Store: app.db}

	app.accountService = &service.AccountService{
		Store:      app.db,
		Signer:     app.signer,
		Verifier:   app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
	}
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store:      app.db,
		Authorizer: authz,
		Notifier:   app.notifier(),
	}
	app.membershipService = &service.MembershipService{Store: app.db, Authorizer: authz}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.SessionRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.db,
		app.cfg.RateLimits,
		app.cfg.CORSOrigins,
		BuildVersion,
		app.logger,
	)

	router.AccountService = app.accountService
	router.OrganizationService = app.organizationService
	router.InvitationService = app.invitationService
	router.MembershipService = app.membershipService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Housekeep runs a single cleanup pass and returns the number of sessions
// removed.
func Housekeep(ctx context.Context, cfg Config) (int64, error) {
	logger := NewLogger(cfg)
	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	hk := service.NewHousekeepingService(db, logger, cfg.HousekeepingInterval, cfg.SessionRetention)
	return hk.RunOnce(slogx.WithContext(ctx, logger))
}
