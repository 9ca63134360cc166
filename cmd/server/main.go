package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-persistence-bun"
	"github.com/inkpress/inkpress"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type App struct {
	config *AppConfig
	bunDB  *bun.DB
	repo   inkpress.RepositoryManager
	auth   inkpress.Authenticator
	auther *inkpress.RouteAuthenticator
	srv    *fiber.App
}

func main() {
	ctx := context.Background()

	app := &App{
		config: LoadConfig(),
	}

	if err := WithPersistence(ctx, app); err != nil {
		log.Fatal(err)
	}

	if err := WithHTTPServer(app); err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := app.srv.Listen(app.config.Address); err != nil {
			log.Fatal(err)
		}
	}()

	WaitExitSignal()

	if err := app.srv.Shutdown(); err != nil {
		log.Printf("shutdown error: %s", err)
	}
}

func WithPersistence(ctx context.Context, app *App) error {
	db, err := sql.Open(sqliteshim.ShimName, app.config.Persistence.GetDSN())
	if err != nil {
		return err
	}

	persistence.RegisterModel((*inkpress.User)(nil))
	persistence.RegisterModel((*inkpress.Post)(nil))
	persistence.RegisterModel((*inkpress.Tag)(nil))
	persistence.RegisterModel((*inkpress.PostTag)(nil))
	persistence.RegisterModel((*inkpress.Comment)(nil))
	persistence.RegisterModel((*inkpress.Like)(nil))
	persistence.RegisterModel((*inkpress.Follow)(nil))

	client, err := persistence.New(app.config.Persistence, db, sqlitedialect.New())
	if err != nil {
		return err
	}

	migrationsFS, err := fs.Sub(inkpress.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return err
	}

	client.RegisterDialectMigrations(
		migrationsFS,
		persistence.WithDialectSourceLabel("data/sql/migrations"),
		persistence.WithValidationTargets("postgres", "sqlite"),
	)

	if err := client.Migrate(ctx); err != nil {
		return err
	}

	app.bunDB = client.DB()
	app.repo = inkpress.NewRepositoryManager(client.DB())
	app.repo.MustValidate()

	return nil
}

// userTrackerAdapter narrows the Users repository down to the
// UserTracker interface the provider consumes.
type userTrackerAdapter struct {
	users inkpress.Users
}

func (a userTrackerAdapter) GetByEmail(ctx context.Context, email string) (*inkpress.User, error) {
	return a.users.GetByEmail(ctx, email)
}

func (a userTrackerAdapter) GetByID(ctx context.Context, id string) (*inkpress.User, error) {
	return a.users.GetByID(ctx, id)
}

func (a userTrackerAdapter) TrackAttemptedLogin(ctx context.Context, user *inkpress.User) error {
	return a.users.TrackAttemptedLogin(ctx, user)
}

func (a userTrackerAdapter) TrackSuccessfulLogin(ctx context.Context, user *inkpress.User) error {
	return a.users.TrackSuccessfulLogin(ctx, user)
}

func WithHTTPServer(app *App) error {
	cfg := app.config.Auth

	provider := inkpress.NewUserProvider(userTrackerAdapter{users: app.repo.Users()})

	authenticator := inkpress.NewAuthenticator(provider, cfg)
	app.auth = authenticator

	auther, err := inkpress.NewHTTPAuthenticator(authenticator, authenticator.TokenService(), cfg)
	if err != nil {
		return err
	}
	app.auther = auther

	app.srv = fiber.New(fiber.Config{
		AppName:           "inkpress",
		EnablePrintRoutes: app.config.Debug,
	})

	controller := inkpress.NewAPIController(cfg,
		inkpress.WithRepository(app.repo),
		inkpress.WithAuther(auther),
		inkpress.WithTokenService(authenticator.TokenService()),
		inkpress.WithDebug(app.config.Debug),
	)

	inkpress.RegisterAPIRoutes(app.srv, controller)

	return nil
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
