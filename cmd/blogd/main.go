package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "blog/internal/adapter/http"
	"blog/internal/adapter/memory"
	"blog/internal/adapter/postgres"
	"blog/internal/app"
	"blog/internal/config"
	"blog/internal/domain"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "init-db" {
		initDB(cfg)
		return
	}

	var (
		users domain.UserRepository
		posts domain.PostRepository
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = db
		posts = postgres.NewPostRepo(db)
	} else {
		log.Print("DATABASE_URL not set; using in-memory store")
		db := memory.New()
		users = db
		posts = memory.NewPostRepo(db)
	}

	authSvc := app.NewAuthService(users)
	postSvc := app.NewPostService(posts)
	sessions := adapthttp.NewSessionManager([]byte(cfg.SessionSecret))
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var sso *adapthttp.SSOConfig
	if cfg.SSOEnabled() {
		sso, err = ssoConfig(cfg)
		if err != nil {
			log.Fatalf("oidc setup: %v", err)
		}
	}

	h := adapthttp.New(authSvc, postSvc, sessions, adapthttp.NewTemplateRenderer(), logger, sso).Handler()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// initDB applies the schema migrations and exits.
func initDB(cfg config.Config) {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for init-db")
	}
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	_ = db.Close()
	log.Print("Initialized the database.")
}

func ssoConfig(cfg config.Config) (*adapthttp.SSOConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuerURL)
	if err != nil {
		return nil, err
	}

	return &adapthttp.SSOConfig{
		Provider: provider,
		OAuth2: &oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}
