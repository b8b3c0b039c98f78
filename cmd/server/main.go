package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsynth/skillsynth/internal/ai"
	"github.com/skillsynth/skillsynth/internal/api"
	"github.com/skillsynth/skillsynth/internal/content"
	"github.com/skillsynth/skillsynth/internal/curriculum"
	"github.com/skillsynth/skillsynth/internal/platform/cache"
	"github.com/skillsynth/skillsynth/internal/platform/config"
	"github.com/skillsynth/skillsynth/internal/platform/database"
	"github.com/skillsynth/skillsynth/internal/profile"
	"github.com/skillsynth/skillsynth/internal/session"
	"github.com/skillsynth/skillsynth/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := buildApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer app.close()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     app.mux(),
		ReadTimeout: 10 * time.Second,
		// No write timeout: the session WebSocket outlives normal request
		// deadlines.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "ai_configured", cfg.HasAIProvider())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// app holds the wired components and their teardown handles.
type app struct {
	cfg       *config.Config
	db        *database.DB
	redis     *cache.Cache
	profiles  profile.Store
	catalog   *curriculum.Catalog
	svc       *content.Service
	wsHandle  *ws.Handler
	apiHandle *api.Handler
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	// Profile store: Postgres when configured, in-memory otherwise.
	if cfg.Database.URL != "" {
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return nil, fmt.Errorf("connecting database: %w", err)
		}
		a.db = db
		store, err := profile.NewPostgresStore(ctx, db.Pool)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing profile store: %w", err)
		}
		a.profiles = store
		slog.Info("using postgres profile store")
	} else {
		a.profiles = profile.NewMemoryStore()
		slog.Info("using in-memory profile store")
	}

	// Curriculum: built-in catalog, replaced by an external directory when
	// one is configured and loads cleanly.
	a.catalog = curriculum.NewCatalog(nil, nil)
	if cfg.CurriculumPath != "" {
		loader, err := curriculum.NewLoader(cfg.CurriculumPath)
		if err != nil {
			slog.Warn("loading external curriculum failed, using built-in catalog", "path", cfg.CurriculumPath, "error", err)
		} else if modules := loader.Modules(); len(modules) > 0 {
			tasks := loader.DailyTasks()
			if len(tasks) == 0 {
				tasks = nil
			}
			a.catalog = curriculum.NewCatalog(modules, tasks)
			slog.Info("external curriculum loaded", "path", cfg.CurriculumPath, "modules", len(modules))
		}
	}

	// AI router with ordered fallback. Scoring prefers the stronger model
	// chain when both providers are present.
	router := ai.NewRouter()
	if cfg.AI.Google.APIKey != "" {
		router.Register("google", ai.NewGoogleProvider(cfg.AI.Google.APIKey))
	}
	if cfg.AI.OpenAI.APIKey != "" {
		router.Register("openai", ai.NewOpenAIProvider(cfg.AI.OpenAI.APIKey))
	}
	if cfg.AI.Google.APIKey != "" && cfg.AI.OpenAI.APIKey != "" {
		router.Prefer(ai.TaskScoring, "google", "openai")
	}
	if !router.HasProvider() {
		slog.Warn("no AI provider configured, sessions will use fallback content")
	}

	var opts []content.Option
	var apiOpts []api.Option
	if cfg.AI.TokenBudget > 0 {
		opts = append(opts, content.WithBudget(ai.NewInMemoryBudget(cfg.AI.TokenBudget)))
	}
	if cfg.Cache.URL != "" {
		redis, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Warn("connecting cache failed, adaptation caching disabled", "error", err)
		} else {
			a.redis = redis
			opts = append(opts, content.WithCache(redis))

			// Evolved modules persist under a fixed key and are reinstalled
			// on startup.
			overrides := curriculum.NewOverrideStore(redis)
			if mods, err := overrides.Load(ctx); err != nil {
				slog.Warn("loading curriculum overrides failed", "error", err)
			} else if len(mods) > 0 {
				a.catalog.ApplyOverrides(mods)
				slog.Info("curriculum overrides applied", "modules", len(mods))
			}
			apiOpts = append(apiOpts, api.WithOverrideStore(overrides))
		}
	}
	a.svc = content.NewService(router, opts...)

	a.wsHandle = ws.NewHandler(a.svc, a.profiles, session.Config{
		SettleDelay:    cfg.Session.SettleDelay,
		SampleInterval: cfg.Session.SampleInterval,
	})
	a.apiHandle = api.NewHandler(a.profiles, a.catalog, a.svc, apiOpts...)
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func (a *app) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /ws/session", a.wsHandle)
	a.apiHandle.Register(mux)
	return mux
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (a *app) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if a.db != nil {
		if err := a.db.HealthCheck(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"database unavailable"}`))
			return
		}
	}
	if a.redis != nil {
		if err := a.redis.HealthCheck(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"cache unavailable"}`))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
