package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/dictionary"
	"github.com/heartmarshall/wordlookup/internal/service/lookup"
	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
	"github.com/heartmarshall/wordlookup/internal/transport/rest"
)

// App is the wired service: loaded dictionaries behind the HTTP handler.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *dictionary.Store
	handler http.Handler
	limiter *middleware.RateLimiter
}

// New loads every configured dictionary and builds the HTTP handler.
// A load failure is returned as is (a *domain.LoadError) and no App is built.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := loadDictionaries(ctx, cfg.Dictionary, logger)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: logger, store: store}

	svc := lookup.NewService(logger, store, cfg.Dictionary, Version)
	lookupH := rest.NewLookupHandler(svc, logger)
	healthH := rest.NewHealthHandler(store, Version)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if rl := cfg.RateLimit; rl.Enabled {
		a.limiter = middleware.NewRateLimiter(rl.RequestsPerMinute, rl.Burst, rl.CleanupInterval)
		mws = append(mws, a.limiter.Middleware())
	}

	a.handler = rest.NewRouter(lookupH, healthH, middleware.Chain(mws...))
	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases background resources.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
}

// Run loads the dictionaries, then serves HTTP until ctx is canceled and
// shuts down gracefully. Nothing listens if loading fails.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is canceled, then drains in-flight
// requests within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

func loadDictionaries(ctx context.Context, cfg config.DictionaryConfig, logger *slog.Logger) (*dictionary.Store, error) {
	start := time.Now()

	store, err := dictionary.Load(ctx, dictionary.FileSources(cfg.Sources))
	if err != nil {
		logger.Error("dictionary load failed", slog.String("error", err.Error()))
		return nil, err
	}

	for _, lang := range store.Languages() {
		stats, _ := store.Stats(lang)
		logger.Info("dictionary loaded",
			slog.String("lang", lang.String()),
			slog.String("name", cfg.DisplayName(lang.String())),
			slog.Int("words", stats.Words),
			slog.Int("lines", stats.Lines),
			slog.Int("blank", stats.Blank),
			slog.Int("duplicates", stats.Duplicates),
			slog.String("source", stats.Source),
			slog.String("digest", stats.Digest),
		)
	}
	logger.Info("dictionaries ready",
		slog.Int("languages", len(store.Languages())),
		slog.Duration("took", time.Since(start)),
	)

	return store, nil
}
