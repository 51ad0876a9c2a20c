package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smoralesusma/olsoftware-dashboard/internal/api"
	"github.com/smoralesusma/olsoftware-dashboard/internal/clients/functions"
	"github.com/smoralesusma/olsoftware-dashboard/internal/clients/identity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/repository"
	"github.com/smoralesusma/olsoftware-dashboard/internal/service"
	"github.com/smoralesusma/olsoftware-dashboard/internal/session"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/broker"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/job"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/logger"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/postgres"
)

const (
	ReadTimeout       = 5 * time.Second
	WriteTimeout      = 60 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 1 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.ConnectToPostgres(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	panicOnErr("parse redis url", err)

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	err = redisClient.Ping(ctx).Err()
	panicOnErr("ping redis", err)

	recordRepo := repository.NewRecordRepository(pool)
	identityClient := identity.NewClient(cfg)
	functionsClient := functions.NewClient(cfg.Functions)

	producer := broker.NewProducer(l, cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	sessions := session.NewManager(
		session.NewRedisStore(redisClient, cfg.Session.TTL),
		identityClient,
		cfg.Session.IdleTTL,
	)
	tokens := session.NewTokens(cfg.Session.Secret, cfg.Session.TTL)

	s := service.New(cfg, recordRepo, identityClient, functionsClient, sessions, producer)

	cookies := api.NewCookies(tokens, cfg.Session)
	h := api.NewHandler(s, sessions, cookies)
	mw := api.NewMiddleware(sessions, s, cookies, cfg.AllowOrigins, cfg.TrustedProxies)
	limiter := api.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	router := api.NewRouter(h, mw, limiter)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	jobs := job.NewRunner(l).
		Register("sweep_sessions", cfg.Session.SweepInterval, func(ctx context.Context) error {
			closed := sessions.Sweep(ctx)
			s.DropWorkspaces(closed...)

			dropped := s.DropIdleWorkspaces(time.Now().Add(-cfg.Session.IdleTTL))

			l.Debug("sessions swept", "closed", len(closed), "workspaces_dropped", dropped)

			return nil
		})
	jobs.Start(ctx)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	waitSignal(l, cancel, server)
	wg.Wait()
	jobs.Wait()
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
