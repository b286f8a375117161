package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/pjecz/hercules-api-key/internal/api"
	"github.com/pjecz/hercules-api-key/internal/api/middleware"
	"github.com/pjecz/hercules-api-key/internal/core/service"
	mongostore "github.com/pjecz/hercules-api-key/internal/infrastructure/db/mongo"
	redisstore "github.com/pjecz/hercules-api-key/internal/infrastructure/db/redis"
	"github.com/pjecz/hercules-api-key/internal/infrastructure/queue"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	var skipIndexes bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.Root().Version, skipIndexes)
		},
	}

	cmd.Flags().BoolVar(&skipIndexes, "skip-indexes", false, "Do not create MongoDB indexes at start-up")

	return cmd
}

func runServe(parent context.Context, version string, skipIndexes bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, version)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	proxies, err := a.cfg.ProxyRanges()
	if err != nil {
		return err
	}

	if !skipIndexes {
		if err := mongostore.EnsureIndexes(ctx, a.db); err != nil {
			return err
		}
	}

	var (
		rdb      *goredis.Client
		throttle middleware.Throttle
	)
	rdb, err = redisstore.Connect(ctx, redisstore.Config{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("redis unavailable, failed-authentication throttle disabled")
		rdb = nil
	} else {
		defer rdb.Close()
		throttle = redisstore.NewAttemptLimiter(rdb, a.cfg.Throttle.Limit, a.cfg.Throttle.Window)
	}

	accessLog := service.NewAccessLogService(mongostore.NewAccessLogRepository(a.db), a.log)
	dispatcher := queue.NewDispatcher(a.cfg.AccessLog.Workers, accessLog, a.log)
	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workersCtx)

	e := api.NewRouter(api.Dependencies{
		Auth:      a.authService(),
		Throttle:  throttle,
		Judicial:  service.NewJudicialService(mongostore.NewJudicialRepository(a.db), a.codec, a.log),
		Site:      service.NewSiteService(mongostore.NewSiteRepository(a.db), a.log),
		Directory: service.NewDirectoryService(mongostore.NewDirectoryRepository(a.db), a.log),
		Access:    dispatcher,
		Mongo:     a.db,
		Redis:     rdb,
		Origins:   a.cfg.Origins,
		StateKey:  a.cfg.StateKey,
		Log:       a.log,

		TrustedProxies: proxies,
	})

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("port", a.cfg.Port).Msg("http server starting")
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			cancelWorkers()
			dispatcher.Wait()
			return err
		}
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("http shutdown failed")
	}

	cancelWorkers()
	dispatcher.Wait()
	a.log.Info().Msg("stopped")
	return nil
}
