package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/api"
	"github.com/hackgods/care-console/internal/audit"
	"github.com/hackgods/care-console/internal/config"
	"github.com/hackgods/care-console/internal/console"
	"github.com/hackgods/care-console/internal/db"
	"github.com/hackgods/care-console/internal/logger"
	redisclient "github.com/hackgods/care-console/internal/redis"
	"github.com/hackgods/care-console/internal/seed"
	"github.com/hackgods/care-console/internal/store"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config load error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "care-console")
	if err != nil {
		os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("console-server starting up",
		zap.String("env", cfg.Env),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("timezone", cfg.Location.String()),
		zap.String("version", version),
	)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	now := func() time.Time { return time.Now().In(cfg.Location) }

	sinks := []audit.Sink{audit.NewLogSink(log.Named("audit"))}
	checks := map[string]api.DependencyCheck{}

	if cfg.PostgresDSN != "" {
		pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
		pool, err := db.Connect(pgCtx, cfg.PostgresDSN)
		if err == nil {
			pgSink := audit.NewPostgresSink(pool)
			err = pgSink.EnsureSchema(pgCtx)
			if err == nil {
				sinks = append(sinks, pgSink)
				checks["postgres"] = pool.Ping
				defer pool.Close()
				log.Info("postgres audit sink enabled")
			} else {
				pool.Close()
			}
		}
		cancelPg()
		if err != nil {
			log.Warn("postgres audit sink disabled", zap.Error(err))
		}
	}

	if cfg.RedisAddr != "" {
		rdb, err := redisclient.Connect(rootCtx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
		})
		if err != nil {
			log.Warn("redis audit sink disabled", zap.Error(err))
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Warn("error closing redis", zap.Error(err))
				}
			}()
			sinks = append(sinks, audit.NewRedisStreamSink(rdb, cfg.AuditStream))
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			log.Info("redis audit sink enabled", zap.String("stream", cfg.AuditStream))
		}
	}

	dispatcher := audit.NewDispatcher(log.Named("audit"), cfg.AuditBuffer, sinks...)
	defer dispatcher.Close()

	c := console.New(store.WithClock(now), store.WithObserver(dispatcher.Observe))
	switch cfg.SeedMode {
	case config.SeedSample:
		seed.Sample(c)
	case config.SeedFake:
		seed.Fake(c, cfg.SeedCount, uint64(time.Now().UnixNano()), now())
	}
	log.Info("stores ready",
		zap.String("seed_mode", cfg.SeedMode),
		zap.Int("employees", c.Employees.Len()),
		zap.Int("residents", c.Residents.Len()),
		zap.Int("appointments", c.Appointments.Len()),
		zap.Int("medications", c.Medications.Len()),
	)

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: api.NewRouter(api.RouterConfig{
			Console: c,
			Now:     now,
			Checks:  checks,
			Logger:  log.Named("http"),
			Env:     cfg.Env,
			Version: version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go runMedicationSweep(rootCtx, c, now, cfg.SweepInterval, log.Named("sweep"))

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutting down console-server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
}

func runMedicationSweep(ctx context.Context, c *console.Console, now func() time.Time, interval time.Duration, log *zap.Logger) {
	sweepOnce(c, now, log)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping medication sweep")
			return
		case <-ticker.C:
			sweepOnce(c, now, log)
		}
	}
}

func sweepOnce(c *console.Console, now func() time.Time, log *zap.Logger) {
	start := time.Now()
	done := c.SweepMedications(now())
	log.Info("medication sweep complete",
		zap.Int("completed", len(done)),
		zap.Duration("took", time.Since(start)),
	)
}
