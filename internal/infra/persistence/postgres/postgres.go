package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"envelope/config"
	"envelope/internal/domain/lifecycle"
	"envelope/internal/domain/service"
	"envelope/internal/errors"
	"envelope/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
	healthCheckName    = "postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the notes database, migrates its schema on start and samples
// pool contention until the app stops.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrap postgres sql.DB")
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := migrate(ctx, db, sqlDB); err != nil {
				return err
			}
			sampler.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			sampler.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, sqlDB *sql.DB) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "ping postgres")
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.NoteModel{}); err != nil {
		return errors.Wrap(err, "migrate notes table")
	}

	return nil
}

// NewHealthChecker reports the database as unavailable when a ping fails.
func NewHealthChecker(db *gorm.DB) service.HealthChecker {
	return &healthChecker{db: db}
}

type healthChecker struct {
	db *gorm.DB
}

func (h *healthChecker) Name() string { return healthCheckName }

func (h *healthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "unwrap postgres sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "ping postgres")
}

// poolSampler logs connection pool waits observed between two samples.
type poolSampler struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
	cancel   context.CancelFunc
}

func (p *poolSampler) start() {
	if p.logger == nil || p.db == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	go p.run(ctx)
}

func (p *poolSampler) stop() {
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *poolSampler) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	prev := p.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := p.db.Stats()
			p.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (p *poolSampler) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waited >= poolSlowWait {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}

	p.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
