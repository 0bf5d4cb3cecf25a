package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/usecase/chat"
)

// SweeperConfig controls how often the chat log is pruned.
type SweeperConfig struct {
	Interval time.Duration
}

// RetentionSweeper periodically trims the chat log down to its retention
// cap. Appends already trim inline; the sweep exists so a log restored
// from disk under an older (or unbounded) configuration converges too.
type RetentionSweeper struct {
	store  *chat.Store
	logger *zap.Logger
	cron   *cron.Cron
	cfg    SweeperConfig
}

func NewRetentionSweeper(store *chat.Store, logger *zap.Logger, cfg SweeperConfig) *RetentionSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rs := &RetentionSweeper{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = rs.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		rs.Sweep(ctx)
	})

	return rs
}

// Start launches the cron scheduler.
func (rs *RetentionSweeper) Start() {
	if rs == nil || rs.cron == nil {
		return
	}
	rs.cron.Start()
	rs.logger.Info("chat retention sweeper started", zap.Duration("interval", rs.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (rs *RetentionSweeper) Stop(ctx context.Context) {
	if rs == nil || rs.cron == nil {
		return
	}
	stopCtx := rs.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	rs.logger.Info("chat retention sweeper stopped")
}

// Sweep prunes the log once.
func (rs *RetentionSweeper) Sweep(ctx context.Context) {
	if rs == nil || rs.store == nil {
		return
	}
	if removed := rs.store.Prune(ctx); removed > 0 {
		rs.logger.Info("pruned chat history", zap.Int("removed", removed))
	}
}
