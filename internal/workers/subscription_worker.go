package workers

import (
	"time"

	"outreachai_backend/internal/logger"
	"outreachai_backend/internal/repositories"

	"github.com/robfig/cron/v3"
)

// SubscriptionWorker periodically flips subscriptions whose paid
// period has lapsed to inactive, and prunes expired refresh tokens.
type SubscriptionWorker struct {
	subscriptions repositories.SubscriptionRepository
	users         repositories.UserRepository
	cron          *cron.Cron
}

func NewSubscriptionWorker(subscriptions repositories.SubscriptionRepository, users repositories.UserRepository) *SubscriptionWorker {
	return &SubscriptionWorker{
		subscriptions: subscriptions,
		users:         users,
		cron:          cron.New(),
	}
}

// Start registers the hourly sweep and launches the scheduler.
func (w *SubscriptionWorker) Start() error {
	if _, err := w.cron.AddFunc("@hourly", w.sweep); err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("subscription worker started", "schedule", "@hourly")
	return nil
}

func (w *SubscriptionWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info("subscription worker stopped")
}

func (w *SubscriptionWorker) sweep() {
	expired, err := w.subscriptions.ExpireOverdue(time.Now())
	if err != nil {
		logger.Error("subscription expiry sweep failed", "error", err)
	} else if expired > 0 {
		logger.Info("expired overdue subscriptions", "count", expired)
	}

	if err := w.users.DeleteExpiredRefreshTokens(); err != nil {
		logger.Error("refresh token cleanup failed", "error", err)
	}
}
