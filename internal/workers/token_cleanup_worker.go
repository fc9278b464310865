package workers

import (
	"github.com/robfig/cron/v3"

	"tailorlink_backend/internal/logger"
	"tailorlink_backend/internal/repositories"
)

// TokenCleanupWorker purges expired refresh tokens on a schedule. Reset
// tokens need no sweep: the cache expires them on its own.
type TokenCleanupWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

func NewTokenCleanupWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

func (w *TokenCleanupWorker) Start() error {
	_, err := w.cron.AddFunc("@hourly", w.run)
	if err != nil {
		return err
	}
	w.cron.Start()
	logger.Info("Token cleanup worker started", "schedule", "@hourly")
	return nil
}

func (w *TokenCleanupWorker) Stop() {
	w.cron.Stop()
}

func (w *TokenCleanupWorker) run() {
	deleted, err := w.refreshTokenRepo.DeleteExpired()
	logger.WorkerLog("token_cleanup", "delete expired refresh tokens", err)
	if err == nil && deleted > 0 {
		logger.Info("Expired refresh tokens removed", "count", deleted)
	}
}
