package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staffhub_backend/internal/cache"
	"staffhub_backend/internal/logger"
	"staffhub_backend/internal/repositories"
)

type PostingWorker struct {
	db           *gorm.DB
	postingRepo  *repositories.PostingRepository
	postingCache *cache.PostingCache
}

func NewPostingWorker(db *gorm.DB, postingRepo *repositories.PostingRepository, postingCache *cache.PostingCache) *PostingWorker {
	return &PostingWorker{
		db:           db,
		postingRepo:  postingRepo,
		postingCache: postingCache,
	}
}

// Start launches the background tasks for job postings.
func (w *PostingWorker) Start(ctx context.Context) {
	// Deactivate postings whose shift end has passed, every hour
	go w.deactivateExpiredPostings(ctx)
}

func (w *PostingWorker) deactivateExpiredPostings(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Posting worker stopped")
			return
		case <-ticker.C:
			count, err := w.postingRepo.DeactivateExpired(w.db.WithContext(ctx), time.Now())
			if err != nil {
				logger.WorkerLog("posting", "deactivate_expired", err)
				continue
			}
			if count > 0 {
				logger.Info("Deactivated expired postings", "count", count)
				w.postingCache.InvalidateOpenPostings(ctx)
			}
		}
	}
}
