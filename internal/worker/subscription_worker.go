package worker

import (
	"context"
	"log"
	"time"

	"cobranca_service/internal/usecase"
)

// SubscriptionWorker periodically revalidates store subscription receipts.
// One sweep per tick, both platforms, sequentially; sweeps never overlap.
type SubscriptionWorker struct {
	usecase  usecase.ISubscriptionUseCase
	interval time.Duration
}

func NewSubscriptionWorker(uc usecase.ISubscriptionUseCase, interval time.Duration) *SubscriptionWorker {
	return &SubscriptionWorker{usecase: uc, interval: interval}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (w *SubscriptionWorker) Start(ctx context.Context) {
	log.Printf("[subscription][worker] started interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[subscription][worker] stopped")
			return
		case <-ticker.C:
			if err := w.usecase.ValidateAndroid(ctx); err != nil {
				log.Printf("[subscription][worker] android sweep failed err=%v", err)
			}
			if err := w.usecase.ValidateIOS(ctx); err != nil {
				log.Printf("[subscription][worker] ios sweep failed err=%v", err)
			}
		}
	}
}
