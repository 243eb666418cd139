package usecase

import (
	"log"
	"time"

	checkinrepo "gympass-backend/internal/checkin/repository"
)

// TokenPurgeWorker removes replay records for tokens that are past their
// expiry. An expired token is already rejected by the freshness check, so
// its ledger row is dead weight and can go at any time.
type TokenPurgeWorker struct {
	ledgerRepo checkinrepo.LedgerRepository
	interval   time.Duration
	stopChan   chan struct{}
}

// NewTokenPurgeWorker creates a new worker
func NewTokenPurgeWorker(ledgerRepo checkinrepo.LedgerRepository, interval time.Duration) *TokenPurgeWorker {
	return &TokenPurgeWorker{
		ledgerRepo: ledgerRepo,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start begins the purge loop
func (w *TokenPurgeWorker) Start() {
	log.Printf("[TokenPurge] Starting replay ledger purge worker (interval: %s)", w.interval)

	go func() {
		// Run immediately on start
		w.purgeOnce()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.purgeOnce()
			case <-w.stopChan:
				log.Println("[TokenPurge] Worker stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the worker
func (w *TokenPurgeWorker) Stop() {
	close(w.stopChan)
}

func (w *TokenPurgeWorker) purgeOnce() {
	removed, err := w.ledgerRepo.PurgeExpired(time.Now())
	if err != nil {
		log.Printf("[TokenPurge] Error purging expired token uses: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[TokenPurge] Removed %d expired token uses", removed)
	}
}
