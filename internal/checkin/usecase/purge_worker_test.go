package usecase_test

import (
	"testing"
	"time"

	checkindomain "gympass-backend/internal/checkin/domain"
	"gympass-backend/internal/checkin/usecase"
)

func TestTokenPurgeWorker_RemovesExpiredUses(t *testing.T) {
	store := newFakeStore()
	store.uses["stale"] = &checkindomain.CheckinTokenUse{
		JTI:       "stale",
		MemberID:  "member-1",
		DeviceID:  "kiosk_A",
		UsedAt:    time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	store.uses["fresh"] = &checkindomain.CheckinTokenUse{
		JTI:       "fresh",
		MemberID:  "member-1",
		DeviceID:  "kiosk_A",
		UsedAt:    time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	worker := usecase.NewTokenPurgeWorker(&fakeLedgerRepo{s: store}, time.Hour)
	worker.Start()
	defer worker.Stop()

	// The worker purges once immediately on start
	deadline := time.Now().Add(2 * time.Second)
	for {
		store.mu.Lock()
		_, staleGone := store.uses["stale"]
		store.mu.Unlock()
		if !staleGone || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.uses["stale"]; ok {
		t.Error("expected the expired use to be purged")
	}
	if _, ok := store.uses["fresh"]; !ok {
		t.Error("the unexpired use must survive the purge")
	}
}
