package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/catapou/contador/internal/logger"
	"github.com/catapou/contador/internal/service"
	"github.com/catapou/contador/internal/store"
)

var fixedNow = time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contador.db")
	s, closeFn, err := store.Open(context.Background(), store.Options{Backend: store.BackendSQLite, SQLitePath: path}, logger.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })
	return s
}

func openTestTracker(t *testing.T, st store.Store) *service.Tracker {
	t.Helper()
	tr, err := service.OpenTracker(context.Background(), st, service.TrackerOptions{
		Log: logger.Discard(),
		Now: func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("open tracker: %v", err)
	}
	return tr
}
