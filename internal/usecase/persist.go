package usecase

import (
	"context"
	"sync"

	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
	"github.com/corptravel/trip-search-client/internal/infrastructure/storage"
)

// snapshotWriter writes versioned snapshots of one key. Snapshots are taken
// under the owner's lock but written outside it, so a write carrying an older
// version than the last one written is dropped.
type snapshotWriter struct {
	store storage.Store
	key   string
	log   *logger.Logger

	mu      sync.Mutex
	written uint64
}

func newSnapshotWriter(store storage.Store, key string, log *logger.Logger) *snapshotWriter {
	return &snapshotWriter{store: store, key: key, log: log}
}

func (w *snapshotWriter) write(version uint64, v interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if version <= w.written {
		return
	}
	w.written = version

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := storage.SetJSON(ctx, w.store, w.key, v); err != nil {
		w.log.Warn().Err(err).Str("key", w.key).Msg("Failed to persist session state")
	}
}

func (w *snapshotWriter) clear(ctx context.Context, version uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if version > w.written {
		w.written = version
	}
	return w.store.Delete(ctx, w.key)
}
