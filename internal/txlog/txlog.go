package txlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"transether/internal/db"

	"go.uber.org/zap"
)

// Log is the locally persisted transfer history, newest record first. Every
// mutation rewrites the whole sequence to the store before returning.
type Log struct {
	logs  *zap.SugaredLogger
	store Store

	mu      sync.RWMutex
	records []Record
}

// Load rehydrates the log from store. A missing or unreadable value yields an
// empty log; it never fails startup.
func Load(logger *zap.SugaredLogger, store Store) *Log {
	l := &Log{
		logs:    logger,
		store:   store,
		records: []Record{},
	}

	data, err := store.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			logger.Warnw("failed to read transaction log, starting empty", "error", err)
		}
		return l
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warnw("transaction log is corrupt, starting empty", "error", err)
		return l
	}
	if records != nil {
		l.records = records
	}

	logger.Infow("transaction log loaded", "count", len(l.records))
	return l
}

// Append prepends record and persists the full log. If persisting fails the
// in-memory log is left as it was.
func (l *Log) Append(record Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]Record, 0, len(l.records)+1)
	next = append(next, record)
	next = append(next, l.records...)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal transaction log: %w", err)
	}

	if err := l.store.Put(StorageKey, data); err != nil {
		return fmt.Errorf("persist transaction log: %w", err)
	}

	l.records = next
	return nil
}

// All returns a copy of the log, newest first.
func (l *Log) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}
