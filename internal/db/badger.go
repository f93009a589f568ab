package db

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

type BadgerDB struct {
	db *badger.DB
}

// NewBadgerDB opens (or creates) a badger store in dir.
func NewBadgerDB(logger *zap.SugaredLogger, dir string) (*BadgerDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger{logger})
	return openBadger(opts)
}

// NewInMemoryBadgerDB opens a badger store that is never written to disk.
func NewInMemoryBadgerDB(logger *zap.SugaredLogger) (*BadgerDB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(badgerLogger{logger})
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerDB, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &BadgerDB{
		db: db,
	}, nil
}

func (b *BadgerDB) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting key %q: %w", key, err)
	}

	return value, nil
}

func (b *BadgerDB) Put(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}

	return nil
}

func (b *BadgerDB) Close() error {
	return b.db.Close()
}

// badgerLogger routes badger's internal logging through zap. Badger is
// chatty at info level so that is demoted to debug.
type badgerLogger struct {
	logs *zap.SugaredLogger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logs.Errorf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logs.Warnf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logs.Debugf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logs.Debugf(format, args...)
}
