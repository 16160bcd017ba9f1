// Package badgersink persists rates in a BadgerDB key-value store, one key per currency.
package badgersink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/sink"
)

const keyPrefix = "rate:"

var ErrRateNotFound = errors.New("rate not found")

var _ sink.Sink = (*Store)(nil)

// Store implements sink.Sink on top of BadgerDB
type Store struct {
	db *badger.DB
}

// NewStore wraps an open database. The caller owns db and closes it
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) a database at path. An empty path opens an in-memory database
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return db, nil
}

func key(sym label.Symbol) []byte {
	return []byte(keyPrefix + sym.String())
}

// SetExchangeRate overwrites the stored rate of rate.Symbol
func (s *Store) SetExchangeRate(ctx context.Context, rate sink.Rate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("failed to marshal rate: %w", err)
	}

	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(rate.Symbol), data)
	}); err != nil {
		return fmt.Errorf("failed to store rate %s: %w", rate.Symbol, err)
	}

	return nil
}

// Get returns the last stored rate of sym
func (s *Store) Get(ctx context.Context, sym label.Symbol) (sink.Rate, error) {
	var rate sink.Rate

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(sym))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rate)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return sink.Rate{}, fmt.Errorf("%w: %s", ErrRateNotFound, sym)
	}

	if err != nil {
		return sink.Rate{}, fmt.Errorf("failed to retrieve rate %s: %w", sym, err)
	}

	return rate, nil
}

// List returns every stored rate ordered by currency
func (s *Store) List(ctx context.Context) ([]sink.Rate, error) {
	var list []sink.Rate

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rate sink.Rate
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rate)
			}); err != nil {
				return err
			}
			list = append(list, rate)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	return list, nil
}
