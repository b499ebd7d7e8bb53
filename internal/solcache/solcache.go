// Package solcache caches solved-deal outcomes in a BadgerDB so batch
// range runs never re-solve a board number already seen. Grounded on
// the teacher's internal/storage/storage.go BadgerDB wrapper (open/
// close, txn-scoped Get/Set) and internal/book/book.go's probe-before-
// search idiom, retargeted from opening-book lookups to solved-board
// memoization.
package solcache

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tholroyd/patsolve/internal/solitaire"
)

// Entry is what gets cached for one (variant, pile/free-cell counts,
// board number) key: the
// terminal status and, for a Win, the move list as text tokens (so the
// cache never depends on the card.Card encoding's stability).
type Entry struct {
	Status string   `json:"status"`
	Moves  []string `json:"moves,omitempty"`
}

// Cache wraps a BadgerDB instance scoped to solved-deal entries.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if absent) the cache database at the
// platform data directory.
func Open() (*Cache, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// OpenInMemory opens a cache backed by an ephemeral in-memory BadgerDB,
// for tests and short-lived batch runs that don't want a data-dir
// dependency.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("")
	opts.InMemory = true
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func key(variant string, config solitaire.Config, gameNumber int64) []byte {
	return []byte(fmt.Sprintf("%s/w%dt%d/%d", variant, config.NumWorkPiles, config.NumFreeCells, gameNumber))
}

// Probe looks up a previously recorded outcome for gameNumber under the
// given variant/config, returning ok=false on a cache miss.
func (c *Cache) Probe(variant string, config solitaire.Config, gameNumber int64) (Entry, bool) {
	var e Entry
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(variant, config, gameNumber))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil {
		return Entry{}, false
	}
	return e, found
}

// Store records an outcome for later Probe calls.
func (c *Cache) Store(variant string, config solitaire.Config, gameNumber int64, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(variant, config, gameNumber), data)
	})
}
