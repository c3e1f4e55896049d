package txs

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	lderrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"go.uber.org/zap"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/ledger"
)

// ErrNotFound is returned when a transaction is not in the store.
var ErrNotFound = errors.New("tx not found")

// Store persists the raw encoding of accepted transactions in leveldb, keyed
// by transaction id. Values are re-decoded (and therefore re-verified) on the
// way out.
type Store struct {
	fn     string
	db     *leveldb.DB
	logger *zap.Logger
}

// OpenStore opens or creates a transaction store under path.
func OpenStore(path string, logger *zap.Logger) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: 16,
		BlockCacheCapacity:     8 * opt.MiB,
		WriteBuffer:            4 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*lderrors.ErrCorrupted); corrupted {
		logger.Warn("recovering corrupted tx store", zap.String("path", path))
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open tx store: %w", err)
	}
	return &Store{
		fn:     path,
		db:     db,
		logger: logger,
	}, nil
}

// Path returns the path to the store directory.
func (s *Store) Path() string {
	return s.fn
}

// Add persists the raw encoding of tx.
func (s *Store) Add(tx *ledger.Transaction, raw []byte) error {
	if err := s.db.Put(tx.ID.Bytes(), raw, nil); err != nil {
		return fmt.Errorf("put tx: %w", err)
	}
	return nil
}

// Has reports whether the store holds a transaction with the given id.
func (s *Store) Has(id types.TransactionID) (bool, error) {
	has, err := s.db.Has(id.Bytes(), nil)
	if err != nil {
		return false, fmt.Errorf("has tx: %w", err)
	}
	return has, nil
}

// Get decodes and returns the stored transaction with the given id.
func (s *Store) Get(id types.TransactionID) (*ledger.Transaction, error) {
	raw, err := s.GetRaw(id)
	if err != nil {
		return nil, err
	}
	tx, err := ledger.TransactionFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode stored tx %s: %w", id, err)
	}
	return tx, nil
}

// GetRaw returns the stored raw encoding of the transaction with the given id.
func (s *Store) GetRaw(id types.TransactionID) ([]byte, error) {
	raw, err := s.db.Get(id.Bytes(), nil)
	switch {
	case errors.Is(err, lderrors.ErrNotFound):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case err != nil:
		return nil, fmt.Errorf("get tx: %w", err)
	}
	return raw, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close tx store: %w", err)
	}
	return nil
}
