// Package txs screens and persists ledger transactions received from the
// network.
package txs

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/ledger"
)

var (
	errDuplicateTX = errors.New("tx already exists")
	errParse       = errors.New("failed to parse tx")
)

// Config is the configuration of the transaction handler.
type Config struct {
	// SeenCacheSize is the number of recently handled transaction ids kept to
	// short-circuit duplicates without touching storage.
	SeenCacheSize int `mapstructure:"seen-cache-size"`
}

// DefaultConfig returns the default config for the handler.
func DefaultConfig() Config {
	return Config{
		SeenCacheSize: 1 << 12,
	}
}

// Handler screens transactions received via gossip or sync: it decodes the
// raw bytes (which verifies the embedded identifier and the size bound),
// drops duplicates, and persists the rest.
type Handler struct {
	logger *zap.Logger
	store  transactionStore
	seen   *lru.Cache[types.TransactionID, struct{}]
}

// NewHandler returns a new Handler.
func NewHandler(store transactionStore, cfg Config, logger *zap.Logger) (*Handler, error) {
	seen, err := lru.New[types.TransactionID, struct{}](cfg.SeenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create seen cache: %w", err)
	}
	return &Handler{
		logger: logger,
		store:  store,
		seen:   seen,
	}, nil
}

// HandleGossipTransaction handles data received on the transactions gossip
// channel. Errors are reported to the caller so the gossip layer can score
// the peer.
func (h *Handler) HandleGossipTransaction(ctx context.Context, peer string, msg []byte) error {
	err := h.handleTransaction(msg)
	updateMetrics(err, gossipTxCount)
	if err != nil {
		h.logger.Warn("failed to handle gossip tx",
			zap.String("peer", peer),
			zap.Error(err),
		)
	}
	return err
}

// HandleSyncTransaction handles transactions fetched during sync. Duplicates
// are expected there and are not an error.
func (h *Handler) HandleSyncTransaction(ctx context.Context, msg []byte) error {
	err := h.handleTransaction(msg)
	updateMetrics(err, syncTxCount)
	if err == nil || errors.Is(err, errDuplicateTX) {
		return nil
	}
	return err
}

func (h *Handler) handleTransaction(msg []byte) error {
	tx, err := ledger.TransactionFromBytes(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", errParse, err)
	}
	if _, ok := h.seen.Get(tx.ID); ok {
		return fmt.Errorf("%w: %s", errDuplicateTX, tx.ID)
	}
	exists, err := h.store.Has(tx.ID)
	if err != nil {
		return fmt.Errorf("check tx %s: %w", tx.ID, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", errDuplicateTX, tx.ID)
	}
	if err := h.store.Add(tx, msg); err != nil {
		return fmt.Errorf("store tx %s: %w", tx.ID, err)
	}
	h.seen.Add(tx.ID, struct{}{})
	h.logger.Debug("stored transaction", zap.Object("tx", tx))
	return nil
}

func updateMetrics(err error, counter *prometheus.CounterVec) {
	switch {
	case err == nil:
		counter.WithLabelValues(saved).Inc()
	case errors.Is(err, errDuplicateTX):
		counter.WithLabelValues(duplicate).Inc()
	case errors.Is(err, errParse):
		counter.WithLabelValues(cantParse).Inc()
	default:
		counter.WithLabelValues(rejectedInternalErr).Inc()
	}
}
