package txs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/ledger"
)

func newTestHandler(tb testing.TB) (*Handler, *Store) {
	tb.Helper()
	store, err := OpenStore(tb.TempDir(), zaptest.NewLogger(tb))
	require.NoError(tb, err)
	tb.Cleanup(func() { store.Close() })

	handler, err := NewHandler(store, DefaultConfig(), zaptest.NewLogger(tb))
	require.NoError(tb, err)
	return handler, store
}

func sampleFeeTx(tb testing.TB, nonce string) (*ledger.Transaction, []byte) {
	tb.Helper()
	fee := &ledger.Fee{
		Transition: ledger.Transition{
			ID:        types.CalcHash32([]byte(nonce)),
			ProgramID: "credits.pv",
			Function:  "fee_public",
			Inputs:    []types.Hash32{types.CalcHash32([]byte("in"))},
			Outputs:   []types.Hash32{types.CalcHash32([]byte("out"))},
			Proof:     []byte(nonce),
		},
		GlobalStateRoot: types.CalcHash32([]byte("root")),
	}
	tx, err := ledger.FromFee(fee)
	require.NoError(tb, err)
	raw, err := tx.ToBytes()
	require.NoError(tb, err)
	return tx, raw
}

func TestHandleGossipTransaction(t *testing.T) {
	handler, store := newTestHandler(t)
	tx, raw := sampleFeeTx(t, "one")

	require.NoError(t, handler.HandleGossipTransaction(context.Background(), "peer1", raw))

	has, err := store.Has(tx.ID)
	require.NoError(t, err)
	require.True(t, has)

	got, err := store.Get(tx.ID)
	require.NoError(t, err)
	require.Equal(t, tx, got)
}

func TestHandleGossipDuplicate(t *testing.T) {
	handler, _ := newTestHandler(t)
	_, raw := sampleFeeTx(t, "one")

	require.NoError(t, handler.HandleGossipTransaction(context.Background(), "peer1", raw))
	err := handler.HandleGossipTransaction(context.Background(), "peer2", raw)
	require.ErrorIs(t, err, errDuplicateTX)
}

func TestHandleGossipDuplicateInStore(t *testing.T) {
	handler, store := newTestHandler(t)
	tx, raw := sampleFeeTx(t, "one")

	// already persisted by another path, seen cache is cold
	require.NoError(t, store.Add(tx, raw))
	err := handler.HandleGossipTransaction(context.Background(), "peer1", raw)
	require.ErrorIs(t, err, errDuplicateTX)
}

func TestHandleGossipMalformed(t *testing.T) {
	handler, _ := newTestHandler(t)
	_, raw := sampleFeeTx(t, "one")

	// tamper with the embedded id so decoding fails verification
	raw[2] ^= 0x01
	err := handler.HandleGossipTransaction(context.Background(), "peer1", raw)
	require.ErrorIs(t, err, errParse)

	err = handler.HandleGossipTransaction(context.Background(), "peer1", []byte("garbage"))
	require.ErrorIs(t, err, errParse)
}

func TestHandleSyncTransaction(t *testing.T) {
	handler, _ := newTestHandler(t)
	_, raw := sampleFeeTx(t, "one")

	require.NoError(t, handler.HandleSyncTransaction(context.Background(), raw))
	// duplicates are expected during sync
	require.NoError(t, handler.HandleSyncTransaction(context.Background(), raw))
	// malformed input is still an error
	require.Error(t, handler.HandleSyncTransaction(context.Background(), []byte("garbage")))
}
