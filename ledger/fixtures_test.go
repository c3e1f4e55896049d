package ledger_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/provernet/go-provernet/ledger"
	"github.com/provernet/go-provernet/signing"
)

func fuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).NumElements(1, 4)
}

func sampleDeployment(seed int64) *ledger.Deployment {
	d := &ledger.Deployment{}
	fuzzer(seed).Fuzz(d)
	if len(d.Program) == 0 {
		d.Program = []byte{0x01}
	}
	return d
}

func sampleExecution(seed int64) *ledger.Execution {
	e := &ledger.Execution{}
	fuzzer(seed).Fuzz(e)
	return e
}

func sampleFee(seed int64) *ledger.Fee {
	f := &ledger.Fee{}
	fuzzer(seed).Fuzz(f)
	return f
}

func sampleDeployTx(tb testing.TB, seed int64) *ledger.Transaction {
	tb.Helper()
	deployment := sampleDeployment(seed)
	signer, err := signing.NewEdSigner()
	require.NoError(tb, err)
	owner, err := ledger.NewProgramOwner(signer, deployment)
	require.NoError(tb, err)
	tx, err := ledger.FromDeployment(owner, deployment, sampleFee(seed+1))
	require.NoError(tb, err)
	return tx
}

func sampleExecuteTx(tb testing.TB, seed int64, withFee bool) *ledger.Transaction {
	tb.Helper()
	var fee *ledger.Fee
	if withFee {
		fee = sampleFee(seed + 1)
	}
	tx, err := ledger.FromExecution(sampleExecution(seed), fee)
	require.NoError(tb, err)
	return tx
}

func sampleFeeTx(tb testing.TB, seed int64) *ledger.Transaction {
	tb.Helper()
	tx, err := ledger.FromFee(sampleFee(seed))
	require.NoError(tb, err)
	return tx
}
