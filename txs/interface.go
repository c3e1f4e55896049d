package txs

import (
	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/ledger"
)

type transactionStore interface {
	Has(types.TransactionID) (bool, error)
	Add(*ledger.Transaction, []byte) error
}
