package txs

import "github.com/provernet/go-provernet/metrics"

const (
	subsystem = "txs"

	saved               = "saved"
	duplicate           = "dup"
	cantParse           = "parse"
	rejectedInternalErr = "internal"
)

var (
	gossipTxCount = metrics.NewCounter(
		"gossip_txs",
		subsystem,
		"number of transactions received via gossip, labeled by outcome",
		[]string{"outcome"})
	syncTxCount = metrics.NewCounter(
		"sync_txs",
		subsystem,
		"number of transactions received via sync, labeled by outcome",
		[]string{"outcome"})
)
