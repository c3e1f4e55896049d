package ledger

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spacemeshos/go-scale"

	"github.com/provernet/go-provernet/codec"
	"github.com/provernet/go-provernet/common/types"
)

const (
	// TransactionVersion is the only wire version currently produced or
	// accepted.
	TransactionVersion byte = 1

	// MaxTransactionSize bounds the encoded size of a single transaction,
	// header and all fields included. It is a network-wide constant, enforced
	// incrementally on both the encode and decode paths.
	MaxTransactionSize = 128 * 1024
)

// EncodeTo writes the canonical encoding of the transaction to w: the version
// byte, the variant byte, the identifier as stored on the value, then the
// variant's fields in fixed order. The identifier is not recomputed here; it
// was validated at construction or by a prior decode. The whole write is
// bounded by MaxTransactionSize, so an over-budget transaction fails with
// codec.ErrLimitExceeded instead of truncating.
func (t *Transaction) EncodeTo(w io.Writer) error {
	lw := codec.NewLimitedWriter(w, MaxTransactionSize)
	if _, err := lw.Write([]byte{TransactionVersion}); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if _, err := lw.Write([]byte{byte(t.Variant)}); err != nil {
		return fmt.Errorf("write variant: %w", err)
	}
	enc := scale.NewEncoder(lw)
	if _, err := t.ID.EncodeScale(enc); err != nil {
		return fmt.Errorf("write id: %w", err)
	}
	switch t.Variant {
	case VariantDeploy:
		if _, err := t.Owner.EncodeScale(enc); err != nil {
			return fmt.Errorf("write deploy owner: %w", err)
		}
		if _, err := t.Deployment.EncodeScale(enc); err != nil {
			return fmt.Errorf("write deployment: %w", err)
		}
		if _, err := t.Fee.EncodeScale(enc); err != nil {
			return fmt.Errorf("write deploy fee: %w", err)
		}
	case VariantExecute:
		if _, err := t.Execution.EncodeScale(enc); err != nil {
			return fmt.Errorf("write execution: %w", err)
		}
		if t.Fee == nil {
			if _, err := lw.Write([]byte{0}); err != nil {
				return fmt.Errorf("write fee variant: %w", err)
			}
		} else {
			if _, err := lw.Write([]byte{1}); err != nil {
				return fmt.Errorf("write fee variant: %w", err)
			}
			if _, err := t.Fee.EncodeScale(enc); err != nil {
				return fmt.Errorf("write execute fee: %w", err)
			}
		}
	case VariantFee:
		if _, err := t.Fee.EncodeScale(enc); err != nil {
			return fmt.Errorf("write fee: %w", err)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidVariant, t.Variant)
	}
	return nil
}

// ToBytes returns the canonical encoding of the transaction.
func (t *Transaction) ToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.EncodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTransaction reads one transaction from r, mirroring EncodeTo. All
// reads pass through a limited reader, so a stream that would push total
// consumption past MaxTransactionSize aborts with codec.ErrLimitExceeded no
// matter how much of the structure was already read. The identifier is
// recomputed from the decoded fields and compared against the identifier
// carried by the stream; on mismatch the decoded value is discarded and
// ErrIDMismatch is returned. A transaction that fails this check is never
// handed to the caller.
func DecodeTransaction(r io.Reader) (*Transaction, error) {
	lr := codec.NewLimitedReader(r, MaxTransactionSize)
	var b [1]byte
	if _, err := io.ReadFull(lr, b[:]); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if b[0] != TransactionVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, b[0])
	}
	if _, err := io.ReadFull(lr, b[:]); err != nil {
		return nil, fmt.Errorf("read variant: %w", err)
	}
	variant := Variant(b[0])
	if variant > VariantFee {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVariant, b[0])
	}

	dec := scale.NewDecoder(lr)
	var id types.TransactionID
	if _, err := id.DecodeScale(dec); err != nil {
		return nil, fmt.Errorf("read id: %w", err)
	}

	var (
		tx  *Transaction
		err error
	)
	switch variant {
	case VariantDeploy:
		owner := &ProgramOwner{}
		if _, err := owner.DecodeScale(dec); err != nil {
			return nil, fmt.Errorf("read deploy owner: %w", err)
		}
		deployment := &Deployment{}
		if _, err := deployment.DecodeScale(dec); err != nil {
			return nil, fmt.Errorf("read deployment: %w", err)
		}
		fee := &Fee{}
		if _, err := fee.DecodeScale(dec); err != nil {
			return nil, fmt.Errorf("read deploy fee: %w", err)
		}
		if tx, err = FromDeployment(owner, deployment, fee); err != nil {
			return nil, fmt.Errorf("deploy transaction: %w", err)
		}
	case VariantExecute:
		execution := &Execution{}
		if _, err := execution.DecodeScale(dec); err != nil {
			return nil, fmt.Errorf("read execution: %w", err)
		}
		if _, err := io.ReadFull(lr, b[:]); err != nil {
			return nil, fmt.Errorf("read fee variant: %w", err)
		}
		var fee *Fee
		switch b[0] {
		case 0:
		case 1:
			fee = &Fee{}
			if _, err := fee.DecodeScale(dec); err != nil {
				return nil, fmt.Errorf("read execute fee: %w", err)
			}
		default:
			return nil, fmt.Errorf("%w: %d", ErrInvalidFeeVariant, b[0])
		}
		if tx, err = FromExecution(execution, fee); err != nil {
			return nil, fmt.Errorf("execute transaction: %w", err)
		}
	case VariantFee:
		fee := &Fee{}
		if _, err := fee.DecodeScale(dec); err != nil {
			return nil, fmt.Errorf("read fee: %w", err)
		}
		if tx, err = FromFee(fee); err != nil {
			return nil, fmt.Errorf("fee transaction: %w", err)
		}
	}

	// The constructor recomputed the identifier from the decoded fields.
	// It must match the identifier the stream claimed.
	if tx.ID != id {
		return nil, fmt.Errorf("%w: computed %s, stream has %s", ErrIDMismatch, tx.ID, id)
	}
	return tx, nil
}

// TransactionFromBytes decodes one transaction from buf.
func TransactionFromBytes(buf []byte) (*Transaction, error) {
	return DecodeTransaction(bytes.NewReader(buf))
}
