// Package ledger implements the ledger transaction model and its canonical
// wire codec. A transaction is one of a closed set of shapes: a program
// deployment, a program execution, or a bare fee payment. Every transaction
// carries a content-derived identifier which the codec verifies on decode.
package ledger

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/hash"
)

// Variant selects the shape of a transaction on the wire.
type Variant uint8

const (
	// VariantDeploy publishes a new program. Fee is mandatory.
	VariantDeploy Variant = iota
	// VariantExecute invokes an existing program. Fee may be absent,
	// e.g. for subsidized calls.
	VariantExecute
	// VariantFee carries nothing but a fee payment.
	VariantFee
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantDeploy:
		return "deploy"
	case VariantExecute:
		return "execute"
	case VariantFee:
		return "fee"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

// Transaction is a tagged union over the three transaction shapes. Only the
// fields of the active variant are set:
//
//	Deploy:  Owner, Deployment, Fee (required)
//	Execute: Execution, Fee (optional)
//	Fee:     Fee (required)
//
// Construct transactions with FromDeployment, FromExecution or FromFee, or by
// decoding bytes; both paths leave ID equal to the content-derived identifier.
// A Transaction is immutable once constructed: mutating a field invalidates
// the embedded ID.
type Transaction struct {
	ID      types.TransactionID
	Variant Variant

	Owner      *ProgramOwner
	Deployment *Deployment
	Execution  *Execution
	Fee        *Fee
}

// FromDeployment assembles a Deploy transaction and computes its identifier.
func FromDeployment(owner *ProgramOwner, deployment *Deployment, fee *Fee) (*Transaction, error) {
	switch {
	case owner == nil:
		return nil, errors.New("deployment transaction is missing an owner")
	case deployment == nil:
		return nil, errors.New("deployment transaction is missing a deployment")
	case fee == nil:
		return nil, errors.New("deployment transaction is missing a fee")
	case len(deployment.Program) == 0:
		return nil, errors.New("deployment carries an empty program")
	}
	tx := &Transaction{
		Variant:    VariantDeploy,
		Owner:      owner,
		Deployment: deployment,
		Fee:        fee,
	}
	return tx.seal()
}

// FromExecution assembles an Execute transaction and computes its identifier.
// The fee may be nil.
func FromExecution(execution *Execution, fee *Fee) (*Transaction, error) {
	switch {
	case execution == nil:
		return nil, errors.New("execution transaction is missing an execution")
	case len(execution.Transitions) == 0:
		return nil, errors.New("execution carries no transitions")
	}
	tx := &Transaction{
		Variant:   VariantExecute,
		Execution: execution,
		Fee:       fee,
	}
	return tx.seal()
}

// FromFee assembles a Fee transaction and computes its identifier.
func FromFee(fee *Fee) (*Transaction, error) {
	if fee == nil {
		return nil, errors.New("fee transaction is missing a fee")
	}
	tx := &Transaction{
		Variant: VariantFee,
		Fee:     fee,
	}
	return tx.seal()
}

func (t *Transaction) seal() (*Transaction, error) {
	id, err := t.ComputeID()
	if err != nil {
		return nil, err
	}
	t.ID = id
	return t, nil
}

// ComputeID derives the content identifier of the transaction from its variant
// and fields. The stored ID does not participate, so the result of ComputeID
// can be compared against it.
func (t *Transaction) ComputeID() (types.TransactionID, error) {
	hh := hash.GetHasher()
	defer hash.PutHasher(hh)
	hh.Write([]byte{byte(t.Variant)})
	enc := scale.NewEncoder(hh)
	switch t.Variant {
	case VariantDeploy:
		if _, err := t.Owner.EncodeScale(enc); err != nil {
			return types.EmptyTransactionID, fmt.Errorf("hash owner: %w", err)
		}
		if _, err := t.Deployment.EncodeScale(enc); err != nil {
			return types.EmptyTransactionID, fmt.Errorf("hash deployment: %w", err)
		}
		if _, err := t.Fee.EncodeScale(enc); err != nil {
			return types.EmptyTransactionID, fmt.Errorf("hash fee: %w", err)
		}
	case VariantExecute:
		if _, err := t.Execution.EncodeScale(enc); err != nil {
			return types.EmptyTransactionID, fmt.Errorf("hash execution: %w", err)
		}
		if t.Fee == nil {
			hh.Write([]byte{0})
		} else {
			hh.Write([]byte{1})
			if _, err := t.Fee.EncodeScale(enc); err != nil {
				return types.EmptyTransactionID, fmt.Errorf("hash fee: %w", err)
			}
		}
	case VariantFee:
		if _, err := t.Fee.EncodeScale(enc); err != nil {
			return types.EmptyTransactionID, fmt.Errorf("hash fee: %w", err)
		}
	default:
		return types.EmptyTransactionID, fmt.Errorf("%w: %d", ErrInvalidVariant, t.Variant)
	}
	var id types.TransactionID
	hh.Sum(id[:0])
	return id, nil
}

// MarshalLogObject implements logging encoder for Transaction.
func (t *Transaction) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", t.ID.ShortString())
	enc.AddString("variant", t.Variant.String())
	if t.Deployment != nil {
		enc.AddString("program_id", t.Deployment.ProgramID)
	}
	if t.Execution != nil {
		enc.AddInt("transitions", len(t.Execution.Transitions))
	}
	enc.AddBool("has_fee", t.Fee != nil)
	return nil
}
