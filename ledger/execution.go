package ledger

import (
	"github.com/spacemeshos/go-scale"

	"github.com/provernet/go-provernet/common/types"
)

const (
	maxTransitions = 32
	maxRecords     = 16
	maxProofSize   = 1 << 20
)

// Transition is a single function call: which program and function ran, the
// commitments to its inputs and outputs, and the proof of the step.
type Transition struct {
	ID        types.Hash32
	ProgramID string
	Function  string
	Inputs    []types.Hash32
	Outputs   []types.Hash32
	Proof     []byte
}

// EncodeScale implements scale codec interface.
func (t *Transition) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := t.ID.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStringWithLimit(enc, t.ProgramID, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStringWithLimit(enc, t.Function, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, t.Inputs, maxRecords)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, t.Outputs, maxRecords)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, t.Proof, maxProofSize)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (t *Transition) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := t.ID.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeStringWithLimit(dec, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
		t.ProgramID = field
	}
	{
		field, n, err := scale.DecodeStringWithLimit(dec, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
		t.Function = field
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[types.Hash32](dec, maxRecords)
		if err != nil {
			return total, err
		}
		total += n
		t.Inputs = field
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[types.Hash32](dec, maxRecords)
		if err != nil {
			return total, err
		}
		total += n
		t.Outputs = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxProofSize)
		if err != nil {
			return total, err
		}
		total += n
		t.Proof = field
	}
	return total, nil
}

// Execution bundles the transitions of one or more calls into deployed
// programs, anchored to the global state root they executed against. Proof is
// the aggregate inclusion proof and may be empty when every transition carries
// its own.
type Execution struct {
	Transitions     []Transition
	GlobalStateRoot types.Hash32
	Proof           []byte
}

// EncodeScale implements scale codec interface.
func (e *Execution) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, e.Transitions, maxTransitions)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := e.GlobalStateRoot.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, e.Proof, maxProofSize)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (e *Execution) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeStructSliceWithLimit[Transition](dec, maxTransitions)
		if err != nil {
			return total, err
		}
		total += n
		e.Transitions = field
	}
	{
		n, err := e.GlobalStateRoot.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxProofSize)
		if err != nil {
			return total, err
		}
		total += n
		e.Proof = field
	}
	return total, nil
}
