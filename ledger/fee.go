package ledger

import (
	"github.com/spacemeshos/go-scale"

	"github.com/provernet/go-provernet/common/types"
)

// Fee is the transition paying the resource costs of a deployment or
// execution, anchored to the global state root it executed against.
type Fee struct {
	Transition      Transition
	GlobalStateRoot types.Hash32
}

// EncodeScale implements scale codec interface.
func (f *Fee) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := f.Transition.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := f.GlobalStateRoot.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (f *Fee) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := f.Transition.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := f.GlobalStateRoot.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
