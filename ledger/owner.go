package ledger

import (
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/signing"
)

// ProgramOwner witnesses ownership of a deployed program: the owner's account
// address and an ed25519 signature over the deployment digest. The codec
// treats the witness as opaque data; checking the signature is the verifier's
// concern, not the parser's.
type ProgramOwner struct {
	Address   types.Address
	Signature types.EdSignature
}

// NewProgramOwner signs the deployment digest with the given signer and
// returns the resulting witness.
func NewProgramOwner(signer *signing.EdSigner, deployment *Deployment) (*ProgramOwner, error) {
	digest, err := deployment.Digest()
	if err != nil {
		return nil, fmt.Errorf("deployment digest: %w", err)
	}
	return &ProgramOwner{
		Address:   signer.Address(),
		Signature: signer.Sign(digest.Bytes()),
	}, nil
}

// EncodeScale implements scale codec interface.
func (o *ProgramOwner) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := o.Address.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := o.Signature.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (o *ProgramOwner) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := o.Address.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := o.Signature.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
