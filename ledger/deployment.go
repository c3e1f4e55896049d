package ledger

import (
	"github.com/spacemeshos/go-scale"

	"github.com/provernet/go-provernet/common/types"
	"github.com/provernet/go-provernet/hash"
)

// Per-field decode guards. The overall transaction size is bounded separately
// by the limited stream in bytes.go; these keep single fields from forcing
// large allocations before that bound is reached.
const (
	maxProgramIDLen  = 256
	maxProgramSize   = 1 << 20
	maxVerifyingKeys = 31
	maxKeySize       = 1 << 20
	maxCertificate   = 1 << 16
)

// VerifyingKey pairs one program function with its proving system key and
// certificate.
type VerifyingKey struct {
	Function    string
	Key         []byte
	Certificate []byte
}

// EncodeScale implements scale codec interface.
func (vk *VerifyingKey) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeStringWithLimit(enc, vk.Function, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, vk.Key, maxKeySize)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, vk.Certificate, maxCertificate)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (vk *VerifyingKey) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeStringWithLimit(dec, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
		vk.Function = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxKeySize)
		if err != nil {
			return total, err
		}
		total += n
		vk.Key = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxCertificate)
		if err != nil {
			return total, err
		}
		total += n
		vk.Certificate = field
	}
	return total, nil
}

// Deployment bundles a program being published on-chain: its bytecode and the
// verifying keys of its functions.
type Deployment struct {
	// Edition counts upgrades of the same program id.
	Edition       uint32
	ProgramID     string
	Program       []byte
	VerifyingKeys []VerifyingKey
}

// Digest returns the blake3 digest of the deployment's canonical encoding.
// The program owner signs this digest.
func (d *Deployment) Digest() (types.Hash32, error) {
	hh := hash.GetHasher()
	defer hash.PutHasher(hh)
	if _, err := d.EncodeScale(scale.NewEncoder(hh)); err != nil {
		return types.EmptyHash32, err
	}
	var digest types.Hash32
	hh.Sum(digest[:0])
	return digest, nil
}

// EncodeScale implements scale codec interface.
func (d *Deployment) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact32(enc, d.Edition)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStringWithLimit(enc, d.ProgramID, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, d.Program, maxProgramSize)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSliceWithLimit(enc, d.VerifyingKeys, maxVerifyingKeys)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (d *Deployment) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		d.Edition = field
	}
	{
		field, n, err := scale.DecodeStringWithLimit(dec, maxProgramIDLen)
		if err != nil {
			return total, err
		}
		total += n
		d.ProgramID = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxProgramSize)
		if err != nil {
			return total, err
		}
		total += n
		d.Program = field
	}
	{
		field, n, err := scale.DecodeStructSliceWithLimit[VerifyingKey](dec, maxVerifyingKeys)
		if err != nil {
			return total, err
		}
		total += n
		d.VerifyingKeys = field
	}
	return total, nil
}
