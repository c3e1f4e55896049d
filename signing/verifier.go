package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/provernet/go-provernet/common/types"
)

// EdVerifier verifies ed25519 signatures.
type EdVerifier struct{}

// NewEdVerifier returns a verifier.
func NewEdVerifier() *EdVerifier {
	return &EdVerifier{}
}

// Verify verifies that a signature matches public key and message.
func (es *EdVerifier) Verify(pub PublicKey, m []byte, sig types.EdSignature) bool {
	return ed25519.Verify(pub, m, sig[:])
}
