// Package signing provides ed25519 key management for producing and checking
// ownership witnesses.
package signing

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/provernet/go-provernet/common/types"
)

// PrivateKey is an alias to ed25519.PrivateKey.
type PrivateKey = ed25519.PrivateKey

// PublicKey is an alias to ed25519.PublicKey.
type PublicKey = ed25519.PublicKey

const (
	// PrivateKeySize size of the private key in bytes.
	PrivateKeySize = ed25519.PrivateKeySize
	// PublicKeySize size of the public key in bytes.
	PublicKeySize = ed25519.PublicKeySize
)

// EdSigner represents an ed25519 identity that can sign messages.
type EdSigner struct {
	priv PrivateKey
}

type edSignerOption struct {
	priv PrivateKey
	rng  io.Reader
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if len(priv) != ed25519.PrivateKeySize {
			return fmt.Errorf("invalid key size %d/%d", len(priv), ed25519.PrivateKeySize)
		}
		opt.priv = priv
		return nil
	}
}

// WithRandomness sets the source of randomness used to generate a fresh key.
// Meant for deterministic fixtures in tests.
func WithRandomness(rng io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return fmt.Errorf("invalid option WithRandomness: private key already set")
		}
		opt.rng = rng
		return nil
	}
}

// NewEdSigner returns an auto-generated ed25519 signer unless a key is given.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{rng: rand.Reader}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		cfg.priv = priv
	}
	return &EdSigner{priv: cfg.priv}, nil
}

// Sign signs the provided message.
func (es *EdSigner) Sign(m []byte) types.EdSignature {
	var sig types.EdSignature
	copy(sig[:], ed25519.Sign(es.priv, m))
	return sig
}

// PublicKey returns the public key of the signer.
func (es *EdSigner) PublicKey() PublicKey {
	return es.priv.Public().(ed25519.PublicKey)
}

// Address returns the account address derived from the signer's public key.
func (es *EdSigner) Address() types.Address {
	return types.GenerateAddress(es.PublicKey())
}

// PrivateKey returns the private key of the signer.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}
