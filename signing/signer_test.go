package signing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	signer, err := NewEdSigner()
	require.NoError(t, err)

	msg := []byte("elephant in the room")
	sig := signer.Sign(msg)

	verifier := NewEdVerifier()
	require.True(t, verifier.Verify(signer.PublicKey(), msg, sig))
	require.False(t, verifier.Verify(signer.PublicKey(), []byte("elephant in the zoo"), sig))
}

func TestSignerFromPrivateKey(t *testing.T) {
	signer, err := NewEdSigner()
	require.NoError(t, err)

	restored, err := NewEdSigner(WithPrivateKey(signer.PrivateKey()))
	require.NoError(t, err)
	require.Equal(t, signer.PublicKey(), restored.PublicKey())
	require.Equal(t, signer.Address(), restored.Address())
}

func TestSignerRejectsBadKey(t *testing.T) {
	_, err := NewEdSigner(WithPrivateKey(make([]byte, 31)))
	require.ErrorContains(t, err, "invalid key size")
}
