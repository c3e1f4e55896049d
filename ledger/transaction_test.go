package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provernet/go-provernet/ledger"
	"github.com/provernet/go-provernet/signing"
)

func TestFromDeploymentValidation(t *testing.T) {
	deployment := sampleDeployment(1)
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	owner, err := ledger.NewProgramOwner(signer, deployment)
	require.NoError(t, err)
	fee := sampleFee(2)

	_, err = ledger.FromDeployment(nil, deployment, fee)
	require.ErrorContains(t, err, "missing an owner")
	_, err = ledger.FromDeployment(owner, nil, fee)
	require.ErrorContains(t, err, "missing a deployment")
	_, err = ledger.FromDeployment(owner, deployment, nil)
	require.ErrorContains(t, err, "missing a fee")

	empty := *deployment
	empty.Program = nil
	_, err = ledger.FromDeployment(owner, &empty, fee)
	require.ErrorContains(t, err, "empty program")

	tx, err := ledger.FromDeployment(owner, deployment, fee)
	require.NoError(t, err)
	require.Equal(t, ledger.VariantDeploy, tx.Variant)
	require.NotZero(t, tx.ID)
}

func TestFromExecutionValidation(t *testing.T) {
	_, err := ledger.FromExecution(nil, nil)
	require.ErrorContains(t, err, "missing an execution")

	_, err = ledger.FromExecution(&ledger.Execution{}, nil)
	require.ErrorContains(t, err, "no transitions")

	tx, err := ledger.FromExecution(sampleExecution(3), nil)
	require.NoError(t, err)
	require.Equal(t, ledger.VariantExecute, tx.Variant)
	require.Nil(t, tx.Fee)
}

func TestFromFeeValidation(t *testing.T) {
	_, err := ledger.FromFee(nil)
	require.ErrorContains(t, err, "missing a fee")

	tx, err := ledger.FromFee(sampleFee(4))
	require.NoError(t, err)
	require.Equal(t, ledger.VariantFee, tx.Variant)
}

func TestComputeIDDeterministic(t *testing.T) {
	tx := sampleExecuteTx(t, 5, true)

	id, err := tx.ComputeID()
	require.NoError(t, err)
	require.Equal(t, tx.ID, id)

	// same fields, same id
	again, err := ledger.FromExecution(tx.Execution, tx.Fee)
	require.NoError(t, err)
	require.Equal(t, tx.ID, again.ID)
}

func TestComputeIDBindsFields(t *testing.T) {
	tx := sampleExecuteTx(t, 6, true)

	// the fee-presence participates in the identity
	noFee, err := ledger.FromExecution(tx.Execution, nil)
	require.NoError(t, err)
	require.NotEqual(t, tx.ID, noFee.ID)

	// so does the variant
	feeOnly, err := ledger.FromFee(tx.Fee)
	require.NoError(t, err)
	require.NotEqual(t, tx.ID, feeOnly.ID)

	mutated := *tx.Execution
	mutated.GlobalStateRoot[0] ^= 0xff
	other, err := ledger.FromExecution(&mutated, tx.Fee)
	require.NoError(t, err)
	require.NotEqual(t, tx.ID, other.ID)
}

func TestVariantString(t *testing.T) {
	require.Equal(t, "deploy", ledger.VariantDeploy.String())
	require.Equal(t, "execute", ledger.VariantExecute.String())
	require.Equal(t, "fee", ledger.VariantFee.String())
	require.Equal(t, "unknown(9)", ledger.Variant(9).String())
}

func TestOwnerSignsDeploymentDigest(t *testing.T) {
	deployment := sampleDeployment(8)
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	owner, err := ledger.NewProgramOwner(signer, deployment)
	require.NoError(t, err)
	require.Equal(t, signer.Address(), owner.Address)

	digest, err := deployment.Digest()
	require.NoError(t, err)
	require.True(t, signing.NewEdVerifier().Verify(signer.PublicKey(), digest.Bytes(), owner.Signature))
}
