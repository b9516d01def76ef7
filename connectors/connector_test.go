package connectors

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/stretchr/testify/require"
)

func testOperatorKey(t *testing.T) *btcec.PublicKey {
	t.Helper()
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return priv.PubKey()
}

func TestNewConnectorCRejectsZeroRounds(t *testing.T) {
	seed := []byte("operator-seed-ascii")
	pubkey := commitment.SeedToPubkey(seed)
	opKey := testOperatorKey(t)

	_, err := NewConnectorC(&chaincfg.RegressionNetParams, opKey, pubkey, 0)
	require.ErrorIs(t, err, ErrRoundCountZero)
}

func TestConnectorCLeafScriptOutOfRange(t *testing.T) {
	const rounds = 4
	seed := []byte("operator-seed-ascii")
	pubkey := commitment.SeedToPubkey(seed)
	opKey := testOperatorKey(t)

	c, err := NewConnectorC(&chaincfg.RegressionNetParams, opKey, pubkey, rounds)
	require.NoError(t, err)

	_, err = c.LeafScript(rounds)
	require.ErrorIs(t, err, ErrLeafIndexOutOfRange)

	_, err = c.LeafScript(rounds - 1)
	require.NoError(t, err)
}

func TestConnectorCAddressAndSpendInfo(t *testing.T) {
	const rounds = 3
	seed := []byte("operator-seed-ascii")
	pubkey := commitment.SeedToPubkey(seed)
	opKey := testOperatorKey(t)

	c, err := NewConnectorC(&chaincfg.RegressionNetParams, opKey, pubkey, rounds)
	require.NoError(t, err)

	addr, err := c.Address()
	require.NoError(t, err)
	require.NotEmpty(t, addr.String())

	tree, err := c.SpendInfo()
	require.NoError(t, err)
	require.Len(t, tree.LeafMerkleProofs, rounds)
}

func TestConnector1LeafIndicesBuild(t *testing.T) {
	const rounds = 3
	seed := []byte("operator-seed-ascii")
	pubkey := commitment.SeedToPubkey(seed)
	opKey := testOperatorKey(t)
	nofnKey := testOperatorKey(t)

	timelocks := Connector1Timelocks{FinalState: 1, Recovery: 2, Sweep: 1}
	c, err := NewConnector1WithTimelocks(
		&chaincfg.RegressionNetParams, opKey, nofnKey, pubkey, rounds, timelocks,
	)
	require.NoError(t, err)

	for _, leaf := range []uint32{Connector1LeafFinalState, Connector1LeafRecovery, Connector1LeafSweep} {
		_, err := c.LeafScript(leaf)
		require.NoErrorf(t, err, "leaf %d", leaf)
	}
	_, err = c.LeafScript(3)
	require.ErrorIs(t, err, ErrLeafIndexOutOfRange)

	addr, err := c.Address()
	require.NoError(t, err)
	require.NotEmpty(t, addr.String())
}

func TestNumBlocksPerNetworkRounding(t *testing.T) {
	require.EqualValues(t, 3, NumBlocksPerNetwork(&chaincfg.MainNetParams, 25*time.Minute))
	require.EqualValues(t, 0, NumBlocksPerNetwork(&chaincfg.MainNetParams, 0))
}
