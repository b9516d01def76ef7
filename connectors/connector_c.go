package connectors

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightninglabs/hashchain-disprove/hashchain"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// ConnectorC is the disprove connector: a taproot tree with one leaf per
// hash-chain step, spendable by anyone exhibiting two adjacent
// bit-commitments that violate the chain law.
type ConnectorC struct {
	params          *chaincfg.Params
	operatorTaproot *btcec.PublicKey
	commitmentPub   winternitz.PublicKey
	rounds          uint32
}

// NewConnectorC builds a ConnectorC over rounds hash-chain steps, signed
// under commitmentPub, tweaking operatorTaproot as the taproot internal
// key.
func NewConnectorC(
	params *chaincfg.Params,
	operatorTaproot *btcec.PublicKey,
	commitmentPub winternitz.PublicKey,
	rounds uint32,
) (*ConnectorC, error) {

	if rounds == 0 {
		log.Debugf("NewConnectorC: rejecting zero round count")
		return nil, ErrRoundCountZero
	}
	if len(commitmentPub) != winternitz.N {
		log.Debugf("NewConnectorC: got %d pubkey blocks, want %d",
			len(commitmentPub), winternitz.N)
		return nil, winternitz.ErrInvalidPubkeyLength
	}

	return &ConnectorC{
		params:          params,
		operatorTaproot: operatorTaproot,
		commitmentPub:   commitmentPub,
		rounds:          rounds,
	}, nil
}

// LeafScript returns the i-th step lock, leaf i = StepLock(pubkey, i).
func (c *ConnectorC) LeafScript(leafIndex uint32) ([]byte, error) {
	if leafIndex >= c.rounds {
		log.Debugf("LeafScript: leaf index %d out of range (rounds=%d)",
			leafIndex, c.rounds)
		return nil, ErrLeafIndexOutOfRange
	}
	return hashchain.StepLock(c.commitmentPub, leafIndex)
}

// LeafTxIn returns a default-sequence input spending in via leaf
// leafIndex; step leaves carry no timelock of their own.
func (c *ConnectorC) LeafTxIn(leafIndex uint32, in Input) (*wire.TxIn, error) {
	if leafIndex >= c.rounds {
		log.Debugf("LeafTxIn: leaf index %d out of range (rounds=%d)",
			leafIndex, c.rounds)
		return nil, ErrLeafIndexOutOfRange
	}
	return defaultTxIn(in), nil
}

// allLeafScripts builds every leaf script in index order.
func (c *ConnectorC) allLeafScripts() ([][]byte, error) {
	scripts := make([][]byte, c.rounds)
	for i := uint32(0); i < c.rounds; i++ {
		script, err := hashchain.StepLock(c.commitmentPub, i)
		if err != nil {
			return nil, err
		}
		scripts[i] = script
	}
	return scripts, nil
}

// SpendInfo assembles the taproot tree over all R leaves.
func (c *ConnectorC) SpendInfo() (*txscript.IndexedTapScriptTree, error) {
	scripts, err := c.allLeafScripts()
	if err != nil {
		return nil, err
	}
	tree, _, err := buildTaprootTree(c.operatorTaproot, scripts)
	return tree, err
}

// Address returns the connector's P2TR address on params.
func (c *ConnectorC) Address() (btcutil.Address, error) {
	scripts, err := c.allLeafScripts()
	if err != nil {
		return nil, err
	}
	_, outputKey, err := buildTaprootTree(c.operatorTaproot, scripts)
	if err != nil {
		return nil, err
	}
	return taprootAddress(outputKey, c.params)
}

var _ TaprootConnector = (*ConnectorC)(nil)
