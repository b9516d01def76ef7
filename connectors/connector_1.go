package connectors

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// Connector1 leaf indices, in the order SpendInfo/LeafScript enumerate
// them.
const (
	// Connector1LeafFinalState locks the operator's final-state
	// (index == rounds) bit-commitment behind a CSV timelock.
	Connector1LeafFinalState uint32 = 0
	// Connector1LeafRecovery is the long-timelock n-of-n recovery path.
	Connector1LeafRecovery uint32 = 1
	// Connector1LeafSweep is the short-timelock n-of-n sweep path.
	Connector1LeafSweep uint32 = 2
)

// Connector1 is the kickoff-level companion connector: it carries the
// final-state bit-commitment leaf plus two n-of-n key-path-style recovery
// leaves. The taproot internal key is nofnTaproot, not operatorTaproot: the
// n-of-n cosigners control this connector's key-path spend, matching
// connector_1.rs's finalize-with-n-of-n-key construction. MuSig2
// aggregation of the n-of-n key is out of scope here; nofnTaproot stands in
// for the already-aggregated key a caller would otherwise produce.
// operatorTaproot is stored on the struct but is used neither by any leaf
// script nor by this connector's output key.
type Connector1 struct {
	params          *chaincfg.Params
	operatorTaproot *btcec.PublicKey
	nofnTaproot     *btcec.PublicKey
	commitmentPub   winternitz.PublicKey
	rounds          uint32
	timelocks       Connector1Timelocks
}

// Connector1Timelocks parametrizes Connector1's three CSV delays so
// callers (and tests) can override the production defaults explicitly
// instead of silently inheriting a zero value.
type Connector1Timelocks struct {
	FinalState uint32
	Recovery   uint32
	Sweep      uint32
}

// DefaultConnector1Timelocks converts the standard durations into block
// counts for params.
func DefaultConnector1Timelocks(params *chaincfg.Params) Connector1Timelocks {
	return Connector1Timelocks{
		FinalState: NumBlocksPerNetwork(params, FinalStateTimelock),
		Recovery:   NumBlocksPerNetwork(params, RecoveryTimelock),
		Sweep:      NumBlocksPerNetwork(params, SweepTimelock),
	}
}

// NewConnector1 builds a Connector1 using the production timelock
// defaults for params.
func NewConnector1(
	params *chaincfg.Params,
	operatorTaproot, nofnTaproot *btcec.PublicKey,
	commitmentPub winternitz.PublicKey,
	rounds uint32,
) (*Connector1, error) {

	return NewConnector1WithTimelocks(
		params, operatorTaproot, nofnTaproot, commitmentPub, rounds,
		DefaultConnector1Timelocks(params),
	)
}

// NewConnector1WithTimelocks is NewConnector1 with explicit timelocks,
// for callers (chiefly tests) that need shorter delays than production.
func NewConnector1WithTimelocks(
	params *chaincfg.Params,
	operatorTaproot, nofnTaproot *btcec.PublicKey,
	commitmentPub winternitz.PublicKey,
	rounds uint32,
	timelocks Connector1Timelocks,
) (*Connector1, error) {

	if rounds == 0 {
		log.Debugf("NewConnector1WithTimelocks: rejecting zero round count")
		return nil, ErrRoundCountZero
	}
	if len(commitmentPub) != winternitz.N {
		log.Debugf("NewConnector1WithTimelocks: got %d pubkey blocks, "+
			"want %d", len(commitmentPub), winternitz.N)
		return nil, winternitz.ErrInvalidPubkeyLength
	}

	return &Connector1{
		params:          params,
		operatorTaproot: operatorTaproot,
		nofnTaproot:     nofnTaproot,
		commitmentPub:   commitmentPub,
		rounds:          rounds,
		timelocks:       timelocks,
	}, nil
}

// csvKeyspendLeaf builds "<numBlocks> OP_CSV OP_DROP <pubkey> OP_CHECKSIG":
// a relative-timelocked n-of-n spend via a single (already aggregated)
// taproot key.
func csvKeyspendLeaf(numBlocks uint32, pubkey *btcec.PublicKey) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddInt64(int64(numBlocks))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddData(schnorr.SerializePubKey(pubkey))
	builder.AddOp(txscript.OP_CHECKSIG)
	return builder.Script()
}

// finalStateLeaf builds "<numBlocks> OP_CSV OP_DROP" followed by the
// commitment lock for the final step index (== rounds).
func (c *Connector1) finalStateLeaf() ([]byte, error) {
	commitLock, err := commitment.CommitLock(c.commitmentPub, c.rounds)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddInt64(int64(c.timelocks.FinalState))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddOps(commitLock)
	return builder.Script()
}

// LeafScript returns the script for one of the three Connector1 leaf
// indices (Connector1LeafFinalState, Connector1LeafRecovery,
// Connector1LeafSweep).
func (c *Connector1) LeafScript(leafIndex uint32) ([]byte, error) {
	switch leafIndex {
	case Connector1LeafFinalState:
		return c.finalStateLeaf()
	case Connector1LeafRecovery:
		return csvKeyspendLeaf(c.timelocks.Recovery, c.nofnTaproot)
	case Connector1LeafSweep:
		return csvKeyspendLeaf(c.timelocks.Sweep, c.nofnTaproot)
	default:
		log.Debugf("LeafScript: leaf index %d out of range", leafIndex)
		return nil, ErrLeafIndexOutOfRange
	}
}

// LeafTxIn returns a transaction input carrying the CSV sequence the
// requested leaf enforces.
func (c *Connector1) LeafTxIn(leafIndex uint32, in Input) (*wire.TxIn, error) {
	switch leafIndex {
	case Connector1LeafFinalState:
		return timelockedTxIn(in, c.timelocks.FinalState), nil
	case Connector1LeafRecovery:
		return timelockedTxIn(in, c.timelocks.Recovery), nil
	case Connector1LeafSweep:
		return timelockedTxIn(in, c.timelocks.Sweep), nil
	default:
		log.Debugf("LeafTxIn: leaf index %d out of range", leafIndex)
		return nil, ErrLeafIndexOutOfRange
	}
}

func (c *Connector1) allLeafScripts() ([][]byte, error) {
	scripts := make([][]byte, 3)
	for i := uint32(0); i < 3; i++ {
		script, err := c.LeafScript(i)
		if err != nil {
			return nil, err
		}
		scripts[i] = script
	}
	return scripts, nil
}

// SpendInfo assembles the taproot tree over the three Connector1 leaves,
// tweaking nofnTaproot as the internal key: the n-of-n cosigners, not the
// operator alone, hold this connector's key-path spend.
func (c *Connector1) SpendInfo() (*txscript.IndexedTapScriptTree, error) {
	scripts, err := c.allLeafScripts()
	if err != nil {
		return nil, err
	}
	tree, _, err := buildTaprootTree(c.nofnTaproot, scripts)
	return tree, err
}

// Address returns the connector's P2TR address on params.
func (c *Connector1) Address() (btcutil.Address, error) {
	scripts, err := c.allLeafScripts()
	if err != nil {
		return nil, err
	}
	_, outputKey, err := buildTaprootTree(c.nofnTaproot, scripts)
	if err != nil {
		return nil, err
	}
	return taprootAddress(outputKey, c.params)
}

var _ TaprootConnector = (*Connector1)(nil)
