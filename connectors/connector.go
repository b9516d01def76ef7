// Package connectors implements the disprove-connector taproot
// construction: script trees with one leaf per hash-chain
// step, plus the companion kickoff-level connector that adds a
// timelocked final-state commitment alongside an n-of-n recovery path.
package connectors

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Input identifies the outpoint and value a connector leaf spends.
type Input struct {
	OutPoint wire.OutPoint
	Amount   btcutil.Amount
}

// TaprootConnector is the capability set shared by every connector
// variant: build a leaf's script, a transaction input spending it, the
// taproot spend info needed to derive control blocks, and the resulting
// P2TR address. Each connector variant is a plain aggregate of its
// configuration implementing this interface; there is no shared base
// type.
type TaprootConnector interface {
	// LeafScript returns the lock script of the leaf at leafIndex.
	LeafScript(leafIndex uint32) ([]byte, error)

	// LeafTxIn returns a transaction input spending in via the leaf at
	// leafIndex, carrying the CSV sequence that leaf enforces (the default
	// sequence for a leaf with no timelock). The caller is responsible
	// for attaching the witness (script, control block, and
	// leaf-specific unlock items).
	LeafTxIn(leafIndex uint32, in Input) (*wire.TxIn, error)

	// SpendInfo returns the taproot tree built from every leaf, indexed
	// in the same order LeafScript enumerates them, from which a caller
	// derives per-leaf control blocks.
	SpendInfo() (*txscript.IndexedTapScriptTree, error)

	// Address returns the connector's P2TR output address.
	Address() (btcutil.Address, error)
}

// buildTaprootTree assembles an equally-weighted taproot script tree over
// leafScripts and computes the tweaked output key under internalKey.
// AssembleTaprootScriptTree takes no leaf weights: it pairs the leaves into
// a balanced tree, which is what an equal-weight Huffman construction over
// a set of equally-likely disprove leaves yields.
func buildTaprootTree(internalKey *btcec.PublicKey, leafScripts [][]byte) (*txscript.IndexedTapScriptTree, *btcec.PublicKey, error) {
	leaves := make([]txscript.TapLeaf, len(leafScripts))
	for i, script := range leafScripts {
		leaves[i] = txscript.NewBaseTapLeaf(script)
	}

	tree := txscript.AssembleTaprootScriptTree(leaves...)
	rootHash := tree.RootNode.TapHash()

	outputKey := txscript.ComputeTaprootOutputKey(internalKey, rootHash[:])
	return tree, outputKey, nil
}

// taprootAddress derives the P2TR address for an output key on params.
func taprootAddress(outputKey *btcec.PublicKey, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressTaproot(
		schnorr.SerializePubKey(outputKey), params,
	)
}

// defaultTxIn builds a transaction input with no relative timelock,
// pointing at in's outpoint.
func defaultTxIn(in Input) *wire.TxIn {
	return wire.NewTxIn(&in.OutPoint, nil, nil)
}

// timelockedTxIn builds a transaction input enforcing a CSV relative
// timelock of numBlocks, pointing at in's outpoint.
func timelockedTxIn(in Input, numBlocks uint32) *wire.TxIn {
	txIn := wire.NewTxIn(&in.OutPoint, nil, nil)
	txIn.Sequence = numBlocks
	return txIn
}
