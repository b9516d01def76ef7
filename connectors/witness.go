package connectors

import (
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/hashchain"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// PushLeafUnlockWitness appends a ConnectorC step leaf's unlock items
// (two already-built bit-commitment witnesses, pre at leafIndex and post
// at leafIndex+1) to witness, in the order StepLock expects to consume
// them.
func PushLeafUnlockWitness(witness [][]byte, pre, post [][]byte, leafIndex uint32) [][]byte {
	return append(witness, hashchain.StepUnlockFrom(pre, post)...)
}

// PushLeaf0UnlockWitness appends Connector1's final-state leaf unlock: a
// single bit-commitment at index rounds, signed by secret over statement.
func PushLeaf0UnlockWitness(witness [][]byte, secret winternitz.Digest, statement []byte, rounds uint32) [][]byte {
	return append(witness, commitment.CommitUnlock(secret, statement, rounds)...)
}
