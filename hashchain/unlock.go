package hashchain

import (
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// itemsPerCommitment is the witness item count a single CommitUnlock call
// contributes: 20 state-byte items, 4 index-byte items, N signature items.
const itemsPerCommitment = digest.Size + 4 + winternitz.N

// StepUnlockFrom builds the witness for a step leaf out of two already-built
// commitment witnesses: post (at index+1) and pre (at index). Per the
// leaf's wire order, post is concatenated first and pre second, so that pre
// ends up on top of the stack and is consumed first by StepLock's input
// commitment.
func StepUnlockFrom(preItems, postItems [][]byte) [][]byte {
	witness := make([][]byte, 0, len(preItems)+len(postItems))
	witness = append(witness, postItems...)
	witness = append(witness, preItems...)
	return witness
}

// StepUnlock builds the full witness for the honest step at index: both
// adjacent bit-commitments signed over the same statement's true hash
// chain.
func StepUnlock(secret winternitz.Digest, statement []byte, index uint32) [][]byte {
	pre := commitment.CommitUnlock(secret, statement, index)
	post := commitment.CommitUnlock(secret, statement, index+1)
	return StepUnlockFrom(pre, post)
}
