// Package hashchain implements the hash-chain step: the
// disprove leaf that enforces state_{i+1} == H20(state_i) between two
// adjacent bit-commitments, and fails deliberately when the chain holds.
package hashchain

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// StepScript returns the Script fragment that hashes the 20 bytes on top
// of the stack and rotates the result so that byte 0 of the hash ends up
// on top, matching the byte order CheckSigDup expects from the following
// output commitment. The rotation is four-byte-group 4-cycles of OP_ROLL,
// one group at a time, skipping the group already on top after hashing.
func StepScript() ([]byte, error) {
	builder := txscript.NewScriptBuilder()

	hashFrag, err := digest.ScriptHash160VarLen(digest.Size)
	if err != nil {
		return nil, err
	}
	builder.AddOps(hashFrag)

	for i := 1; i < digest.Size/4; i++ {
		for j := 0; j < 4; j++ {
			builder.AddInt64(int64(4*i + 3))
			builder.AddOp(txscript.OP_ROLL)
		}
	}

	return builder.Script()
}

// StepLock returns the Script fragment for the disprove leaf at step
// index: it verifies the input commitment at index, recomputes the next
// state, verifies the output commitment at index+1, and compares the two.
// The leaf fails (OP_RETURN) when they match — the honest case — and
// succeeds otherwise, proving the operator's two adjacent commitments
// violate the hash-chain law.
func StepLock(pubkey winternitz.PublicKey, index uint32) ([]byte, error) {
	inCommit, err := commitment.CommitLockFull(pubkey, index)
	if err != nil {
		return nil, err
	}
	step, err := StepScript()
	if err != nil {
		return nil, err
	}
	outCommit, err := commitment.CommitLockFull(pubkey, index+1)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOps(inCommit)
	builder.AddOps(step)

	for i := 0; i < digest.Size; i++ {
		builder.AddOp(txscript.OP_TOALTSTACK)
	}

	builder.AddOps(outCommit)

	// Compare the witnessed s_{i+1} (top of the main stack, 20 items)
	// against the recomputed next-state (the alt stack, 20 items),
	// accumulating a boolean AND across all 20 byte comparisons.
	for i := 0; i < digest.Size; i++ {
		builder.AddOp(txscript.OP_FROMALTSTACK)
		if i > 0 {
			// Lift the next witnessed byte above the running
			// result and the recomputed byte.
			builder.AddOp(txscript.OP_ROT)
		}
		builder.AddOp(txscript.OP_EQUAL)
		if i > 0 {
			builder.AddOp(txscript.OP_BOOLAND)
		}
	}

	builder.AddOp(txscript.OP_IF)
	builder.AddOp(txscript.OP_RETURN)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddOp(txscript.OP_TRUE)
	builder.AddOp(txscript.OP_ENDIF)

	return builder.Script()
}
