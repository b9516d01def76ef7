package hashchain

import (
	"errors"

	"github.com/lightninglabs/hashchain-disprove/commitment"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// ErrMalformedWitness is returned by Evaluate when the witness does not
// carry exactly two commitment unlocks worth of items.
var ErrMalformedWitness = errors.New("hashchain: malformed step witness")

// Outcome is the result of evaluating a step leaf's witness: it mirrors
// what a Script interpreter would do with StepLock, without running one.
type Outcome int

const (
	// OutcomeHonestRejects is the honest case: the witnessed states chain
	// correctly, so the leaf would hit OP_RETURN and the spend fails.
	OutcomeHonestRejects Outcome = iota
	// OutcomeDisproveSucceeds is the fault-proof case: the witnessed
	// states violate the chain law, so the leaf would succeed and the
	// spend is valid.
	OutcomeDisproveSucceeds
)

// Evaluate is the Go-native equivalent of running a step witness through
// StepLock(pubkey, index): it verifies both bit-commitments (at index and
// index+1) and decides whether the leaf would reject (honest chain) or
// succeed (disprove).
func Evaluate(pubkey winternitz.PublicKey, witness [][]byte, index uint32) (Outcome, error) {
	if len(witness) != 2*itemsPerCommitment {
		log.Debugf("Evaluate: got %d witness items, want %d", len(witness),
			2*itemsPerCommitment)
		return OutcomeHonestRejects, ErrMalformedWitness
	}

	postItems := witness[:itemsPerCommitment]
	preItems := witness[itemsPerCommitment:]

	preState, err := commitment.Verify(pubkey, preItems, index)
	if err != nil {
		log.Debugf("Evaluate: pre-commitment at index %d failed: %v",
			index, err)
		return OutcomeHonestRejects, err
	}
	postState, err := commitment.Verify(pubkey, postItems, index+1)
	if err != nil {
		log.Debugf("Evaluate: post-commitment at index %d failed: %v",
			index+1, err)
		return OutcomeHonestRejects, err
	}

	want := digest.H20(preState[:])
	if postState == want {
		log.Debugf("Evaluate: chain law holds at index %d, step leaf "+
			"rejects", index)
		return OutcomeHonestRejects, nil
	}
	log.Debugf("Evaluate: chain law violated at index %d, disprove "+
		"succeeds", index)
	return OutcomeDisproveSucceeds, nil
}
