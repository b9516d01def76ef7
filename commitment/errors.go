package commitment

import "errors"

// ErrCommitmentMismatch is returned by Verify when the bit-commitment's
// signature or index does not check out.
var ErrCommitmentMismatch = errors.New("commitment: index or signature mismatch")
