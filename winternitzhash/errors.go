package winternitzhash

import "errors"

// ErrUnsupportedShape is returned by CheckSigDup and VerifyDup for any
// (inputLen, num) pair other than the two shapes this scheme actually
// needs: (24, 4) to expose a bit-commitment's index while hashing its full
// message, and (24, 24) to expose the whole message once the index has
// already been checked. The underlying roll/pick arithmetic is only
// derived for those shapes; anything else is a caller bug.
var ErrUnsupportedShape = errors.New("winternitzhash: unsupported (input_len, num) shape")

// ErrSignatureMismatch is returned by VerifyDup when the Winternitz
// signature does not verify over the hash of the supplied input.
var ErrSignatureMismatch = errors.New("winternitzhash: signature does not match input")
