package winternitz

import "errors"

// ErrInvalidPubkeyLength is returned when a serialized public key is not
// exactly N*DigestSize bytes long. It signals a programmer error (a
// malformed key was constructed or deserialized) rather than a runtime
// verification failure.
var ErrInvalidPubkeyLength = errors.New("winternitz: public key has wrong length")

// ErrInvalidDigestLength reports a message that is not exactly DigestSize
// bytes. Sign and Verify take a fixed-size Digest and never return it.
var ErrInvalidDigestLength = errors.New("winternitz: message digest has wrong length")

// ErrInvalidSignatureLength reports a signature that does not carry exactly
// N digest-sized elements. No function in this package returns it; Verify
// reports such a signature by returning false.
var ErrInvalidSignatureLength = errors.New("winternitz: signature has wrong length")
