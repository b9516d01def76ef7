// Package winternitzhash implements the signed-message duplicator: the
// in-script variant of Winternitz signature verification that, in addition
// to proving a signature valid, re-exposes the signed bytes so a caller
// script can keep using them.
package winternitzhash

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/lightninglabs/hashchain-disprove/digest"
	"github.com/lightninglabs/hashchain-disprove/winternitz"
)

// SignHash signs the H20 digest of message under secret, returning the
// Winternitz signature. The scheme always signs a 20-byte digest; this is
// the bridge from arbitrary-length messages (here, always the 24-byte
// bit-commitment message m_i) down to that fixed size.
func SignHash(secret winternitz.Digest, message []byte) winternitz.Signature {
	h := digest.H20(message)
	return winternitz.Sign(secret, h)
}

// PushSigWitness appends the signature over message's H20 digest to a
// segwit witness, in SigWitness's canonical order.
func PushSigWitness(items [][]byte, secret winternitz.Digest, message []byte) [][]byte {
	h := digest.H20(message)
	return winternitz.SigWitness(items, secret, h)
}

// VerifyDup is the Go-native equivalent of CheckSigDup: it verifies the
// Winternitz signature over H20(input) and, on success, returns the
// leading num bytes of input — the payload a caller script is allowed to
// keep looking at after the duplicator has proven it is part of a
// witnessed, signed message.
//
// Only the two (inputLen, num) shapes the hash-chain step actually uses are
// supported: (24, 4) exposes a bit-commitment's 4-byte index while hashing
// its full 24-byte message, and (24, 24) exposes the whole message. The
// underlying roll/pick counts in CheckSigDup are only derived for these
// shapes; any other shape is rejected rather than generalized.
func VerifyDup(pubkey winternitz.PublicKey, sig winternitz.Signature, input []byte, num int) ([]byte, error) {
	if len(input) != 24 || (num != 4 && num != 24) {
		log.Debugf("VerifyDup: unsupported shape (input_len=%d, num=%d)",
			len(input), num)
		return nil, ErrUnsupportedShape
	}

	h := digest.H20(input)
	if !winternitz.Verify(pubkey, h, sig) {
		log.Debugf("VerifyDup: signature does not match input")
		return nil, ErrSignatureMismatch
	}

	return input[:num], nil
}

// CheckSigDup returns the Script fragment for the signed-message duplicator: it
// verifies a Winternitz signature (via winternitz.CheckSigVerify), stashes
// the 20 recovered message bytes to the alt stack, rotates the
// (inputLen-num) lower bytes of the caller's stack data underneath the
// top num bytes so that every one of the inputLen bytes can be hashed while
// only the top num remain for the caller, hashes those inputLen bytes, and
// compares the result against the signed bytes recovered earlier,
// aborting evaluation on any mismatch.
func CheckSigDup(pubkey winternitz.PublicKey, inputLen, num int) ([]byte, error) {
	if inputLen != 24 || (num != 4 && num != 24) {
		log.Debugf("CheckSigDup: unsupported shape (input_len=%d, num=%d)",
			inputLen, num)
		return nil, ErrUnsupportedShape
	}

	sigVerify, err := winternitz.CheckSigVerify(pubkey)
	if err != nil {
		return nil, err
	}

	builder := txscript.NewScriptBuilder()
	builder.AddOps(sigVerify)

	for i := 0; i < digest.Size; i++ {
		builder.AddOp(txscript.OP_TOALTSTACK)
	}

	// Duplicate the caller's inputLen stack bytes so the hash below sees
	// all of them while the top num remain for whatever follows this
	// fragment in the enclosing lock script.
	for i := 0; i < inputLen-num; i++ {
		builder.AddInt64(int64(inputLen - 1))
		builder.AddOp(txscript.OP_ROLL)
	}
	for i := 0; i < num; i++ {
		builder.AddInt64(int64(inputLen - 1))
		builder.AddOp(txscript.OP_PICK)
	}

	hashFrag, err := digest.ScriptHash160VarLen(inputLen)
	if err != nil {
		return nil, err
	}
	builder.AddOps(hashFrag)

	for i := 0; i < digest.Size/4; i++ {
		for j := 0; j < 4; j++ {
			builder.AddInt64(3 - int64(j))
			builder.AddOp(txscript.OP_ROLL)
			builder.AddOp(txscript.OP_FROMALTSTACK)
			builder.AddOp(txscript.OP_EQUALVERIFY)
		}
	}

	return builder.Script()
}
