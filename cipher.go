// Package feistel implements a small didactic block cipher built on a
// Feistel network: the block is split into two halves which are repeatedly
// swapped and XOR-masked with the output of a lossy round function keyed by
// a per-round permutation of the base key. The construction round-trips
// exactly even though the round function itself cannot be inverted.
//
// This cipher is a teaching aid. The round function and key schedule are far
// too weak to resist analysis, so it must never be used to protect real
// data.
package feistel

import "errors"

var (
	// ErrEmptyBlock is returned when a zero-length block is handed to
	// EncryptBlock or DecryptBlock.
	ErrEmptyBlock = errors.New("block must not be empty")

	// ErrOddBlockSize is returned when the block cannot be split into two
	// equal halves.
	ErrOddBlockSize = errors.New("block length must be even")
)

// roundFunction is the Feistel mixing function F. It masks the right half
// with the round key, complements the result, then shifts every byte left by
// one bit. The shift throws the top bit of each byte away, which makes F
// impossible to invert; the surrounding network never needs to invert it,
// only to reproduce it (see cryptRound).
func roundFunction(right, roundKey []byte) []byte {
	n := len(right)
	if len(roundKey) < n {
		n = len(roundKey)
	}

	mask := make([]byte, n)
	xor(mask, right, roundKey)
	complement(mask, mask)
	shiftLeft(mask, mask)

	return mask
}

// cryptRound applies a single Feistel round: the block is split into left
// and right halves and the output is right || (left XOR F(right, key)).
// Running the identical round against the swapped output cancels the mask
// with a second XOR, so the round inverts itself without F being invertible.
func cryptRound(block, roundKey []byte) []byte {
	half := len(block) / 2
	left, right := block[:half], block[half:]

	mask := roundFunction(right, roundKey)
	n := len(left)
	if len(mask) < n {
		n = len(mask)
	}
	newRight := make([]byte, n)
	xor(newRight, left, mask)

	out := make([]byte, 0, len(right)+len(newRight))
	out = append(out, right...)
	out = append(out, newRight...)

	return out
}

// cryptBlock runs the full network in one direction: derive the schedule,
// feed the block through one round per key, then swap the halves once more
// to undo the dangling swap the final round leaves behind. Encryption and
// decryption share this exact path and differ only in schedule order.
func cryptBlock(block, key []byte, decrypt bool, numRounds uint8) []byte {
	out := make([]byte, len(block))
	copy(out, block)

	for _, roundKey := range deriveRoundKeys(key, decrypt, numRounds) {
		out = cryptRound(out, roundKey)
	}

	half := len(out) / 2
	final := make([]byte, 0, len(out))
	final = append(final, out[half:]...)
	final = append(final, out[:half]...)

	return final
}

// EncryptBlock runs numRounds Feistel rounds over block under key and
// returns the ciphertext as a fresh slice of the same length. The block must
// have even, non-zero length. For the ciphertext to decrypt back to the
// original the key must be exactly half the block length; a shorter key
// silently truncates the result instead of failing.
func EncryptBlock(block, key []byte, numRounds uint8) ([]byte, error) {
	if err := validateBlock(block); err != nil {
		return nil, err
	}

	log.Debugf("Encrypting %d byte block with %d rounds", len(block),
		numRounds)

	return cryptBlock(block, key, false, numRounds), nil
}

// DecryptBlock inverts EncryptBlock for the same key and round count. The
// same length requirements apply.
func DecryptBlock(block, key []byte, numRounds uint8) ([]byte, error) {
	if err := validateBlock(block); err != nil {
		return nil, err
	}

	log.Debugf("Decrypting %d byte block with %d rounds", len(block),
		numRounds)

	return cryptBlock(block, key, true, numRounds), nil
}

// validateBlock rejects blocks that cannot be split into two equal halves,
// before any round key is derived.
func validateBlock(block []byte) error {
	switch {
	case len(block) == 0:
		return ErrEmptyBlock
	case len(block)%2 != 0:
		return ErrOddBlockSize
	}

	return nil
}
