package feistel

import (
	"github.com/davecgh/go-spew/spew"
)

// permuteWord derives one round key from the base key by running a cascade
// of swaps over a copy of it: for every position i in ascending order, the
// bytes at i and (i+roundIndex) mod len trade places. Each swap sees the
// result of all the previous ones, so the output is the cumulative effect of
// the whole sequence rather than a rotation of the input. A round index of
// zero leaves the word untouched.
func permuteWord(word []byte, roundIndex int) []byte {
	out := make([]byte, len(word))
	copy(out, word)

	if len(out) == 0 {
		return out
	}

	for i := 0; i < len(out); i++ {
		j := (i + roundIndex) % len(out)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// deriveRoundKeys builds the key schedule for a single cipher invocation.
// Entry r of the encrypt-order schedule is permuteWord(key, r), derived
// straight from the base key rather than chained off the previous entry.
// Decryption uses the very same keys, only the finished schedule is
// reversed; no individual key is recomputed or inverted.
func deriveRoundKeys(key []byte, decrypt bool, numRounds uint8) [][]byte {
	keys := make([][]byte, 0, numRounds)
	for r := 0; r < int(numRounds); r++ {
		keys = append(keys, permuteWord(key, r))
	}

	if decrypt {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	log.Tracef("Derived %d round keys (decrypt=%v): %v", len(keys),
		decrypt, newLogClosure(func() string {
			return spew.Sdump(keys)
		}))

	return keys
}
