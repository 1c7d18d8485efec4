package core

import "math/rand/v2"

// Sequence is the ordered list of icons the player must reproduce
type Sequence []Icon

// NewSequence draws length icons uniformly and independently; repeats are allowed
func NewSequence(rng *rand.Rand, length int) Sequence {
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = Icons[rng.IntN(IconCount)]
	}
	return seq
}

// Matches compares the first n positions of the sequence with a response.
// Any mismatch fails the whole comparison regardless of position.
func (s Sequence) Matches(response []Icon, n int) bool {
	if n > len(s) || n > len(response) {
		return false
	}
	for i := 0; i < n; i++ {
		if response[i] != s[i] {
			return false
		}
	}
	return true
}
