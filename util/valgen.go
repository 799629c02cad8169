// Some helpers using closures to generate operand values
package valgen

import "math/rand"

// Gen yields one operand value per call.
type Gen func() uint64

// MakeConstGen returns a generator that always yields constant.
func MakeConstGen(constant uint64) Gen {
	return func() uint64 {
		return constant
	}
}

// MakeIncreasingGen returns a generator that counts up from start, wrapping
// at the width mask.
func MakeIncreasingGen(start, mask uint64) Gen {
	current := start
	return func() uint64 {
		current++
		return current & mask
	}
}

// MakeRandGen returns a generator drawing uniform values under the width
// mask.
func MakeRandGen(rng *rand.Rand, mask uint64) Gen {
	return func() uint64 {
		return rng.Uint64() & mask
	}
}
