package uvmap

import "math"

// maxSeedDigits is the longest token that is still read as a decimal seed.
// Ten digits cover every uint32 value.
const maxSeedDigits = 10

// HashCode returns the polynomial rolling hash of b (h = h*31 + c),
// wrapping modulo 2^32.
//
// This is the classic string hash. It is not collision-free; two tokens
// hashing to the same seed simply produce the same shuffle.
func HashCode(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h*31 + uint32(c)
	}
	return h
}

// DeriveSeed converts a user-supplied token into a shuffle seed.
//
// Tokens of at most ten ASCII digits whose value fits in 32 bits are used
// as the number they spell, so "0" yields 0 and "4294967295" yields
// 4294967295. Every other token (longer strings, non-digits, values above
// math.MaxUint32) is hashed with HashCode. The empty token yields 0.
//
// DeriveSeed never fails and has no side effects.
func DeriveSeed(token []byte) uint32 {
	if len(token) > maxSeedDigits {
		return HashCode(token)
	}

	var v uint64
	for _, c := range token {
		if c < '0' || c > '9' {
			return HashCode(token)
		}
		v = v*10 + uint64(c-'0')
	}
	if v > math.MaxUint32 {
		return HashCode(token)
	}
	return uint32(v)
}

// DeriveSeedString is DeriveSeed for string tokens.
func DeriveSeedString(token string) uint32 {
	return DeriveSeed([]byte(token))
}
