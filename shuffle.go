package uvmap

// Shuffle permutes list in place with a Fisher-Yates pass driven by an LCG
// seeded with seed.
//
// For every i in [0, len(list)) one value r is drawn and element i is
// swapped with element i + r%(len(list)-i). The result depends only on seed
// and len(list), never on the element values, so shuffling cell coordinates
// and shuffling flat cell indices yield the same permutation.
//
// The distribution is uniform over the generator's outputs, not over all
// permutations; that is acceptable for a visual effect.
func Shuffle[T any](list []T, seed uint32) {
	rng := NewLCG(seed)
	n := len(list)
	for i := 0; i < n; i++ {
		// On the last pass n-i is 1 and the swap is with itself. The draw
		// still happens so that permutations match maps made elsewhere.
		j := i + int(uint64(rng.Next())%uint64(n-i))
		list[i], list[j] = list[j], list[i]
	}
}
