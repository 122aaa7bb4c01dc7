package domain

// PickDistinct returns k distinct indices drawn uniformly from [0, n).
func PickDistinct(n, k int, rng RNG) ([]int, error) {
	if k > n {
		return nil, ErrPoolTooSmall
	}
	if k <= 0 {
		return nil, nil
	}

	// Fisher-Yates partial shuffle: only the first k slots are settled.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := range k {
		j := i + rng.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}

	return indices[:k], nil
}
