package collections

func identity[V comparable](v V) V {
	return v
}

// Intersect returns the distinct values present in both a and b, in the order
// they first appear in b. Runs in O(len(a) + len(b)).
func Intersect[V comparable](a, b []V) []V {
	seen := NewHashSet(identity[V])
	for _, v := range a {
		_ = seen.Add(v)
	}
	ret := make([]V, 0)
	for _, v := range b {
		if seen.Remove(v) == nil {
			ret = append(ret, v)
		}
	}
	return ret
}
