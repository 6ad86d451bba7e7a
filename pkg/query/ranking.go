package query

// score is the set of value types a ranking can count and compare.
type score interface {
	~int | ~int64 | ~float64
}

// ranking holds values keyed by K in first-insertion order. Max scans in that
// order and keeps the first key holding the highest value, so ties always go
// to the earliest key.
type ranking[K comparable, V score] struct {
	keys   []K
	values map[K]V
}

func newRanking[K comparable, V score]() *ranking[K, V] {
	return &ranking[K, V]{values: make(map[K]V)}
}

// Set stores v under k, appending k if new.
func (r *ranking[K, V]) Set(k K, v V) {
	if _, ok := r.values[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.values[k] = v
}

// Inc adds one to the value under k.
func (r *ranking[K, V]) Inc(k K) {
	r.Set(k, r.values[k]+1)
}

// Get returns the value under k.
func (r *ranking[K, V]) Get(k K) (V, bool) {
	v, ok := r.values[k]
	return v, ok
}

// Len returns the number of keys.
func (r *ranking[K, V]) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *ranking[K, V]) Keys() []K {
	return r.keys
}

// Max returns the first key with the highest value.
func (r *ranking[K, V]) Max() (K, V, bool) {
	var (
		best    K
		bestVal V
	)
	if len(r.keys) == 0 {
		return best, bestVal, false
	}
	best, bestVal = r.keys[0], r.values[r.keys[0]]
	for _, k := range r.keys[1:] {
		if v := r.values[k]; v > bestVal {
			best, bestVal = k, v
		}
	}
	return best, bestVal, true
}

// Remove deletes k.
func (r *ranking[K, V]) Remove(k K) {
	r.RemoveFunc(func(key K) bool { return key == k })
}

// RemoveFunc deletes every key for which fn returns true.
func (r *ranking[K, V]) RemoveFunc(fn func(K) bool) {
	kept := r.keys[:0]
	for _, k := range r.keys {
		if fn(k) {
			delete(r.values, k)
			continue
		}
		kept = append(kept, k)
	}
	r.keys = kept
}
