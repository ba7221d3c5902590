package kvstore

import "slices"

// Lengths exposes both slice lengths so tests can check they never diverge.
func (s *Store[K, V]) Lengths() (keys int, values int) {
	return len(s.keys), len(s.values)
}

func (s *Store[K, V]) KeysInOrder() []K {
	return slices.Clone(s.keys)
}

func (s *Store[K, V]) ValuesInOrder() []V {
	return slices.Clone(s.values)
}

func (s *Store[K, V]) Capacity() int {
	return cap(s.keys)
}

func (s *Store[K, V]) Indexed() bool {
	return s.index != nil
}
