package sortedset

import "errors"

// ErrNotStrictlyIncreasing is returned by CheckInvariants when two
// adjacent items are not in strictly increasing order.
var ErrNotStrictlyIncreasing = errors.New("sortedset: items are not strictly increasing")

// CheckInvariants verifies that the backing slice is strictly increasing
// under the set's comparator.
func (s *Set[T]) CheckInvariants() error {
	for i := 1; i < len(s.items); i++ {
		if s.cmp(s.items[i-1], s.items[i]) >= 0 {
			return ErrNotStrictlyIncreasing
		}
	}

	return nil
}
