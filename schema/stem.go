package schema

import "strconv"

// newStem creates a stem generating prefix1, prefix2... skipping the names
// in taken. A nil taken is treated as a free namespace.
func newStem(prefix string, taken map[string]struct{}) *stem {
	return &stem{taken: taken, prefix: prefix}
}

type stem struct {
	taken  map[string]struct{}
	prefix string
	last   int
}

func (s *stem) next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		name := s.prefix + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
