package machine

const unmapped = -1

// Reflector is a stateless involution over 0..N-1.
type Reflector struct {
	id     int
	wiring []int
}

// NewReflector builds a reflector of the given size from index pairs. Each
// pair is wired both ways.
func NewReflector(id, size int, pairs [][2]int) (*Reflector, error) {
	if len(pairs) == 0 {
		return nil, Errorf(InvalidIndex, "reflector %d: no pairs", id)
	}
	wiring, err := pairTable(size, pairs)
	if err != nil {
		return nil, Wrap(InvalidIndex, err, "reflector %d", id)
	}
	return &Reflector{id: id, wiring: wiring}, nil
}

func (r *Reflector) ID() int   { return r.id }
func (r *Reflector) Size() int { return len(r.wiring) }

// Process returns the partner of index. A miss means the reflector was built
// from an incomplete table.
func (r *Reflector) Process(index int) (int, error) {
	if index < 0 || index >= len(r.wiring) || r.wiring[index] == unmapped {
		return 0, Errorf(InvalidIndex, "reflector %d has no mapping for %d", r.id, index)
	}
	return r.wiring[index], nil
}

// pairTable builds a symmetric lookup table. Unpaired indices hold unmapped.
func pairTable(size int, pairs [][2]int) ([]int, error) {
	table := make([]int, size)
	for i := range table {
		table[i] = unmapped
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a < 0 || a >= size || b < 0 || b >= size {
			return nil, Errorf(InvalidIndex, "pair (%d,%d) outside 0..%d", a, b, size-1)
		}
		if a == b {
			return nil, Errorf(InvalidIndex, "index %d paired with itself", a)
		}
		if table[a] != unmapped || table[b] != unmapped {
			return nil, Errorf(InvalidIndex, "pair (%d,%d) reuses a paired index", a, b)
		}
		table[a], table[b] = b, a
	}
	return table, nil
}
