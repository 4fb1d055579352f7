package machine

// Direction selects which wiring table a rotor applies.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Rotor is a stepping permutation unit. Forward and backward tables are exact
// inverses; position moves, notch and ring setting do not.
type Rotor struct {
	id          int
	wiring      [2][]int
	position    int
	notch       int
	ringSetting int
}

// NewRotor builds a rotor from its forward table. The backward table is
// derived. notch and ringSetting are 0-based indices; the rotor starts at
// position 0.
func NewRotor(id int, forward []int, notch, ringSetting int) (*Rotor, error) {
	size := len(forward)
	if size < 2 {
		return nil, Errorf(InvalidIndex, "rotor %d: wiring needs at least 2 contacts, got %d", id, size)
	}
	backward := make([]int, size)
	seen := make([]bool, size)
	for in, out := range forward {
		if out < 0 || out >= size {
			return nil, Errorf(InvalidIndex, "rotor %d: contact %d wired to %d, outside 0..%d", id, in, out, size-1)
		}
		if seen[out] {
			return nil, Errorf(InvalidIndex, "rotor %d: contact %d wired more than once", id, out)
		}
		seen[out] = true
		backward[out] = in
	}
	if notch < 0 || notch >= size {
		return nil, Errorf(InvalidIndex, "rotor %d: notch %d outside 0..%d", id, notch, size-1)
	}
	if ringSetting < 0 || ringSetting >= size {
		return nil, Errorf(InvalidIndex, "rotor %d: ring setting %d outside 0..%d", id, ringSetting, size-1)
	}
	fw := make([]int, size)
	copy(fw, forward)
	return &Rotor{
		id:          id,
		wiring:      [2][]int{Forward: fw, Backward: backward},
		notch:       notch,
		ringSetting: ringSetting,
	}, nil
}

func (r *Rotor) ID() int          { return r.id }
func (r *Rotor) Notch() int       { return r.notch }
func (r *Rotor) RingSetting() int { return r.ringSetting }
func (r *Rotor) Position() int    { return r.position }
func (r *Rotor) Size() int        { return len(r.wiring[Forward]) }

// SetPosition normalizes p into 0..N-1, negative values included.
func (r *Rotor) SetPosition(p int) {
	r.position = floorMod(p, r.Size())
}

// Process maps input through the rotor in the given direction at the current
// position. The offset is applied before the table lookup and removed after.
func (r *Rotor) Process(input int, dir Direction) int {
	size := r.Size()
	shift := floorMod(r.position-r.ringSetting, size)
	contact := floorMod(input+shift, size)
	wired := r.wiring[dir][contact]
	return floorMod(wired-shift, size)
}

// Advance steps the rotor once and reports whether the new position is the
// notch, in which case the next rotor in the stack steps too.
func (r *Rotor) Advance() bool {
	r.position = (r.position + 1) % r.Size()
	return r.position == r.notch
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
