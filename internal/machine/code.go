package machine

// Code is one complete machine configuration. Rotors are stored in physical
// order: index 0 is the rightmost rotor, the first to step and the first to
// see a signal. Positions holds the starting position of each rotor.
//
// A Code is never modified after construction. The rotors it references do
// move while the code is installed; Machine.SetCode rewinds them.
type Code struct {
	rotors    []*Rotor
	positions []int
	reflector *Reflector
	plugboard *Plugboard
}

func NewCode(rotors []*Rotor, positions []int, reflector *Reflector, plugboard *Plugboard) (*Code, error) {
	if len(rotors) == 0 {
		return nil, Errorf(InvalidConfiguration, "code needs at least one rotor")
	}
	if reflector == nil || plugboard == nil {
		return nil, Errorf(InvalidConfiguration, "code needs a reflector and a plugboard")
	}
	if len(rotors) != len(positions) {
		return nil, Errorf(InvalidConfiguration, "%d rotors but %d positions", len(rotors), len(positions))
	}
	seen := make(map[int]bool, len(rotors))
	for i, r := range rotors {
		if r == nil {
			return nil, Errorf(InvalidConfiguration, "rotor slot %d is empty", i)
		}
		if seen[r.ID()] {
			return nil, Errorf(InvalidConfiguration, "rotor %d used more than once", r.ID())
		}
		seen[r.ID()] = true
	}
	return &Code{
		rotors:    append([]*Rotor(nil), rotors...),
		positions: append([]int(nil), positions...),
		reflector: reflector,
		plugboard: plugboard,
	}, nil
}

// Rotors returns the rotors in physical order.
func (c *Code) Rotors() []*Rotor { return append([]*Rotor(nil), c.rotors...) }

// Positions returns the starting positions in physical order.
func (c *Code) Positions() []int { return append([]int(nil), c.positions...) }

func (c *Code) Reflector() *Reflector { return c.reflector }
func (c *Code) Plugboard() *Plugboard { return c.plugboard }

// RotorIDs returns the rotor ids in physical order.
func (c *Code) RotorIDs() []int {
	ids := make([]int, len(c.rotors))
	for i, r := range c.rotors {
		ids[i] = r.ID()
	}
	return ids
}
