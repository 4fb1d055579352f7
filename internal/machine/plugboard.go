package machine

// Plugboard swaps paired indices and passes every other index through.
type Plugboard struct {
	wiring []int
	pairs  int
}

// NewPlugboard builds a plugboard of the given size. No pairs is valid.
func NewPlugboard(size int, pairs [][2]int) (*Plugboard, error) {
	wiring, err := pairTable(size, pairs)
	if err != nil {
		return nil, Wrap(InvalidConfiguration, err, "plugboard")
	}
	return &Plugboard{wiring: wiring, pairs: len(pairs)}, nil
}

func (p *Plugboard) Process(index int) int {
	if index < 0 || index >= len(p.wiring) || p.wiring[index] == unmapped {
		return index
	}
	return p.wiring[index]
}

func (p *Plugboard) Len() int    { return p.pairs }
func (p *Plugboard) Empty() bool { return p.pairs == 0 }

// Pairs returns every plugged pair once, ordered by its lower index.
func (p *Plugboard) Pairs() [][2]int {
	out := make([][2]int, 0, p.pairs)
	for a, b := range p.wiring {
		if b != unmapped && a < b {
			out = append(out, [2]int{a, b})
		}
	}
	return out
}
