package machine

// Alphabet maps symbols to indices 0..N-1 and back.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from abc. Symbols must be unique and there
// must be at least two of them.
func NewAlphabet(abc string) (*Alphabet, error) {
	symbols := []rune(abc)
	if len(symbols) < 2 {
		return nil, Errorf(InvalidDefinition, "alphabet needs at least 2 symbols, got %d", len(symbols))
	}
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, dup := index[r]; dup {
			return nil, Errorf(InvalidDefinition, "alphabet symbol %q appears more than once", r)
		}
		index[r] = i
	}
	return &Alphabet{symbols: symbols, index: index}, nil
}

func (a *Alphabet) Size() int { return len(a.symbols) }

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Index returns the index of r.
func (a *Alphabet) Index(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, Errorf(CharacterNotInAlphabet, "%q is not in the alphabet %q", r, a.String())
	}
	return i, nil
}

// Symbol returns the symbol at index i.
func (a *Alphabet) Symbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, Errorf(InvalidIndex, "index %d is outside 0..%d", i, len(a.symbols)-1)
	}
	return a.symbols[i], nil
}

func (a *Alphabet) String() string { return string(a.symbols) }
