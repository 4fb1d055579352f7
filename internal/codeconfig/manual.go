package codeconfig

import (
	"log/slog"
	"strings"

	"enigmasim/internal/logging"
	"enigmasim/internal/machine"
)

// Request is an operator's code choice, in left-to-right order.
type Request struct {
	RotorIDs    []int
	Positions   string // one window letter per rotor
	ReflectorID int
	Plugs       string // concatenated letter pairs, e.g. "ABCD" plugs A-B and C-D
}

// Manual validates explicit code requests.
type Manual struct {
	src Source
	log *slog.Logger
}

func NewManual(src Source) *Manual {
	return &Manual{src: src, log: logging.New("codeconfig")}
}

// Configure validates req, builds its code and installs it on m. On error m
// keeps whatever code it had.
func (c *Manual) Configure(m *machine.Machine, req Request) (*machine.Code, error) {
	if err := c.validateRotorIDs(req.RotorIDs); err != nil {
		return nil, err
	}
	positions, err := c.parsePositions(req.Positions, req.RotorIDs)
	if err != nil {
		return nil, err
	}
	reflector, err := c.reflector(req.ReflectorID)
	if err != nil {
		return nil, err
	}
	plugboard, err := ParsePlugs(c.src.Alphabet(), req.Plugs)
	if err != nil {
		return nil, err
	}
	return assemble(c.log, c.src, m, req.RotorIDs, positions, reflector, plugboard)
}

func (c *Manual) validateRotorIDs(ids []int) error {
	required, total := c.src.RequiredRotors(), c.src.TotalRotors()
	if len(ids) == 0 {
		return machine.Errorf(machine.InvalidConfiguration, "rotor ids cannot be empty, provide %d", required)
	}
	if len(ids) != required {
		return machine.Errorf(machine.InvalidConfiguration, "expected exactly %d rotor ids, got %d", required, len(ids))
	}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return machine.Errorf(machine.InvalidConfiguration, "rotor %d selected more than once", id)
		}
		seen[id] = true
	}
	for _, id := range ids {
		if id < 1 || id > total {
			return machine.Errorf(machine.InvalidConfiguration, "rotor id %d is out of range 1-%d", id, total)
		}
		if _, err := c.src.Rotor(id); err != nil {
			return machine.Wrap(machine.InvalidConfiguration, err, "rotor id %d not found in the loaded machine", id)
		}
	}
	return nil
}

func (c *Manual) parsePositions(s string, ids []int) ([]int, error) {
	required := c.src.RequiredRotors()
	if strings.TrimSpace(s) == "" {
		return nil, machine.Errorf(machine.InvalidConfiguration, "initial positions cannot be empty, provide %d letters", required)
	}
	letters := []rune(s)
	if len(letters) != required {
		return nil, machine.Errorf(machine.InvalidConfiguration, "expected exactly %d position letters, got %d", required, len(letters))
	}
	alphabet := c.src.Alphabet()
	positions := make([]int, len(letters))
	for i, l := range letters {
		if !alphabet.Contains(l) {
			return nil, machine.Errorf(machine.InvalidConfiguration, "position letter %q at %d is not in the alphabet %q", l, i+1, alphabet.String())
		}
		p, err := c.src.PositionIndex(ids[i], l)
		if err != nil {
			return nil, machine.Wrap(machine.InvalidConfiguration, err, "position letter %q for rotor %d", l, ids[i])
		}
		positions[i] = p
	}
	return positions, nil
}

func (c *Manual) reflector(id int) (*machine.Reflector, error) {
	total := c.src.TotalReflectors()
	if id < 1 || id > total {
		return nil, machine.Errorf(machine.InvalidConfiguration, "reflector id must be between 1 and %d, got %d", total, id)
	}
	r, err := c.src.Reflector(id)
	if err != nil {
		return nil, machine.Wrap(machine.InvalidConfiguration, err, "reflector id %d not found in the loaded machine", id)
	}
	return r, nil
}

// ParsePlugs builds a plugboard from concatenated letter pairs. An empty or
// blank string yields an empty plugboard.
func ParsePlugs(alphabet *machine.Alphabet, s string) (*machine.Plugboard, error) {
	letters := []rune(strings.TrimSpace(s))
	if len(letters)%2 != 0 {
		return nil, machine.Errorf(machine.InvalidConfiguration, "plug string length must be even, got %d", len(letters))
	}
	plugged := make(map[rune]bool, len(letters))
	pairs := make([][2]int, 0, len(letters)/2)
	for i := 0; i < len(letters); i += 2 {
		a, b := letters[i], letters[i+1]
		ai, errA := alphabet.Index(a)
		bi, errB := alphabet.Index(b)
		if errA != nil || errB != nil {
			return nil, machine.Errorf(machine.InvalidConfiguration, "plug pair %c%c uses a letter outside the alphabet", a, b)
		}
		if ai == bi {
			return nil, machine.Errorf(machine.InvalidConfiguration, "letter %c cannot be plugged to itself", a)
		}
		for _, l := range []rune{a, b} {
			if plugged[l] {
				return nil, machine.Errorf(machine.InvalidConfiguration, "letter %c is plugged more than once", l)
			}
			plugged[l] = true
		}
		pairs = append(pairs, [2]int{ai, bi})
	}
	return machine.NewPlugboard(alphabet.Size(), pairs)
}
