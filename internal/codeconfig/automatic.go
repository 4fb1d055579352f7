package codeconfig

import (
	"log/slog"
	"math/rand/v2"

	"enigmasim/internal/logging"
	"enigmasim/internal/machine"
)

// Automatic samples uniformly random valid codes.
type Automatic struct {
	src Source
	rng *rand.Rand
	log *slog.Logger
}

// NewAutomatic returns a sampler drawing from rng, or from a randomly seeded
// generator when rng is nil.
func NewAutomatic(src Source, rng *rand.Rand) *Automatic {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Automatic{src: src, rng: rng, log: logging.New("codeconfig")}
}

// Configure samples a code and installs it on m. It fails only when the
// definition has fewer rotors than a code requires.
func (c *Automatic) Configure(m *machine.Machine) (*machine.Code, error) {
	required, total := c.src.RequiredRotors(), c.src.TotalRotors()
	if required < 1 || total < required {
		return nil, machine.Errorf(machine.InvalidConfiguration, "cannot pick %d distinct rotors from %d", required, total)
	}
	if c.src.TotalReflectors() < 1 {
		return nil, machine.Errorf(machine.InvalidConfiguration, "no reflectors to pick from")
	}

	ids := c.rotorIDs(required, total)
	positions, err := c.positions(ids)
	if err != nil {
		return nil, err
	}
	reflectorID := c.rng.IntN(c.src.TotalReflectors()) + 1
	reflector, err := c.src.Reflector(reflectorID)
	if err != nil {
		return nil, machine.Wrap(machine.InvalidConfiguration, err, "reflector %d", reflectorID)
	}
	plugboard, err := c.plugboard()
	if err != nil {
		return nil, err
	}
	return assemble(c.log, c.src, m, ids, positions, reflector, plugboard)
}

// rotorIDs draws distinct ids from 1..total by rejection.
func (c *Automatic) rotorIDs(required, total int) []int {
	seen := make(map[int]bool, required)
	ids := make([]int, 0, required)
	for len(ids) < required {
		id := c.rng.IntN(total) + 1
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Automatic) positions(ids []int) ([]int, error) {
	abc := []rune(c.src.Alphabet().String())
	positions := make([]int, len(ids))
	for i, id := range ids {
		letter := abc[c.rng.IntN(len(abc))]
		p, err := c.src.PositionIndex(id, letter)
		if err != nil {
			return nil, machine.Wrap(machine.InvalidConfiguration, err, "position for rotor %d", id)
		}
		positions[i] = p
	}
	return positions, nil
}

// plugboard picks 0..N/2 pairs from a shuffled index sequence, so no index
// is paired with itself or used twice.
func (c *Automatic) plugboard() (*machine.Plugboard, error) {
	n := c.src.Alphabet().Size()
	count := c.rng.IntN(n/2 + 1)
	indices := c.rng.Perm(n)
	pairs := make([][2]int, count)
	for i := range pairs {
		pairs[i] = [2]int{indices[2*i], indices[2*i+1]}
	}
	return machine.NewPlugboard(n, pairs)
}
