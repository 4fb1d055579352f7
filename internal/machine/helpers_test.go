package machine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"enigmasim/internal/machine"
)

const abcd = "ABCD"

// shiftWiring is the rotor wiring 0->1, 1->2, 2->3, 3->0 over four contacts.
var shiftWiring = []int{1, 2, 3, 0}

func mustAlphabet(t *testing.T, abc string) *machine.Alphabet {
	t.Helper()
	a, err := machine.NewAlphabet(abc)
	require.NoError(t, err)
	return a
}

func mustRotor(t *testing.T, id int, forward []int, notch, ring int) *machine.Rotor {
	t.Helper()
	r, err := machine.NewRotor(id, forward, notch, ring)
	require.NoError(t, err)
	return r
}

func mustReflector(t *testing.T, id, size int, pairs ...[2]int) *machine.Reflector {
	t.Helper()
	r, err := machine.NewReflector(id, size, pairs)
	require.NoError(t, err)
	return r
}

func mustPlugboard(t *testing.T, size int, pairs ...[2]int) *machine.Plugboard {
	t.Helper()
	p, err := machine.NewPlugboard(size, pairs)
	require.NoError(t, err)
	return p
}

func mustCode(t *testing.T, rotors []*machine.Rotor, positions []int, ref *machine.Reflector, pb *machine.Plugboard) *machine.Code {
	t.Helper()
	c, err := machine.NewCode(rotors, positions, ref, pb)
	require.NoError(t, err)
	return c
}

// sixLetterCode builds a three-rotor code over "ABCDEF" with one plug pair.
func sixLetterCode(t *testing.T) (*machine.Alphabet, *machine.Code) {
	t.Helper()
	a := mustAlphabet(t, "ABCDEF")
	rotors := []*machine.Rotor{
		mustRotor(t, 3, []int{5, 2, 0, 4, 1, 3}, 1, 0),
		mustRotor(t, 1, []int{1, 3, 5, 0, 2, 4}, 3, 2),
		mustRotor(t, 2, []int{4, 0, 3, 5, 2, 1}, 5, 0),
	}
	ref := mustReflector(t, 1, 6, [2]int{0, 5}, [2]int{1, 3}, [2]int{2, 4})
	pb := mustPlugboard(t, 6, [2]int{0, 2})
	return a, mustCode(t, rotors, []int{4, 0, 2}, ref, pb)
}
