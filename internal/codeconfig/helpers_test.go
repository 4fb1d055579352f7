package codeconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"enigmasim/internal/codeconfig"
	"enigmasim/internal/definition"
	"enigmasim/internal/machine"
)

// sixLetter has five rotors, three per code, and two reflectors. Rotor 3
// shows its letters in the order CDEFAB.
const sixLetter = `
abc: ABCDEF
rotors-count: 3
rotors:
  - id: 1
    notch: 4
    positioning:
      - {right: A, left: F}
      - {right: B, left: E}
      - {right: C, left: D}
      - {right: D, left: C}
      - {right: E, left: B}
      - {right: F, left: A}
  - id: 2
    notch: 1
    positioning:
      - {right: A, left: E}
      - {right: B, left: B}
      - {right: C, left: D}
      - {right: D, left: F}
      - {right: E, left: C}
      - {right: F, left: A}
  - id: 3
    notch: 6
    positioning:
      - {right: C, left: A}
      - {right: D, left: D}
      - {right: E, left: B}
      - {right: F, left: F}
      - {right: A, left: C}
      - {right: B, left: E}
  - id: 4
    notch: 2
    positioning:
      - {right: F, left: C}
      - {right: A, left: F}
      - {right: C, left: B}
      - {right: E, left: E}
      - {right: B, left: A}
      - {right: D, left: D}
  - id: 5
    notch: 3
    positioning:
      - {right: B, left: D}
      - {right: A, left: C}
      - {right: D, left: F}
      - {right: C, left: B}
      - {right: F, left: E}
      - {right: E, left: A}
reflectors:
  - id: I
    reflect:
      - {input: 1, output: 4}
      - {input: 2, output: 6}
      - {input: 3, output: 5}
  - id: II
    reflect:
      - {input: 1, output: 2}
      - {input: 3, output: 4}
      - {input: 5, output: 6}
`

func loadDefinition(t *testing.T) *definition.Definition {
	t.Helper()
	d, err := definition.Parse([]byte(sixLetter), definition.FormatYAML)
	require.NoError(t, err)
	return d
}

// stubSource overrides selected answers of a real definition.
type stubSource struct {
	*definition.Definition
	totalRotors   int
	missingRotor  int
	missingRefl   int
	requiredCount int
}

func (s *stubSource) TotalRotors() int {
	if s.totalRotors > 0 {
		return s.totalRotors
	}
	return s.Definition.TotalRotors()
}

func (s *stubSource) RequiredRotors() int {
	if s.requiredCount > 0 {
		return s.requiredCount
	}
	return s.Definition.RequiredRotors()
}

func (s *stubSource) Rotor(id int) (*machine.Rotor, error) {
	if id == s.missingRotor {
		return nil, machine.Errorf(machine.InvalidConfiguration, "rotor %d not found", id)
	}
	return s.Definition.Rotor(id)
}

func (s *stubSource) Reflector(id int) (*machine.Reflector, error) {
	if id == s.missingRefl {
		return nil, machine.Errorf(machine.InvalidConfiguration, "reflector %d not found", id)
	}
	return s.Definition.Reflector(id)
}

var _ codeconfig.Source = (*stubSource)(nil)

func newMachine(d *definition.Definition) *machine.Machine {
	return machine.New(d.Alphabet())
}
