// Package codeconfig builds machine codes, either from an operator's explicit
// choices (Manual) or by sampling a random valid code (Automatic), and
// installs them on a machine.
//
// Operators name rotors left to right as they sit in the machine. Codes store
// them right to left, so both configurators reverse the operator's order
// before assembly.
package codeconfig

import (
	"log/slog"

	"enigmasim/internal/machine"
)

// Source answers the definition lookups a configurator needs.
type Source interface {
	Alphabet() *machine.Alphabet
	TotalRotors() int
	TotalReflectors() int
	RequiredRotors() int
	Rotor(id int) (*machine.Rotor, error)
	Reflector(id int) (*machine.Reflector, error)
	PositionIndex(rotorID int, letter rune) (int, error)
}

// assemble reverses ids and positions into physical order, builds fresh
// rotors, and installs the resulting code on m.
func assemble(log *slog.Logger, src Source, m *machine.Machine, ids, positions []int, reflector *machine.Reflector, plugboard *machine.Plugboard) (*machine.Code, error) {
	n := len(ids)
	rotors := make([]*machine.Rotor, n)
	physical := make([]int, n)
	for i := range ids {
		id := ids[n-1-i]
		r, err := src.Rotor(id)
		if err != nil {
			return nil, machine.Wrap(machine.InvalidConfiguration, err, "rotor %d", id)
		}
		physical[i] = positions[n-1-i]
		r.SetPosition(physical[i])
		rotors[i] = r
	}
	code, err := machine.NewCode(rotors, physical, reflector, plugboard)
	if err != nil {
		return nil, err
	}
	if err := m.SetCode(code); err != nil {
		return nil, err
	}
	log.Debug("code installed", "rotors", ids, "reflector", reflector.ID(), "plugs", plugboard.Len())
	return code, nil
}
