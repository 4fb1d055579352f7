// Package definition loads machine definition documents and answers the
// lookups the configurators need: rotor and reflector construction by id and
// the per-rotor conversion between window letters and positions.
//
// Documents come in two shapes. YAML:
//
//	abc: ABCDEF
//	rotors-count: 3
//	rotors:
//	  - id: 1
//	    notch: 4
//	    positioning:
//	      - {right: A, left: F}
//	      ...
//	reflectors:
//	  - id: I
//	    reflect:
//	      - {input: 1, output: 4}
//	      ...
//
// and the BTE-Enigma XML layout with the same fields. Notches and reflector
// contacts are 1-based in documents and 0-based everywhere else.
package definition

import (
	"unicode"

	"enigmasim/internal/machine"
)

// Definition is a validated machine definition. Every call that builds a
// rotor or reflector returns a fresh value, so no state is shared between
// configurations.
type Definition struct {
	name           string
	alphabet       *machine.Alphabet
	requiredRotors int
	rotors         []rotorSpec     // rotors[i].id == i+1
	reflectors     []reflectorSpec // reflectors[i].id == i+1
}

type rotorSpec struct {
	id      int
	notch   int // 0-based
	right   []rune
	forward []int
}

type reflectorSpec struct {
	id    int
	label string
	pairs [][2]int // 0-based
}

// Name is the source the definition was loaded from, if any.
func (d *Definition) Name() string { return d.name }

func (d *Definition) Alphabet() *machine.Alphabet { return d.alphabet }
func (d *Definition) TotalRotors() int            { return len(d.rotors) }
func (d *Definition) TotalReflectors() int        { return len(d.reflectors) }

// RequiredRotors is the number of rotors every code must use.
func (d *Definition) RequiredRotors() int { return d.requiredRotors }

// Rotor builds a new rotor with the given id at position 0 and ring setting 0.
func (d *Definition) Rotor(id int) (*machine.Rotor, error) {
	spec, err := d.rotor(id)
	if err != nil {
		return nil, err
	}
	return machine.NewRotor(spec.id, spec.forward, spec.notch, 0)
}

// Reflector builds the reflector with the given numeric id.
func (d *Definition) Reflector(id int) (*machine.Reflector, error) {
	if id < 1 || id > len(d.reflectors) {
		return nil, machine.Errorf(machine.InvalidConfiguration, "reflector %s not found", ToRoman(id))
	}
	spec := d.reflectors[id-1]
	return machine.NewReflector(spec.id, d.alphabet.Size(), spec.pairs)
}

// ReflectorLabel renders a reflector id the way the document writes it.
func (d *Definition) ReflectorLabel(id int) string {
	if id >= 1 && id <= len(d.reflectors) {
		return d.reflectors[id-1].label
	}
	return ToRoman(id)
}

// ReflectorID resolves a label such as "II" (or a decimal id) to a numeric id.
func (d *Definition) ReflectorID(label string) (int, error) {
	for _, r := range d.reflectors {
		if r.label == label {
			return r.id, nil
		}
	}
	if n, err := ParseRoman(label); err == nil && n <= len(d.reflectors) {
		return n, nil
	}
	if n, err := parsePositiveInt(label); err == nil {
		return n, nil
	}
	return 0, machine.Errorf(machine.InvalidConfiguration, "reflector %q not found", label)
}

// PositionIndex returns the position at which letter shows in the window of
// the given rotor. Letters compare case-insensitively.
func (d *Definition) PositionIndex(rotorID int, letter rune) (int, error) {
	spec, err := d.rotor(rotorID)
	if err != nil {
		return 0, err
	}
	target := unicode.ToUpper(letter)
	for i, r := range spec.right {
		if unicode.ToUpper(r) == target {
			return i, nil
		}
	}
	return 0, machine.Errorf(machine.InvalidConfiguration, "letter %q not on rotor %d", letter, rotorID)
}

// PositionLetter returns the letter shown in the window of the given rotor at
// position index.
func (d *Definition) PositionLetter(rotorID, index int) (rune, error) {
	spec, err := d.rotor(rotorID)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(spec.right) {
		return 0, machine.Errorf(machine.InvalidIndex, "position %d out of range for rotor %d", index, rotorID)
	}
	return spec.right[index], nil
}

func (d *Definition) rotor(id int) (*rotorSpec, error) {
	if id < 1 || id > len(d.rotors) {
		return nil, machine.Errorf(machine.InvalidConfiguration, "rotor %d not found", id)
	}
	return &d.rotors[id-1], nil
}
