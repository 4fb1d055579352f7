package definition

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"enigmasim/internal/machine"
)

const (
	minRequiredRotors = 2
	maxReflectorID    = 5
)

func invalid(format string, args ...any) error {
	return machine.Errorf(machine.InvalidDefinition, format, args...)
}

// build validates raw and converts it to a Definition.
func build(raw *rawDefinition) (*Definition, error) {
	abc := strings.TrimSpace(raw.ABC)
	if abc == "" {
		return nil, invalid("abc is empty")
	}
	if n := utf8.RuneCountInString(abc); n%2 != 0 {
		return nil, invalid("abc must have even length, got %d", n)
	}
	alphabet, err := machine.NewAlphabet(abc)
	if err != nil {
		return nil, err
	}

	if len(raw.Rotors) == 0 {
		return nil, invalid("no rotors defined")
	}
	if raw.RotorsCount < minRequiredRotors {
		return nil, invalid("rotors-count must be at least %d, got %d", minRequiredRotors, raw.RotorsCount)
	}
	if raw.RotorsCount > len(raw.Rotors) {
		return nil, invalid("rotors-count (%d) cannot exceed the number of rotors defined (%d)", raw.RotorsCount, len(raw.Rotors))
	}

	rotors, err := buildRotors(raw.Rotors, alphabet)
	if err != nil {
		return nil, err
	}
	reflectors, err := buildReflectors(raw.Reflectors, alphabet.Size())
	if err != nil {
		return nil, err
	}
	return &Definition{
		alphabet:       alphabet,
		requiredRotors: raw.RotorsCount,
		rotors:         rotors,
		reflectors:     reflectors,
	}, nil
}

func buildRotors(raws []rawRotor, alphabet *machine.Alphabet) ([]rotorSpec, error) {
	size := alphabet.Size()
	specs := make([]rotorSpec, 0, len(raws))
	seen := make(map[int]bool, len(raws))
	for _, r := range raws {
		if seen[r.ID] {
			return nil, invalid("duplicate rotor id %d", r.ID)
		}
		seen[r.ID] = true

		if len(r.Positioning) != size {
			return nil, invalid("rotor %d has %d positions, abc has %d letters", r.ID, len(r.Positioning), size)
		}
		if r.Notch < 1 || r.Notch > size {
			return nil, invalid("rotor %d notch %d is out of range 1..%d", r.ID, r.Notch, size)
		}

		spec := rotorSpec{
			id:      r.ID,
			notch:   r.Notch - 1,
			right:   make([]rune, size),
			forward: make([]int, size),
		}
		lefts := make(map[rune]bool, size)
		rights := make(map[rune]bool, size)
		for row, p := range r.Positioning {
			right, err := singleLetter(r.ID, "right", p.Right, alphabet)
			if err != nil {
				return nil, err
			}
			left, err := singleLetter(r.ID, "left", p.Left, alphabet)
			if err != nil {
				return nil, err
			}
			if rights[right] {
				return nil, invalid("rotor %d has duplicate right letter %q", r.ID, right)
			}
			if lefts[left] {
				return nil, invalid("rotor %d has duplicate left letter %q", r.ID, left)
			}
			rights[right], lefts[left] = true, true

			li, _ := alphabet.Index(left)
			ri, _ := alphabet.Index(right)
			spec.forward[li] = ri
			spec.right[row] = right
		}
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].id < specs[j].id })
	for i, s := range specs {
		if s.id != i+1 {
			return nil, invalid("rotor ids must run 1..%d without gaps, got %s", len(specs), idList(specs))
		}
	}
	return specs, nil
}

func singleLetter(rotorID int, side, s string, alphabet *machine.Alphabet) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, invalid("rotor %d has invalid %s letter %q", rotorID, side, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !alphabet.Contains(r) {
		return 0, invalid("rotor %d %s letter %q is not in abc", rotorID, side, r)
	}
	return r, nil
}

func buildReflectors(raws []rawReflector, size int) ([]reflectorSpec, error) {
	if len(raws) == 0 {
		return nil, invalid("no reflectors defined")
	}
	specs := make([]reflectorSpec, 0, len(raws))
	seen := make(map[int]bool, len(raws))
	for _, r := range raws {
		label := strings.TrimSpace(r.ID)
		id, err := ParseRoman(label)
		if err != nil || id > maxReflectorID {
			return nil, invalid("reflector id must be in range I..%s, got %q", ToRoman(maxReflectorID), r.ID)
		}
		if seen[id] {
			return nil, invalid("duplicate reflector id %s", label)
		}
		seen[id] = true

		if len(r.Reflect) == 0 {
			return nil, invalid("reflector %s has no mappings", label)
		}
		if len(r.Reflect)*2 != size {
			return nil, invalid("reflector %s has %d pairs, abc of %d letters needs %d", label, len(r.Reflect), size, size/2)
		}
		used := make([]bool, size)
		pairs := make([][2]int, 0, len(r.Reflect))
		for _, m := range r.Reflect {
			if m.Input == m.Output {
				return nil, invalid("reflector %s maps %d to itself", label, m.Input)
			}
			for _, v := range []int{m.Input, m.Output} {
				if v < 1 || v > size {
					return nil, invalid("reflector %s contact %d is out of range 1..%d", label, v, size)
				}
				if used[v-1] {
					return nil, invalid("reflector %s uses contact %d more than once", label, v)
				}
				used[v-1] = true
			}
			pairs = append(pairs, [2]int{m.Input - 1, m.Output - 1})
		}
		specs = append(specs, reflectorSpec{id: id, label: label, pairs: pairs})
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].id < specs[j].id })
	for i, s := range specs {
		if s.id != i+1 {
			return nil, invalid("reflector ids must run I..%s without gaps, missing %s", ToRoman(len(specs)), ToRoman(i+1))
		}
	}
	return specs, nil
}

func idList(specs []rotorSpec) string {
	ids := make([]string, len(specs))
	for i, s := range specs {
		ids[i] = strconv.Itoa(s.id)
	}
	return "[" + strings.Join(ids, ",") + "]"
}
