// Package display renders machine state for people: the canonical code
// string, and tables for terminal or Markdown output.
package display

import (
	"strconv"
	"strings"

	"enigmasim/internal/machine"
)

// Labels answers the definition lookups the code string needs.
type Labels interface {
	Alphabet() *machine.Alphabet
	PositionLetter(rotorID, index int) (rune, error)
	ReflectorLabel(id int) string
}

// FormatCode renders code in canonical form:
//
//	<ids><letter(distance),...><reflector>[<a|b,...>]
//
// Rotors are listed left to right as an operator sees them. Each window
// letter is followed by the number of steps until that rotor reaches its
// notch. The plug segment is left out when nothing is plugged. The string
// reflects the rotors' current positions.
func FormatCode(code *machine.Code, labels Labels) (string, error) {
	alphabet := labels.Alphabet()
	size := alphabet.Size()
	rotors := code.Rotors()

	ids := make([]string, 0, len(rotors))
	windows := make([]string, 0, len(rotors))
	for i := len(rotors) - 1; i >= 0; i-- {
		r := rotors[i]
		ids = append(ids, strconv.Itoa(r.ID()))

		letter, err := labels.PositionLetter(r.ID(), r.Position())
		if err != nil {
			return "", err
		}
		distance := (r.Notch() - r.Position() + size) % size
		windows = append(windows, string(letter)+"("+strconv.Itoa(distance)+")")
	}

	var b strings.Builder
	segment(&b, strings.Join(ids, ","))
	segment(&b, strings.Join(windows, ","))
	segment(&b, labels.ReflectorLabel(code.Reflector().ID()))

	if pairs := code.Plugboard().Pairs(); len(pairs) > 0 {
		plugs := make([]string, len(pairs))
		for i, p := range pairs {
			a, err := alphabet.Symbol(p[0])
			if err != nil {
				return "", err
			}
			z, err := alphabet.Symbol(p[1])
			if err != nil {
				return "", err
			}
			plugs[i] = string(a) + "|" + string(z)
		}
		segment(&b, strings.Join(plugs, ","))
	}
	return b.String(), nil
}

func segment(b *strings.Builder, s string) {
	b.WriteByte('<')
	b.WriteString(s)
	b.WriteByte('>')
}
