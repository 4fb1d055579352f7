// Package machine implements the rotor cipher: alphabet, rotors, reflector,
// plugboard, the immutable Code that bundles them, and the Machine that runs
// symbols through an installed Code.
//
// A signal entering the machine takes this path:
//
//	plugboard -> rotors 0..n-1 -> reflector -> rotors n-1..0 -> plugboard
//
// The rotor stack steps once before each symbol. Rotor 0 always steps and
// each rotor that lands on its notch carries the next one. A rotor steps at
// most once per symbol, so the double-step of the historical machines is not
// reproduced.
//
// A Machine is not safe for concurrent use.
package machine

// Machine runs symbols through its installed Code.
type Machine struct {
	alphabet *Alphabet
	code     *Code
}

func New(alphabet *Alphabet) *Machine {
	return &Machine{alphabet: alphabet}
}

func (m *Machine) Alphabet() *Alphabet { return m.alphabet }
func (m *Machine) AlphabetSize() int   { return m.alphabet.Size() }

// Code returns the installed code, or nil. Its rotors carry live positions.
func (m *Machine) Code() *Code { return m.code }

// SetCode installs code and rewinds every rotor to the code's starting
// positions. Installing the same code again restarts the stepping sequence.
func (m *Machine) SetCode(code *Code) error {
	if code == nil {
		return Errorf(InvalidConfiguration, "nil code")
	}
	size := m.alphabet.Size()
	for _, r := range code.rotors {
		if r.Size() != size {
			return Errorf(InvalidConfiguration, "rotor %d has %d contacts, alphabet has %d symbols", r.ID(), r.Size(), size)
		}
	}
	if code.reflector.Size() != size {
		return Errorf(InvalidConfiguration, "reflector %d has %d contacts, alphabet has %d symbols", code.reflector.ID(), code.reflector.Size(), size)
	}
	for i, r := range code.rotors {
		r.SetPosition(code.positions[i])
	}
	m.code = code
	return nil
}

// Process enciphers one symbol and steps the rotors.
func (m *Machine) Process(symbol rune) (rune, error) {
	if m.code == nil {
		return 0, Errorf(MachineNotReady, "no code installed")
	}
	in, err := m.alphabet.Index(symbol)
	if err != nil {
		return 0, err
	}
	out, err := m.processIndex(in)
	if err != nil {
		return 0, err
	}
	return m.alphabet.Symbol(out)
}

// ProcessString enciphers every symbol of s in order. All symbols are checked
// against the alphabet before any rotor steps.
func (m *Machine) ProcessString(s string) (string, error) {
	if m.code == nil {
		return "", Errorf(MachineNotReady, "no code installed")
	}
	input := []rune(s)
	indices := make([]int, len(input))
	for i, r := range input {
		idx, err := m.alphabet.Index(r)
		if err != nil {
			return "", err
		}
		indices[i] = idx
	}
	output := make([]rune, len(indices))
	for i, idx := range indices {
		out, err := m.processIndex(idx)
		if err != nil {
			return "", err
		}
		output[i], err = m.alphabet.Symbol(out)
		if err != nil {
			return "", err
		}
	}
	return string(output), nil
}

func (m *Machine) processIndex(index int) (int, error) {
	code := m.code
	index = code.plugboard.Process(index)

	m.advance()

	for _, r := range code.rotors {
		index = r.Process(index, Forward)
	}
	index, err := code.reflector.Process(index)
	if err != nil {
		return 0, err
	}
	for i := len(code.rotors) - 1; i >= 0; i-- {
		index = code.rotors[i].Process(index, Backward)
	}

	return code.plugboard.Process(index), nil
}

func (m *Machine) advance() {
	rotors := m.code.rotors
	for i := 0; i < len(rotors); i++ {
		if !rotors[i].Advance() {
			return
		}
	}
}
