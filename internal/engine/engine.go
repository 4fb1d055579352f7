// Package engine holds one simulator session: the loaded machine
// definition, the installed code, the code to return to on reset, and the
// processing history grouped by code.
package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"enigmasim/internal/codeconfig"
	"enigmasim/internal/definition"
	"enigmasim/internal/display"
	"enigmasim/internal/logging"
	"enigmasim/internal/machine"
)

// Specs describes what a loaded definition offers to a configuration.
type Specs struct {
	Alphabet        string
	RotorIDs        []int
	ReflectorIDs    []int
	ReflectorLabels []string
	RequiredRotors  int
}

// MachineData summarizes the session.
type MachineData struct {
	TotalRotors       int
	TotalReflectors   int
	MessagesProcessed int
	OriginalCode      string // empty until a code is configured
	CurrentCode       string
}

// Entry is one processed message.
type Entry struct {
	Input    string
	Output   string
	Duration time.Duration
}

// CodeHistory is every message processed under one original code.
type CodeHistory struct {
	Code    string
	Entries []Entry
}

// Engine is a single-user session. It is not safe for concurrent use.
type Engine struct {
	def     *definition.Definition
	machine *machine.Machine

	original       *machine.Code
	originalString string
	processed      int

	history []CodeHistory
	byCode  map[string]int

	rng *rand.Rand
	now func() time.Time
	log *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes automatic configuration draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithClock replaces time.Now for processing durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now, log: logging.New("engine")}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Load reads a definition file and starts a fresh session with it.
func (e *Engine) Load(path string) error {
	def, err := definition.LoadFile(path)
	if err != nil {
		return err
	}
	e.LoadDefinition(def)
	return nil
}

// LoadDefinition starts a fresh session with def. Any installed code,
// history and message count are dropped.
func (e *Engine) LoadDefinition(def *definition.Definition) {
	e.def = def
	e.machine = machine.New(def.Alphabet())
	e.original = nil
	e.originalString = ""
	e.processed = 0
	e.history = nil
	e.byCode = make(map[string]int)
	e.log.Info("definition loaded",
		"source", def.Name(),
		"alphabet", def.Alphabet().String(),
		"rotors", def.TotalRotors(),
		"reflectors", def.TotalReflectors(),
		"required", def.RequiredRotors())
}

// Definition returns the loaded definition, or nil.
func (e *Engine) Definition() *definition.Definition { return e.def }

func (e *Engine) Specs() (Specs, error) {
	if err := e.ready(); err != nil {
		return Specs{}, err
	}
	s := Specs{
		Alphabet:       e.def.Alphabet().String(),
		RequiredRotors: e.def.RequiredRotors(),
	}
	for id := 1; id <= e.def.TotalRotors(); id++ {
		s.RotorIDs = append(s.RotorIDs, id)
	}
	for id := 1; id <= e.def.TotalReflectors(); id++ {
		s.ReflectorIDs = append(s.ReflectorIDs, id)
		s.ReflectorLabels = append(s.ReflectorLabels, e.def.ReflectorLabel(id))
	}
	return s, nil
}

func (e *Engine) MachineData() (MachineData, error) {
	if err := e.ready(); err != nil {
		return MachineData{}, err
	}
	data := MachineData{
		TotalRotors:       e.def.TotalRotors(),
		TotalReflectors:   e.def.TotalReflectors(),
		MessagesProcessed: e.processed,
		OriginalCode:      e.originalString,
	}
	if code := e.machine.Code(); code != nil {
		current, err := display.FormatCode(code, e.def)
		if err != nil {
			return MachineData{}, err
		}
		data.CurrentCode = current
	}
	return data, nil
}

// ConfigureManual installs the code described by req and returns its
// canonical string.
func (e *Engine) ConfigureManual(req codeconfig.Request) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	code, err := codeconfig.NewManual(e.def).Configure(e.machine, req)
	if err != nil {
		return "", err
	}
	return e.adopt(code, "manual")
}

// ConfigureAutomatic installs a random code and returns its canonical string.
func (e *Engine) ConfigureAutomatic() (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	code, err := codeconfig.NewAutomatic(e.def, e.rng).Configure(e.machine)
	if err != nil {
		return "", err
	}
	return e.adopt(code, "automatic")
}

// adopt records a freshly installed code as the one Reset returns to.
func (e *Engine) adopt(code *machine.Code, how string) (string, error) {
	s, err := display.FormatCode(code, e.def)
	if err != nil {
		return "", err
	}
	e.original = code
	e.originalString = s
	e.log.Info("code configured", "mode", how, "code", s)
	return s, nil
}

// Process enciphers input, records it in the history of the original code
// and returns the output.
func (e *Engine) Process(input string) (string, error) {
	if err := e.configured(); err != nil {
		return "", err
	}
	if input == "" {
		return "", machine.Errorf(machine.InvalidInput, "input cannot be empty")
	}
	alphabet := e.def.Alphabet()
	for i, r := range []rune(input) {
		if !alphabet.Contains(r) {
			return "", machine.Errorf(machine.InvalidInput, "character %q at position %d is not in the alphabet %q", r, i+1, alphabet.String())
		}
	}

	start := e.now()
	output, err := e.machine.ProcessString(input)
	if err != nil {
		return "", err
	}
	elapsed := e.now().Sub(start)

	e.processed++
	e.record(Entry{Input: input, Output: output, Duration: elapsed})
	e.log.Debug("processed", "length", len(input), "duration", elapsed)
	return output, nil
}

func (e *Engine) record(entry Entry) {
	i, ok := e.byCode[e.originalString]
	if !ok {
		i = len(e.history)
		e.byCode[e.originalString] = i
		e.history = append(e.history, CodeHistory{Code: e.originalString})
	}
	e.history[i].Entries = append(e.history[i].Entries, entry)
}

// Reset reinstalls the last configured code, rewinding every rotor.
func (e *Engine) Reset() error {
	if err := e.configured(); err != nil {
		return err
	}
	if err := e.machine.SetCode(e.original); err != nil {
		return err
	}
	e.log.Debug("code reset", "code", e.originalString)
	return nil
}

// Statistics returns the processing history grouped by original code, in the
// order codes were first used.
func (e *Engine) Statistics() ([]CodeHistory, error) {
	if err := e.configured(); err != nil {
		return nil, err
	}
	out := make([]CodeHistory, len(e.history))
	for i, h := range e.history {
		out[i] = CodeHistory{Code: h.Code, Entries: append([]Entry(nil), h.Entries...)}
	}
	return out, nil
}

func (e *Engine) ready() error {
	if e.def == nil {
		return machine.Errorf(machine.MachineNotReady, "no machine definition loaded")
	}
	return nil
}

func (e *Engine) configured() error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.original == nil {
		return machine.Errorf(machine.CodeNotConfigured, "configure a code first (manual or automatic)")
	}
	return nil
}
