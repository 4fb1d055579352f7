package codeconfig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigmasim/internal/codeconfig"
	"enigmasim/internal/machine"
)

func TestManual_Configure(t *testing.T) {
	d := loadDefinition(t)
	m := newMachine(d)

	code, err := codeconfig.NewManual(d).Configure(m, codeconfig.Request{
		RotorIDs:    []int{1, 2, 3},
		Positions:   "CAE",
		ReflectorID: 2,
		Plugs:       "ABFD",
	})
	require.NoError(t, err)
	assert.Same(t, code, m.Code())

	if diff := cmp.Diff([]int{3, 2, 1}, code.RotorIDs()); diff != "" {
		t.Errorf("physical rotor order (-want +got):\n%s", diff)
	}
	// rotor 3 shows CDEFAB, so E is position 2
	if diff := cmp.Diff([]int{2, 0, 2}, code.Positions()); diff != "" {
		t.Errorf("physical positions (-want +got):\n%s", diff)
	}
	for i, r := range code.Rotors() {
		assert.Equal(t, code.Positions()[i], r.Position())
	}
	assert.Equal(t, 2, code.Reflector().ID())
	if diff := cmp.Diff([][2]int{{0, 1}, {3, 5}}, code.Plugboard().Pairs()); diff != "" {
		t.Errorf("plug pairs (-want +got):\n%s", diff)
	}
}

func TestManual_PositionsResolvePerRotor(t *testing.T) {
	d := loadDefinition(t)
	code, err := codeconfig.NewManual(d).Configure(newMachine(d), codeconfig.Request{
		RotorIDs:    []int{3, 5, 1},
		Positions:   "AAA",
		ReflectorID: 1,
	})
	require.NoError(t, err)
	// physical order 1,5,3: A sits at 0 on rotor 1, 1 on rotor 5, 4 on rotor 3
	assert.Equal(t, []int{0, 1, 4}, code.Positions())
	assert.True(t, code.Plugboard().Empty())
}

func TestManual_Rejects(t *testing.T) {
	valid := codeconfig.Request{RotorIDs: []int{1, 2, 3}, Positions: "ABC", ReflectorID: 1, Plugs: "AB"}

	tests := []struct {
		name    string
		edit    func(r *codeconfig.Request)
		src     func(s *stubSource)
		wantMsg string
	}{
		{name: "no rotors", edit: func(r *codeconfig.Request) { r.RotorIDs = nil }, wantMsg: "cannot be empty"},
		{name: "too few rotors", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{1, 2} }, wantMsg: "exactly 3 rotor ids"},
		{name: "too many rotors", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{1, 2, 3, 4} }, wantMsg: "exactly 3 rotor ids"},
		{name: "duplicate rotor", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{1, 2, 1} }, wantMsg: "more than once"},
		{name: "rotor above range", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{1, 2, 6} }, wantMsg: "out of range 1-5"},
		{name: "rotor zero", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{0, 2, 3} }, wantMsg: "out of range"},
		{name: "rotor unresolvable", src: func(s *stubSource) { s.missingRotor = 2 }, wantMsg: "rotor id 2 not found"},
		{name: "empty positions", edit: func(r *codeconfig.Request) { r.Positions = "" }, wantMsg: "positions cannot be empty"},
		{name: "short positions", edit: func(r *codeconfig.Request) { r.Positions = "AB" }, wantMsg: "exactly 3 position letters"},
		{name: "position outside alphabet", edit: func(r *codeconfig.Request) { r.Positions = "ABZ" }, wantMsg: "not in the alphabet"},
		{name: "reflector zero", edit: func(r *codeconfig.Request) { r.ReflectorID = 0 }, wantMsg: "between 1 and 2"},
		{name: "reflector above range", edit: func(r *codeconfig.Request) { r.ReflectorID = 3 }, wantMsg: "between 1 and 2"},
		{name: "reflector unresolvable", src: func(s *stubSource) { s.missingRefl = 1 }, wantMsg: "reflector id 1 not found"},
		{name: "odd plugs", edit: func(r *codeconfig.Request) { r.Plugs = "ABC" }, wantMsg: "must be even"},
		{name: "plug outside alphabet", edit: func(r *codeconfig.Request) { r.Plugs = "AZ" }, wantMsg: "outside the alphabet"},
		{name: "self plug", edit: func(r *codeconfig.Request) { r.Plugs = "CC" }, wantMsg: "to itself"},
		{name: "letter plugged twice", edit: func(r *codeconfig.Request) { r.Plugs = "ABCA" }, wantMsg: "A is plugged more than once"},
		{name: "rotors checked before plugs", edit: func(r *codeconfig.Request) { r.RotorIDs = []int{1}; r.Plugs = "A" }, wantMsg: "rotor ids"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := loadDefinition(t)
			src := &stubSource{Definition: d}
			if tt.src != nil {
				tt.src(src)
			}
			req := valid
			req.RotorIDs = append([]int(nil), valid.RotorIDs...)
			if tt.edit != nil {
				tt.edit(&req)
			}

			m := newMachine(d)
			previous, err := codeconfig.NewManual(d).Configure(m, valid)
			require.NoError(t, err)

			_, err = codeconfig.NewManual(src).Configure(m, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Same(t, previous, m.Code(), "failed configuration must not replace the installed code")
		})
	}
}

func TestParsePlugs(t *testing.T) {
	a, err := machine.NewAlphabet("ABCDEF")
	require.NoError(t, err)

	pb, err := codeconfig.ParsePlugs(a, "  ")
	require.NoError(t, err)
	assert.True(t, pb.Empty())

	pb, err = codeconfig.ParsePlugs(a, "FAEB")
	require.NoError(t, err)
	assert.Equal(t, 2, pb.Len())
	assert.Equal(t, 0, pb.Process(5))
	assert.Equal(t, 4, pb.Process(1))
	assert.Equal(t, 2, pb.Process(2))
}
