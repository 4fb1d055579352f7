package definition_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigmasim/internal/definition"
	"enigmasim/internal/machine"
)

func TestLoadFile_YAMLAndXMLAgree(t *testing.T) {
	y, err := definition.LoadFile(filepath.Join("testdata", "six.yaml"))
	require.NoError(t, err)
	x, err := definition.LoadFile(filepath.Join("testdata", "six.xml"))
	require.NoError(t, err)

	for _, d := range []*definition.Definition{y, x} {
		assert.Equal(t, "ABCDEF", d.Alphabet().String())
		assert.Equal(t, 5, d.TotalRotors())
		assert.Equal(t, 2, d.TotalReflectors())
		assert.Equal(t, 3, d.RequiredRotors())
		assert.Equal(t, "II", d.ReflectorLabel(2))
	}
	assert.Equal(t, filepath.Join("testdata", "six.yaml"), y.Name())

	for id := 1; id <= 5; id++ {
		ry, err := y.Rotor(id)
		require.NoError(t, err)
		rx, err := x.Rotor(id)
		require.NoError(t, err)
		for c := 0; c < 6; c++ {
			assert.Equal(t, ry.Process(c, machine.Forward), rx.Process(c, machine.Forward), "rotor %d contact %d", id, c)
		}
		assert.Equal(t, ry.Notch(), rx.Notch())
	}
}

func TestDefinition_RotorWiring(t *testing.T) {
	d := loadSix(t)
	r, err := d.Rotor(3)
	require.NoError(t, err)

	assert.Equal(t, 3, r.ID())
	assert.Equal(t, 5, r.Notch(), "notch 6 becomes index 5")
	assert.Equal(t, 0, r.Position())
	assert.Equal(t, 0, r.RingSetting())

	got := make([]int, 6)
	for c := range got {
		got[c] = r.Process(c, machine.Forward)
	}
	// rows (right,left): C-A D-D E-B F-F A-C B-E, forward maps left to right
	if diff := cmp.Diff([]int{2, 4, 0, 3, 1, 5}, got); diff != "" {
		t.Errorf("forward wiring (-want +got):\n%s", diff)
	}
}

func TestDefinition_RotorsAreFresh(t *testing.T) {
	d := loadSix(t)
	a, err := d.Rotor(1)
	require.NoError(t, err)
	b, err := d.Rotor(1)
	require.NoError(t, err)

	a.SetPosition(3)
	assert.NotSame(t, a, b)
	assert.Equal(t, 0, b.Position())
}

func TestDefinition_Reflector(t *testing.T) {
	d := loadSix(t)
	r, err := d.Reflector(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID())
	for in, want := range map[int]int{0: 3, 3: 0, 1: 5, 5: 1, 2: 4, 4: 2} {
		got, err := r.Process(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = d.Reflector(3)
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
	_, err = d.Reflector(0)
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
}

func TestDefinition_ReflectorID(t *testing.T) {
	d := loadSix(t)
	for label, want := range map[string]int{"I": 1, "II": 2, "ii": 2, "2": 2, "1": 1} {
		got, err := d.ReflectorID(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
	_, err := d.ReflectorID("X")
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
	_, err = d.ReflectorID("zero")
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
}

func TestDefinition_PositionLookups(t *testing.T) {
	d := loadSix(t)

	idx, err := d.PositionIndex(3, 'A')
	require.NoError(t, err)
	assert.Equal(t, 4, idx, "rotor 3 window order is CDEFAB")

	idx, err = d.PositionIndex(1, 'a')
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "case-insensitive")

	letter, err := d.PositionLetter(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 'A', letter)

	_, err = d.PositionIndex(9, 'A')
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
	_, err = d.PositionIndex(1, 'Z')
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
	_, err = d.PositionLetter(1, 6)
	assert.ErrorIs(t, err, machine.ErrInvalidIndex)
	_, err = d.Rotor(6)
	assert.ErrorIs(t, err, machine.ErrInvalidConfiguration)
}

func TestDefinition_PositionRoundTrip(t *testing.T) {
	d := loadSix(t)
	for id := 1; id <= d.TotalRotors(); id++ {
		for p := 0; p < 6; p++ {
			l, err := d.PositionLetter(id, p)
			require.NoError(t, err)
			back, err := d.PositionIndex(id, l)
			require.NoError(t, err)
			assert.Equal(t, p, back, "rotor %d position %d", id, p)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := definition.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, definition.FormatYAML, definition.DetectFormat(".YML", nil))
	assert.Equal(t, definition.FormatXML, definition.DetectFormat(".xml", nil))
	assert.Equal(t, definition.FormatXML, definition.DetectFormat("", []byte("  \n<BTE-Enigma/>")))
	assert.Equal(t, definition.FormatYAML, definition.DetectFormat(".txt", []byte("abc: AB")))
}

func TestRoman(t *testing.T) {
	for n, s := range map[int]string{1: "I", 4: "IV", 5: "V", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"} {
		assert.Equal(t, s, definition.ToRoman(n))
		got, err := definition.ParseRoman(s)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	assert.Equal(t, "0", definition.ToRoman(0))
	for _, bad := range []string{"", "IIII", "VX", "ABC", "IIV"} {
		_, err := definition.ParseRoman(bad)
		assert.Error(t, err, bad)
	}
}
