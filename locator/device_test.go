package locator_test

import (
	"testing"

	"github.com/katalvlaran/gridseek/cipher"
	"github.com/katalvlaran/gridseek/grid"
	"github.com/katalvlaran/gridseek/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// encodeAll encodes every item with shift.
func encodeAll(t *testing.T, shift int, items ...string) []string {
	t.Helper()
	out := make([]string, len(items))
	for i, s := range items {
		code, err := cipher.Encode(s, shift)
		require.NoError(t, err)
		out[i] = code
	}

	return out
}

// newBuilt returns a device with both builds done.
func newBuilt(t *testing.T, h, w, shift int, labels, values []string, opts ...locator.Option) *locator.Device {
	t.Helper()
	d, err := locator.New(h, w, encodeAll(t, shift, labels...), encodeAll(t, shift, values...), shift, opts...)
	require.NoError(t, err)
	require.NoError(t, d.BuildLabelMap())
	require.NoError(t, d.BuildGrid())

	return d
}

// TestLocate_FindsLabel resolves 3 in [[0,2],[1,3]] to label "d".
func TestLocate_FindsLabel(t *testing.T) {
	d := newBuilt(t, 2, 2, 0, []string{"a", "b", "c", "d"}, []string{"0", "2", "1", "3"})

	m, ok := d.Locate(3)
	require.True(t, ok)
	assert.Equal(t, grid.Coordinate{Row: 1, Col: 1}, m.Coord)
	label, err := cipher.Decode(m.Label, 0)
	require.NoError(t, err)
	assert.Equal(t, "d", label)
	assert.Equal(t, "1100100", m.Label)
	assert.Equal(t, 2, m.Scans)
	assert.Equal(t, 2, m.CallScans)
}

// TestLocate_ShiftedLabels re-encodes labels with the device shift.
func TestLocate_ShiftedLabels(t *testing.T) {
	d := newBuilt(t, 2, 2, 5, []string{"north", "east", "south", "west"}, []string{"10", "15", "11", "16"})
	assert.Equal(t, 5, d.Shift())

	for value, want := range map[float64]string{10: "north", 15: "east", 11: "south", 16: "west"} {
		m, ok := d.Locate(value)
		require.True(t, ok, "value %v", value)
		label, err := cipher.Decode(m.Label, 5)
		require.NoError(t, err)
		assert.Equal(t, want, label)
	}
}

// TestLocate_Missing reports 12 as absent from [[10,15],[11,16]].
func TestLocate_Missing(t *testing.T) {
	d := newBuilt(t, 2, 2, 1, []string{"a", "b", "c", "d"}, []string{"10", "15", "11", "16"})

	m, ok := d.Locate(12)
	assert.False(t, ok)
	assert.Equal(t, locator.Match{}, m)
	_, ok = d.LocateLinear(12)
	assert.False(t, ok)
}

// TestScans_Accumulate keeps the counter across calls until reset.
func TestScans_Accumulate(t *testing.T) {
	d := newBuilt(t, 2, 2, 0, []string{"a", "b", "c", "d"}, []string{"0", "2", "1", "3"})

	m1, _ := d.Locate(3)
	m2, _ := d.Locate(3)
	assert.Equal(t, m1.CallScans, m2.CallScans)
	assert.Equal(t, m1.Scans+m2.CallScans, m2.Scans)
	assert.Equal(t, m2.Scans, d.Scans())
	assert.Equal(t, m2.CallScans, d.LastScans())

	lin, ok := d.LocateLinear(3)
	require.True(t, ok)
	assert.Equal(t, 1, lin.CallScans)
	assert.Equal(t, m2.Scans+1, lin.Scans)

	_, _ = d.Locate(-1)
	assert.Equal(t, 0, d.LastScans())

	d.ResetScans()
	assert.Equal(t, 0, d.Scans())
	assert.Equal(t, 0, d.LastScans())
}

// TestLocateLinear_MatchesLocate returns the same label on a duplicate-free grid.
func TestLocateLinear_MatchesLocate(t *testing.T) {
	labels := []string{"l0", "l1", "l2", "l3", "l4", "l5"}
	values := []string{"1", "3", "5", "2", "4", "6"}
	d := newBuilt(t, 2, 3, 2, labels, values)
	for _, v := range []float64{1, 2, 3, 4, 5, 6} {
		fast, ok := d.Locate(v)
		require.True(t, ok)
		slow, ok := d.LocateLinear(v)
		require.True(t, ok)
		assert.Equal(t, fast.Label, slow.Label, "value %v", v)
		assert.Equal(t, fast.Coord, slow.Coord, "value %v", v)
	}
}

// TestNew_Errors validates shift and dimensions.
func TestNew_Errors(t *testing.T) {
	_, err := locator.New(2, 2, nil, nil, 27)
	assert.ErrorIs(t, err, cipher.ErrShift)
	_, err = locator.New(0, 2, nil, nil, 0)
	assert.ErrorIs(t, err, grid.ErrShape)
	_, err = locator.New(2, -1, nil, nil, 0)
	assert.ErrorIs(t, err, grid.ErrShape)
}

// TestBuild_Errors surfaces shape, decode and value errors from the builds.
func TestBuild_Errors(t *testing.T) {
	d, err := locator.New(2, 2, encodeAll(t, 0, "a", "b", "c"), append(encodeAll(t, 0, "0"), "x", "1", "1"), 0)
	require.NoError(t, err)
	assert.ErrorIs(t, d.BuildLabelMap(), grid.ErrShape)
	err = d.BuildGrid()
	assert.ErrorIs(t, err, cipher.ErrDecode)
	assert.NotErrorIs(t, err, grid.ErrValue)
	assert.Contains(t, err.Error(), "(0,1)")
	assert.Nil(t, d.Grid())

	d, err = locator.New(1, 1, encodeAll(t, 3, "a"), encodeAll(t, 3, "abc"), 3)
	require.NoError(t, err)
	require.NoError(t, d.BuildLabelMap())
	assert.ErrorIs(t, d.BuildGrid(), grid.ErrValue)
}

// TestLocate_BeforeBuild answers not-found until both builds ran.
func TestLocate_BeforeBuild(t *testing.T) {
	d, err := locator.New(1, 2, encodeAll(t, 0, "a", "b"), encodeAll(t, 0, "1", "2"), 0)
	require.NoError(t, err)

	_, ok := d.Locate(1)
	assert.False(t, ok, "nothing built")

	require.NoError(t, d.BuildGrid())
	_, ok = d.Locate(1)
	assert.False(t, ok, "label map missing")

	require.NoError(t, d.BuildLabelMap())
	m, ok := d.Locate(2)
	require.True(t, ok)
	assert.Equal(t, grid.Coordinate{Row: 0, Col: 1}, m.Coord)
	l, ok := d.Label(m.Coord)
	require.True(t, ok)
	assert.Equal(t, "b", l)
}

// TestBuild_Idempotent rebuilds without changing answers.
func TestBuild_Idempotent(t *testing.T) {
	d := newBuilt(t, 2, 2, 4, []string{"a", "b", "c", "d"}, []string{"0", "2", "1", "3"})
	before := d.Grid().Rows()
	m1, _ := d.Locate(2)

	require.NoError(t, d.BuildGrid())
	require.NoError(t, d.BuildLabelMap())
	assert.Equal(t, before, d.Grid().Rows())
	m2, _ := d.Locate(2)
	assert.Equal(t, m1.Label, m2.Label)
	assert.Equal(t, m1.Coord, m2.Coord)
}

// TestNew_CopiesInputs isolates the device from caller mutation.
func TestNew_CopiesInputs(t *testing.T) {
	labels := encodeAll(t, 0, "a")
	values := encodeAll(t, 0, "7")
	d, err := locator.New(1, 1, labels, values, 0)
	require.NoError(t, err)
	labels[0], values[0] = "garbage", "garbage"

	require.NoError(t, d.BuildLabelMap())
	require.NoError(t, d.BuildGrid())
	_, ok := d.Locate(7)
	assert.True(t, ok)
}

// TestWithLogger emits debug entries for builds and queries.
func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := newBuilt(t, 2, 2, 0, []string{"a", "b", "c", "d"}, []string{"0", "2", "1", "3"},
		locator.WithLogger(zap.New(core)), locator.WithLogger(nil))

	_, _ = d.Locate(3)
	_, _ = d.Locate(12)

	assert.Equal(t, 1, logs.FilterMessage("grid built").Len())
	assert.Equal(t, 1, logs.FilterMessage("label map built").Len())
	located := logs.FilterMessage("value located").All()
	require.Len(t, located, 1)
	assert.Equal(t, "divconq", located[0].ContextMap()["algo"])
	assert.Equal(t, 1, logs.FilterMessage("value not found").Len())
}
