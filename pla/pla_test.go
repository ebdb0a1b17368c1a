package pla_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/katalvlaran/espresso/pla"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCubeBinaryLiterals covers the plain 0/1/-/~ shorthand over two
// binary variables.
func TestParseCubeBinaryLiterals(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	c, err := pla.ParseCube(d, "1 -", nil)
	require.NoError(t, err)

	p0, err := d.GetPart(c, 0, 1)
	require.NoError(t, err)
	assert.True(t, p0)

	full, err := d.GetPart(c, 1, 0)
	require.NoError(t, err)
	assert.True(t, full)
	full, err = d.GetPart(c, 1, 1)
	require.NoError(t, err)
	assert.True(t, full)
}

// TestParseCubeTildeLeavesVariableEmpty pins cvrin.c's "bare ~ leaves the
// variable empty" reading, distinct from "-" which sets every part.
func TestParseCubeTildeLeavesVariableEmpty(t *testing.T) {
	d, err := cube.NewDescriptor(1, nil, 0)
	require.NoError(t, err)

	c, err := pla.ParseCube(d, "~", nil)
	require.NoError(t, err)

	p0, err := d.GetPart(c, 0, 0)
	require.NoError(t, err)
	p1, err := d.GetPart(c, 0, 1)
	require.NoError(t, err)
	assert.False(t, p0)
	assert.False(t, p1)
}

// TestParseCubeMultiValuedBitString exercises the fixed-width bit-string
// form for a non-symbolic multi-valued variable.
func TestParseCubeMultiValuedBitString(t *testing.T) {
	d, err := cube.NewDescriptor(0, []cube.VarSpec{{PartSize: 3}}, 0)
	require.NoError(t, err)

	c, err := pla.ParseCube(d, "101", nil)
	require.NoError(t, err)

	for part, want := range []bool{true, false, true} {
		got, err := d.GetPart(c, 0, part)
		require.NoError(t, err)
		assert.Equal(t, want, got, "part %d", part)
	}
}

// TestParseCubeMultiValuedIntegerSelector exercises the decimal-integer
// shorthand for selecting exactly one part of a multi-valued variable.
func TestParseCubeMultiValuedIntegerSelector(t *testing.T) {
	d, err := cube.NewDescriptor(0, []cube.VarSpec{{PartSize: 3}}, 0)
	require.NoError(t, err)

	c, err := pla.ParseCube(d, "2", nil)
	require.NoError(t, err)

	got, err := d.GetPart(c, 0, 2)
	require.NoError(t, err)
	assert.True(t, got)
	got, err = d.GetPart(c, 0, 0)
	require.NoError(t, err)
	assert.False(t, got)
}

// TestParseCubeSymbolicLabelsIntern checks that repeated tokens for a
// symbolic variable resolve to the same part, and distinct tokens to
// distinct parts, across two separate ParseCube calls sharing one Labels.
func TestParseCubeSymbolicLabelsIntern(t *testing.T) {
	d, err := cube.NewDescriptor(0, []cube.VarSpec{{PartSize: 3}}, 0)
	require.NoError(t, err)
	labels := pla.NewLabels(d)
	require.NoError(t, labels.MarkSymbolic(0))

	red, err := pla.ParseCube(d, "red", labels)
	require.NoError(t, err)
	redAgain, err := pla.ParseCube(d, "red", labels)
	require.NoError(t, err)
	blue, err := pla.ParseCube(d, "blue", labels)
	require.NoError(t, err)

	assert.True(t, d.SetpEqual(red, redAgain))
	assert.False(t, d.SetpEqual(red, blue))
}

// TestParseCubeFieldCountMismatch rejects a string with the wrong number
// of whitespace-separated fields.
func TestParseCubeFieldCountMismatch(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	_, err = pla.ParseCube(d, "1", nil)
	assert.ErrorIs(t, err, pla.ErrFieldCount)
}

// TestParseCubeBadLiteralRejected rejects a field that matches none of the
// recognized forms for its variable.
func TestParseCubeBadLiteralRejected(t *testing.T) {
	d, err := cube.NewDescriptor(1, nil, 0)
	require.NoError(t, err)

	_, err = pla.ParseCube(d, "x", nil)
	assert.ErrorIs(t, err, pla.ErrBadLiteral)
}

// TestCheckConsistencyAcceptsAPartition builds a complete, non-overlapping
// F/D/R split of a two-variable binary universe and expects no error.
func TestCheckConsistencyAcceptsAPartition(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := d.NewCover(0)
	f.Add(mustParse(t, d, "1 -"))
	don := d.NewCover(0)
	r := d.NewCover(0)
	r.Add(mustParse(t, d, "0 0"))
	r.Add(mustParse(t, d, "0 1"))

	assert.NoError(t, pla.CheckConsistency(d, f, don, r))
}

// TestCheckConsistencyDetectsOverlap flags two covers that share a minterm.
func TestCheckConsistencyDetectsOverlap(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := d.NewCover(0)
	f.Add(mustParse(t, d, "1 -"))
	don := d.NewCover(0)
	r := d.NewCover(0)
	r.Add(mustParse(t, d, "1 0"))
	r.Add(mustParse(t, d, "0 0"))
	r.Add(mustParse(t, d, "0 1"))

	assert.ErrorIs(t, pla.CheckConsistency(d, f, don, r), pla.ErrOverlapFR)
}

// TestCheckConsistencyDetectsIncompleteUniverse flags an F/D/R split that
// leaves a minterm uncovered by any of the three.
func TestCheckConsistencyDetectsIncompleteUniverse(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	f := d.NewCover(0)
	f.Add(mustParse(t, d, "1 -"))
	don := d.NewCover(0)
	r := d.NewCover(0)
	r.Add(mustParse(t, d, "0 0"))

	assert.ErrorIs(t, pla.CheckConsistency(d, f, don, r), pla.ErrNotUniverse)
}

func mustParse(t *testing.T, d *cube.Descriptor, s string) cube.Cube {
	t.Helper()
	c, err := pla.ParseCube(d, s, nil)
	require.NoError(t, err)
	return c
}
