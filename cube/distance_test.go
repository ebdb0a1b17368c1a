package cube_test

import (
	"testing"

	"github.com/katalvlaran/espresso/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBinaryCube builds a cube over a descriptor with nBinary boolean
// variables (no mv vars, no output) from a literal like "1-0": '1' sets
// the v=1 literal only, '0' sets v=0 only, '-' sets both.
func parseBinaryCube(t *testing.T, d *cube.Descriptor, lits string) cube.Cube {
	t.Helper()
	c := d.NewCube()
	for v, ch := range lits {
		switch ch {
		case '1':
			require.NoError(t, d.SetPart(&c, v, 1))
		case '0':
			require.NoError(t, d.SetPart(&c, v, 0))
		case '-':
			require.NoError(t, d.SetPart(&c, v, 0))
			require.NoError(t, d.SetPart(&c, v, 1))
		default:
			t.Fatalf("bad literal %q", ch)
		}
	}
	return c
}

func TestSetAndOrDiffXor(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	a := parseBinaryCube(t, d, "1-0")
	b := parseBinaryCube(t, d, "11-")

	r := d.NewCube()
	require.NoError(t, d.SetAnd(&r, a, b))
	assert.True(t, d.SetpEqual(r, parseBinaryCube(t, d, "110")))

	require.NoError(t, d.SetOr(&r, a, b))
	assert.True(t, d.SetpEqual(r, parseBinaryCube(t, d, "1--")))

	require.NoError(t, d.SetXor(&r, a, b))
	v0, _ := d.GetPart(r, 0, 0)
	v0b, _ := d.GetPart(r, 0, 1)
	assert.False(t, v0)
	assert.False(t, v0b) // var0 is empty in the XOR (raw bitwise op, not cube-valid)
	v1, _ := d.GetPart(r, 1, 1)
	assert.False(t, v1) // var1 collapsed to literal "0"

	require.NoError(t, d.SetDiff(&r, a, b))
	// a \ b keeps exactly the bits of a not present in b: var1 reduces to "0".
	d1p0, _ := d.GetPart(r, 1, 0)
	d1p1, _ := d.GetPart(r, 1, 1)
	assert.True(t, d1p0)
	assert.False(t, d1p1)
}

func TestSetpImpliesDisjoint(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	full := parseBinaryCube(t, d, "--")
	one := parseBinaryCube(t, d, "10")
	assert.True(t, d.SetpImplies(one, full))
	assert.False(t, d.SetpImplies(full, one))

	other := parseBinaryCube(t, d, "01")
	assert.True(t, d.SetpDisjoint(one, other))
	assert.False(t, d.SetpDisjoint(one, full))
}

func TestSetOrdSetDist(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	full := parseBinaryCube(t, d, "--")
	assert.Equal(t, 4, d.SetOrd(full))

	one := parseBinaryCube(t, d, "10")
	assert.Equal(t, 2, d.SetOrd(one))
	assert.Equal(t, 2, d.SetDist(full, one))
}

func TestCdist0Cdist01Cdist(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	a := parseBinaryCube(t, d, "1-0")
	b := parseBinaryCube(t, d, "1-1")
	assert.False(t, d.Cdist0(a, b)) // disjoint on var 2
	assert.Equal(t, 1, d.Cdist01(a, b))
	assert.Equal(t, 1, d.Cdist(a, b))

	c := parseBinaryCube(t, d, "0-1")
	assert.True(t, d.Cdist0(parseBinaryCube(t, d, "0--"), c))
	assert.Equal(t, 2, d.Cdist01(a, c)) // disjoint on var0 and var2
}

func TestConsensus(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	a := parseBinaryCube(t, d, "1-0")
	b := parseBinaryCube(t, d, "1-1")
	require.Equal(t, 1, d.Cdist01(a, b))

	r := d.NewCube()
	require.NoError(t, d.Consensus(&r, a, b))
	assert.True(t, d.SetpEqual(r, parseBinaryCube(t, d, "1--")))
}

func TestForceLower(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	a := parseBinaryCube(t, d, "1-")
	b := parseBinaryCube(t, d, "01")
	require.Equal(t, 1, d.Cdist01(a, b)) // disjoint on var0 only

	xlower := d.NewCube()
	require.NoError(t, d.ForceLower(&xlower, a, b))
	// a's bits on var0 (the conflicting variable) must be forced low.
	got, _ := d.GetPart(xlower, 0, 1)
	assert.True(t, got)
}

func TestCactive(t *testing.T) {
	d, err := cube.NewDescriptor(3, nil, 0)
	require.NoError(t, err)

	full := parseBinaryCube(t, d, "---")
	assert.Equal(t, -1, d.Cactive(full))

	oneActive := parseBinaryCube(t, d, "1--")
	assert.Equal(t, 0, d.Cactive(oneActive))

	twoActive := parseBinaryCube(t, d, "10-")
	assert.Equal(t, -1, d.Cactive(twoActive))
}

func TestCcommon(t *testing.T) {
	d, err := cube.NewDescriptor(2, nil, 0)
	require.NoError(t, err)

	a := parseBinaryCube(t, d, "1-")
	b := parseBinaryCube(t, d, "0-")
	cof := d.NewCube()
	assert.True(t, d.Ccommon(a, b, cof)) // both active (non-full) on var0

	full := parseBinaryCube(t, d, "--")
	assert.False(t, d.Ccommon(full, b, cof)) // a∨cof is full everywhere
}
