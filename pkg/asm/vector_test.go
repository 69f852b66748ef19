package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVectorOperand(t *testing.T) {
	op, err := parseVectorOperand("v3")
	require.NoError(t, err)
	n, ok := op.AsRegister()
	assert.True(t, ok)
	assert.EqualValues(t, 3, n)
	assert.False(t, op.AsMask())

	op, err = parseVectorOperand("v0.t")
	require.NoError(t, err)
	_, ok = op.AsRegister()
	assert.False(t, ok)
	assert.True(t, op.AsMask())

	_, err = parseVectorOperand("v32")
	require.ErrorIs(t, err, ErrBadRegister)
}

func TestRequireRegisterRejectsMask(t *testing.T) {
	_, err := requireRegister("v0.t")
	require.ErrorIs(t, err, ErrVectorOperandKind)
}

func TestParseVtype(t *testing.T) {
	vtypei, err := parseVtype("e32", "m1", "ta", "ma")
	require.NoError(t, err)
	// (1<<7) | (1<<6) | (2<<3) | 0 = 128 + 64 + 16 = 208
	assert.EqualValues(t, 208, vtypei)

	_, err = parseVtype("e128", "m1", "ta", "ma")
	require.ErrorIs(t, err, ErrUnsupportedVtype)

	_, err = parseVtype("e32", "m1", "bogus", "ma")
	require.ErrorIs(t, err, ErrUnsupportedVtype)
}

func TestVm(t *testing.T) {
	masked, err := vm("")
	require.NoError(t, err)
	assert.False(t, masked)

	masked, err = vm("v0.t")
	require.NoError(t, err)
	assert.True(t, masked)

	_, err = vm("v1")
	require.ErrorIs(t, err, ErrMalformedOperandList)
}
