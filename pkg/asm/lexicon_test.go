package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntReg(t *testing.T) {
	n, err := parseIntReg("x5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	n, err = parseIntReg("t0")
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	_, err = parseIntReg("x32")
	require.ErrorIs(t, err, ErrBadRegister)
}

func TestParseFloatReg(t *testing.T) {
	n, err := parseFloatReg("fa0")
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)

	_, err = parseFloatReg("x5")
	require.ErrorIs(t, err, ErrBadRegister)
}

func TestParseCSR(t *testing.T) {
	addr, err := parseCSR("fcsr")
	require.NoError(t, err)
	assert.EqualValues(t, 0x003, addr)

	_, err = parseCSR("bogus")
	require.ErrorIs(t, err, ErrBadCSR)
}

func TestParseImmediate(t *testing.T) {
	cases := []struct {
		tok  string
		want int32
	}{
		{"10", 10},
		{"-10", -10},
		{"0x10", 16},
		{"-0x10", -16},
		{"0b101", 5},
		{"0o17", 15},
		{"+5", 5},
	}
	for _, c := range cases {
		v, err := parseImmediate(c.tok)
		require.NoError(t, err, c.tok)
		assert.Equal(t, c.want, v, c.tok)
	}

	_, err := parseImmediate("not-a-number")
	require.ErrorIs(t, err, ErrBadImmediate)

	_, err = parseImmediate("99999999999999999999")
	require.ErrorIs(t, err, ErrBadImmediate)
}
