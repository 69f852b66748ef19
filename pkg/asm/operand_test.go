package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseR(t *testing.T) {
	r, err := parseR("x1, x2, x3")
	require.NoError(t, err)
	assert.Equal(t, R{Rd: 1, Rs1: 2, Rs2: 3}, r)

	_, err = parseR("x1, x2")
	require.ErrorIs(t, err, ErrMalformedOperandList)
}

func TestParseLoadAddress(t *testing.T) {
	i, err := parseLoadAddress("x1, 8(x2)")
	require.NoError(t, err)
	assert.Equal(t, I{Rd: 1, Rs1: 2, Imm12: 8}, i)

	i, err = parseLoadAddress("x1, (x2)")
	require.NoError(t, err)
	assert.Equal(t, I{Rd: 1, Rs1: 2, Imm12: 0}, i)

	_, err = parseLoadAddress("x1, 8")
	require.ErrorIs(t, err, ErrBadAddressForm)
}

func TestParseBranch(t *testing.T) {
	labels := map[string]int64{"loop": 20}
	s, err := parseBranch("x1, x2, loop", labels, 8)
	require.NoError(t, err)
	assert.Equal(t, S{Rs1: 1, Rs2: 2, Imm12: 12}, s)

	_, err = parseBranch("x1, x2, missing", labels, 8)
	require.ErrorIs(t, err, ErrUnknownLabel)
}

func TestParseCsrr(t *testing.T) {
	c, err := parseCsrr("x1, fcsr, x2")
	require.NoError(t, err)
	assert.Equal(t, Csrr{Rd: 1, Csr: 0x003, Rs1: 2}, c)

	// The operand list must have three syntactically distinct tokens;
	// this is the corrected contract (see DESIGN.md "CSR operand
	// positions"), unlike original_source's two-token reuse.
	_, err = parseCsrr("x1, fcsr")
	require.ErrorIs(t, err, ErrMalformedOperandList)
}

func TestParseCsri(t *testing.T) {
	c, err := parseCsri("x1, fcsr, 5")
	require.NoError(t, err)
	assert.Equal(t, Csri{Rd: 1, Csr: 0x003, Uimm: 5}, c)

	_, err = parseCsri("x1, fcsr, 99")
	require.ErrorIs(t, err, ErrBadImmediate)
}
