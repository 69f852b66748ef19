package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMv(t *testing.T) {
	instr, ok, err := expandPseudo("mv", "x1, x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "addi", instr.Op)
	assert.Equal(t, I{Rd: 1, Rs1: 2, Imm12: 0}, instr.I)
}

func TestExpandNeg(t *testing.T) {
	instr, ok, err := expandPseudo("neg", "x1, x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "sub", instr.Op)
	assert.Equal(t, R{Rd: 1, Rs1: 0, Rs2: 2}, instr.R)
}

func TestExpandBeqz(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"L": 12}, address: 4}
	instr, ok, err := expandPseudo("beqz", "x1, L", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, S{Rs1: 1, Rs2: 0, Imm12: 8}, instr.S)
}

func TestExpandJ(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"L": 20}, address: 4}
	instr, ok, err := expandPseudo("j", "L", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	assert.EqualValues(t, 0, instr.U.Rd)
	assert.EqualValues(t, 16, instr.U.Imm20)
}

func TestExpandLiSmall(t *testing.T) {
	instr, ok, err := expandPseudo("li", "x1, 5", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "addi", instr.Op)
	assert.EqualValues(t, 5, instr.I.Imm12)
}

func TestExpandLiFusion(t *testing.T) {
	instr, ok, err := expandPseudo("li", "x1, 100000", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, FormatFusion, instr.Format)
	leaves := Flatten(&instr)
	require.Len(t, leaves, 2)
	assert.Equal(t, "lui", leaves[0].Op)
	assert.Equal(t, "addi", leaves[1].Op)
}

func TestExpandCall(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"f": 40}, address: 8}
	instr, ok, err := expandPseudo("call", "f", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	leaves := Flatten(&instr)
	require.Len(t, leaves, 2)
	assert.Equal(t, "auipc", leaves[0].Op)
	assert.Equal(t, "jalr", leaves[1].Op)
}

func TestExpandVmsgeUnmasked(t *testing.T) {
	instr, ok, err := expandPseudo("vmsge.vx", "v1, v2, x3", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	leaves := Flatten(&instr)
	require.Len(t, leaves, 2)
	assert.Equal(t, "vmslt.vx", leaves[0].Op)
	assert.Equal(t, "vmnand.mm", leaves[1].Op)
}

func TestExpandVmsgeMaskedWithScratch(t *testing.T) {
	instr, ok, err := expandPseudo("vmsge.vx", "v0, v2, x3, v0.t, v4", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	leaves := Flatten(&instr)
	require.Len(t, leaves, 3)
}

func TestExpandVmsgeAllShapesFail(t *testing.T) {
	_, ok, err := expandPseudo("vmsge.vx", "v1", dispatchContext{})
	require.True(t, ok)
	require.ErrorIs(t, err, ErrPseudoAmbiguity)
}

func TestExpandFscsrBothShapes(t *testing.T) {
	instr, ok, err := expandPseudo("fscsr", "x1, x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csrr{Rd: 1, Csr: 0x003, Rs1: 2}, instr.Csrr)

	instr, ok, err = expandPseudo("fscsr", "x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csrr{Rd: 0, Csr: 0x003, Rs1: 2}, instr.Csrr)
}

func TestExpandSextZextShiftPairs(t *testing.T) {
	instr, ok, err := expandPseudo("sext.b", "x1, x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	leaves := Flatten(&instr)
	require.Len(t, leaves, 2)
	assert.Equal(t, "slli", leaves[0].Op)
	assert.EqualValues(t, 56, leaves[0].I.Imm12)
	assert.Equal(t, "srai", leaves[1].Op)
	assert.EqualValues(t, 56, leaves[1].I.Imm12)

	instr, ok, err = expandPseudo("zext.w", "x1, x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	leaves = Flatten(&instr)
	require.Len(t, leaves, 2)
	assert.Equal(t, "slli", leaves[0].Op)
	assert.Equal(t, "srli", leaves[1].Op)
	assert.EqualValues(t, 32, leaves[1].I.Imm12)
}

func TestExpandFloatSignInjectionPseudos(t *testing.T) {
	instr, ok, err := expandPseudo("fneg.s", "fa0, fa1", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "fsgnjn.s", instr.Op)
	assert.Equal(t, R{Rd: 10, Rs1: 11, Rs2: 11}, instr.R)
}

func TestExpandSwappedBranches(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"L": 16}, address: 4}
	instr, ok, err := expandPseudo("bgt", "x1, x2, L", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, S{Rs1: 2, Rs2: 1, Imm12: 12}, instr.S)
}

func TestExpandOneOperandJump(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"L": 20}, address: 4}
	instr, ok, err := expandPseudo("jal", "L", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	assert.EqualValues(t, 1, instr.U.Rd)

	_, ok, _ = expandPseudo("jal", "x1, L", ctx)
	require.False(t, ok)

	instr, ok, err = expandPseudo("jalr", "x5", ctx)
	require.True(t, ok)
	require.NoError(t, err)
	assert.EqualValues(t, 1, instr.I.Rd)
	assert.EqualValues(t, 5, instr.I.Rs1)
}

func TestExpandCsrReadOnlyPseudos(t *testing.T) {
	instr, ok, err := expandPseudo("rdcycle", "x1", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csrr{Rd: 1, Csr: 0xc00, Rs1: 0}, instr.Csrr)

	instr, ok, err = expandPseudo("frrm", "x2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csrr{Rd: 2, Csr: 0x002, Rs1: 0}, instr.Csrr)
}

func TestExpandFsrmiBothShapes(t *testing.T) {
	instr, ok, err := expandPseudo("fsrmi", "x1, 2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csri{Rd: 1, Csr: 0x002, Uimm: 2}, instr.Csri)

	instr, ok, err = expandPseudo("fsrmi", "3", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, Csri{Rd: 0, Csr: 0x002, Uimm: 3}, instr.Csri)
}

func TestExpandVectorCompareSwapped(t *testing.T) {
	instr, ok, err := expandPseudo("vmsgt.vv", "v1, v2, v3", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "vmslt.vv", instr.Op)
	assert.Equal(t, Opivv{Vd: 1, Vs2: 3, Vs1: 2, Vm: false}, instr.Opivv)
}

func TestExpandVectorCompareImmOffset(t *testing.T) {
	instr, ok, err := expandPseudo("vmslt.vi", "v1, v2, 5", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "vmsle.vi", instr.Op)
	assert.EqualValues(t, 4, instr.Opivi.Imm5)
}

func TestExpandVectorMaskPseudos(t *testing.T) {
	instr, ok, err := expandPseudo("vmmv.m", "v1, v2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "vmand.mm", instr.Op)
	assert.Equal(t, Opivv{Vd: 1, Vs1: 2, Vs2: 2, Vm: false}, instr.Opmvv)

	instr, ok, err = expandPseudo("vmclr.m", "v3", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "vmxor.mm", instr.Op)
	assert.Equal(t, Opivv{Vd: 3, Vs1: 3, Vs2: 3, Vm: false}, instr.Opmvv)
}

func TestExpandVfnegVfabs(t *testing.T) {
	instr, ok, err := expandPseudo("vfneg.v", "v1, v2", dispatchContext{})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "vfsgnjn.vv", instr.Op)
}

func TestRenameVerbatimTable(t *testing.T) {
	cases := map[string]string{
		"vle1.v":       "vlm.v",
		"vse1.v":       "vsm.v",
		"vpopc.m":      "vcpop.m",
		"vmandnot.mm":  "vmandn.mm",
		"vmornot.mm":   "vmorn.mm",
		"vfredsum.vs":  "vfredusum.vs",
		"vfwredsum.vs": "vfwredusum.vs",
		"vfrsqrte7.v":  "vfrsqrt7.v",
		"vfrece7.v":    "vfrec7.v",
		"vmcpy.m":      "vmmv.m",
	}
	for old, want := range cases {
		assert.Equal(t, want, canonicalMnemonic(old), old)
	}
}
