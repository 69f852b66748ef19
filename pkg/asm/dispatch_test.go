package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRType(t *testing.T) {
	instr, err := dispatch("add", "x1, x2, x3", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatR, instr.Format)
	assert.Equal(t, R{Rd: 1, Rs1: 2, Rs2: 3}, instr.R)
}

func TestDispatchBranch(t *testing.T) {
	ctx := dispatchContext{labels: map[string]int64{"L": 16}, address: 4}
	instr, err := dispatch("beq", "x1, x2, L", ctx)
	require.NoError(t, err)
	assert.Equal(t, FormatS, instr.Format)
	assert.EqualValues(t, 12, instr.S.Imm12)
}

func TestDispatchUnknownMnemonic(t *testing.T) {
	_, err := dispatch("bogusop", "x1, x2, x3", dispatchContext{})
	require.ErrorIs(t, err, ErrUnknownMnemonic)
}

func TestDispatchVectorArithmeticVV(t *testing.T) {
	instr, err := dispatch("vadd.vv", "v1, v2, v3", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatOpivv, instr.Format)
	assert.Equal(t, Opivv{Vd: 1, Vs2: 2, Vs1: 3, Vm: false}, instr.Opivv)

	instr, err = dispatch("vadd.vv", "v1, v2, v3, v0.t", dispatchContext{})
	require.NoError(t, err)
	assert.True(t, instr.Opivv.Vm)
}

func TestDispatchVectorArithmeticClassifiesMultiplyAsOpm(t *testing.T) {
	instr, err := dispatch("vmul.vv", "v1, v2, v3", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatOpmvv, instr.Format)
}

func TestDispatchVectorFloatScalar(t *testing.T) {
	instr, err := dispatch("vfadd.vf", "v1, v2, fa0", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatOpfvf, instr.Format)
	assert.Equal(t, Opfvf{Vd: 1, Vs2: 2, Rs1: 10, Vm: false}, instr.Opfvf)
}

func TestDispatchVectorImmediate(t *testing.T) {
	instr, err := dispatch("vadd.vi", "v1, v2, -5", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatOpivi, instr.Format)
	assert.EqualValues(t, -5, instr.Opivi.Imm5)
}

func TestDispatchVsetvli(t *testing.T) {
	instr, err := dispatch("vsetvli", "x1, x2, e32, m1, ta, ma", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVsetvli, instr.Format)
	assert.EqualValues(t, 1, instr.Vsetvli.Rd)
	assert.EqualValues(t, 2, instr.Vsetvli.Rs1)
}

func TestDispatchVectorMemoryUnitStride(t *testing.T) {
	instr, err := dispatch("vle32.v", "v1, (x2)", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVl, instr.Format)
	assert.EqualValues(t, E32, instr.VecMem.EEW)
	assert.EqualValues(t, 1, instr.VecMem.Nf)
}

func TestDispatchVectorMemorySegmented(t *testing.T) {
	instr, err := dispatch("vlseg4e16.v", "v4, (x2)", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVl, instr.Format)
	assert.EqualValues(t, E16, instr.VecMem.EEW)
	assert.EqualValues(t, 4, instr.VecMem.Nf)
}

func TestDispatchVectorMemoryIndexedOrdered(t *testing.T) {
	instr, err := dispatch("vloxei64.v", "v1, (x2), v3", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVlx, instr.Format)
	assert.EqualValues(t, E64, instr.VecMem.EEW)
}

func TestDispatchWholeRegisterStore(t *testing.T) {
	instr, err := dispatch("vs1r.v", "v1, (x2)", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVsr, instr.Format)
	assert.EqualValues(t, 1, instr.VecMem.Nf)
}

func TestDispatchUnary0VmvXS(t *testing.T) {
	instr, err := dispatch("vmv.x.s", "x1, v2", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVwxunary0, instr.Format)
	assert.EqualValues(t, 1, instr.Vwxunary0.Dest)
	assert.EqualValues(t, 2, instr.Vwxunary0.Vs2)
}

func TestDispatchUnary0Vcpop(t *testing.T) {
	instr, err := dispatch("vcpop.m", "x1, v2", dispatchContext{})
	require.NoError(t, err)
	assert.Equal(t, FormatVmunary0, instr.Format)
}

func TestRenameCanonicalisesDeprecatedMnemonics(t *testing.T) {
	assert.Equal(t, "vlm.v", canonicalMnemonic("vle1.v"))
	assert.Equal(t, "vcpop.m", canonicalMnemonic("vpopc.m"))
	assert.Equal(t, "vl2re8.v", canonicalMnemonic("vl2r.v"))
	assert.Equal(t, "add", canonicalMnemonic("add"))
}
