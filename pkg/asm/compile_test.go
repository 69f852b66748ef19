package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSimpleProgram(t *testing.T) {
	src := "addi x1, x0, 1\naddi x2, x0, 2\nadd x3, x1, x2\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	require.Len(t, result.Instructions, 3)
	assert.Equal(t, []int{0, 1, 2}, result.Lines)
	assert.Equal(t, "add", result.Instructions[2].Op)
}

func TestCompileForwardBranch(t *testing.T) {
	// Scenario: a forward branch to a label bound to the instruction two
	// slots ahead resolves to offset 8, per spec.md's address formula
	// imm = labels[L] - currentAddress (no encoder-introduced adjustment).
	src := "beq x1, x2, target\naddi x3, x0, 0\ntarget:\naddi x4, x0, 1\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	require.Len(t, result.Instructions, 3)
	assert.EqualValues(t, 8, result.Instructions[0].S.Imm12)
}

func TestCompileBackwardBranch(t *testing.T) {
	src := "loop:\naddi x1, x1, -1\nbne x1, x0, loop\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	require.Len(t, result.Instructions, 2)
	assert.EqualValues(t, -4, result.Instructions[1].S.Imm12)
}

func TestCompileCollectsErrorsWithoutAborting(t *testing.T) {
	src := "addi x1, x0, 1\nbogusmnemonic x1, x2, x3\naddi x2, x0, 2\n"
	result, errs := Compile(src)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[1], "unknown mnemonic")
	// The surrounding valid lines still decode.
	require.Len(t, result.Instructions, 2)
	assert.Equal(t, []int{0, 2}, result.Lines)
}

func TestCompileLastLabelDefinitionWins(t *testing.T) {
	src := "L:\naddi x1, x0, 1\nL:\naddi x2, x0, 2\nbeq x3, x0, L\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	// L rebinds to the address before the second addi (instruction index 1).
	assert.EqualValues(t, 4-8, result.Instructions[2].S.Imm12)
}

func TestCompileSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\naddi x1, x0, 1 # trailing\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	require.Len(t, result.Instructions, 1)
	assert.Equal(t, []int{2}, result.Lines)
}

func TestCompilePseudoInstructionExpandsToMultipleInstructions(t *testing.T) {
	src := "li x1, 100000\n"
	result, errs := Compile(src)
	require.Empty(t, errs)
	require.Len(t, result.Instructions, 2)
	assert.Equal(t, []int{0, 0}, result.Lines)
}

func TestCompileStreamMatchesCompile(t *testing.T) {
	src := "addi x1, x0, 1\naddi x2, x0, 2\n"
	result, errs := Compile(src)
	require.Empty(t, errs)

	var streamed []InstructionOrError
	for ioe := range CompileStream(src) {
		streamed = append(streamed, ioe)
	}
	require.Len(t, streamed, len(result.Instructions))
	for i, ioe := range streamed {
		assert.NoError(t, ioe.Err)
		assert.Equal(t, result.Instructions[i].Op, ioe.Instruction.Op)
	}
}
