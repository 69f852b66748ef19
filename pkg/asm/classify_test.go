package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line string
		want ClassifiedLine
	}{
		{"empty", "", ClassifiedLine{Kind: LineEmpty}},
		{"whitespace only", "   \t  ", ClassifiedLine{Kind: LineEmpty}},
		{"comment only", "  # a comment", ClassifiedLine{Kind: LineEmpty}},
		{"label", "loop:", ClassifiedLine{Kind: LineLabel, Text: "loop"}},
		{"label with trailing comment", "loop: # here", ClassifiedLine{Kind: LineLabel, Text: "loop"}},
		{"instruction", "add x1, x2, x3", ClassifiedLine{Kind: LineInstruction, Text: "add x1, x2, x3"}},
		{"instruction with comment", "add x1, x2, x3 # sum", ClassifiedLine{Kind: LineInstruction, Text: "add x1, x2, x3"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, classify(c.line))
		})
	}
}

func TestSplitMnemonic(t *testing.T) {
	mnemonic, operands := splitMnemonic("add x1, x2, x3")
	assert.Equal(t, "add", mnemonic)
	assert.Equal(t, "x1, x2, x3", operands)

	mnemonic, operands = splitMnemonic("ret")
	assert.Equal(t, "ret", mnemonic)
	assert.Equal(t, "", operands)

	mnemonic, operands = splitMnemonic("addi\tx1, x0, 1")
	assert.Equal(t, "addi", mnemonic)
	assert.Equal(t, "x1, x0, 1", operands)
}
