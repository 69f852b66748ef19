package asm

import (
	"errors"
	"strings"
)

// CompilationResult is the linear output of a successful (or partially
// successful) compile: every decoded instruction in program order, and,
// in Lines, the 0-based source line that produced each one. Pseudo-
// instructions that expand to a Fusion tree contribute every leaf of
// that tree as a separate entry, each pointing back at the same source
// line — spec.md §5's instruction-index -> source-line map.
type CompilationResult struct {
	Instructions []Instruction
	Lines        []int
}

// bufferedLine is one instruction-kind source line carried from pass one
// into pass two, already stripped of comments and its mnemonic/operand
// text ready to dispatch.
type bufferedLine struct {
	sourceLine int
	mnemonic   string
	operands   string
	address    int64
}

// Compile runs the two-pass compile spec.md §5 describes. Pass one
// classifies every line, assigns instruction lines a monotonically
// increasing address (stride 4), and records label -> address bindings
// (a label binds to the address of the next instruction line; a label
// redefined later overwrites the earlier binding). Pass two decodes
// every buffered instruction with the complete label table in scope.
// Errors are collected per 0-based source line rather than aborting the
// compile; the returned map is empty (not nil) when there were none.
func Compile(source string) (*CompilationResult, map[int]string) {
	lines := strings.Split(source, "\n")

	labels := make(map[string]int64)
	var buffered []bufferedLine
	var address int64

	for i, line := range lines {
		cl := classify(line)
		switch cl.Kind {
		case LineEmpty:
			continue
		case LineLabel:
			labels[cl.Text] = address
		case LineInstruction:
			mnemonic, operands := splitMnemonic(cl.Text)
			buffered = append(buffered, bufferedLine{
				sourceLine: i,
				mnemonic:   canonicalMnemonic(mnemonic),
				operands:   operands,
				address:    address,
			})
			address += 4
		}
	}

	result := &CompilationResult{}
	errs := make(map[int]string)

	for _, bl := range buffered {
		ctx := dispatchContext{labels: labels, address: bl.address}

		instr, matched, err := expandPseudo(bl.mnemonic, bl.operands, ctx)
		if !matched {
			instr, err = dispatch(bl.mnemonic, bl.operands, ctx)
		}
		if err != nil {
			errs[bl.sourceLine] = err.Error()
			continue
		}

		for _, leaf := range Flatten(&instr) {
			result.Instructions = append(result.Instructions, *leaf)
			result.Lines = append(result.Lines, bl.sourceLine)
		}
	}

	return result, errs
}

// InstructionOrError is one streamed decode result: either a decoded
// Instruction or the error produced while decoding its source line, kept
// alongside the 0-based source line it came from. Mirrors the teacher's
// streaming pipeline (bassosimone-risc32's InstructionOrError /
// StartAssembler) as an additive convenience alongside the required
// synchronous Compile.
type InstructionOrError struct {
	Instruction Instruction
	Err         error
	Line        int
}

// CompileStream runs Compile and streams its results over a channel,
// closing the channel once every instruction (and every failing line's
// error) has been sent. Nothing is sent until Compile has finished both
// passes over the whole source; instructions come first in program order,
// then the errors in no defined order.
func CompileStream(source string) <-chan InstructionOrError {
	out := make(chan InstructionOrError)
	go func() {
		defer close(out)
		result, errs := Compile(source)
		for i, instr := range result.Instructions {
			out <- InstructionOrError{Instruction: instr, Line: result.Lines[i]}
		}
		for line, msg := range errs {
			out <- InstructionOrError{Err: errors.New(msg), Line: line}
		}
	}()
	return out
}
