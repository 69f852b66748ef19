package asm

import "errors"

// The following sentinel errors classify the diagnostics a parser or the
// dispatcher can produce. Callers match on these with errors.Is; the
// human-readable message returned alongside always names the offending
// token or the expected grammar.
var (
	// ErrUnknownMnemonic indicates the first whitespace-delimited token
	// of an instruction line, after rename canonicalisation, is not
	// present in the dispatch table.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")

	// ErrMalformedOperandList indicates the operand substring did not
	// split into the expected number of comma-separated tokens, or that a
	// token with a fixed spelling (the "v0.t" mask marker, the "v0" merge
	// mask) was spelled otherwise.
	ErrMalformedOperandList = errors.New("malformed operand list")

	// ErrBadRegister indicates a token in a register position matched no
	// known register alias.
	ErrBadRegister = errors.New("bad register")

	// ErrBadCSR indicates a token in a CSR position is not in the CSR
	// symbol table.
	ErrBadCSR = errors.New("bad csr")

	// ErrBadImmediate indicates a token in an immediate position did not
	// parse as a signed integer in any accepted base.
	ErrBadImmediate = errors.New("bad immediate")

	// ErrBadAddressForm indicates a load/store address operand lacked the
	// "(reg)" wrapping or was otherwise malformed.
	ErrBadAddressForm = errors.New("bad address form")

	// ErrUnknownLabel indicates a branch or jump referenced a label not
	// present in the label table.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrUnsupportedVtype indicates a vsetvli-family operand specified
	// e128 (explicitly rejected) or an unrecognised sew/lmul/ta/ma token.
	ErrUnsupportedVtype = errors.New("unsupported vtype")

	// ErrPseudoAmbiguity indicates every admissible shape of an ambiguous
	// pseudo-instruction failed to parse.
	ErrPseudoAmbiguity = errors.New("no admissible pseudo-instruction shape matched")

	// ErrVectorOperandKind indicates a vector operand parsed to the wrong
	// member of the Register/Mask sum for its position (e.g. v0.t where a
	// plain vector register was required, or vice versa).
	ErrVectorOperandKind = errors.New("wrong vector operand kind")
)
