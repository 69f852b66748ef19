package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// VectorOperand is the Register/Mask sum type carried over from
// original_source's operand/vector.rs VectorOperand enum: a vector
// operand position accepts either a plain vector register or the literal
// mask token "v0.t", and the two must never be conflated.
type VectorOperand struct {
	isMask   bool
	register uint32
}

// AsRegister returns the operand's register index and true if it is a
// plain vector register (not the mask token).
func (v VectorOperand) AsRegister() (uint32, bool) {
	if v.isMask {
		return 0, false
	}
	return v.register, true
}

// AsMask reports whether the operand is the "v0.t" mask token.
func (v VectorOperand) AsMask() bool {
	return v.isMask
}

func maskOperand() VectorOperand { return VectorOperand{isMask: true} }

func registerOperand(n uint32) VectorOperand { return VectorOperand{register: n} }

// parseVReg parses a plain vector register token ("v0".."v31"). It never
// accepts "v0.t" — use parseVectorOperand for positions where the mask
// token is admissible.
func parseVReg(tok string) (uint32, error) {
	if !strings.HasPrefix(tok, "v") {
		return 0, fmt.Errorf("%w: %s", ErrBadRegister, tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || n > 31 {
		return 0, fmt.Errorf("%w: %s", ErrBadRegister, tok)
	}
	return uint32(n), nil
}

// parseVectorOperand parses a token that may be either a plain vector
// register or the mask marker "v0.t".
func parseVectorOperand(tok string) (VectorOperand, error) {
	if tok == "v0.t" {
		return maskOperand(), nil
	}
	n, err := parseVReg(tok)
	if err != nil {
		return VectorOperand{}, err
	}
	return registerOperand(n), nil
}

// requireRegister extracts the plain-register member of a VectorOperand
// parsed from an unmasked position, e.g. vs1 which may never be v0.t.
func requireRegister(tok string) (uint32, error) {
	op, err := parseVectorOperand(tok)
	if err != nil {
		return 0, err
	}
	n, ok := op.AsRegister()
	if !ok {
		return 0, fmt.Errorf("%w: %s is a mask token, expected a vector register", ErrVectorOperandKind, tok)
	}
	return n, nil
}

// vm reports whether the trailing mask-enable token is present and, if
// so, whether it is exactly "v0.t" (the only admissible spelling). Per
// spec.md §4.3 and the Glossary, presence of the token sets Vm=true (the
// operation is masked by v0); its absence sets Vm=false (unmasked). The
// always-masked merge and never-masked move mnemonics do not use this:
// parseMaskedMerge and parseMaskless in dispatch.go fix Vm explicitly.
func vm(tok string) (bool, error) {
	if tok == "" {
		return false, nil
	}
	if tok == "v0.t" {
		return true, nil
	}
	return false, fmt.Errorf("%w: expected v0.t as the mask operand, got %s", ErrMalformedOperandList, tok)
}

// splitOperands splits a raw operand substring on commas, trimming
// whitespace from each token and dropping every empty token (so a
// trailing or doubled comma is ignored).
func splitOperands(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// vtype encodes sew/lmul/ta/ma into the 11-bit vtypei field per spec.md
// §3: vtypei = (vma<<7) | (vta<<6) | (vsew<<3) | vlmul. e128 is rejected
// outright (ErrUnsupportedVtype), matching original_source's explicit
// "E128 not yet supported" branch.
var sewEncoding = map[string]uint32{
	"e8": 0, "e16": 1, "e32": 2, "e64": 3,
}

var lmulEncoding = map[string]uint32{
	"mf8": 5, "mf4": 6, "mf2": 7,
	"m1": 0, "m2": 1, "m4": 2, "m8": 3,
}

func parseVtype(semTok, lmulTok, taTok, maTok string) (uint32, error) {
	if semTok == "e128" {
		return 0, fmt.Errorf("%w: e128", ErrUnsupportedVtype)
	}
	sew, ok := sewEncoding[semTok]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognised sew %q", ErrUnsupportedVtype, semTok)
	}
	lmul, ok := lmulEncoding[lmulTok]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognised lmul %q", ErrUnsupportedVtype, lmulTok)
	}
	var ta, ma uint32
	switch taTok {
	case "ta":
		ta = 1
	case "tu":
		ta = 0
	default:
		return 0, fmt.Errorf("%w: expected ta or tu, got %q", ErrUnsupportedVtype, taTok)
	}
	switch maTok {
	case "ma":
		ma = 1
	case "mu":
		ma = 0
	default:
		return 0, fmt.Errorf("%w: expected ma or mu, got %q", ErrUnsupportedVtype, maTok)
	}
	return (ma << 7) | (ta << 6) | (sew << 3) | lmul, nil
}
