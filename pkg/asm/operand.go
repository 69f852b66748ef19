package asm

import (
	"fmt"
	"strings"
)

// expectOperands checks the token count exactly matches n, producing
// ErrMalformedOperandList otherwise.
func expectOperands(tokens []string, n int) error {
	if len(tokens) != n {
		return fmt.Errorf("%w: expected %d operand(s), got %d", ErrMalformedOperandList, n, len(tokens))
	}
	return nil
}

// parseR parses "rd, rs1, rs2".
func parseR(raw string) (R, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return R{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return R{}, err
	}
	rs1, err := parseIntReg(toks[1])
	if err != nil {
		return R{}, err
	}
	rs2, err := parseIntReg(toks[2])
	if err != nil {
		return R{}, err
	}
	return R{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
}

// parseI parses "rd, rs1, imm".
func parseI(raw string) (I, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return I{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return I{}, err
	}
	rs1, err := parseIntReg(toks[1])
	if err != nil {
		return I{}, err
	}
	imm, err := parseImmediate(toks[2])
	if err != nil {
		return I{}, err
	}
	return I{Rd: rd, Rs1: rs1, Imm12: imm}, nil
}

// parseLoadAddress parses "rd, imm(rs1)", the addressing form loads and
// vector-scalar base-register instructions share.
func parseLoadAddress(raw string) (I, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return I{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return I{}, err
	}
	imm, rs1, err := parseAddressForm(toks[1])
	if err != nil {
		return I{}, err
	}
	return I{Rd: rd, Rs1: rs1, Imm12: imm}, nil
}

// parseStoreAddress parses "rs2, imm(rs1)".
func parseStoreAddress(raw string) (S, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return S{}, err
	}
	rs2, err := parseIntReg(toks[0])
	if err != nil {
		return S{}, err
	}
	imm, rs1, err := parseAddressForm(toks[1])
	if err != nil {
		return S{}, err
	}
	return S{Rs1: rs1, Rs2: rs2, Imm12: imm}, nil
}

// parseAddressForm parses "imm(reg)", returning the immediate and the
// base register index.
func parseAddressForm(tok string) (int32, uint32, error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadAddressForm, tok)
	}
	immTok := tok[:open]
	regTok := tok[open+1 : len(tok)-1]
	if immTok == "" {
		immTok = "0"
	}
	imm, err := parseImmediate(immTok)
	if err != nil {
		return 0, 0, err
	}
	reg, err := parseIntReg(regTok)
	if err != nil {
		return 0, 0, err
	}
	return imm, reg, nil
}

// parseBranch parses "rs1, rs2, label", resolving the label against the
// supplied table and computing a pc-relative offset per spec.md §5:
// imm = labels[label] - currentAddress.
func parseBranch(raw string, labels map[string]int64, currentAddress int64) (S, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return S{}, err
	}
	rs1, err := parseIntReg(toks[0])
	if err != nil {
		return S{}, err
	}
	rs2, err := parseIntReg(toks[1])
	if err != nil {
		return S{}, err
	}
	target, ok := labels[toks[2]]
	if !ok {
		return S{}, fmt.Errorf("%w: %s", ErrUnknownLabel, toks[2])
	}
	return S{Rs1: rs1, Rs2: rs2, Imm12: int32(target - currentAddress)}, nil
}

// parseJumpLabel parses a single label operand for jal-style jumps,
// computing the same pc-relative offset as parseBranch.
func parseJumpLabel(raw string, labels map[string]int64, currentAddress int64) (int32, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 1); err != nil {
		return 0, err
	}
	target, ok := labels[toks[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownLabel, toks[0])
	}
	return int32(target - currentAddress), nil
}

// parseU parses "rd, imm".
func parseU(raw string) (U, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return U{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return U{}, err
	}
	imm, err := parseImmediate(toks[1])
	if err != nil {
		return U{}, err
	}
	return U{Rd: rd, Imm20: imm}, nil
}

// parseR4 parses "rd, rs1, rs2, rs3", the fused-multiply-add float shape.
func parseR4(raw string) (R4, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 4); err != nil {
		return R4{}, err
	}
	rd, err := parseFloatReg(toks[0])
	if err != nil {
		return R4{}, err
	}
	rs1, err := parseFloatReg(toks[1])
	if err != nil {
		return R4{}, err
	}
	rs2, err := parseFloatReg(toks[2])
	if err != nil {
		return R4{}, err
	}
	rs3, err := parseFloatReg(toks[3])
	if err != nil {
		return R4{}, err
	}
	return R4{Rd: rd, Rs1: rs1, Rs2: rs2, Rs3: rs3}, nil
}

// parseFR parses the float "rd, rs1, rs2" register-register shape
// (fadd.s-style).
func parseFR(raw string) (R, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return R{}, err
	}
	rd, err := parseFloatReg(toks[0])
	if err != nil {
		return R{}, err
	}
	rs1, err := parseFloatReg(toks[1])
	if err != nil {
		return R{}, err
	}
	rs2, err := parseFloatReg(toks[2])
	if err != nil {
		return R{}, err
	}
	return R{Rd: rd, Rs1: rs1, Rs2: rs2}, nil
}

// parseCsrr parses the register form of a CSR instruction: "rd, csr,
// rs1" — three syntactically distinct tokens. original_source's
// parse_csrr_format reuses the rs1 token for the csr token; spec.md §9
// treats that as a bug to fix, so this requires three separate tokens.
func parseCsrr(raw string) (Csrr, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return Csrr{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return Csrr{}, err
	}
	csr, err := parseCSR(toks[1])
	if err != nil {
		return Csrr{}, err
	}
	rs1, err := parseIntReg(toks[2])
	if err != nil {
		return Csrr{}, err
	}
	return Csrr{Rd: rd, Csr: csr, Rs1: rs1}, nil
}

// parseCsri parses the immediate form: "rd, csr, uimm" where uimm is a
// 5-bit unsigned value.
func parseCsri(raw string) (Csri, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return Csri{}, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return Csri{}, err
	}
	csr, err := parseCSR(toks[1])
	if err != nil {
		return Csri{}, err
	}
	uimm, err := parseImmediate(toks[2])
	if err != nil {
		return Csri{}, err
	}
	if uimm < 0 || uimm > 31 {
		return Csri{}, fmt.Errorf("%w: %s out of 5-bit unsigned range", ErrBadImmediate, toks[2])
	}
	return Csri{Rd: rd, Csr: csr, Uimm: uint32(uimm)}, nil
}
