package asm

import (
	"fmt"
	"strings"
)

// expandPseudo recognises a pseudo-instruction mnemonic and expands it
// to a real Instruction or a Fusion tree of real instructions. ok is
// false for any mnemonic that isn't a pseudo, in which case the caller
// falls through to dispatch. Expansion happens after mnemonic rename
// canonicalisation and before dispatch, per spec.md §4.5. vmsge[u].vx
// is ambiguous: its shapes are tried in a fixed order, joining every
// attempt's error with ", or " when none admit. fscsr/fsrm/fsflags and
// fsrmi/fsflagsi pick their shape by operand count instead.
func expandPseudo(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	switch mnemonic {
	case "nop":
		return mustDispatch("addi", "x0, x0, 0", ctx)

	case "mv":
		return rewriteDispatch("addi", raw, ", 0", ctx)

	case "not":
		return rewriteDispatch("xori", raw, ", -1", ctx)

	case "neg":
		return twoToThreeReversed("sub", "x0", raw, ctx)
	case "negw":
		return twoToThreeReversed("subw", "x0", raw, ctx)

	case "seqz":
		return rewriteDispatch("sltiu", raw, ", 1", ctx)
	case "snez":
		return twoToThreeReversed("sltu", "x0", raw, ctx)
	case "sltz":
		return rewriteDispatch("slt", raw, ", x0", ctx)
	case "sgtz":
		return twoToThreeReversed("slt", "x0", raw, ctx)

	case "beqz":
		return branchZero("beq", raw, ctx)
	case "bnez":
		return branchZero("bne", raw, ctx)
	case "blez":
		return branchZeroReversed("bge", raw, ctx)
	case "bgez":
		return branchZero("bge", raw, ctx)
	case "bltz":
		return branchZero("blt", raw, ctx)
	case "bgtz":
		return branchZeroReversed("blt", raw, ctx)

	case "j":
		return mustDispatch("jal", "x0, "+raw, ctx)
	case "jr":
		return mustDispatch("jalr", "x0, 0("+strings.TrimSpace(raw)+")", ctx)
	case "ret":
		return mustDispatch("jalr", "x0, 0(ra)", ctx)

	case "call":
		return expandCallTail("ra", raw, ctx)
	case "tail":
		return expandCallTail("x0", raw, ctx)

	case "la":
		return expandLa(raw, ctx)

	case "li":
		return expandLi(raw)

	case "sext.b":
		return expandSextShift("sext.b", raw, 64-8, ctx)
	case "sext.h":
		return expandSextShift("sext.h", raw, 64-16, ctx)
	case "sext.w":
		return rewriteDispatch("addiw", raw, ", 0", ctx)
	case "zext.b":
		return rewriteDispatch("andi", raw, ", 255", ctx)
	case "zext.h":
		return expandZextShift("zext.h", raw, 64-16, ctx)
	case "zext.w":
		return expandZextShift("zext.w", raw, 64-32, ctx)

	case "fmv.s":
		return fsgnjSelf("fsgnj.s", raw, ctx)
	case "fabs.s":
		return fsgnjSelf("fsgnjx.s", raw, ctx)
	case "fneg.s":
		return fsgnjSelf("fsgnjn.s", raw, ctx)
	case "fmv.d":
		return fsgnjSelf("fsgnj.d", raw, ctx)
	case "fabs.d":
		return fsgnjSelf("fsgnjx.d", raw, ctx)
	case "fneg.d":
		return fsgnjSelf("fsgnjn.d", raw, ctx)

	case "bgt":
		return branchSwapped("blt", raw, ctx)
	case "ble":
		return branchSwapped("bge", raw, ctx)
	case "bgtu":
		return branchSwapped("bltu", raw, ctx)
	case "bleu":
		return branchSwapped("bgeu", raw, ctx)

	case "jal":
		if len(splitOperands(raw)) == 1 {
			return mustDispatch("jal", "x1, "+strings.TrimSpace(raw), ctx)
		}
		return Instruction{}, false, nil
	case "jalr":
		if len(splitOperands(raw)) == 1 {
			return mustDispatch("jalr", "x1, 0("+strings.TrimSpace(raw)+")", ctx)
		}
		return Instruction{}, false, nil

	case "rdinstret":
		return csrReadOnly("instret", raw, ctx)
	case "rdinstreth":
		return csrReadOnly("instreth", raw, ctx)
	case "rdcycle":
		return csrReadOnly("cycle", raw, ctx)
	case "rdcycleh":
		return csrReadOnly("cycleh", raw, ctx)

	case "csrr":
		return csrShortform("csrrs", raw, true, ctx)
	case "csrw":
		return csrShortform("csrrw", raw, false, ctx)
	case "csrs":
		return csrShortform("csrrs", raw, false, ctx)
	case "csrc":
		return csrShortform("csrrc", raw, false, ctx)
	case "csrwi":
		return csriShortform("csrrwi", raw, ctx)
	case "csrsi":
		return csriShortform("csrrsi", raw, ctx)
	case "csrci":
		return csriShortform("csrrci", raw, ctx)

	case "fscsr":
		return ambiguousCsrPseudo("csrrw", "fcsr", raw, ctx)
	case "fsrm":
		return ambiguousCsrPseudo("csrrw", "frm", raw, ctx)
	case "fsflags":
		return ambiguousCsrPseudo("csrrw", "fflags", raw, ctx)

	case "frcsr":
		return csrReadOnly("fcsr", raw, ctx)
	case "frrm":
		return csrReadOnly("frm", raw, ctx)
	case "frflags":
		return csrReadOnly("fflags", raw, ctx)
	case "fsrmi":
		return ambiguousCsriPseudo("csrrwi", "frm", raw, ctx)
	case "fsflagsi":
		return ambiguousCsriPseudo("csrrwi", "fflags", raw, ctx)

	case "vmsge.vx":
		return expandVmsge("vmsge.vx", raw, ctx)
	case "vmsgeu.vx":
		return expandVmsge("vmsgeu.vx", raw, ctx)

	case "vneg.v":
		return rewriteDispatch("vrsub.vx", raw, ", x0", ctx)
	case "vnot.v":
		return rewriteDispatch("vxor.vx", raw, ", x0", ctx)
	case "vwcvt.x.x.v":
		return rewriteDispatch("vwadd.vx", raw, ", x0", ctx)
	case "vwcvtu.x.x.v":
		return rewriteDispatch("vwaddu.vx", raw, ", x0", ctx)
	case "vncvt.x.x.w":
		return rewriteDispatch("vnsrl.wx", raw, ", x0", ctx)

	case "vmsgt.vv":
		return vectorCompareSwapped("vmslt.vv", raw, ctx)
	case "vmsgtu.vv":
		return vectorCompareSwapped("vmsltu.vv", raw, ctx)
	case "vmsge.vv":
		return vectorCompareSwapped("vmsle.vv", raw, ctx)
	case "vmsgeu.vv":
		return vectorCompareSwapped("vmsleu.vv", raw, ctx)
	case "vmfgt.vv":
		return vectorCompareSwapped("vmflt.vv", raw, ctx)
	case "vmfge.vv":
		return vectorCompareSwapped("vmfle.vv", raw, ctx)

	case "vmslt.vi":
		return vectorCompareImmOffset("vmsle.vi", raw, -1, ctx)
	case "vmsltu.vi":
		return vectorCompareImmOffset("vmsleu.vi", raw, -1, ctx)
	case "vmsge.vi":
		return vectorCompareImmOffset("vmsgt.vi", raw, -1, ctx)
	case "vmsgeu.vi":
		return vectorCompareImmOffset("vmsgtu.vi", raw, -1, ctx)

	case "vfneg.v":
		return vectorSelfOp("vfsgnjn.vv", raw, ctx)
	case "vfabs.v":
		return vectorSelfOp("vfsgnjx.vv", raw, ctx)

	case "vmmv.m":
		return vectorMaskSelf("vmand.mm", raw, ctx)
	case "vmnot.m":
		return vectorMaskSelf("vmnand.mm", raw, ctx)
	case "vmclr.m":
		return vectorMaskOnly("vmxor.mm", raw, ctx)
	case "vmset.m":
		return vectorMaskOnly("vmxnor.mm", raw, ctx)
	}

	return Instruction{}, false, nil
}

func mustDispatch(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	instr, err := dispatch(mnemonic, raw, ctx)
	return instr, true, err
}

// rewriteDispatch appends a fixed suffix to the raw operand text and
// dispatches as the given real mnemonic: the shape every "two operand
// register pseudo" (mv, not, seqz, …) shares.
func rewriteDispatch(mnemonic, raw, suffix string, ctx dispatchContext) (Instruction, bool, error) {
	instr, err := dispatch(mnemonic, strings.TrimSpace(raw)+suffix, ctx)
	return instr, true, err
}

// twoToThreeReversed turns "rd, rs" into "rd, <fixed>, rs" (neg, sgtz, …).
func twoToThreeReversed(mnemonic, fixed, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], fixed, toks[1]), ctx)
	return instr, true, err
}

// branchZero turns "rs, label" into "rs, x0, label".
func branchZero(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, x0, %s", toks[0], toks[1]), ctx)
	return instr, true, err
}

// branchZeroReversed turns "rs, label" into "x0, rs, label" (blez, bgtz).
func branchZeroReversed(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("x0, %s, %s", toks[0], toks[1]), ctx)
	return instr, true, err
}

// expandCallTail builds the auipc+jalr Fusion pair "call"/"tail" expand
// to. Without a binary encoder in scope, the full pc-relative offset is
// carried on the auipc's immediate and the jalr's displacement is left
// at zero, rather than splitting into the real hi20/lo12 halves — see
// DESIGN.md.
func expandCallTail(linkReg, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 1); err != nil {
		return Instruction{}, true, err
	}
	target, ok := ctx.labels[toks[0]]
	if !ok {
		return Instruction{}, true, fmt.Errorf("%w: %s", ErrUnknownLabel, toks[0])
	}
	offset := int32(target - ctx.address)
	auipc, err := dispatch("auipc", fmt.Sprintf("%s, %d", linkReg, offset), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	jalr, err := dispatch("jalr", fmt.Sprintf("%s, 0(%s)", linkReg, linkReg), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	return *fuse(&auipc, &jalr), true, nil
}

// expandLa builds the auipc+addi Fusion pair "la" expands to, the same
// simplification as expandCallTail.
func expandLa(raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	target, ok := ctx.labels[toks[1]]
	if !ok {
		return Instruction{}, true, fmt.Errorf("%w: %s", ErrUnknownLabel, toks[1])
	}
	offset := int32(target - ctx.address)
	auipc, err := dispatch("auipc", fmt.Sprintf("%s, %d", toks[0], offset), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	addi, err := dispatch("addi", fmt.Sprintf("%s, %s, 0", toks[0], toks[0]), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	return *fuse(&auipc, &addi), true, nil
}

// expandLi tries, in order, a single addi (12-bit signed range) and a
// lui+addi Fusion (32-bit signed range). Larger constants are out of
// this assembler's li support — see DESIGN.md "li range".
func expandLi(raw string) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	rd, err := parseIntReg(toks[0])
	if err != nil {
		return Instruction{}, true, err
	}
	imm, err := parseWideImmediate(toks[1])
	if err != nil {
		return Instruction{}, true, err
	}

	var errs []string

	if imm >= -2048 && imm <= 2047 {
		return Instruction{Op: "addi", Format: FormatI, I: I{Rd: rd, Rs1: 0, Imm12: int32(imm)}}, true, nil
	}
	errs = append(errs, "addi shape: immediate exceeds 12-bit signed range")

	if imm >= -(1<<31) && imm <= 1<<31-1 {
		lo := int32(imm & 0xfff)
		if lo >= 0x800 {
			lo -= 0x1000
		}
		hi := int32((imm - int64(lo)) >> 12)
		lui := Instruction{Op: "lui", Format: FormatU, U: U{Rd: rd, Imm20: hi}}
		addi := Instruction{Op: "addi", Format: FormatI, I: I{Rd: rd, Rs1: rd, Imm12: lo}}
		return *fuse(&lui, &addi), true, nil
	}
	errs = append(errs, "lui+addi shape: immediate exceeds 32-bit signed range")

	return Instruction{}, true, fmt.Errorf("%w: %s", ErrPseudoAmbiguity, strings.Join(errs, " or "))
}

func parseWideImmediate(tok string) (int64, error) {
	v, err := parseImmediate(tok)
	return int64(v), err
}

func csrShortform(mnemonic, raw string, hasResult bool, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if hasResult {
		if err := expectOperands(toks, 2); err != nil {
			return Instruction{}, true, err
		}
		instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, x0", toks[0], toks[1]), ctx)
		return instr, true, err
	}
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("x0, %s, %s", toks[0], toks[1]), ctx)
	return instr, true, err
}

func csriShortform(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("x0, %s, %s", toks[0], toks[1]), ctx)
	return instr, true, err
}

// ambiguousCsrPseudo handles fscsr/fsrm/fsflags, which accept either
// "rd, rs1" (result kept) or "rs1" (result discarded to x0). The shape is
// chosen by operand count alone and only that shape is parsed, so a parse
// failure reports that shape's error only; the other shape is not tried
// and no errors are joined. Any other operand count fails with
// ErrPseudoAmbiguity naming both accepted shapes.
func ambiguousCsrPseudo(mnemonic, csr, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	switch len(toks) {
	case 2:
		instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], csr, toks[1]), ctx)
		return instr, true, err
	case 1:
		instr, err := dispatch(mnemonic, fmt.Sprintf("x0, %s, %s", csr, toks[0]), ctx)
		return instr, true, err
	default:
		return Instruction{}, true, fmt.Errorf("%w: expected \"rd, rs1\" or \"rs1\", got %d operands",
			ErrPseudoAmbiguity, len(toks))
	}
}

// expandVmsge implements vmsge(u).vx, which has no direct machine
// encoding and is always synthesised from vmslt(u).vx plus a mask
// inversion. Three admissible shapes are tried in order: unmasked
// (2-instruction Fusion), masked with vd distinct from v0 (2-instruction
// Fusion using vmxor.mm), and masked with an explicit scratch register
// for vd equal to the mask (3 instructions as Fusion(Fusion(a, b), c),
// two levels deep). The scratch shape always writes its result to v0 and
// does not read the vd token, so it has no separate form for a vd other
// than v0. Every shape's failure is joined on total failure.
func expandVmsge(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	base := "vmslt.vx"
	if mnemonic == "vmsgeu.vx" {
		base = "vmsltu.vx"
	}
	toks := splitOperands(raw)

	var errs []string

	if len(toks) == 3 {
		slt, err := dispatch(base, fmt.Sprintf("%s, %s, %s", toks[0], toks[1], toks[2]), ctx)
		if err == nil {
			invert, err2 := dispatch("vmnand.mm", fmt.Sprintf("%s, %s, %s", toks[0], toks[0], toks[0]), ctx)
			if err2 == nil {
				return *fuse(&slt, &invert), true, nil
			}
			errs = append(errs, "unmasked shape: "+err2.Error())
		} else {
			errs = append(errs, "unmasked shape: "+err.Error())
		}
	} else {
		errs = append(errs, "unmasked shape: expected 3 operands")
	}

	if len(toks) == 4 && toks[3] == "v0.t" && toks[0] != "v0" {
		slt, err := dispatch(base, fmt.Sprintf("%s, %s, %s", toks[0], toks[1], toks[2]), ctx)
		if err == nil {
			invert, err2 := dispatch("vmxor.mm", fmt.Sprintf("%s, %s, v0", toks[0], toks[0]), ctx)
			if err2 == nil {
				return *fuse(&slt, &invert), true, nil
			}
			errs = append(errs, "masked (vd != v0) shape: "+err2.Error())
		} else {
			errs = append(errs, "masked (vd != v0) shape: "+err.Error())
		}
	} else {
		errs = append(errs, "masked (vd != v0) shape: expected \"vd, vs2, rs1, v0.t\" with vd distinct from v0")
	}

	if len(toks) == 5 && toks[3] == "v0.t" {
		scratch := toks[4]
		slt, err := dispatch(base, fmt.Sprintf("%s, %s, %s", scratch, toks[1], toks[2]), ctx)
		if err == nil {
			andn, err2 := dispatch("vmandn.mm", fmt.Sprintf("%s, %s, v0", scratch, scratch), ctx)
			if err2 == nil {
				final, err3 := dispatch("vmandn.mm", fmt.Sprintf("v0, v0, %s", scratch), ctx)
				if err3 == nil {
					inner := fuse(&slt, &andn)
					return *fuse(inner, &final), true, nil
				}
				errs = append(errs, "masked with scratch shape: "+err3.Error())
			} else {
				errs = append(errs, "masked with scratch shape: "+err2.Error())
			}
		} else {
			errs = append(errs, "masked with scratch shape: "+err.Error())
		}
	} else {
		errs = append(errs, "masked with scratch shape: expected \"vd, vs2, rs1, v0.t, vtemp\"")
	}

	return Instruction{}, true, fmt.Errorf("%w: %s", ErrPseudoAmbiguity, strings.Join(errs, ", or "))
}

// expandSextShift builds the slli+srai Fusion pair sext.b/sext.h expand
// to: a left shift into the top bit followed by an arithmetic right
// shift back, sign-extending from the given bit width.
func expandSextShift(mnemonic, raw string, shift int32, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	slli, err := dispatch("slli", fmt.Sprintf("%s, %s, %d", toks[0], toks[1], shift), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	srai, err := dispatch("srai", fmt.Sprintf("%s, %s, %d", toks[0], toks[0], shift), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	return *fuse(&slli, &srai), true, nil
}

// expandZextShift builds the slli+srli Fusion pair zext.h/zext.w expand
// to: the same shift-pair idea as expandSextShift but zero-extending via
// a logical right shift.
func expandZextShift(mnemonic, raw string, shift int32, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	slli, err := dispatch("slli", fmt.Sprintf("%s, %s, %d", toks[0], toks[1], shift), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	srli, err := dispatch("srli", fmt.Sprintf("%s, %s, %d", toks[0], toks[0], shift), ctx)
	if err != nil {
		return Instruction{}, true, err
	}
	return *fuse(&slli, &srli), true, nil
}

// fsgnjSelf handles fmv.s/.d, fabs.s/.d, fneg.s/.d, all of which are a
// sign-injection real instruction applied to a register and itself.
func fsgnjSelf(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], toks[1], toks[1]), ctx)
	return instr, true, err
}

// branchSwapped handles bgt/ble/bgtu/bleu, none of which exist as real
// instructions: each rewrites to the complementary real branch with its
// two register operands swapped.
func branchSwapped(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[1], toks[0], toks[2]), ctx)
	return instr, true, err
}

// csrReadOnly handles the rdinstret[h]/rdcycle[h]/frcsr/frrm/frflags
// family: a single-operand read of a fixed CSR into rd via csrrs, x0.
func csrReadOnly(csr, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 1); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch("csrrs", fmt.Sprintf("%s, %s, x0", toks[0], csr), ctx)
	return instr, true, err
}

// ambiguousCsriPseudo handles fsrmi/fsflagsi, which accept either
// "rd, uimm" (result kept) or "uimm" (result discarded to x0).
func ambiguousCsriPseudo(mnemonic, csr, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	switch len(toks) {
	case 2:
		instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], csr, toks[1]), ctx)
		return instr, true, err
	case 1:
		instr, err := dispatch(mnemonic, fmt.Sprintf("x0, %s, %s", csr, toks[0]), ctx)
		return instr, true, err
	default:
		return Instruction{}, true, fmt.Errorf("%w: expected \"rd, uimm\" or \"uimm\", got %d operands",
			ErrPseudoAmbiguity, len(toks))
	}
}

// vectorCompareSwapped handles the vmsgt(u)/vmsge(u)/vmfgt/vmfge ".vv"
// pseudos, none of which have a direct encoding: each rewrites to its
// reversed-comparison real mnemonic with vs1/vs2 swapped.
func vectorCompareSwapped(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		if e2 := expectOperands(toks, 4); e2 != nil {
			return Instruction{}, true, fmt.Errorf("%w: expected 3 or 4 operands", ErrMalformedOperandList)
		}
	}
	rewritten := fmt.Sprintf("%s, %s, %s", toks[0], toks[2], toks[1])
	if len(toks) == 4 {
		rewritten += ", " + toks[3]
	}
	instr, err := dispatch(mnemonic, rewritten, ctx)
	return instr, true, err
}

// vectorCompareImmOffset handles vmslt(u).vi/vmsge(u).vi, none of which
// have a direct encoding: each rewrites to the adjacent real vmsle(u)/
// vmsgt(u) immediate comparison with the immediate shifted by offset
// (either is "x < k" as "x <= k-1" or "x >= k" as "x > k-1").
func vectorCompareImmOffset(mnemonic, raw string, offset int32, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 3); err != nil {
		if e2 := expectOperands(toks, 4); e2 != nil {
			return Instruction{}, true, fmt.Errorf("%w: expected 3 or 4 operands", ErrMalformedOperandList)
		}
	}
	imm, err := parseImmediate(toks[2])
	if err != nil {
		return Instruction{}, true, err
	}
	rewritten := fmt.Sprintf("%s, %s, %d", toks[0], toks[1], imm+offset)
	if len(toks) == 4 {
		rewritten += ", " + toks[3]
	}
	instr, err := dispatch(mnemonic, rewritten, ctx)
	return instr, true, err
}

// vectorSelfOp handles vfneg.v/vfabs.v, both sign-injection reductions
// of a vector register against itself via the ".vv" form.
func vectorSelfOp(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		if e2 := expectOperands(toks, 3); e2 != nil {
			return Instruction{}, true, fmt.Errorf("%w: expected 2 or 3 operands", ErrMalformedOperandList)
		}
	}
	rewritten := fmt.Sprintf("%s, %s, %s", toks[0], toks[1], toks[1])
	if len(toks) == 3 {
		rewritten += ", " + toks[2]
	}
	instr, err := dispatch(mnemonic, rewritten, ctx)
	return instr, true, err
}

// vectorMaskSelf handles vmmv.m/vmnot.m, mask-register operations with
// an implicit second source equal to the first (vd, vs -> vd, vs, vs).
func vectorMaskSelf(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 2); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], toks[1], toks[1]), ctx)
	return instr, true, err
}

// vectorMaskOnly handles vmclr.m/vmset.m, mask-register operations with
// every operand equal to the single destination (vd -> vd, vd, vd).
func vectorMaskOnly(mnemonic, raw string, ctx dispatchContext) (Instruction, bool, error) {
	toks := splitOperands(raw)
	if err := expectOperands(toks, 1); err != nil {
		return Instruction{}, true, err
	}
	instr, err := dispatch(mnemonic, fmt.Sprintf("%s, %s, %s", toks[0], toks[0], toks[0]), ctx)
	return instr, true, err
}
