package asm

import (
	"fmt"
	"regexp"
	"strconv"
)

// vecMemShape is the parsed description of a vector load/store mnemonic.
// Rather than enumerating every (family x nf x eew) combination as a
// literal match arm the way original_source's decoder.rs does, the
// regexes below classify the mnemonic once and the numeric parameters
// (Nf, EEW) are read straight out of the matched digits. See spec.md §9
// "Design Notes — table-driven vector memory ops".
type vecMemShape struct {
	Store         bool
	Indexed       bool
	Ordered       bool
	Strided       bool
	Segmented     bool
	WholeRegister bool
	FaultFirst    bool
	Nf            int
	EEW           EEW
}

var (
	reUnitStride         = regexp.MustCompile(`^(vl|vs)e(8|16|32|64)(ff)?\.v$`)
	reSegUnitStride      = regexp.MustCompile(`^(vl|vs)seg([1-8])e(8|16|32|64)(ff)?\.v$`)
	reStrided            = regexp.MustCompile(`^(vl|vs)se(8|16|32|64)\.v$`)
	reSegStrided         = regexp.MustCompile(`^(vl|vs)sseg([1-8])e(8|16|32|64)\.v$`)
	reIndexed            = regexp.MustCompile(`^(vl|vs)(ux|ox)ei(8|16|32|64)\.v$`)
	reSegIndexed         = regexp.MustCompile(`^(vl|vs)(ux|ox)seg([1-8])ei(8|16|32|64)\.v$`)
	reWholeRegisterLoad  = regexp.MustCompile(`^vl([1248])re(8|16|32|64)\.v$`)
	reWholeRegisterStore = regexp.MustCompile(`^vs([1248])r\.v$`)
)

func eewOf(s string) EEW {
	switch s {
	case "8":
		return E8
	case "16":
		return E16
	case "32":
		return E32
	default:
		return E64
	}
}

// classifyVecMem recognises a canonicalised (post-rename) vector
// load/store mnemonic and returns its shape. ok is false for any
// mnemonic outside this family.
func classifyVecMem(mnemonic string) (vecMemShape, bool) {
	// vlm.v/vsm.v, the mask load/store that vle1.v/vse1.v rename to, are
	// unit-stride with eew 8.
	if mnemonic == "vlm.v" || mnemonic == "vsm.v" {
		return vecMemShape{Store: mnemonic == "vsm.v", Nf: 1, EEW: E8}, true
	}
	if m := reUnitStride.FindStringSubmatch(mnemonic); m != nil {
		return vecMemShape{Store: m[1] == "vs", Nf: 1, EEW: eewOf(m[2]), FaultFirst: m[3] == "ff"}, true
	}
	if m := reSegUnitStride.FindStringSubmatch(mnemonic); m != nil {
		nf, _ := strconv.Atoi(m[2])
		return vecMemShape{Store: m[1] == "vs", Segmented: true, Nf: nf, EEW: eewOf(m[3]), FaultFirst: m[4] == "ff"}, true
	}
	if m := reStrided.FindStringSubmatch(mnemonic); m != nil {
		return vecMemShape{Store: m[1] == "vs", Strided: true, Nf: 1, EEW: eewOf(m[2])}, true
	}
	if m := reSegStrided.FindStringSubmatch(mnemonic); m != nil {
		nf, _ := strconv.Atoi(m[2])
		return vecMemShape{Store: m[1] == "vs", Strided: true, Segmented: true, Nf: nf, EEW: eewOf(m[3])}, true
	}
	if m := reIndexed.FindStringSubmatch(mnemonic); m != nil {
		return vecMemShape{Store: m[1] == "vs", Indexed: true, Ordered: m[2] == "ox", Nf: 1, EEW: eewOf(m[3])}, true
	}
	if m := reSegIndexed.FindStringSubmatch(mnemonic); m != nil {
		nf, _ := strconv.Atoi(m[3])
		return vecMemShape{Store: m[1] == "vs", Indexed: true, Ordered: m[2] == "ox", Segmented: true, Nf: nf, EEW: eewOf(m[4])}, true
	}
	if m := reWholeRegisterLoad.FindStringSubmatch(mnemonic); m != nil {
		nf, _ := strconv.Atoi(m[1])
		return vecMemShape{WholeRegister: true, Nf: nf, EEW: eewOf(m[2])}, true
	}
	if m := reWholeRegisterStore.FindStringSubmatch(mnemonic); m != nil {
		nf, _ := strconv.Atoi(m[1])
		return vecMemShape{Store: true, WholeRegister: true, Nf: nf, EEW: E8}, true
	}
	return vecMemShape{}, false
}

// parseVecMem builds the Instruction for a vector load/store mnemonic
// already classified by classifyVecMem.
func parseVecMem(shape vecMemShape, raw string) (Instruction, error) {
	toks := splitOperands(raw)

	switch {
	case shape.WholeRegister:
		if err := expectOperands(toks, 2); err != nil {
			return Instruction{}, err
		}
		reg, err := parseVReg(toks[0])
		if err != nil {
			return Instruction{}, err
		}
		rs1, err := parseAddrRegOnly(toks[1])
		if err != nil {
			return Instruction{}, err
		}
		if shape.Store {
			return Instruction{Format: FormatVsr, Vsr: Vsr{Vs3: reg, Rs1: rs1}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil
		}
		return Instruction{Format: FormatVlr, Vlr: Vlr{Vd: reg, Rs1: rs1}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil

	case shape.Indexed:
		if err := expectOperands(toks, 4); err != nil {
			if err := expectOperands(toks, 3); err != nil {
				return Instruction{}, fmt.Errorf("%w: expected 3 or 4 operands", ErrMalformedOperandList)
			}
		}
		reg, err := parseVReg(toks[0])
		if err != nil {
			return Instruction{}, err
		}
		base, err := parseAddrRegOnly(toks[1])
		if err != nil {
			return Instruction{}, err
		}
		index, err := parseVReg(toks[2])
		if err != nil {
			return Instruction{}, err
		}
		masked, err := vm(optionalToken(toks, 3))
		if err != nil {
			return Instruction{}, err
		}
		if shape.Store {
			return Instruction{Format: FormatVsx, Vsx: Vsx{Vs3: reg, Rs1: base, Vs2: index, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil
		}
		return Instruction{Format: FormatVlx, Vlx: Vlx{Vd: reg, Rs1: base, Vs2: index, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil

	case shape.Strided:
		if err := expectOperands(toks, 4); err != nil {
			if err := expectOperands(toks, 3); err != nil {
				return Instruction{}, fmt.Errorf("%w: expected 3 or 4 operands", ErrMalformedOperandList)
			}
		}
		reg, err := parseVReg(toks[0])
		if err != nil {
			return Instruction{}, err
		}
		base, err := parseAddrRegOnly(toks[1])
		if err != nil {
			return Instruction{}, err
		}
		stride, err := parseIntReg(toks[2])
		if err != nil {
			return Instruction{}, err
		}
		masked, err := vm(optionalToken(toks, 3))
		if err != nil {
			return Instruction{}, err
		}
		if shape.Store {
			return Instruction{Format: FormatVss, Vss: Vss{Vs3: reg, Rs1: base, Rs2: stride, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil
		}
		return Instruction{Format: FormatVls, Vls: Vls{Vd: reg, Rs1: base, Rs2: stride, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil

	default:
		if err := expectOperands(toks, 3); err != nil {
			if err := expectOperands(toks, 2); err != nil {
				return Instruction{}, fmt.Errorf("%w: expected 2 or 3 operands", ErrMalformedOperandList)
			}
		}
		reg, err := parseVReg(toks[0])
		if err != nil {
			return Instruction{}, err
		}
		base, err := parseAddrRegOnly(toks[1])
		if err != nil {
			return Instruction{}, err
		}
		masked, err := vm(optionalToken(toks, 2))
		if err != nil {
			return Instruction{}, err
		}
		if shape.Store {
			return Instruction{Format: FormatVs, Vs: Vs{Vs3: reg, Rs1: base, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil
		}
		return Instruction{Format: FormatVl, Vl: Vl{Vd: reg, Rs1: base, Vm: masked}, VecMem: VecMemParams{EEW: shape.EEW, Nf: shape.Nf}}, nil
	}
}

// parseAddrRegOnly parses a bare "(rs1)" base-address operand, the form
// vector memory instructions use (no displacement).
func parseAddrRegOnly(tok string) (uint32, error) {
	if len(tok) < 3 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return 0, fmt.Errorf("%w: %s", ErrBadAddressForm, tok)
	}
	return parseIntReg(tok[1 : len(tok)-1])
}

func optionalToken(toks []string, i int) string {
	if i >= len(toks) {
		return ""
	}
	return toks[i]
}
