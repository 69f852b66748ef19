package asm

import "fmt"

// unaryKind tags which of the eight RVV "unary0" families a mnemonic
// belongs to, each with its own dest/source register-file pairing.
// Grounded in original_source's decoder.rs match arms for
// Vwxunary0/Vrxunary0/Vxunary0/Vmunary0/Vwfunary0/Vrfunary0/Vfunary0/
// Vfunary1, folded into one table instead of one literal arm per
// mnemonic.
type unaryKind int

const (
	kindVwxunary0 unaryKind = iota // scalar(int) dest, vector source: vmv.x.s
	kindVrxunary0                  // vector dest, scalar(int) source: vmv.s.x
	kindVxunary0                   // vector dest, vector source, integer: vzext/vsext
	kindVmunary0IntDest             // scalar(int) dest, mask source: vcpop.m, vfirst.m
	kindVmunary0VecDest             // vector dest, mask or vector source: viota.m, vid.v, vmsbf.m, vmsif.m, vmsof.m
	kindVwfunary0                   // scalar(float) dest, vector source: vfmv.f.s
	kindVrfunary0                   // vector dest, scalar(float) source: vfmv.s.f
	kindVfunary0                    // vector dest, vector source, float: vfclass.v, vfsqrt.v, vfrec7.v, vfrsqrt7.v, vfcvt.*
	kindVfunary1                    // vector dest, vector source, widening/narrowing float convert: vfwcvt.*, vfncvt.*
)

var unaryTable = map[string]unaryKind{
	"vmv.x.s": kindVwxunary0,
	"vmv.s.x": kindVrxunary0,

	"vzext.vf2": kindVxunary0, "vzext.vf4": kindVxunary0, "vzext.vf8": kindVxunary0,
	"vsext.vf2": kindVxunary0, "vsext.vf4": kindVxunary0, "vsext.vf8": kindVxunary0,

	"vcpop.m": kindVmunary0IntDest, "vfirst.m": kindVmunary0IntDest,
	"viota.m": kindVmunary0VecDest, "vid.v": kindVmunary0VecDest,
	"vmsbf.m": kindVmunary0VecDest, "vmsif.m": kindVmunary0VecDest, "vmsof.m": kindVmunary0VecDest,

	"vfmv.f.s": kindVwfunary0,
	"vfmv.s.f": kindVrfunary0,

	"vfclass.v": kindVfunary0, "vfsqrt.v": kindVfunary0, "vfrsqrt7.v": kindVfunary0, "vfrec7.v": kindVfunary0,
	"vfcvt.xu.f.v": kindVfunary0, "vfcvt.x.f.v": kindVfunary0,
	"vfcvt.f.xu.v": kindVfunary0, "vfcvt.f.x.v": kindVfunary0,
	"vfcvt.rtz.xu.f.v": kindVfunary0, "vfcvt.rtz.x.f.v": kindVfunary0,

	"vfwcvt.xu.f.v": kindVfunary1, "vfwcvt.x.f.v": kindVfunary1,
	"vfwcvt.f.xu.v": kindVfunary1, "vfwcvt.f.x.v": kindVfunary1, "vfwcvt.f.f.v": kindVfunary1,
	"vfwcvt.rtz.xu.f.v": kindVfunary1, "vfwcvt.rtz.x.f.v": kindVfunary1,
	"vfncvt.xu.f.w": kindVfunary1, "vfncvt.x.f.w": kindVfunary1,
	"vfncvt.f.xu.w": kindVfunary1, "vfncvt.f.x.w": kindVfunary1, "vfncvt.f.f.w": kindVfunary1,
	"vfncvt.rod.f.f.w": kindVfunary1,
	"vfncvt.rtz.xu.f.w": kindVfunary1, "vfncvt.rtz.x.f.w": kindVfunary1,
}

// dispatchUnary0 recognises a unary0-family mnemonic and parses it. ok
// is false for any mnemonic outside this family, in which case err is
// always nil and the caller continues trying other dispatch tables.
func dispatchUnary0(mnemonic, raw string) (Instruction, bool, error) {
	kind, ok := unaryTable[mnemonic]
	if !ok {
		return Instruction{}, false, nil
	}

	switch kind {
	case kindVwxunary0:
		r, err := parseTwoOperand(raw, parseIntReg, parseVReg)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVwxunary0, Vwxunary0: Vwxunary0{Dest: r.Rd, Vs2: r.Rs1, Vm: false}}, true, nil

	case kindVrxunary0:
		r, err := parseTwoOperand(raw, parseVReg, parseIntReg)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVrxunary0, Vrxunary0: Vrxunary0{Dest: r.Rd, Rs1: r.Rs1, Vm: false}}, true, nil

	case kindVxunary0:
		dest, vs2, masked, err := parseVecVecUnary(raw)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVxunary0, Vxunary0: Vxunary0{Dest: dest, Vs2: vs2, Vm: masked}}, true, nil

	case kindVmunary0IntDest:
		toks := splitOperands(raw)
		if err := expectOperands(toks, 2); err != nil {
			if e2 := expectOperands(toks, 3); e2 != nil {
				return Instruction{}, true, fmt.Errorf("%w: expected 2 or 3 operands", ErrMalformedOperandList)
			}
		}
		dest, err := parseIntReg(toks[0])
		if err != nil {
			return Instruction{}, true, err
		}
		vs2, err := parseVReg(toks[1])
		if err != nil {
			return Instruction{}, true, err
		}
		masked, err := vm(optionalToken(toks, 2))
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVmunary0, Vmunary0: Vmunary0{Dest: dest, Vs2: vs2, Vm: masked}}, true, nil

	case kindVmunary0VecDest:
		dest, vs2, masked, err := parseVecVecUnary(raw)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVmunary0, Vmunary0: Vmunary0{Dest: dest, Vs2: vs2, Vm: masked}}, true, nil

	case kindVwfunary0:
		r, err := parseTwoOperand(raw, parseFloatReg, parseVReg)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVwfunary0, Vwfunary0: Vwfunary0{Dest: r.Rd, Vs2: r.Rs1, Vm: false}}, true, nil

	case kindVrfunary0:
		toks := splitOperands(raw)
		if err := expectOperands(toks, 2); err != nil {
			return Instruction{}, true, err
		}
		vd, err := parseVReg(toks[0])
		if err != nil {
			return Instruction{}, true, err
		}
		rs1, err := parseFloatReg(toks[1])
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVrfunary0, Vrfunary0: Vrfunary0{Vd: vd, Rs1: rs1, Vm: false}}, true, nil

	case kindVfunary0:
		dest, vs2, masked, err := parseVecVecUnary(raw)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVfunary0, Vfunary0: Vfunary0{Dest: dest, Vs2: vs2, Vm: masked}}, true, nil

	default: // kindVfunary1
		dest, vs2, masked, err := parseVecVecUnary(raw)
		if err != nil {
			return Instruction{}, true, err
		}
		return Instruction{Op: mnemonic, Format: FormatVfunary1, Vfunary1: Vfunary1{Dest: dest, Vs2: vs2, Vm: masked}}, true, nil
	}
}

// parseVecVecUnary parses the common "vd, vs2[, v0.t]" shape shared by
// most unary0 vector-to-vector families.
func parseVecVecUnary(raw string) (dest, vs2 uint32, masked bool, err error) {
	toks := splitOperands(raw)
	if err = expectOperands(toks, 2); err != nil {
		if e2 := expectOperands(toks, 3); e2 != nil {
			return 0, 0, false, fmt.Errorf("%w: expected 2 or 3 operands", ErrMalformedOperandList)
		}
		err = nil
	}
	dest, err = parseVReg(toks[0])
	if err != nil {
		return 0, 0, false, err
	}
	vs2, err = parseVReg(toks[1])
	if err != nil {
		return 0, 0, false, err
	}
	masked, err = vm(optionalToken(toks, 2))
	if err != nil {
		return 0, 0, false, err
	}
	return dest, vs2, masked, nil
}
