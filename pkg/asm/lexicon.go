package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// intRegisters maps both x-names and ABI names to the 0..31 integer
// register index. Grounded on original_source's
// interpreter/decoder/operand/integer.rs parse_operand table.
var intRegisters = map[string]uint32{
	"x0": 0, "zero": 0,
	"x1": 1, "ra": 1,
	"x2": 2, "sp": 2,
	"x3": 3, "gp": 3,
	"x4": 4, "tp": 4,
	"x5": 5, "t0": 5,
	"x6": 6, "t1": 6,
	"x7": 7, "t2": 7,
	"x8": 8, "s0": 8, "fp": 8,
	"x9": 9, "s1": 9,
	"x10": 10, "a0": 10,
	"x11": 11, "a1": 11,
	"x12": 12, "a2": 12,
	"x13": 13, "a3": 13,
	"x14": 14, "a4": 14,
	"x15": 15, "a5": 15,
	"x16": 16, "a6": 16,
	"x17": 17, "a7": 17,
	"x18": 18, "s2": 18,
	"x19": 19, "s3": 19,
	"x20": 20, "s4": 20,
	"x21": 21, "s5": 21,
	"x22": 22, "s6": 22,
	"x23": 23, "s7": 23,
	"x24": 24, "s8": 24,
	"x25": 25, "s9": 25,
	"x26": 26, "s10": 26,
	"x27": 27, "s11": 27,
	"x28": 28, "t3": 28,
	"x29": 29, "t4": 29,
	"x30": 30, "t5": 30,
	"x31": 31, "t6": 31,
}

// floatRegisters maps f-names and ABI names to the 0..31 float register
// index. Grounded on original_source's operand/float.rs parse_operand.
var floatRegisters = map[string]uint32{
	"f0": 0, "ft0": 0,
	"f1": 1, "ft1": 1,
	"f2": 2, "ft2": 2,
	"f3": 3, "ft3": 3,
	"f4": 4, "ft4": 4,
	"f5": 5, "ft5": 5,
	"f6": 6, "ft6": 6,
	"f7": 7, "ft7": 7,
	"f8": 8, "fs0": 8,
	"f9": 9, "fs1": 9,
	"f10": 10, "fa0": 10,
	"f11": 11, "fa1": 11,
	"f12": 12, "fa2": 12,
	"f13": 13, "fa3": 13,
	"f14": 14, "fa4": 14,
	"f15": 15, "fa5": 15,
	"f16": 16, "fa6": 16,
	"f17": 17, "fa7": 17,
	"f18": 18, "fs2": 18,
	"f19": 19, "fs3": 19,
	"f20": 20, "fs4": 20,
	"f21": 21, "fs5": 21,
	"f22": 22, "fs6": 22,
	"f23": 23, "fs7": 23,
	"f24": 24, "fs8": 24,
	"f25": 25, "fs9": 25,
	"f26": 26, "fs10": 26,
	"f27": 27, "fs11": 27,
	"f28": 28, "ft8": 28,
	"f29": 29, "ft9": 29,
	"f30": 30, "ft10": 30,
	"f31": 31, "ft11": 31,
}

// csrAddresses maps the symbolic CSR names this dispatcher supports to
// their architectural addresses. Grounded on
// original_source/src/interpreter/decoder/operand/csr.rs.
var csrAddresses = map[string]uint32{
	"fflags":   0x001,
	"frm":      0x002,
	"fcsr":     0x003,
	"vstart":   0x008,
	"vxsat":    0x009,
	"vxrm":     0x00a,
	"vcsr":     0x00f,
	"vsstatus": 0x200,
	"cycle":    0xc00,
	"time":     0xc01,
	"instret":  0xc02,
	"vl":       0xc20,
	"vtype":    0xc21,
	"vlenb":    0xc22,
	"cycleh":   0xc80,
	"timeh":    0xc81,
	"instreth": 0xc82,
	"mstatus":  0x300,
	"marchid":  0xf12,
}

// parseIntReg parses an integer register operand (x-name or ABI alias).
func parseIntReg(tok string) (uint32, error) {
	if n, ok := intRegisters[tok]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrBadRegister, tok)
}

// parseFloatReg parses a floating point register operand (f-name or ABI
// alias).
func parseFloatReg(tok string) (uint32, error) {
	if n, ok := floatRegisters[tok]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrBadRegister, tok)
}

// parseCSR parses a symbolic CSR name into its architectural address.
func parseCSR(tok string) (uint32, error) {
	if addr, ok := csrAddresses[tok]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrBadCSR, tok)
}

// parseImmediate accepts decimal signed, 0x hex, 0o octal, and 0b binary
// literals (with an optional leading sign), returning a signed 32-bit
// value. See spec.md §9 "Hex immediates with a leading minus sign": the
// sign is stripped before base detection so that "-0x10" parses.
func parseImmediate(tok string) (int32, error) {
	neg := false
	body := tok
	switch {
	case strings.HasPrefix(body, "-"):
		neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	var (
		base int
		rest string
	)
	switch {
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		base, rest = 16, body[2:]
	case strings.HasPrefix(body, "0o") || strings.HasPrefix(body, "0O"):
		base, rest = 8, body[2:]
	case strings.HasPrefix(body, "0b") || strings.HasPrefix(body, "0B"):
		base, rest = 2, body[2:]
	default:
		base, rest = 10, body
	}

	v, err := strconv.ParseInt(rest, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadImmediate, tok, err)
	}
	if neg {
		v = -v
	}
	if v < int64(int32MinValue) || v > int64(int32MaxValue) {
		return 0, fmt.Errorf("%w: %s: out of signed 32-bit range", ErrBadImmediate, tok)
	}
	return int32(v), nil
}

const (
	int32MinValue = -1 << 31
	int32MaxValue = 1<<31 - 1
)
