package asm

// EEW is the effective element width of a vector memory operation.
type EEW int

const (
	E8 EEW = 8
	E16 EEW = 16
	E32 EEW = 32
	E64 EEW = 64
)

// Format tags which payload field of an Instruction is populated. It is
// the closed set of operand-encoding shapes spec.md §3 enumerates; every
// concrete mnemonic the dispatcher produces carries exactly one of these.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatU
	FormatR4
	FormatCsrr
	FormatCsri
	FormatVsetvli
	FormatVsetivli
	FormatVsetvl
	FormatVl
	FormatVs
	FormatVls
	FormatVss
	FormatVlx
	FormatVsx
	FormatVlr
	FormatVsr
	FormatOpivv
	FormatOpivx
	FormatOpivi
	FormatOpmvv
	FormatOpmvx
	FormatOpfvv
	FormatOpfvf
	FormatVwxunary0
	FormatVrxunary0
	FormatVxunary0
	FormatVmunary0
	FormatVwfunary0
	FormatVrfunary0
	FormatVfunary0
	FormatVfunary1
	FormatFusion
)

// R is the register-register-register payload: rd, rs1, rs2.
type R struct{ Rd, Rs1, Rs2 uint32 }

// I is the register-register-immediate payload: rd, rs1, a signed 12-bit
// immediate in [-2048, 2047].
type I struct {
	Rd, Rs1 uint32
	Imm12   int32
}

// S is the store/branch payload: rs1, rs2, a signed 12-bit immediate (a
// byte offset for branches, an address offset for stores).
type S struct {
	Rs1, Rs2 uint32
	Imm12    int32
}

// U is the upper-immediate payload used by lui/auipc/jal: rd, a signed
// 20-bit immediate.
type U struct {
	Rd    uint32
	Imm20 int32
}

// R4 is the floating fused-multiply-add payload: rd, rs1, rs2, rs3.
type R4 struct{ Rd, Rs1, Rs2, Rs3 uint32 }

// Csrr is the register-form CSR payload: rd, the 12-bit CSR address, rs1.
type Csrr struct {
	Rd, Csr, Rs1 uint32
}

// Csri is the immediate-form CSR payload: rd, the 12-bit CSR address, a
// 5-bit unsigned immediate.
type Csri struct {
	Rd, Csr, Uimm uint32
}

// Vsetvli is the vsetvli payload: rd, rs1, and the 11-bit encoded vtype.
type Vsetvli struct {
	Rd, Rs1 uint32
	Vtypei  uint32
}

// Vsetivli is the vsetivli payload: rd, a 5-bit unsigned immediate vl
// request, and the 11-bit encoded vtype.
type Vsetivli struct {
	Rd, Uimm5 uint32
	Vtypei    uint32
}

// Vsetvl is the register-register vector-configuration payload.
type Vsetvl struct{ Rd, Rs1, Rs2 uint32 }

// Vl is a unit-stride vector load payload: the destination vector
// register, the base address register, and the mask-enable flag.
type Vl struct {
	Vd, Rs1 uint32
	Vm      bool
}

// Vs mirrors Vl for stores.
type Vs struct {
	Vs3, Rs1 uint32
	Vm       bool
}

// Vls is a strided vector load payload.
type Vls struct {
	Vd, Rs1, Rs2 uint32
	Vm           bool
}

// Vss is a strided vector store payload.
type Vss struct {
	Vs3, Rs1, Rs2 uint32
	Vm            bool
}

// Vlx is an indexed vector load payload (index vector Vs2).
type Vlx struct {
	Vd, Rs1, Vs2 uint32
	Vm           bool
}

// Vsx is an indexed vector store payload.
type Vsx struct {
	Vs3, Rs1, Vs2 uint32
	Vm            bool
}

// Vlr is a whole-register vector load payload.
type Vlr struct{ Vd, Rs1 uint32 }

// Vsr is a whole-register vector store payload.
type Vsr struct{ Vs3, Rs1 uint32 }

// Opivv/Opmvv/Opfvv is the vector-vector arithmetic payload: vd, vs2, vs1,
// mask-enable.
type Opivv struct {
	Vd, Vs2, Vs1 uint32
	Vm           bool
}

// Opivx/Opmvx is the vector-scalar(integer) arithmetic payload.
type Opivx struct {
	Vd, Vs2, Rs1 uint32
	Vm           bool
}

// Opfvf is the vector-scalar(float) arithmetic payload.
type Opfvf struct {
	Vd, Vs2, Rs1 uint32
	Vm           bool
}

// Opivi is the vector-immediate arithmetic payload: vd, vs2, a signed
// 5-bit immediate, mask-enable.
type Opivi struct {
	Vd, Vs2 uint32
	Imm5    int32
	Vm      bool
}

// Vwxunary0 is the scalar-result vector-source unary payload
// (vmv.x.s-style), keeping Vs1 at 0 to mirror the fixed-field shape of
// the real encoding.
type Vwxunary0 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// Vrxunary0 is the vector-result scalar-source unary payload
// (vmv.s.x-style).
type Vrxunary0 struct {
	Dest, Vs2, Rs1 uint32
	Vm             bool
}

// Vxunary0 is an integer vector-to-vector unary payload (widening /
// narrowing conversions).
type Vxunary0 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// Vmunary0 is the mask-register unary payload (vcpop.m, viota.m, vid.v, …).
type Vmunary0 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// Vwfunary0 is the scalar(float)-result vector-source unary payload
// (vfmv.f.s-style).
type Vwfunary0 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// Vrfunary0 is the vector-result scalar(float)-source unary payload
// (vfmv.s.f-style).
type Vrfunary0 struct {
	Vd, Vs2 uint32
	Rs1     uint32
	Vm      bool
}

// Vfunary0 is a floating vector-to-vector unary payload (class/sqrt/
// reciprocal-estimate/convert).
type Vfunary0 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// Vfunary1 is a second floating vector-to-vector unary payload
// (widening/narrowing float conversions).
type Vfunary1 struct {
	Dest, Vs2, Vs1 uint32
	Vm             bool
}

// VecMemParams carries the compile-time-constant parameters of a vector
// memory instruction: its effective element width and, for segment
// load/stores, the number of fields. Nf is 1 for non-segmented forms.
type VecMemParams struct {
	EEW EEW
	Nf  int
}

// Instruction is one decoded, fully-resolved instruction or pseudo-
// instruction expansion. Op names the concrete canonical mnemonic (the
// closed tag of the conceptual tagged union); exactly one of the typed
// payload fields below is meaningful, selected by Format. Folding the
// union through an (Op, Format, payload) triple rather than one Go type
// per mnemonic keeps the large RVV arithmetic and vector-memory families
// data-driven, per spec.md §9 "Table-driven vector memory ops" — see
// DESIGN.md.
type Instruction struct {
	Op     string
	Format Format

	R        R
	I        I
	S        S
	U        U
	R4       R4
	Csrr     Csrr
	Csri     Csri
	Vsetvli  Vsetvli
	Vsetivli Vsetivli
	Vsetvl   Vsetvl
	Vl       Vl
	Vs       Vs
	Vls      Vls
	Vss      Vss
	Vlx      Vlx
	Vsx      Vsx
	Vlr      Vlr
	Vsr      Vsr
	Opivv    Opivv
	Opivx    Opivx
	Opivi    Opivi
	Opmvv    Opivv
	Opmvx    Opivx
	Opfvv    Opivv
	Opfvf    Opfvf

	Vwxunary0 Vwxunary0
	Vrxunary0 Vrxunary0
	Vxunary0  Vxunary0
	Vmunary0  Vmunary0
	Vwfunary0 Vwfunary0
	Vrfunary0 Vrfunary0
	Vfunary0  Vfunary0
	Vfunary1  Vfunary1

	// VecMem is populated alongside Vl/Vs/Vls/Vss/Vlx/Vsx for vector
	// memory instructions; it carries the mnemonic-selected eew and nf.
	VecMem VecMemParams

	// Fusion holds the two sub-instructions when Format == FormatFusion.
	// Each pointer is exclusively owned; nothing else aliases them.
	Fusion *FusionPayload
}

// FusionPayload is a composite instruction wrapping two sub-instructions
// produced by pseudo-instruction expansion. Expansion nests them at most
// two levels deep: the vmsge[u].vx masked-with-scratch-register case,
// whose First is itself a Fusion; every other expansion is one level.
type FusionPayload struct {
	First, Second *Instruction
}

// Flatten walks an Instruction, returning its depth-first sequence of
// concrete (non-Fusion) instructions. A non-Fusion instruction flattens
// to itself.
func Flatten(instr *Instruction) []*Instruction {
	if instr.Format != FormatFusion {
		return []*Instruction{instr}
	}
	out := Flatten(instr.Fusion.First)
	out = append(out, Flatten(instr.Fusion.Second)...)
	return out
}

func fuse(first, second *Instruction) *Instruction {
	return &Instruction{
		Op:     "fusion",
		Format: FormatFusion,
		Fusion: &FusionPayload{First: first, Second: second},
	}
}
