// Package asm is a two-pass assembler front-end for a RISC-V-family
// instruction set: base integer (RV64I), the M/F/D extensions, Zicsr, and
// the full RVV 1.0 vector extension.
//
// Compile takes assembly source text and produces a linear sequence of
// decoded, fully-resolved Instruction records plus a mapping from
// instruction index to the source line that produced it. It does not
// encode instructions to machine words, does not link against external
// symbols, and does not process assembler directives (.data, .text,
// alignment) — those are left to the execution engine and linker that
// consume this package's output.
//
// The pipeline runs in two passes. Pass one classifies every source line,
// assigns each Instruction line a monotonically increasing address (stride
// 4), and records label -> address bindings. Pass two decodes the buffered
// instruction text with the complete label table in scope, so that forward
// branches resolve correctly. Errors are collected per source line rather
// than aborting on the first fault; a failed compilation returns every
// failing line's diagnostic, keyed by 0-based source line index.
package asm
