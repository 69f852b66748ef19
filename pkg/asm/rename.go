package asm

// renameTable canonicalises deprecated or alternate mnemonic spellings
// to the name the dispatch table keys on, applied before dispatch and
// before pseudo-instruction expansion. Verbatim from
// original_source/src/interpreter/decoder.rs's rename arm, per
// SPEC_FULL.md §3.
var renameTable = map[string]string{
	"vle1.v":       "vlm.v",
	"vse1.v":       "vsm.v",
	"vpopc.m":      "vcpop.m",
	"vmandnot.mm":  "vmandn.mm",
	"vmornot.mm":   "vmorn.mm",
	"vfredsum.vs":  "vfredusum.vs",
	"vfwredsum.vs": "vfwredusum.vs",
	"vfrsqrte7.v":  "vfrsqrt7.v",
	"vfrece7.v":    "vfrec7.v",
	"vmcpy.m":      "vmmv.m",
}

func init() {
	// vlNr.v whole-register loads (old spelling, eew-less) canonicalise
	// to the eew8 whole-register spelling.
	for _, n := range []string{"1", "2", "4", "8"} {
		renameTable["vl"+n+"r.v"] = "vl" + n + "re8.v"
	}
}

func canonicalMnemonic(raw string) string {
	if canon, ok := renameTable[raw]; ok {
		return canon
	}
	return raw
}
