// Package testrom synthesizes minimal valid NES roms, meant to exercise
// rom loaders rather than do anything interesting once emulated. The
// canonical image is a mapper 0 rom whose reset vector lands on a
// one-instruction infinite loop, with a zeroed CHR bank.
package testrom

import "romgen/ines"

// DefaultFilename is the output path used when the caller gives none.
const DefaultFilename = "test.nes"

// prgBase is the cpu address the PRG ROM is mapped at on mapper 0.
const prgBase = 0x8000

// opJMP is the 6502 JMP absolute opcode.
const opJMP = 0x4C

// Build returns the canonical test rom: one 16KB PRG bank holding
// JMP $8000 at $8000 with the reset vector pointing at it, one zeroed
// 8KB CHR bank, mapper 0, horizontal mirroring. Its encoded size is
// always 24592 bytes.
func Build() *ines.Rom {
	rom, err := DefaultRecipe().Rom()
	if err != nil {
		// the default recipe always validates
		panic(err)
	}
	return rom
}
