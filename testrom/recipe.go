package testrom

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"romgen/ines"
	"romgen/log"
)

// Program is a blob of 6502 machine code. In TOML recipes it is written
// as a hexadecimal string, spaces allowed ("4c 00 80").
type Program []byte

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Program) UnmarshalText(text []byte) error {
	s := strings.Join(strings.Fields(string(text)), "")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid program bytes: %w", err)
	}
	*p = buf
	return nil
}

// Recipe describes a rom to synthesize. The zero value is not usable
// directly; recipes loaded from TOML get their absent fields defaulted,
// see LoadRecipe.
type Recipe struct {
	Out       string  `toml:"out"`       // output path
	PRGBanks  int     `toml:"prg_banks"` // 16KB units
	CHRBanks  int     `toml:"chr_banks"` // 8KB units, 0 means the board uses CHR RAM
	Mapper    int     `toml:"mapper"`
	Mirroring string  `toml:"mirroring"`
	Battery   bool    `toml:"battery"`
	Entry     int     `toml:"entry"`   // cpu address the reset vector points at
	Program   Program `toml:"program"` // machine code placed at Entry
}

// DefaultRecipe is the recipe Build uses.
func DefaultRecipe() Recipe {
	rcp := Recipe{CHRBanks: 1}
	rcp.fillDefaults()
	return rcp
}

func (rcp *Recipe) fillDefaults() {
	if rcp.Out == "" {
		rcp.Out = DefaultFilename
	}
	if rcp.PRGBanks == 0 {
		rcp.PRGBanks = 1
	}
	if rcp.Mirroring == "" {
		rcp.Mirroring = ines.Horizontal.String()
	}
	if rcp.Entry == 0 {
		rcp.Entry = prgBase
	}
	if rcp.Program == nil {
		// infinite loop: JMP Entry
		rcp.Program = Program{opJMP, byte(rcp.Entry), byte(rcp.Entry >> 8)}
	}
}

// LoadRecipe reads a TOML recipe file, defaulting absent fields.
func LoadRecipe(path string) (Recipe, error) {
	var rcp Recipe
	if _, err := toml.DecodeFile(path, &rcp); err != nil {
		return Recipe{}, err
	}
	rcp.fillDefaults()
	return rcp, nil
}

func (rcp *Recipe) Validate() error {
	if rcp.PRGBanks < 1 || rcp.PRGBanks > 255 {
		return fmt.Errorf("prg_banks must be in [1, 255], got %d", rcp.PRGBanks)
	}
	if rcp.CHRBanks < 0 || rcp.CHRBanks > 255 {
		return fmt.Errorf("chr_banks must be in [0, 255], got %d", rcp.CHRBanks)
	}
	if rcp.Mapper < 0 || rcp.Mapper > 255 {
		return fmt.Errorf("mapper must be in [0, 255], got %d", rcp.Mapper)
	}
	if _, err := ines.ParseMirroring(rcp.Mirroring); err != nil {
		return err
	}

	prgsz := rcp.PRGBanks * ines.PRGBankSize
	if rcp.Entry < prgBase || rcp.Entry >= prgBase+prgsz {
		return fmt.Errorf("entry $%04X outside PRG window [$%04X, $%04X)", rcp.Entry, prgBase, prgBase+prgsz)
	}
	if off := rcp.Entry - prgBase; off+len(rcp.Program) > prgsz-4 {
		return fmt.Errorf("program (%d bytes at $%04X) overlaps the vector table", len(rcp.Program), rcp.Entry)
	}
	return nil
}

// Rom builds the rom image the recipe describes.
func (rcp Recipe) Rom() (*ines.Rom, error) {
	if err := rcp.Validate(); err != nil {
		return nil, err
	}
	mirror, _ := ines.ParseMirroring(rcp.Mirroring)

	prg := make([]byte, rcp.PRGBanks*ines.PRGBankSize)
	copy(prg[rcp.Entry-prgBase:], rcp.Program)

	// The cpu fetches the reset vector from $FFFC, which always falls
	// on the fourth-to-last byte of PRG however many banks there are:
	// a lone 16KB bank is mirrored into the upper half of the address
	// space.
	prg[len(prg)-4] = byte(rcp.Entry)
	prg[len(prg)-3] = byte(rcp.Entry >> 8)

	rom := &ines.Rom{
		Header: ines.Header{
			PRGBanks:  byte(rcp.PRGBanks),
			CHRBanks:  byte(rcp.CHRBanks),
			Mapper:    byte(rcp.Mapper),
			Mirroring: mirror,
			Battery:   rcp.Battery,
		},
		PRG: prg,
		CHR: make([]byte, rcp.CHRBanks*ines.CHRBankSize),
	}

	log.ModGen.DebugZ("rom built").
		Hex16("entry", uint16(rcp.Entry)).
		Int("prg_banks", rcp.PRGBanks).
		Int("chr_banks", rcp.CHRBanks).
		Int("size", rom.Size()).
		End()
	return rom, nil
}
