package ines

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
	"github.com/snksoft/crc"
)

// Checksums identify the PRG and CHR parts of the rom, plus the whole
// encoded image.
type Checksums struct {
	PRG     uint32
	CHR     uint32
	Overall uint32
}

var crc32Table = crc.NewTable(crc.CRC32)

func checksum(sections ...[]byte) uint32 {
	h := crc.NewHashWithTable(crc32Table)
	for _, s := range sections {
		h.Write(s)
	}
	return h.CRC32()
}

func (rom *Rom) Checksums() Checksums {
	hdr := rom.Header.encode()
	return Checksums{
		PRG:     checksum(rom.PRG),
		CHR:     checksum(rom.CHR),
		Overall: checksum(hdr[:], rom.Trainer, rom.PRG, rom.CHR),
	}
}

// PrintInfos writes a human-readable description of the rom to w.
func (rom *Rom) PrintInfos(w io.Writer) {
	sums := rom.Checksums()

	fmt.Fprintf(w, "mapper:    %d\n", rom.Mapper)
	fmt.Fprintf(w, "prg rom:   %d x 16KB bank(s), %d bytes\n", rom.PRGBanks, len(rom.PRG))
	fmt.Fprintf(w, "chr rom:   %d x 8KB bank(s), %d bytes\n", rom.CHRBanks, len(rom.CHR))
	fmt.Fprintf(w, "mirroring: %s\n", rom.Mirroring)
	fmt.Fprintf(w, "battery:   %t\n", rom.Battery)
	fmt.Fprintf(w, "trainer:   %t\n", rom.HasTrainer)
	fmt.Fprintf(w, "size:      %d bytes\n", rom.Size())
	fmt.Fprintf(w, "crc32:     %08X (prg %08X, chr %08X)\n", sums.Overall, sums.PRG, sums.CHR)
}

// InfosJSON is PrintInfos for machines.
func (rom *Rom) InfosJSON() []byte {
	sums := rom.Checksums()

	var e jx.Encoder
	e.SetIdent(2)
	e.Obj(func(e *jx.Encoder) {
		e.Field("mapper", func(e *jx.Encoder) { e.Int(int(rom.Mapper)) })
		e.Field("prg_banks", func(e *jx.Encoder) { e.Int(int(rom.PRGBanks)) })
		e.Field("chr_banks", func(e *jx.Encoder) { e.Int(int(rom.CHRBanks)) })
		e.Field("prg_size", func(e *jx.Encoder) { e.Int(len(rom.PRG)) })
		e.Field("chr_size", func(e *jx.Encoder) { e.Int(len(rom.CHR)) })
		e.Field("mirroring", func(e *jx.Encoder) { e.Str(rom.Mirroring.String()) })
		e.Field("battery", func(e *jx.Encoder) { e.Bool(rom.Battery) })
		e.Field("trainer", func(e *jx.Encoder) { e.Bool(rom.HasTrainer) })
		e.Field("size", func(e *jx.Encoder) { e.Int(rom.Size()) })
		e.Field("crc32", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("prg", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%08x", sums.PRG)) })
				e.Field("chr", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%08x", sums.CHR)) })
				e.Field("overall", func(e *jx.Encoder) { e.Str(fmt.Sprintf("%08x", sums.Overall)) })
			})
		})
	})
	return e.Bytes()
}
