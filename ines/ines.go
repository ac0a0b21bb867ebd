// Package ines reads and writes roms in the iNES file format, used for
// the distribution of NES binary programs.
package ines

import (
	"fmt"
	"io"
	"os"
)

const Magic = "NES\x1a"

const (
	HeaderSize  = 16
	TrainerSize = 512
	PRGBankSize = 16384 // PRG banks are multiples of 16k
	CHRBankSize = 8192  // CHR banks are multiples of 8k
)

// Header is the decoded form of the 16-byte block prefixing every
// iNES rom.
type Header struct {
	PRGBanks   byte // number of 16KB PRG ROM banks
	CHRBanks   byte // number of 8KB CHR ROM banks
	Mapper     byte
	Mirroring  Mirroring
	Battery    bool // battery-backed PRG RAM at $6000-$7FFF
	HasTrainer bool
	NES20      bool // header is in the NES 2.0 extended format
}

type Rom struct {
	Header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRG     []byte // PRG is PRG ROM data
	CHR     []byte // CHR is CHR ROM data
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, err
	}
	return rom, nil
}

// ReadFrom implements io.ReaderFrom interface
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	// header
	var off int
	if err := rom.Header.decode(buf); err != nil {
		return 0, fmt.Errorf("failed to decode header: %w", err)
	}
	off += HeaderSize

	// trainer
	if rom.HasTrainer {
		if len(buf) < off+TrainerSize {
			return 0, fmt.Errorf("incomplete TRAINER section")
		}
		rom.Trainer = buf[off : off+TrainerSize]
		off += TrainerSize
	}

	// PRG rom data
	prgsz := int(rom.PRGBanks) * PRGBankSize
	if len(buf) < off+prgsz {
		return 0, fmt.Errorf("incomplete PRG section")
	}
	rom.PRG = buf[off : off+prgsz]
	off += prgsz

	// CHR rom data
	chrsz := int(rom.CHRBanks) * CHRBankSize
	if len(buf) < off+chrsz {
		return 0, fmt.Errorf("incomplete CHR section")
	}
	rom.CHR = buf[off : off+chrsz]
	off += chrsz

	return int64(len(buf)), nil
}

func (hdr *Header) decode(p []byte) error {
	if len(p) < HeaderSize {
		return fmt.Errorf("too small, needs %d bytes", HeaderSize)
	}
	if string(p[:4]) != Magic {
		return fmt.Errorf("invalid magic number")
	}

	hdr.PRGBanks = p[4]
	hdr.CHRBanks = p[5]
	hdr.Mapper = p[6]>>4 | p[7]&0xF0
	switch {
	case p[6]&0x08 != 0:
		hdr.Mirroring = FourScreen
	case p[6]&0x01 != 0:
		hdr.Mirroring = Vertical
	default:
		hdr.Mirroring = Horizontal
	}
	hdr.Battery = p[6]&0x02 != 0
	hdr.HasTrainer = p[6]&0x04 != 0
	hdr.NES20 = p[7]&0x0C == 0x08
	return nil
}

func (hdr *Header) encode() [HeaderSize]byte {
	var p [HeaderSize]byte
	copy(p[:4], Magic)
	p[4] = hdr.PRGBanks
	p[5] = hdr.CHRBanks
	p[6] = hdr.Mapper << 4
	switch hdr.Mirroring {
	case Vertical:
		p[6] |= 0x01
	case FourScreen:
		p[6] |= 0x08
	}
	if hdr.Battery {
		p[6] |= 0x02
	}
	if hdr.HasTrainer {
		p[6] |= 0x04
	}
	p[7] = hdr.Mapper & 0xF0
	return p
}

// Size is the total encoded size of the rom, in bytes.
func (rom *Rom) Size() int {
	return HeaderSize + len(rom.Trainer) + len(rom.PRG) + len(rom.CHR)
}
