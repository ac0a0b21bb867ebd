package ines

import (
	"fmt"
	"io"
	"os"

	"romgen/log"
)

// Validate checks that the rom sections are consistent with its header,
// so that encoding then decoding it round-trips.
func (rom *Rom) Validate() error {
	if rom.NES20 {
		return fmt.Errorf("NES 2.0 headers are not supported")
	}
	if len(rom.PRG) != int(rom.PRGBanks)*PRGBankSize {
		return fmt.Errorf("PRG size %d doesn't match %d 16KB bank(s)", len(rom.PRG), rom.PRGBanks)
	}
	if len(rom.CHR) != int(rom.CHRBanks)*CHRBankSize {
		return fmt.Errorf("CHR size %d doesn't match %d 8KB bank(s)", len(rom.CHR), rom.CHRBanks)
	}
	switch {
	case rom.HasTrainer && len(rom.Trainer) != TrainerSize:
		return fmt.Errorf("trainer section must be %d bytes, got %d", TrainerSize, len(rom.Trainer))
	case !rom.HasTrainer && len(rom.Trainer) != 0:
		return fmt.Errorf("unexpected trainer section (%d bytes)", len(rom.Trainer))
	}
	return nil
}

// WriteTo implements io.WriterTo interface. The rom is validated before
// anything is written.
func (rom *Rom) WriteTo(w io.Writer) (int64, error) {
	if err := rom.Validate(); err != nil {
		return 0, err
	}

	var written int64
	hdr := rom.Header.encode()
	for _, section := range [][]byte{hdr[:], rom.Trainer, rom.PRG, rom.CHR} {
		n, err := w.Write(section)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteFile writes the rom to path, creating or truncating the file.
// The file is closed on all exit paths and the first error wins.
func (rom *Rom) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	n, err := rom.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.ModRom.DebugZ("rom written").
		String("path", path).
		Int("bytes", int(n)).
		End()
	return nil
}
