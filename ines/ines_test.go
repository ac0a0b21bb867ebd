package ines

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRom(hdr Header) *Rom {
	rom := &Rom{Header: hdr}
	rom.PRG = make([]byte, int(hdr.PRGBanks)*PRGBankSize)
	rom.CHR = make([]byte, int(hdr.CHRBanks)*CHRBankSize)
	if hdr.HasTrainer {
		rom.Trainer = make([]byte, TrainerSize)
	}
	for i := range rom.PRG {
		rom.PRG[i] = byte(i)
	}
	for i := range rom.CHR {
		rom.CHR[i] = byte(i * 3)
	}
	return rom
}

func TestHeaderRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hdr  Header
	}{
		{"nrom", Header{PRGBanks: 1, CHRBanks: 1}},
		{"nrom256", Header{PRGBanks: 2, CHRBanks: 1, Mirroring: Vertical}},
		{"battery", Header{PRGBanks: 1, CHRBanks: 1, Battery: true}},
		{"trainer", Header{PRGBanks: 1, CHRBanks: 1, HasTrainer: true}},
		{"four-screen", Header{PRGBanks: 1, CHRBanks: 1, Mirroring: FourScreen}},
		{"mmc1", Header{PRGBanks: 8, CHRBanks: 0, Mapper: 1, Mirroring: Vertical}},
		{"high mapper", Header{PRGBanks: 1, CHRBanks: 1, Mapper: 66}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.hdr.encode()

			var got Header
			if err := got.decode(raw[:]); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, tt.hdr); diff != "" {
				t.Errorf("header mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestRomRoundTrip(t *testing.T) {
	rom := testRom(Header{PRGBanks: 2, CHRBanks: 1, Mapper: 3, Mirroring: Vertical, HasTrainer: true})

	var buf bytes.Buffer
	n, err := rom.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(rom.Size()); n != want {
		t.Fatalf("WriteTo wrote %d bytes, want %d", n, want)
	}

	got := new(Rom)
	if _, err := got.ReadFrom(&buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, rom); diff != "" {
		t.Errorf("rom mismatch (-got +want):\n%s", diff)
	}
}

func TestWriteToValidates(t *testing.T) {
	tests := []struct {
		name   string
		rom    *Rom
		errsub string
	}{
		{
			"short prg",
			&Rom{Header: Header{PRGBanks: 2}, PRG: make([]byte, PRGBankSize)},
			"PRG",
		},
		{
			"short chr",
			&Rom{Header: Header{PRGBanks: 1, CHRBanks: 1}, PRG: make([]byte, PRGBankSize), CHR: make([]byte, 16)},
			"CHR",
		},
		{
			"missing trainer",
			&Rom{Header: Header{PRGBanks: 1, HasTrainer: true}, PRG: make([]byte, PRGBankSize)},
			"trainer",
		},
		{
			"stray trainer",
			&Rom{Header: Header{PRGBanks: 1}, PRG: make([]byte, PRGBankSize), Trainer: make([]byte, TrainerSize)},
			"trainer",
		},
		{
			"nes 2.0",
			&Rom{Header: Header{PRGBanks: 1, NES20: true}, PRG: make([]byte, PRGBankSize)},
			"NES 2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rom.WriteTo(&bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errsub) {
				t.Errorf("error %q doesn't mention %q", err, tt.errsub)
			}
		})
	}
}

func TestReadFromErrors(t *testing.T) {
	valid := testRom(Header{PRGBanks: 1, CHRBanks: 1})
	var buf bytes.Buffer
	if _, err := valid.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	img := buf.Bytes()

	tests := []struct {
		name   string
		img    []byte
		errsub string
	}{
		{"empty", nil, "too small"},
		{"bad magic", append([]byte("NOPE"), img[4:]...), "magic"},
		{"truncated prg", img[:HeaderSize+100], "PRG"},
		{"truncated chr", img[:HeaderSize+PRGBankSize+100], "CHR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := new(Rom)
			_, err := rom.ReadFrom(bytes.NewReader(tt.img))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errsub) {
				t.Errorf("error %q doesn't mention %q", err, tt.errsub)
			}
		})
	}
}
