package testrom

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func encodeBuild(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	n, err := Build().WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	return buf.Bytes()
}

func TestBuildImage(t *testing.T) {
	img := encodeBuild(t)

	if len(img) != 24592 {
		t.Fatalf("image size = %d, want 24592", len(img))
	}

	// 16-byte header: magic, 1 PRG bank, 1 CHR bank, everything else clear.
	wantHeader := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(img[:16], wantHeader) {
		t.Errorf("header = % 02X\nwant     % 02X", img[:16], wantHeader)
	}

	prg := img[16 : 16+16384]

	// JMP $8000 at $8000.
	if !bytes.Equal(prg[0:3], []byte{0x4C, 0x00, 0x80}) {
		t.Errorf("prg[0:3] = % 02X, want 4C 00 80", prg[0:3])
	}

	// Reset vector, at the image offset $FFFC resolves to.
	if prg[0x3FFC] != 0x00 || prg[0x3FFD] != 0x80 {
		t.Errorf("reset vector = %02X %02X, want 00 80", prg[0x3FFC], prg[0x3FFD])
	}

	// Every byte not named above is zero, CHR included.
	nonzero := map[int]bool{
		16 + 0x0000: true, 16 + 0x0001: true, 16 + 0x0002: true,
		16 + 0x3FFC: true, 16 + 0x3FFD: true,
	}
	for off := 16; off < len(img); off++ {
		if !nonzero[off] && img[off] != 0 {
			t.Fatalf("img[%#x] = %#02x, want 0", off, img[off])
		}
	}
}

func TestBuildVectorResolves(t *testing.T) {
	// The vector must hold the address of the jump instruction so the
	// rom is a self-consistent infinite loop.
	img := encodeBuild(t)
	prg := img[16 : 16+16384]

	vector := uint16(prg[0x3FFC]) | uint16(prg[0x3FFD])<<8
	if vector != 0x8000 {
		t.Fatalf("reset vector = $%04X, want $8000", vector)
	}
	target := uint16(prg[1]) | uint16(prg[2])<<8
	if prg[0] != 0x4C || target != vector {
		t.Fatalf("instruction at $8000 is %02X $%04X, want JMP $%04X", prg[0], target, vector)
	}
}

func TestWriteFileIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nes")

	// A pre-existing longer file must be fully overwritten, not
	// patched in place.
	junk := bytes.Repeat([]byte{0xFF}, 30000)
	if err := os.WriteFile(path, junk, 0644); err != nil {
		t.Fatal(err)
	}

	if err := Build().WriteFile(path); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Build().WriteFile(path); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != 24592 {
		t.Errorf("file size = %d, want 24592", len(first))
	}
	if !bytes.Equal(first, second) {
		t.Error("two runs produced different files")
	}
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "test.nes")
	if err := Build().WriteFile(path); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
