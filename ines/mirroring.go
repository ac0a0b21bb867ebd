package ines

import "fmt"

// Mirroring is the nametable arrangement a rom asks for.
type Mirroring byte

//go:generate go tool stringer -type=Mirroring -linecomment

const (
	Horizontal Mirroring = iota // horizontal
	Vertical                    // vertical
	FourScreen                  // four-screen
)

// ParseMirroring is the inverse of Mirroring.String.
func ParseMirroring(s string) (Mirroring, error) {
	for m := Horizontal; m <= FourScreen; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mirroring %q", s)
}
