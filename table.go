// SPDX-License-Identifier: NOASSERTION
// Copyright (c) 2023 Mike Schiraldi
// Source: github.com/raldi/u5fix

package u5fix

// Ultima V (DOS) dialogue files.
const (
	CastleTLK   = "CASTLE.TLK"
	DwellingTLK = "DWELLING.TLK"
	KeepTLK     = "KEEP.TLK"
	TowneTLK    = "TOWNE.TLK"
)

// DefaultTable returns the fixed Ultima V dialogue fix table.
// Each call returns a fresh copy that callers may modify.
func DefaultTable() Table {
	return Table{
		Targets: []TargetFile{
			{Name: CastleTLK, Sum: "fde54ae7c8852cf52eae3312615997d3"},
			{Name: DwellingTLK, Sum: "28c5669eccccea184c66a488c854fbd5"},
			{Name: KeepTLK, Sum: "e4fa8962d36a88c81d8cc09dcce82a46"},
			{Name: TowneTLK, Sum: "325f55a2f0b533ca53851296d538a1a6"},
		},
		Patches: []Patch{
			{
				Target: CastleTLK,
				Offset: 0x1b2f,
				Note:   "Weblock answers Gorn and Hassad with the wrong responses",
				Expected: []byte{
					0xE7, 0xEF, 0xF2, 0xEE, 0x00, 0xE8, 0xE1, 0xF3, 0xF3, 0x00, 0x87, 0x00,
				},
				Replacement: []byte{
					0xE7, 0xEF, 0xF2, 0xEE, 0x00, 0x87, 0x00, 0xE8, 0xE1, 0xF3, 0xF3, 0x00,
				},
			},
			{
				Target:      TowneTLK,
				Offset:      0x06fd,
				Note:        "Malik offers a hint for 3 gold but charges 4",
				Expected:    []byte{0xB4},
				Replacement: []byte{0xB3},
			},
			{
				Target: DwellingTLK,
				Offset: 0x1d6c,
				Note:   "Sir Arbuthnot gives the same answer for coin and coinmaker",
				Expected: []byte{
					0xF2, 0xEF, 0xF9, 0xE1, 0x00, 0x87, 0x00, 0xE3, 0xEF, 0xE9, 0xEE,
				},
				Replacement: []byte{
					0xF2, 0xEF, 0xF9, 0x00, 0x87, 0x00, 0xE3, 0xEF, 0xE9, 0xEE, 0xED,
				},
			},
			{
				// Grows the file by two bytes; it is the last record of DWELLING.TLK.
				Target: DwellingTLK,
				Offset: 0x1f0d,
				Note:   "Sir Arbuthnot ignores the answer to his Avatar question",
				Expected: []byte{
					0xA7, 0xD4, 0xE9, 0xF3, 0xA0, 0xE9, 0xEE, 0xE4, 0xE5, 0xE5, 0xE4,
					0x37, 0xE8, 0xEF, 0xEE, 0xEF, 0xF2, 0xA1, 0xA2, 0x8D, 0x8D, 0x88, 0xA2, 0x8D,
					0x8D, 0xFF, 0x00, 0x90, 0x9F, 0xC0,
				},
				Replacement: []byte{
					0xF9, 0x00, 0xA7, 0xD4, 0xE9, 0xF3, 0xA0, 0xE9, 0xEE, 0xE4, 0xE5, 0xE5, 0xE4,
					0x37, 0xE8, 0xEF, 0xEE, 0xEF, 0xF2, 0xA1, 0xA2, 0x8D, 0x8D, 0x88, 0xA2, 0x8D,
					0x8D, 0xFF, 0x00, 0x90, 0x9F, 0xC0,
				},
			},
			{
				Target: DwellingTLK,
				Offset: 0x15a3,
				Note:   "Sin'Vraal points to the Doom entrance instead of the Shard of Hatred",
				Expected: []byte{
					0xC9, 0x8E, 0xA7, 0x8E, 0xC1, 0x8E, 0xA2, 0xAC, 0xA0, 0x8E, 0xC9, 0x8E, 0xA7, 0x8E, 0xC1,
				},
				Replacement: []byte{
					0xC5, 0x8E, 0xA7, 0x8E, 0xC2, 0x8E, 0xA2, 0xAC, 0xA0, 0x8E, 0xC9, 0x8E, 0xA7, 0x8E, 0xC3,
				},
			},
			{
				Target:      TowneTLK,
				Offset:      0x3634,
				Note:        "Mario's answer about his minor crime is cut off",
				Expected:    []byte{0x00, 0xA2, 0x8D, 0x8D, 0x83},
				Replacement: []byte{0xA2, 0x8D, 0xA0, 0x8D, 0x8F},
			},
			{
				// 28 was typed where 0x28 was meant.
				Target:      KeepTLK,
				Offset:      0x12a9,
				Note:        "Thrud hands out a crossbow instead of the jeweled sword and shield",
				Expected:    []byte{28},
				Replacement: []byte{0x28},
			},
		},
	}
}
