// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package addresses

import "strings"

// I/O registers handled by the memory subsystem, or by the components attached
// to it.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
	IE   = uint16(0xffff)
)

// CanonicalSymbols lists the registers by address.
var CanonicalSymbols = map[uint16]string{
	P1:   "P1",
	SB:   "SB",
	SC:   "SC",
	DIV:  "DIV",
	TIMA: "TIMA",
	TMA:  "TMA",
	TAC:  "TAC",
	IF:   "IF",
	LCDC: "LCDC",
	STAT: "STAT",
	SCY:  "SCY",
	SCX:  "SCX",
	LY:   "LY",
	LYC:  "LYC",
	DMA:  "DMA",
	BGP:  "BGP",
	OBP0: "OBP0",
	OBP1: "OBP1",
	WY:   "WY",
	WX:   "WX",
	IE:   "IE",
}

// symbols is the reverse of CanonicalSymbols. keys are upper case
var symbols map[string]uint16

func init() {
	symbols = make(map[string]uint16, len(CanonicalSymbols))
	for a, s := range CanonicalSymbols {
		symbols[s] = a
	}

	// an alternative name used by some documentation
	symbols["JOYP"] = P1
}

// Symbol returns the canonical name for the address. The empty string is
// returned if the address is not a named register.
func Symbol(address uint16) string {
	return CanonicalSymbols[address]
}

// Lookup returns the address of the named register. The name is not case
// sensitive.
func Lookup(symbol string) (uint16, bool) {
	a, ok := symbols[strings.ToUpper(strings.TrimSpace(symbol))]
	return a, ok
}
