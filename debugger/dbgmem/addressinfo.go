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

package dbgmem

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// AddressInfo describes an address as the monitor sees it: where it is
// mapped, what register (if any) lives there and, once peeked, the value.
type AddressInfo struct {
	Address       uint16
	MappedAddress uint16
	Symbol        string
	Area          memorymap.Area

	// Data is only meaningful if Peeked is true
	Peeked bool
	Data   uint8
}

// Mirrored returns true if Address is an echo of MappedAddress.
func (ai AddressInfo) Mirrored() bool {
	return ai.Address != ai.MappedAddress
}

// Register returns true if the address has a register name.
func (ai AddressInfo) Register() bool {
	return ai.Symbol != ""
}

// String normalises the presentation of the address. For example:
//
//	0xff40 (LCDC) (IO) -> 0x91
//	0xe010 [mirror of 0xc010] (Echo)
func (ai AddressInfo) String() string {
	var s strings.Builder

	fmt.Fprintf(&s, "%#04x", ai.Address)
	if ai.Register() {
		fmt.Fprintf(&s, " (%s)", ai.Symbol)
	}
	if ai.Mirrored() {
		fmt.Fprintf(&s, " [mirror of %#04x]", ai.MappedAddress)
	}
	fmt.Fprintf(&s, " (%s)", ai.Area)
	if ai.Peeked {
		fmt.Fprintf(&s, " -> %#02x", ai.Data)
	}

	return s.String()
}
