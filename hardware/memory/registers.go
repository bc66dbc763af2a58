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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
)

// ChipRead implements the bus.ChipBus interface.
func (mem *Memory) ChipRead(reg uint16) uint8 {
	return mem.mem[reg]
}

// ChipWrite implements the bus.ChipBus interface.
func (mem *Memory) ChipWrite(reg uint16, data uint8) {
	mem.mem[reg] = data
}

// Divider implements the bus.TimerBus interface.
func (mem *Memory) Divider() uint16 {
	return mem.div
}

// SetDivider implements the bus.TimerBus interface.
func (mem *Memory) SetDivider(div uint16) {
	mem.div = div
}

// RaiseInterrupt implements the bus.InterruptBus interface.
func (mem *Memory) RaiseInterrupt(i bus.Interrupt) {
	mem.mem[addresses.IF] |= uint8(i)
}

// SetDisplayMode implements the bus.DisplayBus interface.
func (mem *Memory) SetDisplayMode(mode uint8) {
	mem.mem[addresses.STAT] = mem.mem[addresses.STAT]&^0x03 | mode&0x03
}

// registers in the order they appear in String()
var summary = []uint16{
	addresses.P1, addresses.SB, addresses.SC, addresses.DIV,
	addresses.TIMA, addresses.TMA, addresses.TAC, addresses.IF,
	addresses.LCDC, addresses.STAT, addresses.LY, addresses.DMA,
	addresses.IE,
}

// String returns a summary of the I/O registers as seen by the CPU.
func (mem *Memory) String() string {
	s := strings.Builder{}
	for i, a := range summary {
		if i > 0 {
			s.WriteString(" ")
		}
		v, _ := mem.Peek(a)
		s.WriteString(fmt.Sprintf("%s=%02x", addresses.Symbol(a), v))
	}
	s.WriteString(fmt.Sprintf(" div=%04x", mem.div))
	return s.String()
}
