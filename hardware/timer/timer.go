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

package timer

import (
	"fmt"

	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
)

// the TAC bit that enables the timer
const tacEnable = 0x04

// divider bit selected by bits 0 and 1 of TAC
var selectBit = [4]uint{9, 3, 5, 7}

// Timer implements the TIMA/TMA/TAC timer of the DMG.
type Timer struct {
	mem bus.TimerBus
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(mem bus.TimerBus) *Timer {
	return &Timer{mem: mem}
}

// Enabled returns true if TIMA is being incremented.
func (tmr *Timer) Enabled() bool {
	return tmr.mem.ChipRead(addresses.TAC)&tacEnable == tacEnable
}

// Period returns the number of divider increments between TIMA increments.
func (tmr *Timer) Period() int {
	return 1 << (selectBit[tmr.mem.ChipRead(addresses.TAC)&0x03] + 1)
}

func (tmr *Timer) String() string {
	tac := tmr.mem.ChipRead(addresses.TAC)
	s := fmt.Sprintf("DIV=%04x TIMA=%02x TMA=%02x TAC=%02x",
		tmr.mem.Divider(),
		tmr.mem.ChipRead(addresses.TIMA),
		tmr.mem.ChipRead(addresses.TMA),
		tac,
	)
	if tac&tacEnable == tacEnable {
		return fmt.Sprintf("%s period=%d", s, tmr.Period())
	}
	return fmt.Sprintf("%s disabled", s)
}

// Tick advances the timer by the number of cycles. TAC is read once at the
// start of the call. Changes to TAC during the cycles are not seen.
func (tmr *Timer) Tick(cycles int) {
	if cycles <= 0 {
		return
	}

	div := tmr.mem.Divider()
	tac := tmr.mem.ChipRead(addresses.TAC)

	if tac&tacEnable == 0x00 {
		tmr.mem.SetDivider(div + uint16(cycles))
		return
	}

	mask := uint16(1) << selectBit[tac&0x03]
	tima := tmr.mem.ChipRead(addresses.TIMA)

	for ; cycles > 0; cycles-- {
		prev := div & mask
		div++

		// falling edge
		if prev != 0 && div&mask == 0 {
			tima++
			if tima == 0x00 {
				tima = tmr.mem.ChipRead(addresses.TMA)
				tmr.mem.RaiseInterrupt(bus.InterruptTimer)
			}
		}
	}

	tmr.mem.SetDivider(div)
	tmr.mem.ChipWrite(addresses.TIMA, tima)
}
