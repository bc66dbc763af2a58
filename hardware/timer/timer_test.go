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

package timer_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
	"github.com/gopherdmg/gopherdmg/test"
)

func newTimer(t *testing.T, tac uint8) (*timer.Timer, *memory.Memory) {
	t.Helper()
	mem, err := memory.NewMemory(make([]uint8, 0x8000), false)
	test.DemandSuccess(t, err)
	mem.SetDivider(0)
	mem.Write(addresses.TAC, tac)
	return timer.NewTimer(mem), mem
}

func TestDisabled(t *testing.T) {
	tmr, mem := newTimer(t, 0x03)
	test.ExpectFailure(t, tmr.Enabled())

	tmr.Tick(100)
	test.ExpectEquality(t, mem.Divider(), 100)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x00)

	tmr.Tick(5000)
	test.ExpectEquality(t, mem.Divider(), 5100)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x00)

	// divider wraps
	mem.SetDivider(0xfff0)
	tmr.Tick(0x20)
	test.ExpectEquality(t, mem.Divider(), 0x0010)

	test.ExpectEquality(t, tmr.String(), "DIV=0010 TIMA=00 TMA=00 TAC=03 disabled")
}

func TestFallingEdge(t *testing.T) {
	tmr, mem := newTimer(t, 0x04)
	test.ExpectSuccess(t, tmr.Enabled())
	test.ExpectEquality(t, tmr.Period(), 1024)

	tmr.Tick(1023)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x00)
	tmr.Tick(1)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x01)
	test.ExpectEquality(t, mem.Divider(), 1024)

	// bit 9 is already set when the divider is 512 so only 512 increments
	// are needed for the next falling edge
	mem.SetDivider(512)
	mem.Write(addresses.TIMA, 0x00)
	tmr.Tick(511)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x00)
	tmr.Tick(1)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x01)

	// DIV is visible to the CPU
	test.ExpectEquality(t, mem.Read(addresses.DIV), 0x04)
}

func TestPeriods(t *testing.T) {
	for _, c := range []struct {
		tac    uint8
		period int
	}{
		{0x04, 1024},
		{0x05, 16},
		{0x06, 64},
		{0x07, 256},
	} {
		tmr, mem := newTimer(t, c.tac)
		test.ExpectEquality(t, tmr.Period(), c.period, c.tac)

		tmr.Tick(c.period * 10)
		test.ExpectEquality(t, mem.Read(addresses.TIMA), 10, c.tac)

		tmr.Tick(c.period - 1)
		test.ExpectEquality(t, mem.Read(addresses.TIMA), 10, c.tac)
	}
}

func TestOverflow(t *testing.T) {
	tmr, mem := newTimer(t, 0x05)
	mem.Write(addresses.TMA, 0x42)
	mem.Write(addresses.TIMA, 0xfe)

	tmr.Tick(16)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0xff)
	test.ExpectEquality(t, mem.Read(addresses.IF), 0x00)

	tmr.Tick(16)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x42)
	test.ExpectEquality(t, mem.Read(addresses.IF), 0x04)

	// other interrupt bits are left alone
	mem.Write(addresses.IF, 0x01)
	tmr.Tick(16 * (0x100 - 0x42))
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x42)
	test.ExpectEquality(t, mem.Read(addresses.IF), 0x05)

	test.ExpectEquality(t, tmr.String(), "DIV=0c00 TIMA=42 TMA=42 TAC=05 period=16")
}

func TestDIVReset(t *testing.T) {
	tmr, mem := newTimer(t, 0x05)
	tmr.Tick(15)
	mem.Write(addresses.DIV, 0xff)
	tmr.Tick(15)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x00)
	tmr.Tick(1)
	test.ExpectEquality(t, mem.Read(addresses.TIMA), 0x01)
}

func TestZeroCycles(t *testing.T) {
	tmr, mem := newTimer(t, 0x04)
	tmr.Tick(0)
	tmr.Tick(-1)
	test.ExpectEquality(t, mem.Divider(), 0)
}
