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

package dbgmem_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/dbgmem"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

func newDbgMem(t *testing.T) dbgmem.DbgMem {
	t.Helper()
	rom := make([]uint8, 0x8000)
	mem, err := memory.NewMemory(rom, true)
	test.DemandSuccess(t, err)
	return dbgmem.DbgMem{Mem: mem}
}

func TestAddressInfo(t *testing.T) {
	dm := newDbgMem(t)

	ai := dm.GetAddressInfo("lcdc")
	test.DemandSuccess(t, ai != nil)
	test.ExpectEquality(t, ai.Address, 0xff40)
	test.ExpectEquality(t, ai.Symbol, "LCDC")
	test.ExpectEquality(t, ai.Area, memorymap.IO)
	test.ExpectEquality(t, ai.String(), "0xff40 (LCDC) (IO)")

	// numeric strings resolve to the symbol too
	ai = dm.GetAddressInfo("0xff0f")
	test.DemandSuccess(t, ai != nil)
	test.ExpectEquality(t, ai.Symbol, "IF")

	ai = dm.GetAddressInfo(uint16(0xe010))
	test.ExpectEquality(t, ai.MappedAddress, 0xc010)
	test.ExpectEquality(t, ai.String(), "0xe010 [mirror of 0xc010] (Echo)")

	test.ExpectEquality(t, dm.GetAddressInfo("nowhere") == nil, true)
	test.ExpectEquality(t, dm.GetAddressInfo("0x10000") == nil, true)
}

func TestPeekPoke(t *testing.T) {
	dm := newDbgMem(t)

	ai, err := dm.Peek("LCDC")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.Data, 0x91)
	test.ExpectEquality(t, ai.String(), "0xff40 (LCDC) (IO) -> 0x91")

	ai, err = dm.Poke("0xc000", 0x42)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.Data, 0x42)

	ai, err = dm.Peek(uint16(0xc000))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.Data, 0x42)

	_, err = dm.Peek("nowhere")
	test.ExpectSuccess(t, curated.Is(err, dbgmem.PeekError))

	_, err = dm.Poke("nowhere", 0)
	test.ExpectSuccess(t, curated.Is(err, dbgmem.PokeError))

	// cartridge rom can't be poked
	_, err = dm.Poke(uint16(0x0100), 0)
	test.ExpectSuccess(t, curated.Is(err, memory.PokeROM))
}
