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

package cartridge_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/test"
)

// makeROM creates ROM data where every byte of a bank is the bank number
func makeROM(cartType uint8, banks int, ramCode uint8) []uint8 {
	rom := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		for i := 0; i < 0x4000; i++ {
			rom[b*0x4000+i] = uint8(b)
		}
	}
	rom[0x0147] = cartType
	rom[0x0149] = ramCode
	return rom
}

func newMapper(t *testing.T, cartType uint8, banks int, ramCode uint8) cartridge.Mapper {
	t.Helper()
	m, err := cartridge.NewMapper(makeROM(cartType, banks, ramCode))
	test.DemandSuccess(t, err)
	return m
}

func TestSelection(t *testing.T) {
	for _, c := range []struct {
		cartType uint8
		id       string
	}{
		{0x00, "ROM"}, {0x08, "ROM"}, {0x09, "ROM"},
		{0x01, "MBC1"}, {0x02, "MBC1"}, {0x03, "MBC1"},
		{0x05, "MBC2"}, {0x06, "MBC2"},
		{0x0f, "MBC3"}, {0x10, "MBC3"}, {0x11, "MBC3"}, {0x12, "MBC3"}, {0x13, "MBC3"},
		{0x19, "MBC5"}, {0x1a, "MBC5"}, {0x1b, "MBC5"}, {0x1c, "MBC5"}, {0x1d, "MBC5"}, {0x1e, "MBC5"},
	} {
		m := newMapper(t, c.cartType, 2, 0x02)
		test.ExpectEquality(t, m.ID(), c.id, c.cartType)
		test.ExpectImplements[cartridge.BankInfo](t, m, c.cartType)
	}
}

func TestUnsupported(t *testing.T) {
	_, err := cartridge.NewMapper(makeROM(0xfc, 2, 0))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	_, err = cartridge.NewMapper(makeROM(0x0b, 2, 0))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	_, err = cartridge.NewMapper(make([]uint8, 0x100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidROM))
}

func TestROMOnly(t *testing.T) {
	m := newMapper(t, 0x00, 2, 0)
	test.ExpectEquality(t, m.ReadROM(0x0000), 0x00)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// writes never change ROM
	m.WriteROM(0x2000, 0x05)
	m.WriteROM(0x4000, 0xaa)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// no RAM
	m.WriteRAM(0xa000, 0x12)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xff)

	// ROM+RAM needs no enabling
	m = newMapper(t, 0x08, 2, 0x02)
	m.WriteRAM(0xa010, 0x12)
	test.ExpectEquality(t, m.ReadRAM(0xa010), 0x12)

	// reading beyond the end of a short ROM
	short := make([]uint8, 0x200)
	m, err := cartridge.NewMapper(short)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0xff)
}

func TestMBC1(t *testing.T) {
	m := newMapper(t, 0x03, 64, 0x03)

	// bank one is mapped at power on
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	m.WriteROM(0x2000, 0x05)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x05)
	test.ExpectEquality(t, m.ReadROM(0x0000), 0x00)

	// zero selects bank one
	m.WriteROM(0x2000, 0x00)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// only five bits are used. 0x20 is treated as zero and so selects bank one
	m.WriteROM(0x3fff, 0x20)
	test.ExpectEquality(t, m.ReadROM(0x7fff), 0x01)

	// secondary register supplies bits 5 and 6
	m.WriteROM(0x2000, 0x02)
	m.WriteROM(0x4000, 0x01)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x22)

	// ROM0 is affected only in mode 1
	test.ExpectEquality(t, m.ReadROM(0x0000), 0x00)
	m.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, m.ReadROM(0x0000), 0x20)
	m.WriteROM(0x6000, 0x00)

	// RAM is disabled at power on
	m.WriteRAM(0xa000, 0x42)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xff)

	m.WriteROM(0x0000, 0x0a)
	m.WriteRAM(0xa000, 0x42)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x42)

	// RAM banking in mode 1. secondary register is still 1
	m.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x00)
	m.WriteRAM(0xa000, 0x43)
	m.WriteROM(0x4000, 0x00)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x42)
	m.WriteROM(0x4000, 0x01)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x43)

	// disabling RAM
	m.WriteROM(0x1fff, 0x00)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xff)

	r, ok := m.(cartridge.RAMBus)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(r.GetRAM()), 0x8000)
	test.ExpectEquality(t, r.GetRAM()[0], 0x42)
	test.ExpectEquality(t, r.GetRAM()[0x2000], 0x43)
}

func TestMBC1WrapBanks(t *testing.T) {
	// four banks only. bank 5 wraps to bank 1
	m := newMapper(t, 0x01, 4, 0)
	m.WriteROM(0x2000, 0x05)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// no RAM on this cartridge type even when enabled
	m.WriteROM(0x0000, 0x0a)
	m.WriteRAM(0xa000, 0x42)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xff)
}

func TestMBC2(t *testing.T) {
	m := newMapper(t, 0x05, 16, 0)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// bit 8 of the address set selects ROM bank
	m.WriteROM(0x2100, 0x07)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x07)
	m.WriteROM(0x0100, 0x00)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	// bit 8 clear is RAM enable
	m.WriteRAM(0xa000, 0x05)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xff)
	m.WriteROM(0x0000, 0x0a)
	m.WriteRAM(0xa000, 0x35)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0xf5)

	// RAM is mirrored every 512 bytes
	test.ExpectEquality(t, m.ReadRAM(0xa200), 0xf5)
	test.ExpectEquality(t, m.ReadRAM(0xbe00), 0xf5)

	// writes above 0x3fff are ignored
	m.WriteROM(0x4100, 0x03)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)
}

func TestMBC3(t *testing.T) {
	m := newMapper(t, 0x10, 128, 0x03)

	m.WriteROM(0x2000, 0x45)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x45)
	m.WriteROM(0x2000, 0x00)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x01)

	m.WriteROM(0x0000, 0x0a)
	m.WriteROM(0x4000, 0x02)
	m.WriteRAM(0xa123, 0x99)
	test.ExpectEquality(t, m.ReadRAM(0xa123), 0x99)
	m.WriteROM(0x4000, 0x00)
	test.ExpectEquality(t, m.ReadRAM(0xa123), 0x00)

	// clock registers read the latched value
	m.WriteROM(0x4000, 0x08)
	m.WriteRAM(0xa000, 0x1e)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x00)
	m.WriteROM(0x6000, 0x00)
	m.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x1e)

	// latching requires 0x00 followed by 0x01
	m.WriteRAM(0xa000, 0x1f)
	m.WriteROM(0x6000, 0x01)
	test.ExpectEquality(t, m.ReadRAM(0xa000), 0x1e)

	test.ExpectEquality(t, m.(cartridge.BankInfo).MappedBanks(), "rom=1 rtc=0x08")

	// invalid bank values are ignored
	m.WriteROM(0x4000, 0x05)
	test.ExpectEquality(t, m.(cartridge.BankInfo).MappedBanks(), "rom=1 rtc=0x08")
}

func TestMBC5(t *testing.T) {
	m := newMapper(t, 0x1b, 512, 0x04)

	// bank zero can be mapped into ROMX
	m.WriteROM(0x2000, 0x00)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x00)

	m.WriteROM(0x2000, 0xff)
	test.ExpectEquality(t, m.ReadROM(0x4000), 0xff)

	// ninth bit. makeROM() truncates bank numbers to eight bits so bank 258
	// reads as 0x02
	m.WriteROM(0x3000, 0x01)
	m.WriteROM(0x2000, 0x02)
	test.ExpectEquality(t, m.(cartridge.BankInfo).MappedBanks(), "rom=258 ram=0")
	test.ExpectEquality(t, m.ReadROM(0x4000), 0x02)

	m.WriteROM(0x0000, 0x0a)
	for b := uint8(0); b < 16; b++ {
		m.WriteROM(0x4000, b)
		m.WriteRAM(0xb000, b+0x80)
	}
	m.WriteROM(0x4000, 0x03)
	test.ExpectEquality(t, m.ReadRAM(0xb000), 0x83)
}

func TestHeader(t *testing.T) {
	rom := makeROM(0x01, 2, 0)
	copy(rom[0x0104:], cartridge.Logo[:])
	copy(rom[0x0134:], "TETRIS")
	rom[0x0148] = 0x00
	rom[0x014b] = 0x01

	var chk uint8
	for i := 0x0134; i <= 0x014c; i++ {
		chk = chk - rom[i] - 1
	}
	rom[0x014d] = chk

	h, err := cartridge.ParseHeader(rom)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title, "TETRIS")
	test.ExpectEquality(t, h.CartType, 0x01)
	test.ExpectEquality(t, h.ROMSize, 0x8000)
	test.ExpectEquality(t, h.RAMSize, 0)
	test.ExpectEquality(t, h.Licensee, "Nintendo")
	test.ExpectSuccess(t, h.ChecksumValid())
	test.ExpectSuccess(t, h.LogoValid)
	test.ExpectSuccess(t, h.Japanese())

	rom[0x014d]++
	h, err = cartridge.ParseHeader(rom)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, h.ChecksumValid())

	_, err = cartridge.ParseHeader(rom[:0x100])
	test.ExpectFailure(t, err)
}
