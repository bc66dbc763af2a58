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

package cartridge

// cartRAM is embedded by controllers that have cartridge RAM
type cartRAM struct {
	ram        []uint8
	ramEnabled bool
}

func newCartRAM(size int) cartRAM {
	return cartRAM{ram: make([]uint8, size)}
}

// enableRAM interprets a write to the RAM enable register. the low nibble
// must be 0x0a for RAM to be enabled
func (r *cartRAM) enableRAM(data uint8) {
	r.ramEnabled = data&0x0f == 0x0a
}

// idx returns the index into RAM for the address and bank. the bank number
// wraps around the amount of RAM
func (r *cartRAM) idx(bank int, address uint16) int {
	return (bank*ramBankSize + int(address&(ramBankSize-1))) % len(r.ram)
}

func (r *cartRAM) readRAM(bank int, address uint16) uint8 {
	if !r.ramEnabled || len(r.ram) == 0 {
		return 0xff
	}
	return r.ram[r.idx(bank, address)]
}

func (r *cartRAM) writeRAM(bank int, address uint16, data uint8) {
	if !r.ramEnabled || len(r.ram) == 0 {
		return
	}
	r.ram[r.idx(bank, address)] = data
}

// GetRAM implements the RAMBus interface. Returns nil if there is no
// cartridge RAM.
func (r *cartRAM) GetRAM() []uint8 {
	if len(r.ram) == 0 {
		return nil
	}
	c := make([]uint8, len(r.ram))
	copy(c, r.ram)
	return c
}

// PutRAM implements the RAMBus interface.
func (r *cartRAM) PutRAM(idx int, data uint8) {
	if idx < 0 || idx >= len(r.ram) {
		return
	}
	r.ram[idx] = data
}
