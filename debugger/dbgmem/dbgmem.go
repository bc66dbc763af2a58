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
	"strconv"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
)

// DbgMem is a front-end to the emulated memory. It allows addressing by
// symbol name and uses the AddressInfo type for easier presentation.
type DbgMem struct {
	Mem bus.DebuggerBus
}

// GetAddressInfo allows addressing by symbols in addition to numerically.
// Returns nil if the address cannot be resolved.
func (dbgmem DbgMem) GetAddressInfo(address any) *AddressInfo {
	ai := &AddressInfo{}

	switch address := address.(type) {
	case uint16:
		ai.Address = address
	case string:
		if a, ok := addresses.Lookup(address); ok {
			ai.Address = a
		} else {
			// this may be a string representation of a numerical address
			a, err := strconv.ParseUint(address, 0, 16)
			if err != nil {
				return nil
			}
			ai.Address = uint16(a)
		}
	default:
		panic(fmt.Sprintf("unsupported address type (%T)", address))
	}

	ai.MappedAddress, ai.Area = memorymap.MapAddress(ai.Address)
	ai.Symbol = addresses.Symbol(ai.Address)

	return ai
}

// Sentinal error patterns returned by Peek() and Poke().
const (
	PeekError = "cannot peek address (%v)"
	PokeError = "cannot poke address (%v)"
)

// Peek returns the contents of the memory address, without triggering any
// side effects. The supplied address can be numeric or symbolic.
func (dbgmem DbgMem) Peek(address any) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil {
		return nil, curated.Errorf(PeekError, address)
	}

	var err error
	ai.Data, err = dbgmem.Mem.Peek(ai.Address)
	if err != nil {
		return nil, err
	}
	ai.Peeked = true

	return ai, nil
}

// Poke writes a value at the specified address without triggering any side
// effects. The supplied address can be numeric or symbolic.
func (dbgmem DbgMem) Poke(address any, data uint8) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address)
	if ai == nil {
		return nil, curated.Errorf(PokeError, address)
	}

	if err := dbgmem.Mem.Poke(ai.Address, data); err != nil {
		return nil, err
	}
	ai.Data = data
	ai.Peeked = true

	return ai, nil
}
