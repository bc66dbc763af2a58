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

package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/paths"
)

// the hardware state as given to memviz. the memory array and the cartridge
// data are too large to draw so a summary is built instead
type vizState struct {
	Cycles    uint64
	Cartridge vizCartridge
	Registers map[string]uint8
	Divider   uint16
	Timer     string
	Keys      map[string]bool
	Serial    string
}

type vizCartridge struct {
	Title  string
	Mapper string
	Banks  string
}

func (dbg *Debugger) vizState() *vizState {
	st := &vizState{
		Cycles: dbg.dmg.Cycles,
		Cartridge: vizCartridge{
			Title:  dbg.dmg.Header.Title,
			Mapper: dbg.dmg.Mem.Cartridge().ID(),
			Banks:  mappedBanks(dbg.dmg.Mem.Cartridge()),
		},
		Registers: make(map[string]uint8),
		Divider:   dbg.dmg.Mem.Divider(),
		Timer:     dbg.dmg.Timer.String(),
		Keys:      make(map[string]bool),
		Serial:    dbg.dmg.Serial.String(),
	}

	for a, n := range addresses.CanonicalSymbols {
		st.Registers[n], _ = dbg.dmg.Mem.Peek(a)
	}

	for k := input.Right; k <= input.Start; k++ {
		st.Keys[k.String()] = dbg.dmg.Input.IsPressed(k)
	}

	return st
}

// memviz writes the hardware state to the named file. If the filename is
// empty a unique filename is created. Returns the name of the file written.
func (dbg *Debugger) memviz(filename string) (string, error) {
	if filename == "" {
		filename = paths.UniqueFilename("memviz", dbg.dmg.Header.Title) + ".dot"
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.vizState())

	return filename, nil
}
