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

package hardware

import (
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/hardware/serial"
	"github.com/gopherdmg/gopherdmg/hardware/timer"
)

// DMG is the container for the emulated components of the DMG.
type DMG struct {
	Prefs *preferences.Preferences

	// the cartridge header. the zero value if the rom is too short to
	// contain a complete header
	Header cartridge.Header

	Mem    *memory.Memory
	Timer  *timer.Timer
	Input  *input.Input
	Serial *serial.Serial

	// total number of cycles passed to Step()
	Cycles uint64
}

// NewDMG creates a new DMG and everything associated with the hardware. The
// serial output is written to the io.Writer if the SerialEcho preference is
// true.
func NewDMG(rom []uint8, prefs *preferences.Preferences, serialOut io.Writer) (*DMG, error) {
	dmg := &DMG{Prefs: prefs}

	var err error
	dmg.Mem, err = memory.NewMemory(rom, prefs.Booted.Get().(bool))
	if err != nil {
		return nil, err
	}

	if h, err := cartridge.ParseHeader(rom); err == nil {
		dmg.Header = h
	}

	dmg.Timer = timer.NewTimer(dmg.Mem)
	dmg.Input = input.NewInput(dmg.Mem)
	dmg.Mem.AttachKeys(dmg.Input)

	if !prefs.SerialEcho.Get().(bool) {
		serialOut = nil
	}
	dmg.Serial = serial.NewSerial(dmg.Mem, serialOut)

	return dmg, nil
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("cycles=%d", dmg.Cycles)
}

// Step advances the hardware by the number of cycles taken by the most
// recent CPU instruction. Pushed input events are handled first, followed by
// the timer and then the serial port.
func (dmg *DMG) Step(cycles int) error {
	dmg.Input.Process()
	dmg.Timer.Tick(cycles)
	if err := dmg.Serial.Step(); err != nil {
		return err
	}
	if cycles > 0 {
		dmg.Cycles += uint64(cycles)
	}
	return nil
}
