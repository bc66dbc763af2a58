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

package serial

import (
	"fmt"
	"io"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
)

// the value of SC that starts a transfer using the internal clock
const transferStart = 0x81

// Serial drains the serial port into an io.Writer.
type Serial struct {
	mem bus.ChipBus
	out io.Writer

	// number of bytes transferred
	sent int
}

// NewSerial is the preferred method of initialisation for the Serial type.
// The output writer can be nil, in which case transferred bytes are
// discarded.
func NewSerial(mem bus.ChipBus, out io.Writer) *Serial {
	return &Serial{
		mem: mem,
		out: out,
	}
}

func (ser *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x sent=%d",
		ser.mem.ChipRead(addresses.SB),
		ser.mem.ChipRead(addresses.SC),
		ser.sent,
	)
}

// Sent returns the number of bytes transferred.
func (ser *Serial) Sent() int {
	return ser.sent
}

// SetOutput changes the writer for future transfers.
func (ser *Serial) SetOutput(out io.Writer) {
	ser.out = out
}

// Step checks for a pending transfer and completes it.
func (ser *Serial) Step() error {
	if ser.mem.ChipRead(addresses.SC) != transferStart {
		return nil
	}

	b := ser.mem.ChipRead(addresses.SB)
	ser.mem.ChipWrite(addresses.SC, 0x00)
	ser.sent++

	if ser.out != nil {
		if _, err := ser.out.Write([]byte{b}); err != nil {
			return curated.Errorf("serial: %v", err)
		}
	}

	return nil
}
