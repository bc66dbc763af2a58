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

package input

import (
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
)

// Key identifies one of the eight keys. The value of a key is the bit it
// occupies in the key state.
type Key int

// List of valid Key values. The directions occupy the low nibble and the
// buttons the high nibble, each in the order they appear in P1.
const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

var keyNames = []string{"RIGHT", "LEFT", "UP", "DOWN", "A", "B", "SELECT", "START"}

func (k Key) String() string {
	if k < Right || k > Start {
		return "unknown key"
	}
	return keyNames[k]
}

// UnknownKey is returned by ParseKey() if the string does not name a key.
const UnknownKey = "input: unknown key (%s)"

// ParseKey returns the Key named by the string. The name is not case
// sensitive.
func ParseKey(s string) (Key, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range keyNames {
		if n == s {
			return Key(i), nil
		}
	}
	return Right, curated.Errorf(UnknownKey, s)
}

// Event is a change in the state of a key.
type Event struct {
	Key     Key
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s pressed", ev.Key)
	}
	return fmt.Sprintf("%s released", ev.Key)
}

// Input implements the bus.KeyState interface.
type Input struct {
	mem bus.InterruptBus

	// a set bit indicates a pressed key
	state uint8

	// events pushed onto the input queue
	pushed chan Event
}

// size of the pushed event queue
const pushedQueueLen = 64

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(mem bus.InterruptBus) *Input {
	return &Input{
		mem:    mem,
		pushed: make(chan Event, pushedQueueLen),
	}
}

func (inp *Input) String() string {
	s := strings.Builder{}
	for k := Right; k <= Start; k++ {
		if inp.IsPressed(k) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(k.String())
		}
	}
	if s.Len() == 0 {
		return "no keys pressed"
	}
	return s.String()
}

// HandleEvent changes the state of the key in the event.
func (inp *Input) HandleEvent(ev Event) {
	if ev.Pressed {
		inp.Press(ev.Key)
	} else {
		inp.Release(ev.Key)
	}
}

// Press the key. The joypad interrupt is requested if the key was not
// already pressed.
func (inp *Input) Press(k Key) {
	bit := uint8(1) << k
	if inp.state&bit == bit {
		return
	}
	inp.state |= bit
	if inp.mem != nil {
		inp.mem.RaiseInterrupt(bus.InterruptJoypad)
	}
}

// Release the key.
func (inp *Input) Release(k Key) {
	inp.state &^= uint8(1) << k
}

// IsPressed returns true if the key is pressed.
func (inp *Input) IsPressed(k Key) bool {
	bit := uint8(1) << k
	return inp.state&bit == bit
}

// Buttons implements the bus.KeyState interface.
func (inp *Input) Buttons() uint8 {
	return ^(inp.state >> 4) & 0x0f
}

// Directions implements the bus.KeyState interface.
func (inp *Input) Directions() uint8 {
	return ^inp.state & 0x0f
}
