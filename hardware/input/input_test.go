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

package input_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/test"
)

type interrupts struct {
	raised []bus.Interrupt
}

func (i *interrupts) RaiseInterrupt(r bus.Interrupt) {
	i.raised = append(i.raised, r)
}

func TestKeyState(t *testing.T) {
	inp := input.NewInput(nil)
	test.ExpectImplements[bus.KeyState](t, inp)

	test.ExpectEquality(t, inp.Buttons(), 0x0f)
	test.ExpectEquality(t, inp.Directions(), 0x0f)
	test.ExpectEquality(t, inp.String(), "no keys pressed")

	inp.Press(input.A)
	inp.Press(input.Start)
	test.ExpectEquality(t, inp.Buttons(), 0x06)
	test.ExpectEquality(t, inp.Directions(), 0x0f)

	inp.Press(input.Right)
	inp.Press(input.Down)
	test.ExpectEquality(t, inp.Directions(), 0x06)
	test.ExpectEquality(t, inp.String(), "RIGHT DOWN A START")

	inp.Release(input.A)
	inp.Release(input.Down)
	test.ExpectEquality(t, inp.Buttons(), 0x07)
	test.ExpectEquality(t, inp.Directions(), 0x0e)
	test.ExpectSuccess(t, inp.IsPressed(input.Start))
	test.ExpectFailure(t, inp.IsPressed(input.A))
}

func TestInterrupt(t *testing.T) {
	irq := &interrupts{}
	inp := input.NewInput(irq)

	inp.Press(input.B)
	test.DemandEquality(t, len(irq.raised), 1)
	test.ExpectEquality(t, irq.raised[0], bus.InterruptJoypad)

	// holding a key does not request another interrupt
	inp.Press(input.B)
	test.ExpectEquality(t, len(irq.raised), 1)

	// releasing never requests an interrupt
	inp.Release(input.B)
	test.ExpectEquality(t, len(irq.raised), 1)

	inp.Press(input.Up)
	test.ExpectEquality(t, len(irq.raised), 2)
}

func TestParseKey(t *testing.T) {
	k, err := input.ParseKey("select")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, input.Select)

	k, err = input.ParseKey(" Left ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, input.Left)

	_, err = input.ParseKey("turbo")
	test.ExpectSuccess(t, curated.Is(err, input.UnknownKey))

	test.ExpectEquality(t, input.Key(10).String(), "unknown key")
}

func TestPushedEvents(t *testing.T) {
	irq := &interrupts{}
	inp := input.NewInput(irq)

	done := make(chan error)
	go func() {
		done <- inp.PushEvent(input.Event{Key: input.Start, Pressed: true})
	}()
	test.ExpectSuccess(t, <-done)

	// not applied until Process() is called
	test.ExpectFailure(t, inp.IsPressed(input.Start))
	inp.Process()
	test.ExpectSuccess(t, inp.IsPressed(input.Start))
	test.ExpectEquality(t, len(irq.raised), 1)

	// fill the queue
	var err error
	for i := 0; err == nil; i++ {
		err = inp.PushEvent(input.Event{Key: input.A, Pressed: i%2 == 0})
	}
	test.ExpectSuccess(t, curated.Is(err, input.QueueFull))
	inp.Process()
}
