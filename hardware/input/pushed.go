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
	"github.com/gopherdmg/gopherdmg/curated"
)

// QueueFull is returned by PushEvent() when the event cannot be queued.
const QueueFull = "input: pushed event queue is full: input dropped"

// PushEvent queues an event to be handled during the next call to Process().
// It is safe to call from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// Process handles all queued events. It should be called by the emulation
// goroutine once per step.
func (inp *Input) Process() {
	for {
		select {
		case ev := <-inp.pushed:
			inp.HandleEvent(ev)
		default:
			return
		}
	}
}
