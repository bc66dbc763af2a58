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

// Package input tracks the state of the eight DMG keys. The Input type
// implements the bus.KeyState interface, which the memory uses to compose the
// value of the P1 register.
//
// A key changing from released to pressed requests the joypad interrupt. The
// interrupt is requested regardless of which key group is selected in P1.
//
// Events can arrive from a different goroutine with PushEvent(). Pushed
// events are queued and are only applied when Process() is called by the
// emulation goroutine.
package input
