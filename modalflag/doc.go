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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags must
// be added and sub-modes listed before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "INFO", "SCRIPT")
//	booted := md.AddBool("booted", true, "start in post-boot state")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first listed sub-mode is the default. If the first argument after the
// flags names a sub-mode then that mode is selected and the argument is
// consumed. Sub-mode names are not case sensitive. The selected mode is
// returned by Mode().
//
// Each mode can then call NewMode() to start a new layer of flags and
// sub-modes for the remaining arguments. The modes found in each layer are
// joined by Path():
//
//	md.NewMode()
//	md.AddSubModes("RUN", "CHECK")
//	md.Parse()
//	fmt.Println(md.Path())  // for example: SCRIPT/RUN
package modalflag
