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

package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/dbgmem"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/logger"
)

// ScriptError is the pattern used for all errors returned by the Run
// functions.
const ScriptError = "script: %v"

// Script is a Lua interpreter bound to an instance of the DMG.
type Script struct {
	L *lua.LState

	dmg    *hardware.DMG
	dbgmem dbgmem.DbgMem
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is sent to the io.Writer.
func NewScript(dmg *hardware.DMG, output io.Writer) *Script {
	scr := &Script{
		L:      lua.NewState(),
		dmg:    dmg,
		dbgmem: dbgmem.DbgMem{Mem: dmg.Mem},
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":     scr.peek,
		"poke":     scr.poke,
		"read":     scr.read,
		"write":    scr.write,
		"readword": scr.readword,
		"tick":     scr.tick,
		"cycles":   scr.cycles,
		"press":    scr.press,
		"release":  scr.release,
		"print":    scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua interpreter. The Script should not be used after calling
// this function.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile loads and runs the Lua file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		logger.Logf(logger.Allow, "script", "%s: %v", filename, err)
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		logger.Log(logger.Allow, "script", err)
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// the address argument can be a number or a string
func (scr *Script) checkAddress(L *lua.LState, n int) uint16 {
	switch v := L.CheckAny(n).(type) {
	case lua.LNumber:
		return uint16(v)
	case lua.LString:
		ai := scr.dbgmem.GetAddressInfo(string(v))
		if ai == nil {
			L.ArgError(n, fmt.Sprintf("unrecognised address (%s)", string(v)))
		}
		return ai.Address
	}
	L.ArgError(n, "address must be a number or a string")
	return 0
}

func checkData(L *lua.LState, n int) uint8 {
	return uint8(L.CheckInt(n))
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.dmg.Mem.Peek(scr.checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.dmg.Mem.Poke(scr.checkAddress(L, 1), checkData(L, 2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.Mem.Read(scr.checkAddress(L, 1))))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	scr.dmg.Mem.Write(scr.checkAddress(L, 1), checkData(L, 2))
	return 0
}

func (scr *Script) readword(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.Mem.ReadWord(scr.checkAddress(L, 1))))
	return 1
}

func (scr *Script) tick(L *lua.LState) int {
	if err := scr.dmg.Step(L.CheckInt(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dmg.Cycles))
	return 1
}

func (scr *Script) checkKey(L *lua.LState) input.Key {
	k, err := input.ParseKey(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	return k
}

func (scr *Script) press(L *lua.LState) int {
	scr.dmg.Input.Press(scr.checkKey(L))
	return 0
}

func (scr *Script) release(L *lua.LState) int {
	scr.dmg.Input.Release(scr.checkKey(L))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}
