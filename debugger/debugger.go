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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/dbgmem"
	"github.com/gopherdmg/gopherdmg/debugger/script"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/commandline"
	"github.com/gopherdmg/gopherdmg/hardware"
)

// Debugger is the monitor for the emulated hardware.
type Debugger struct {
	dmg   *hardware.DMG
	term  terminal.Terminal
	prefs *Preferences

	dbgmem dbgmem.DbgMem
	cmds   *commandline.Commands

	// the Lua interpreter is created on first use
	script *script.Script

	// the input loop continues while running is true
	running bool
}

// NewDebugger creates the monitor for the DMG. The terminal should not have
// been initialised. If prefs is nil then the default preferences are used.
func NewDebugger(dmg *hardware.DMG, term terminal.Terminal, prefs *Preferences) (*Debugger, error) {
	if prefs == nil {
		prefs = &Preferences{}
		prefs.SetDefaults()
	}

	dbg := &Debugger{
		dmg:    dmg,
		term:   term,
		prefs:  prefs,
		dbgmem: dbgmem.DbgMem{Mem: dmg.Mem},
	}

	var err error
	dbg.cmds, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	err = dbg.cmds.AddHelp(cmdHelp, help)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the monitor. The initScript is a Lua script that is run before the
// first prompt. An empty string means there is no script. A failing init
// script is reported to the terminal but does not prevent the monitor from
// starting.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(dbg.cmds))

	defer func() {
		if dbg.script != nil {
			dbg.script.Close()
			dbg.script = nil
		}
	}()

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)

	dbg.running = true
	for dbg.running {
		n, err := dbg.term.TermRead(buffer, terminal.NewMonitorPrompt(dbg.dmg.Cycles))
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case curated.Is(err, terminal.UserAbort):
				return nil
			case curated.Is(err, terminal.UserInterrupt):
				dbg.printLine(terminal.StyleFeedbackSecondary, "use %s to leave the monitor", cmdQuit)
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		// multiple commands can be entered on one line, separated by a
		// semicolon
		for _, s := range strings.Split(string(buffer[:n]), ";") {
			if err := dbg.parseInput(s); err != nil {
				dbg.printLine(terminal.StyleError, "%v", err)
				break
			}
			if !dbg.running {
				break
			}
		}
	}

	return nil
}

// parseInput validates and processes a single command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if err := dbg.cmds.ValidateTokens(tokens); err != nil {
		return err
	}
	if tokens.Len() == 0 {
		return nil
	}

	dbg.printLine(terminal.StyleEcho, tokens.String())

	return dbg.processTokens(tokens)
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines and return if the resulting string is
	// empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

// styleWriter implements the io.Writer interface. It is useful when an
// io.Writer is required and the output should go to the terminal. Every
// write is printed with the same style.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, string(p))
	return len(p), nil
}
