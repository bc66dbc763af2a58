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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/debugger/script"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/colorterm"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/plainterm"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/gopherdmg/gopherdmg/version"
)

const defaultInitScript = "monitorInit.lua"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the exit value for the program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "INFO", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitor(md, output)
	case "INFO":
		err = info(md, output)
	case "SCRIPT":
		err = runScript(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// loadCartridge loads the single cartridge named on the command line
func loadCartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if !cartload.HasExtension() {
		logger.Logf(logger.Allow, "gopherdmg", "unusual file extension for %s", cartload.ShortName())
	}
	if err := cartload.Load(); err != nil {
		return cartridgeloader.Loader{}, err
	}
	return cartload, nil
}

// newDMG creates the hardware for the cartridge. command line preferences
// should be on the stack before calling. a nil booted value leaves the
// Booted preference as loaded
func newDMG(cartload cartridgeloader.Loader, booted *bool, output io.Writer) (*hardware.DMG, error) {
	hwprefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	if booted != nil {
		if err := hwprefs.Booted.Set(*booted); err != nil {
			return nil, err
		}
	}
	return hardware.NewDMG(cartload.Data, hwprefs, output)
}

// flagValue returns the value of the boolean flag if it was set on the
// command line. nil otherwise
func flagValue(md *modalflag.Modes, name string, v *bool) *bool {
	var set bool
	md.Visit(func(f string) {
		if f == name {
			set = true
		}
	})
	if set {
		return v
	}
	return nil
}

func monitor(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	booted := md.AddBool("booted", true, "start with the register values left by the boot ROM (overrides the hardware.booted preference)")
	termType := md.AddString("term", "AUTO", "terminal type to use: AUTO, COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "Lua script to run on monitor start")
	prefsFlag := md.AddString("prefs", "", "preferences for this session. eg. \"monitor.color::false; hardware.serialEcho::false\"")
	echoLog := md.AddBool("log", false, "echo log entries to the terminal")
	tick := md.AddInt("tick", 0, "cycles for TICK without an argument (0 uses the saved preference)")
	stats := md.AddBool("statsview", false, "launch the stats server (if available)")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address for the stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl := *prefsFlag
	if *tick > 0 {
		cl = fmt.Sprintf("%s; monitor.tickCycles::%d", cl, *tick)
	}
	prefs.PushCommandLineStack(cl)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "! unused preferences: %s\n", unused)
		}
	}()

	if *stats {
		statsview.Launch(output, *statsAddr)
	}

	cartload, err := loadCartridge(md)
	if err != nil {
		return err
	}

	dmg, err := newDMG(cartload, flagValue(md, "booted", booted), output)
	if err != nil {
		return err
	}

	monprefs, err := debugger.NewPreferences()
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to AUTO\n", *termType)
		fallthrough
	case "AUTO":
		if monprefs.Color.Get().(bool) && term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(os.Stdin, output)
		}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(os.Stdin, output)
	}

	if *echoLog {
		var w io.Writer = output
		if _, ok := trm.(*colorterm.ColorTerminal); ok {
			w = logger.NewColorizer(output)
		}
		logger.SetEcho(w, false)
		defer logger.SetEcho(nil, false)
	}

	dbg, err := debugger.NewDebugger(dmg, trm, monprefs)
	if err != nil {
		return err
	}

	// the default init script is optional
	if *initScript == defInitScript {
		if _, err := os.Stat(defInitScript); err != nil {
			*initScript = ""
		}
	}

	if err := dbg.Start(*initScript); err != nil {
		return err
	}

	return monprefs.Save()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := loadCartridge(md)
	if err != nil {
		return err
	}

	dmg, err := newDMG(cartload, nil, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, cartload.String())
	fmt.Fprintln(output, dmg.Mem.Cartridge().ID())
	fmt.Fprint(output, dmg.Header.String())

	return nil
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("usage: SCRIPT [flags] <cartridge> <script.lua>")

	booted := md.AddBool("booted", true, "start with the register values left by the boot ROM (overrides the hardware.booted preference)")
	prefsFlag := md.AddString("prefs", "", "preferences for this session")
	echoLog := md.AddBool("log", false, "echo log entries to the terminal")
	profile := md.AddBool("profile", false, "run script through the cpu and memory profilers")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("cartridge and script required for %s mode", md)
	}

	prefs.PushCommandLineStack(*prefsFlag)
	defer prefs.PopCommandLineStack()

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return err
	}

	dmg, err := newDMG(cartload, flagValue(md, "booted", booted), output)
	if err != nil {
		return err
	}

	if *echoLog {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	scr := script.NewScript(dmg, output)
	defer scr.Close()

	run := func() error {
		return scr.RunFile(md.GetArg(1))
	}

	if !*profile {
		return run()
	}

	if err := performance.ProfileCPU("script.cpu.profile", run); err != nil {
		return err
	}
	return performance.ProfileMem("script.mem.profile")
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revisionFlag := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, ver)
	if *revisionFlag {
		fmt.Fprintln(output, rev)
	}
	if statsview.Available() {
		fmt.Fprintln(output, "statsview is available")
	}

	return nil
}
