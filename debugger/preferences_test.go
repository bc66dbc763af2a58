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
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Color.Get(), prefs.Value(true))
	test.ExpectEquality(t, p.TickCycles.Get(), prefs.Value(4))

	test.DemandSuccess(t, p.TickCycles.Set(16))
	test.DemandSuccess(t, p.Save())

	p, err = newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.TickCycles.Get(), prefs.Value(16))
	test.ExpectEquality(t, p.String(), "monitor.color :: true\nmonitor.tickCycles :: 16\n")

	// the zero value can be used without a disk
	p = &Preferences{}
	p.SetDefaults()
	test.ExpectSuccess(t, p.Save())
	test.ExpectEquality(t, p.String(), "")
}
