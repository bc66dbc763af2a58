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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/paths"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestPaths(t *testing.T) {
	t.Setenv(paths.HomeEnv, "")

	// base path is created relative to the working directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg/foo/bar/baz")

	_, err = os.Stat(".gopherdmg/foo/bar")
	test.ExpectSuccess(t, err)

	// the file itself is not created
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err == nil)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherdmg")
}

func TestHomeOverride(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv(paths.HomeEnv, home)

	pth, err := paths.ResourcePath("scripts", "init.lua")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "scripts", "init.lua"))

	_, err = os.Stat(filepath.Join(home, "scripts"))
	test.ExpectSuccess(t, err)
}
