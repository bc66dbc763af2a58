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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/performance"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestProfileCPU(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cpu.profile")

	var ran bool
	err := performance.ProfileCPU(fn, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	// errors from the run function are passed through
	runErr := errors.New("run error")
	err = performance.ProfileCPU(filepath.Join(t.TempDir(), "cpu2.profile"), func() error {
		return runErr
	})
	test.ExpectEquality(t, err, runErr)
}

func TestProfileMem(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(fn))

	fi, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)

	test.ExpectFailure(t, performance.ProfileMem(filepath.Join(t.TempDir(), "nodir", "mem.profile")))
}
