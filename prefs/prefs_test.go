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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.ExpectEquality(t, w.Get(), prefs.Value(99))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	err = v.Set("---")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.String(), "10")
}

func TestString(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length crops the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the maximum length does not restore the cropped string
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")

	test.ExpectSuccess(t, s.Reset())
	test.ExpectEquality(t, s.String(), "")
}

func TestHooks(t *testing.T) {
	var b prefs.Bool
	var seen []prefs.Value

	b.SetHookPre(func(v prefs.Value) error {
		if v.(bool) {
			return nil
		}
		return errors.New("refused")
	})
	b.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v)
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectFailure(t, b.Set(false))
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.DemandEquality(t, len(seen), 1)
	test.ExpectEquality(t, seen[0], prefs.Value(true))
}

// a second Disk instance using the same file must not clobber the values
// saved by the first
func TestPreserveEntries(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)
	data := prefs.WarningBoilerPlate + "\nmonitor.history :: 10\nnumber :: 42\nflag :: true\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var n prefs.Int
	var f prefs.Bool
	test.ExpectSuccess(t, dsk.Add("number", &n))
	test.ExpectSuccess(t, dsk.Add("flag", &f))
	test.ExpectSuccess(t, curated.Is(dsk.Add("flag", &f), prefs.DuplicateKey))

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, n.Get(), prefs.Value(42))
	test.ExpectEquality(t, f.Get(), prefs.Value(true))

	// command line takes priority
	prefs.PushCommandLineStack("number::7")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, n.Get(), prefs.Value(7))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// defunct entries are dropped on save
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "flag :: true\nnumber :: 7\n")

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, dsk.String(), "flag :: false\nnumber :: 0\n")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidFile))

	test.DemandSuccess(t, os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nfoo bar\n"), 0600))
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidEntry))

	// missing file is not an error
	dsk, err = prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Load())
}
