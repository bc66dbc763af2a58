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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "mbc1", "ram enabled")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mbc1: ram enabled\n")
	w.Reset()

	log.Log(logger.Allow, "dma", "source 0xc000")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mbc1: ram enabled\ndma: source 0xc000\n")

	// too many entries is fine
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "mbc1: ram enabled\ndma: source 0xc000\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "dma: source 0xc000\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeat(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "mbc1", "write to disabled ram")
	log.Log(logger.Allow, "mbc1", "write to disabled ram")
	log.Log(logger.Allow, "mbc1", "write to disabled ram")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mbc1: write to disabled ram (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.SetEcho(w, false)
	log.Log(logger.Allow, "timer", "overflow")
	test.ExpectEquality(t, w.String(), "timer: overflow\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "timer", "overflow again")
	test.ExpectEquality(t, w.String(), "timer: overflow\n")
}

type prohibit struct {
	allow bool
}

func (p prohibit) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibit{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer test"
}

// errors and fmt.Stringer are given special treatment. everything else is
// logged with the %v verb
func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: test error\n")
}

func TestBorrowLog(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")

	var tags []string
	log.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			tags = append(tags, e.Tag)
		}
	})
	test.DemandEquality(t, len(tags), 2)
	test.ExpectEquality(t, tags[0], "a")
	test.ExpectEquality(t, tags[1], "b")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("mbc1: ram enabled\nno tag\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("mbc1: ram enabled\nno tag\n"))
	test.ExpectEquality(t, w.String(),
		ansi.DimPens["cyan"]+"mbc1"+ansi.NormalPen+": ram enabled\nno tag\n")
}
