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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gopherdmg/gopherdmg/logger"
)

// DefaultAddress is used when Launch() is given an empty address.
const DefaultAddress = "localhost:12600"

const page = "/debug/statsview"

// the server can only be started once per process
var launched sync.Once

// Launch the stats server in its own goroutine and write the URL of the
// server to output. Subsequent calls only write the URL.
func Launch(output io.Writer, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		go mgr.Start()
		logger.Logf(logger.Allow, "statsview", "server listening on %s", addr)
	})

	fmt.Fprintf(output, "stats server available at %s%s\n", addr, page)
}

// Available returns true if the stats server has been compiled in.
func Available() bool {
	return true
}
