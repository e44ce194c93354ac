/* Copyright (C) 2024 Timothy J. Parnell
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "os"

/* -------------------------------------------------------------------------- */

// A Bar renders the progress of processing Total items, printing at
// most Updates intermediate states.
type Bar struct {
  Total, Every, Width int
}

/* -------------------------------------------------------------------------- */

func New(total, updates int) Bar {
  bar := Bar{total, total/updates, 40}
  if bar.Every < 1 {
    bar.Every = 1
  }
  return bar
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (bar Bar) render(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := float64(i)/float64(bar.Total)
  // carriage return
  fmt.Fprintf(writer, "%s|", __line_del__)

  for j := 1; j < bar.Width-1; j++ {
    if float64(j)/float64(bar.Width) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%%", p*100)
  // add newline if finished
  if i == bar.Total {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (bar Bar) PrintStdout(i int) {
  if i == 0 || i == bar.Total || (i % bar.Every == 0) {
    fmt.Fprint(os.Stdout, bar.render(i))
  }
}

func (bar Bar) PrintStderr(i int) {
  if i == 0 || i == bar.Total || (i % bar.Every == 0) {
    fmt.Fprint(os.Stderr, bar.render(i))
  }
}
