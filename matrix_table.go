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

package relmap

/* -------------------------------------------------------------------------- */

import "bufio"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"

/* -------------------------------------------------------------------------- */

// WriteMatrixTable writes the value matrix as a whitespace separated
// table. The first two columns identify the feature, the remaining
// columns are labeled with the window offset ranges. Null cells are
// written as ".".
func WriteMatrixTable(writer io.Writer, features []Feature, windows []WindowSpec, matrix *ValueMatrix, header bool) error {
  if matrix.NRows() != len(features) || matrix.NCols() != len(windows) {
    panic("WriteMatrixTable(): matrix dimensions do not match")
  }
  w := bufio.NewWriter(writer)
  defer w.Flush()

  if header {
    fmt.Fprintf(w, "%14s %10s", "name", "seqname")
    for j := 0; j < len(windows); j++ {
      fmt.Fprintf(w, " %12s", windows[j].String())
    }
    w.WriteString("\n")
  }
  for i := 0; i < len(features); i++ {
    fmt.Fprintf(w,  "%14s", features[i].Name)
    fmt.Fprintf(w, " %10s", features[i].Seqname)
    for j := 0; j < len(windows); j++ {
      fmt.Fprintf(w, " %12s", formatCell(matrix.At(i, j), windows[j].Decimals))
    }
    w.WriteString("\n")
  }
  return w.Flush()
}

// ExportMatrixTable writes the table to a file, optionally gzipped.
func ExportMatrixTable(filename string, features []Feature, windows []WindowSpec, matrix *ValueMatrix, header, compress bool) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if compress {
    g := gzip.NewWriter(f)
    defer g.Close()
    return WriteMatrixTable(g, features, windows, matrix, header)
  }
  return WriteMatrixTable(f, features, windows, matrix, header)
}

/* -------------------------------------------------------------------------- */

func formatCell(value float64, decimals int) string {
  if IsNull(value) {
    return "."
  }
  if decimals >= 0 {
    return strconv.FormatFloat(value, 'f', decimals, 64)
  }
  return strconv.FormatFloat(value, 'g', -1, 64)
}
