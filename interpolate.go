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

// InterpolateRow fills interior null runs of one matrix row by linear
// interpolation between the flanking values. The first and last column
// are never interpolated, and a null run reaching the end of the row
// without a terminating value is left untouched. Only null cells are
// replaced, so the pass is idempotent.
func InterpolateRow(row []float64) {
  if len(row) < 3 {
    return
  }
  for i := 1; i < len(row)-1; i++ {
    if !IsNull(row[i]) || IsNull(row[i-1]) {
      continue
    }
    // null run starting at i with a value at i-1; find the next value
    j := i + 1
    for j < len(row) && IsNull(row[j]) {
      j++
    }
    if j == len(row) {
      // no forward neighbor, leave the remaining nulls in place
      return
    }
    v1 := row[i-1]
    v2 := row[j]
    d  := j - (i - 1)
    for k := 1; k < d; k++ {
      row[i-1+k] = v1 + (v2-v1)*float64(k)/float64(d)
    }
    i = j
  }
}

// Interpolate runs InterpolateRow over every row of the matrix.
func (m *ValueMatrix) Interpolate() {
  for i := 0; i < m.NRows(); i++ {
    InterpolateRow(m.Values[i])
  }
}
