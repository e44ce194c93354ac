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

import "math"

/* -------------------------------------------------------------------------- */

// Null returns the explicit null marker used for matrix cells without a
// value. IsNull is the only valid way to test for it.
func Null() float64 {
  return math.NaN()
}

func IsNull(value float64) bool {
  return math.IsNaN(value)
}

/* -------------------------------------------------------------------------- */

// A ValueMatrix holds one aggregated value (or null) per feature and
// window. Rows are indexed in the original feature input order, columns
// by window index. Cells are write-once: only the interpolator may
// replace a cell, and only a null one.
type ValueMatrix struct {
  Values [][]float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewValueMatrix(rows, cols int) *ValueMatrix {
  values := make([][]float64, rows)
  for i := 0; i < rows; i++ {
    values[i] = make([]float64, cols)
    for j := 0; j < cols; j++ {
      values[i][j] = Null()
    }
  }
  return &ValueMatrix{values}
}

/* -------------------------------------------------------------------------- */

func (m *ValueMatrix) NRows() int {
  return len(m.Values)
}

func (m *ValueMatrix) NCols() int {
  if len(m.Values) == 0 {
    return 0
  }
  return len(m.Values[0])
}

func (m *ValueMatrix) At(i, j int) float64 {
  return m.Values[i][j]
}

func (m *ValueMatrix) Row(i int) []float64 {
  return m.Values[i]
}

// Set writes a cell exactly once. Overwriting a non-null cell is a
// programmer error.
func (m *ValueMatrix) Set(i, j int, value float64) {
  if !IsNull(m.Values[i][j]) {
    panic("Set(): cell already has a value")
  }
  m.Values[i][j] = value
}

// setRow installs a complete row produced by one worker shard.
func (m *ValueMatrix) setRow(i int, row []float64) {
  if len(row) != m.NCols() {
    panic("setRow(): invalid row length")
  }
  for j := 0; j < len(row); j++ {
    if !IsNull(m.Values[i][j]) {
      panic("setRow(): row already has values")
    }
  }
  m.Values[i] = row
}

/* -------------------------------------------------------------------------- */

func (m *ValueMatrix) NullCount() int {
  n := 0
  for i := 0; i < m.NRows(); i++ {
    for j := 0; j < m.NCols(); j++ {
      if IsNull(m.Values[i][j]) {
        n++
      }
    }
  }
  return n
}

// ColumnMeans computes the mean of every window column across all
// features, skipping null cells. Columns without any value are null.
func (m *ValueMatrix) ColumnMeans() []float64 {
  means := make([]float64, m.NCols())
  for j := 0; j < m.NCols(); j++ {
    sum := 0.0
    n   := 0
    for i := 0; i < m.NRows(); i++ {
      if IsNull(m.Values[i][j]) {
        continue
      }
      sum += m.Values[i][j]
      n++
    }
    if n == 0 {
      means[j] = Null()
    } else {
      means[j] = sum/float64(n)
    }
  }
  return means
}
