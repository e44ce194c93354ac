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

import "fmt"

/* -------------------------------------------------------------------------- */

// A WindowSpec describes one window of the plan as a pair of signed
// offsets relative to the reference point, inclusive on both ends, with
// downstream positive. The plan is built once per dataset run and shared
// read-only by all features. Offsets are 1-based: no window ever contains
// the offset 0, which does not exist on a 1-based axis.
type WindowSpec struct {
  Index      int
  From       int // most upstream offset of the window
  To         int // most downstream offset of the window
  Dataset    string
  Method     Method
  Sense      StrandSense
  Decimals   int
  Enumerable bool
}

func (w WindowSpec) String() string {
  return fmt.Sprintf("%d:%d", w.From, w.To)
}

/* -------------------------------------------------------------------------- */

// BuildWindowPlan produces the ordered window list for a dataset run,
// from the most upstream to the most downstream window. Each window is
// WindowSize offsets wide; windows whose computed range would touch or
// span the nonexistent offset 0 are shifted explicitly below.
func BuildWindowPlan(config Config) ([]WindowSpec, error) {
  if err := config.Validate(); err != nil {
    return nil, err
  }
  size     := config.WindowSize
  up, down := config.upDown()

  windows := make([]WindowSpec, up+down)
  for i := 0; i < up+down; i++ {
    from := -size*up + i*size
    to   := from + size - 1
    // there is no offset 0 on a 1-based axis; windows starting at or
    // beyond it shift right by one, windows ending on or spanning it
    // extend their stop so that every window covers exactly [size]
    // existing offsets
    switch {
    case from >= 0:
      from, to = from+1, to+1
    case to >= 0:
      to = to+1
    }
    windows[i] = WindowSpec{
      Index     : i,
      From      : from,
      To        : to,
      Dataset   : config.Dataset,
      Method    : config.Method,
      Sense     : config.Sense,
      Decimals  : config.Decimals,
      Enumerable: config.Enumerable }
  }
  return windows, nil
}

/* -------------------------------------------------------------------------- */

// Width counts the offsets covered by the window, excluding the
// nonexistent offset 0 for windows that were shifted across it.
func (w WindowSpec) Width() int {
  n := w.To - w.From + 1
  if w.From < 0 && w.To > 0 {
    n--
  }
  return n
}
