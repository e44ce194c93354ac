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

import "testing"

/* -------------------------------------------------------------------------- */

func TestNeighborIndex(t *testing.T) {

  f1 := NewFeature("f1", "chr1", 100, 200, '+')
  f2 := NewFeature("f2", "chr1", 500, 600, '-')
  f2.Type = "gene"
  f3 := NewFeature("f3", "chr2", 100, 200, '+')

  index := NewNeighborIndex([]Feature{f1, f2, f3})

  if !index.Overlaps("chr1", 150, 250, "", "") {
    t.Error("TestNeighborIndex failed!")
  }
  if index.Overlaps("chr1", 201, 499, "", "") {
    t.Error("TestNeighborIndex failed!")
  }
  // inclusive end coordinates
  if !index.Overlaps("chr1", 200, 300, "", "") {
    t.Error("TestNeighborIndex failed!")
  }
  // unknown sequence
  if index.Overlaps("chr3", 100, 200, "", "") {
    t.Error("TestNeighborIndex failed!")
  }
}

func TestNeighborIndexTypeFilter(t *testing.T) {

  f1 := NewFeature("f1", "chr1", 100, 200, '+')
  f2 := NewFeature("f2", "chr1", 500, 600, '-')
  f2.Type = "gene"

  index := NewNeighborIndex([]Feature{f1, f2})

  if index.Overlaps("chr1", 150, 250, "gene", "") {
    t.Error("TestNeighborIndexTypeFilter failed!")
  }
  if !index.Overlaps("chr1", 550, 650, "gene", "") {
    t.Error("TestNeighborIndexTypeFilter failed!")
  }
}

func TestNeighborIndexExclude(t *testing.T) {

  f1 := NewFeature("f1", "chr1", 100, 200, '+')

  index := NewNeighborIndex([]Feature{f1})

  // a feature is not its own neighbor
  if index.Overlaps("chr1", 150, 250, "", "f1") {
    t.Error("TestNeighborIndexExclude failed!")
  }
  if !index.Overlaps("chr1", 150, 250, "", "f2") {
    t.Error("TestNeighborIndexExclude failed!")
  }
}
