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

import "github.com/biogo/store/interval"

/* -------------------------------------------------------------------------- */

// featInterval adapts a feature to the interval tree. Coordinates are
// stored half-open to match the tree's overlap convention.
type featInterval struct {
  start, end int
  id         uintptr
  name       string
  typ        string
}

func (f featInterval) Overlap(b interval.IntRange) bool {
  return f.end > b.Start && f.start < b.End
}

func (f featInterval) ID() uintptr {
  return f.id
}

func (f featInterval) Range() interval.IntRange {
  return interval.IntRange{Start: f.start, End: f.end}
}

/* -------------------------------------------------------------------------- */

// A NeighborIndex answers whether a genomic window overlaps any feature
// of the input list, optionally restricted to a feature type. It backs
// the avoidance rule of both collection strategies. The index is built
// once before a run and is safe for concurrent reads.
type NeighborIndex struct {
  trees map[string]*interval.IntTree
}

func NewNeighborIndex(features []Feature) *NeighborIndex {
  trees := make(map[string]*interval.IntTree)

  for i := 0; i < len(features); i++ {
    tree, ok := trees[features[i].Seqname]
    if !ok {
      tree = &interval.IntTree{}
      trees[features[i].Seqname] = tree
    }
    iv := featInterval{
      start: features[i].From,
      end  : features[i].To + 1,
      id   : uintptr(i),
      name : features[i].Name,
      typ  : features[i].Type }
    if err := tree.Insert(iv, false); err != nil {
      panic(err)
    }
  }
  for _, tree := range trees {
    tree.AdjustRanges()
  }
  return &NeighborIndex{trees}
}

/* -------------------------------------------------------------------------- */

// Overlaps reports whether [from, to] on [seqname] overlaps a neighboring
// feature. A feature named [exclude] never counts as its own neighbor;
// a non-empty [featType] restricts the check to features of that type.
func (index *NeighborIndex) Overlaps(seqname string, from, to int, featType, exclude string) bool {
  tree, ok := index.trees[seqname]
  if !ok {
    return false
  }
  q := featInterval{start: from, end: to + 1}
  for _, hit := range tree.Get(q) {
    f := hit.(featInterval)
    if f.name == exclude {
      continue
    }
    if featType != "" && f.typ != featType {
      continue
    }
    return true
  }
  return false
}
