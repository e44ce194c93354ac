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

import "sort"

/* -------------------------------------------------------------------------- */

// A Track is an in-memory scored interval container implementing
// ScoredRegionSource. Entries are sorted by start coordinate on
// insertion; a filled track is read-only during queries, so a
// SourceProvider may hand the same track to every worker.
type Track struct {
  Name      string
  entries   map[string][]RawEntry
  neighbors *NeighborIndex
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewTrack(name string) *Track {
  return &Track{
    Name   : name,
    entries: make(map[string][]RawEntry) }
}

/* -------------------------------------------------------------------------- */

// AddEntry inserts one scored interval. Coordinates are 1-based and
// inclusive; point data uses from == to.
func (track *Track) AddEntry(seqname string, from, to int, strand byte, name string, score float64) {
  if from > to {
    panic("AddEntry(): from > to")
  }
  entries := track.entries[seqname]
  i := sort.Search(len(entries), func(i int) bool {
    return entries[i].From > from
  })
  entries = append(entries, RawEntry{})
  copy(entries[i+1:], entries[i:])
  entries[i] = RawEntry{from, to, strand, name, score}
  track.entries[seqname] = entries
}

// SetNeighborIndex installs the feature index consulted by the
// avoidance rule. Without an index no window is ever avoided.
func (track *Track) SetNeighborIndex(index *NeighborIndex) {
  track.neighbors = index
}

/* scored region source
 * -------------------------------------------------------------------------- */

func (track *Track) Entries(q ScoredRegionQuery) ([]RawEntry, error) {
  entries := track.entries[q.Seqname]
  result  := []RawEntry{}

  for i := 0; i < len(entries); i++ {
    if entries[i].From > q.To {
      break
    }
    if entries[i].To < q.From {
      continue
    }
    if !q.MatchStrand(entries[i].Strand) {
      continue
    }
    result = append(result, entries[i])
  }
  return result, nil
}

func (track *Track) Score(q ScoredRegionQuery, method Method) (float64, bool, error) {
  overlap := false
  if q.Avoid {
    overlap = track.Overlaps(q.Seqname, q.From, q.To, q.AvoidType, q.Exclude)
  }
  entries, err := track.Entries(q)
  if err != nil {
    return Null(), overlap, err
  }
  return Reduce(method, entries, q.From, q.To), overlap, nil
}

func (track *Track) Overlaps(seqname string, from, to int, featType, exclude string) bool {
  if track.neighbors == nil {
    return false
  }
  return track.neighbors.Overlaps(seqname, from, to, featType, exclude)
}
