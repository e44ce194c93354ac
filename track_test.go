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

func TestTrackEntries(t *testing.T) {

  track := NewTrack("test")
  track.AddEntry("chr1", 300, 400, '+', "a", 1)
  track.AddEntry("chr1", 100, 200, '+', "b", 2)
  track.AddEntry("chr1", 150, 250, '-', "c", 3)

  q := ScoredRegionQuery{Seqname: "chr1", From: 120, To: 260}

  entries, err := track.Entries(q)
  if err != nil {
    t.Fatal(err)
  }
  if len(entries) != 2 {
    t.Fatal("TestTrackEntries failed!")
  }
  // entries are sorted by start coordinate
  if entries[0].Name != "b" || entries[1].Name != "c" {
    t.Error("TestTrackEntries failed!")
  }
}

func TestTrackStrandFilter(t *testing.T) {

  track := NewTrack("test")
  track.AddEntry("chr1", 100, 200, '+', "a", 1)
  track.AddEntry("chr1", 100, 200, '-', "b", 2)
  track.AddEntry("chr1", 100, 200, '*', "c", 3)

  q := ScoredRegionQuery{
    Seqname: "chr1", From: 100, To: 200, Strand: '+', Sense: SenseSense}

  entries, err := track.Entries(q)
  if err != nil {
    t.Fatal(err)
  }
  // sense keeps the matching strand and unstranded entries
  if len(entries) != 2 {
    t.Fatal("TestTrackStrandFilter failed!")
  }
  if entries[0].Name != "a" || entries[1].Name != "c" {
    t.Error("TestTrackStrandFilter failed!")
  }

  q.Sense = SenseAntisense
  entries, err = track.Entries(q)
  if err != nil {
    t.Fatal(err)
  }
  if len(entries) != 2 {
    t.Fatal("TestTrackStrandFilter failed!")
  }
  if entries[0].Name != "b" || entries[1].Name != "c" {
    t.Error("TestTrackStrandFilter failed!")
  }
}

func TestTrackScore(t *testing.T) {

  track := NewTrack("test")
  track.AddEntry("chr1", 100, 100, '+', "", 2)
  track.AddEntry("chr1", 110, 110, '+', "", 4)

  q := ScoredRegionQuery{Seqname: "chr1", From: 100, To: 200}

  value, overlap, err := track.Score(q, Mean)
  if err != nil {
    t.Fatal(err)
  }
  if value != 3 || overlap {
    t.Error("TestTrackScore failed!")
  }

  // empty region yields null
  q.From, q.To = 500, 600
  value, _, err = track.Score(q, Mean)
  if err != nil {
    t.Fatal(err)
  }
  if !IsNull(value) {
    t.Error("TestTrackScore failed!")
  }
}
