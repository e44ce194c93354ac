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

// A RawEntry is one scored interval returned by a ScoredRegionSource.
// Coordinates are 1-based and inclusive. A null score marks a
// placeholder entry that every reducer skips.
type RawEntry struct {
  From   int
  To     int
  Strand byte
  Name   string
  Score  float64
}

/* -------------------------------------------------------------------------- */

// A ScoredRegionQuery addresses one absolute genomic region of a source.
// Queries are transient, one is constructed per source call. Strand and
// Sense describe the filtering the source must apply; Exclude names the
// feature being profiled so that avoidance checks skip it.
type ScoredRegionQuery struct {
  Seqname   string
  From      int  // 1-based
  To        int  // inclusive
  Strand    byte // effective strand of the feature under consideration
  Sense     StrandSense
  Avoid     bool
  AvoidType string
  Exclude   string
}

// MatchStrand reports whether an entry on [strand] passes the strand
// filter of the query. Unstranded entries and unstranded features pass
// every filter.
func (q ScoredRegionQuery) MatchStrand(strand byte) bool {
  if q.Sense == SenseAll {
    return true
  }
  if strand == '*' || (q.Strand != '+' && q.Strand != '-') {
    return true
  }
  if q.Sense == SenseSense {
    return strand == q.Strand
  }
  return strand != q.Strand
}

/* -------------------------------------------------------------------------- */

// A ScoredRegionSource supplies raw scores for genomic regions. It
// encapsulates all data access (in-memory tracks, BAM files, databases);
// the core never touches a file format itself.
//
// Entries serves the batch collection strategy with one call per feature
// covering the full window span. Score serves the per-window strategy
// with one reduced value per window; the boolean result reports whether
// the window overlaps a neighboring feature when q.Avoid is set.
// Overlaps answers the same neighbor question for the batch strategy.
//
// Source handles are generally not safe to share between workers; each
// worker of a parallel run obtains its own handle from a SourceProvider.
type ScoredRegionSource interface {
  Entries(q ScoredRegionQuery) ([]RawEntry, error)
  Score(q ScoredRegionQuery, method Method) (float64, bool, error)
  Overlaps(seqname string, from, to int, featType, exclude string) bool
}

// A SourceProvider opens a fresh source handle for one worker.
type SourceProvider func() (ScoredRegionSource, error)
