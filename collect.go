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

type strategy int

const (
  strategyBatch     strategy = iota // one source query per feature
  strategyPerWindow                 // one source query per window
)

// chooseStrategy dispatches on the combined span of all windows. Small
// spans are fetched in one query per feature and partitioned afterwards;
// large or explicitly long requests query window by window, which avoids
// fetching huge spans for sparse interval tracks.
func chooseStrategy(config Config, windows []WindowSpec) strategy {
  if config.Long {
    return strategyPerWindow
  }
  span := windows[len(windows)-1].To - windows[0].From
  if span > config.longThreshold() {
    return strategyPerWindow
  }
  return strategyBatch
}

/* -------------------------------------------------------------------------- */

// absoluteWindow maps the relative offsets of a window onto the genome.
// For reverse-strand features downstream runs leftward, so the window
// mirrors around the reference point.
func absoluteWindow(ref int, strand byte, w WindowSpec) (int, int) {
  if strand == '-' {
    return ref - w.To, ref - w.From
  }
  return ref + w.From, ref + w.To
}

// finishValue applies the empty-window convention and rounding. Empty
// sums are 0 for enumerable (count-like) datasets and null otherwise;
// the counting methods already produce 0 themselves.
func finishValue(value float64, w WindowSpec) float64 {
  if IsNull(value) && w.Enumerable && w.Method == Sum {
    value = 0
  }
  return roundTo(value, w.Decimals)
}

/* -------------------------------------------------------------------------- */

// rowStats counts the non-fatal events of one feature row.
type rowStats struct {
  avoided int  // windows nulled by the avoidance rule
  failed  bool // the source failed for this feature, row is all null
}

// collectRow computes one feature's row of the value matrix. Source
// failures are data errors, not run errors: the row stays null and is
// counted, per-window results are never partially overwritten.
func collectRow(config Config, windows []WindowSpec, f Feature, src ScoredRegionSource) ([]float64, rowStats) {
  row := make([]float64, len(windows))
  for j := 0; j < len(row); j++ {
    row[j] = Null()
  }
  stats := rowStats{}

  ref, err := ReferencePoint(f, config.Position, config.ForcedStrand)
  if err != nil {
    stats.failed = true
    return row, stats
  }
  strand := effectiveStrand(f, config.ForcedStrand)

  switch chooseStrategy(config, windows) {
  case strategyBatch:
    collectBatch(config, windows, f, src, ref, strand, row, &stats)
  case strategyPerWindow:
    collectPerWindow(config, windows, f, src, ref, strand, row, &stats)
  }
  return row, stats
}

/* -------------------------------------------------------------------------- */

// collectBatch fetches the full window span with a single query and
// partitions the returned entries by window afterwards. This is the
// cheap path for dense point data.
func collectBatch(config Config, windows []WindowSpec, f Feature, src ScoredRegionSource, ref int, strand byte, row []float64, stats *rowStats) {
  spanFrom, _ := absoluteWindow(ref, strand, windows[0])
  _, spanTo   := absoluteWindow(ref, strand, windows[len(windows)-1])
  if strand == '-' {
    spanFrom, _ = absoluteWindow(ref, strand, windows[len(windows)-1])
    _, spanTo   = absoluteWindow(ref, strand, windows[0])
  }
  q := ScoredRegionQuery{
    Seqname  : f.Seqname,
    From     : spanFrom,
    To       : spanTo,
    Strand   : strand,
    Sense    : config.Sense,
    Avoid    : config.Avoid,
    AvoidType: config.AvoidType,
    Exclude  : f.Name }

  entries, err := src.Entries(q)
  if err != nil {
    stats.failed = true
    return
  }
  for j := 0; j < len(windows); j++ {
    wFrom, wTo := absoluteWindow(ref, strand, windows[j])
    if config.Avoid && src.Overlaps(f.Seqname, wFrom, wTo, config.AvoidType, f.Name) {
      stats.avoided++
      continue
    }
    sub := []RawEntry{}
    for i := 0; i < len(entries); i++ {
      if entries[i].From <= wTo && entries[i].To >= wFrom {
        sub = append(sub, entries[i])
      }
    }
    row[j] = finishValue(Reduce(windows[j].Method, sub, wFrom, wTo), windows[j])
  }
}

// collectPerWindow issues one reduced query per window. Correct for
// long or sparse interval tracks at a cost proportional to the window
// count.
func collectPerWindow(config Config, windows []WindowSpec, f Feature, src ScoredRegionSource, ref int, strand byte, row []float64, stats *rowStats) {
  for j := 0; j < len(windows); j++ {
    wFrom, wTo := absoluteWindow(ref, strand, windows[j])
    q := ScoredRegionQuery{
      Seqname  : f.Seqname,
      From     : wFrom,
      To       : wTo,
      Strand   : strand,
      Sense    : config.Sense,
      Avoid    : config.Avoid,
      AvoidType: config.AvoidType,
      Exclude  : f.Name }

    value, overlap, err := src.Score(q, windows[j].Method)
    if err != nil {
      continue
    }
    if config.Avoid && overlap {
      stats.avoided++
      continue
    }
    row[j] = finishValue(value, windows[j])
  }
}
