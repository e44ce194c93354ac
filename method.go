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
import "math"
import "sort"

import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Method is the statistical reducer applied to the raw scores of a
// window. Methods are validated once at configuration time; there is no
// string dispatch during collection.
type Method int

const (
  Mean         Method = iota
  Median
  Sum
  Min
  Max
  StdDev              // population standard deviation
  Count               // entries overlapping the window
  PreciseCount        // entries fully contained in the window
  NameCount           // distinct entry names overlapping the window
)

func ParseMethod(str string) (Method, error) {
  switch str {
  case "mean"  : return Mean,         nil
  case "median": return Median,       nil
  case "sum"   : return Sum,          nil
  case "min"   : return Min,          nil
  case "max"   : return Max,          nil
  case "stddev": return StdDev,       nil
  case "count" : return Count,        nil
  case "pcount": return PreciseCount, nil
  case "ncount": return NameCount,    nil
  }
  return Mean, ConfigError{fmt.Sprintf("invalid aggregation method `%s'", str)}
}

func (method Method) String() string {
  switch method {
  case Mean        : return "mean"
  case Median      : return "median"
  case Sum         : return "sum"
  case Min         : return "min"
  case Max         : return "max"
  case StdDev      : return "stddev"
  case Count       : return "count"
  case PreciseCount: return "pcount"
  case NameCount   : return "ncount"
  }
  return "invalid"
}

/* -------------------------------------------------------------------------- */

// Reduce collapses the raw entries of one window into a single value.
// The entries are expected to already overlap [from, to]; placeholder
// entries with a null score are ignored by every method. Counting methods
// yield 0 on an empty window, all others yield null. The enumerable
// convention for empty sums is applied by the collector, not here.
func Reduce(method Method, entries []RawEntry, from, to int) float64 {
  switch method {
  case Count:
    n := 0
    for i := 0; i < len(entries); i++ {
      if math.IsNaN(entries[i].Score) {
        continue
      }
      n++
    }
    return float64(n)
  case PreciseCount:
    n := 0
    for i := 0; i < len(entries); i++ {
      if math.IsNaN(entries[i].Score) {
        continue
      }
      if entries[i].From >= from && entries[i].To <= to {
        n++
      }
    }
    return float64(n)
  case NameCount:
    names := make(map[string]struct{})
    for i := 0; i < len(entries); i++ {
      if math.IsNaN(entries[i].Score) {
        continue
      }
      names[entries[i].Name] = struct{}{}
    }
    return float64(len(names))
  }
  values := []float64{}
  for i := 0; i < len(entries); i++ {
    if math.IsNaN(entries[i].Score) {
      continue
    }
    values = append(values, entries[i].Score)
  }
  return reduceValues(method, values)
}

// reduceValues applies a scalar method to an already-filtered score list.
func reduceValues(method Method, values []float64) float64 {
  if len(values) == 0 {
    return math.NaN()
  }
  switch method {
  case Mean:
    return stat.Mean(values, nil)
  case Median:
    t := make([]float64, len(values))
    copy(t, values)
    sort.Float64s(t)
    n := len(t)
    if n % 2 == 1 {
      return t[n/2]
    }
    return (t[n/2-1] + t[n/2])/2.0
  case Sum:
    sum := 0.0
    for i := 0; i < len(values); i++ {
      sum += values[i]
    }
    return sum
  case Min:
    min := values[0]
    for i := 1; i < len(values); i++ {
      if values[i] < min {
        min = values[i]
      }
    }
    return min
  case Max:
    max := values[0]
    for i := 1; i < len(values); i++ {
      if values[i] > max {
        max = values[i]
      }
    }
    return max
  case StdDev:
    return stat.PopStdDev(values, nil)
  }
  panic("reduceValues(): invalid method")
}
