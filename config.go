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

/* position modes
 * -------------------------------------------------------------------------- */

type PositionMode int

const (
  Position5Prime  PositionMode = iota // 5' end, strand-aware
  Position3Prime                      // 3' end, strand-aware
  PositionMidpoint                    // interval midpoint, round half up
  PositionSummit                      // per-feature summit offset
)

func ParsePositionMode(str string) (PositionMode, error) {
  switch str {
  case "5", "5p", "start":
    return Position5Prime, nil
  case "3", "3p", "end":
    return Position3Prime, nil
  case "m", "mid", "midpoint":
    return PositionMidpoint, nil
  case "p", "summit", "peak":
    return PositionSummit, nil
  }
  return Position5Prime, ConfigError{fmt.Sprintf("invalid position mode `%s'", str)}
}

func (mode PositionMode) String() string {
  switch mode {
  case Position5Prime : return "5p"
  case Position3Prime : return "3p"
  case PositionMidpoint: return "midpoint"
  case PositionSummit : return "summit"
  }
  return "invalid"
}

/* strand sense
 * -------------------------------------------------------------------------- */

type StrandSense int

const (
  SenseAll       StrandSense = iota // keep entries on both strands
  SenseSense                        // keep entries on the feature strand
  SenseAntisense                    // keep entries opposite the feature strand
)

func ParseStrandSense(str string) (StrandSense, error) {
  switch str {
  case "all":
    return SenseAll, nil
  case "sense":
    return SenseSense, nil
  case "antisense", "anti":
    return SenseAntisense, nil
  }
  return SenseAll, ConfigError{fmt.Sprintf("invalid strand sense `%s'", str)}
}

func (sense StrandSense) String() string {
  switch sense {
  case SenseAll      : return "all"
  case SenseSense    : return "sense"
  case SenseAntisense: return "antisense"
  }
  return "invalid"
}

/* -------------------------------------------------------------------------- */

const defaultLongThreshold = 5000
const defaultMinShardRows  =  100

// Config collects all options of a dataset run. It replaces the option
// globals of older implementations; a single value is constructed up
// front, validated once, and passed unchanged to every component.
type Config struct {
  Dataset       string       // dataset identifier stamped on each window
  WindowSize    int          // window width in bp
  Windows       int          // symmetric window count on both sides
  UpWindows     int          // explicit upstream count, overrides Windows
  DownWindows   int          // explicit downstream count, overrides Windows
  Position      PositionMode
  Method        Method
  Enumerable    bool         // count-like dataset: empty sums are 0, not null
  Sense         StrandSense
  ForcedStrand  byte         // '+' or '-' overrides the feature strand, 0 is off
  Avoid         bool         // null out windows overlapping neighbor features
  AvoidType     string       // restrict avoidance to this feature type
  Long          bool         // force per-window collection
  LongThreshold int          // span above which collection is per-window, 0 is default
  Decimals      int          // rounding precision of matrix cells, -1 is off
  Interpolate   bool         // fill interior null windows by interpolation
  Threads       int          // worker count for the split/merge coordinator
  MinShardRows  int          // minimum rows per shard before reducing workers, 0 is default
  Progress      func(done, total int)
}

// DefaultConfig returns a configuration with the defaults of the original
// tool: ten 100bp windows on both sides of the 5' end, mean aggregation,
// single threaded, no rounding.
func DefaultConfig() Config {
  return Config{
    WindowSize: 100,
    Windows   : 10,
    Position  : Position5Prime,
    Method    : Mean,
    Sense     : SenseAll,
    Decimals  : -1,
    Threads   : 1 }
}

// upDown resolves the symmetric/explicit window count options into a
// pair of upstream and downstream counts.
func (config Config) upDown() (int, int) {
  if config.UpWindows != 0 || config.DownWindows != 0 {
    return config.UpWindows, config.DownWindows
  }
  return config.Windows, config.Windows
}

func (config Config) longThreshold() int {
  if config.LongThreshold > 0 {
    return config.LongThreshold
  }
  return defaultLongThreshold
}

func (config Config) minShardRows() int {
  if config.MinShardRows > 0 {
    return config.MinShardRows
  }
  return defaultMinShardRows
}

// Validate checks the configuration before any feature is processed. All
// violations are reported as ConfigError.
func (config Config) Validate() error {
  if config.WindowSize <= 0 {
    return ConfigError{fmt.Sprintf("invalid window size `%d'", config.WindowSize)}
  }
  up, down := config.upDown()
  if up < 0 || down < 0 {
    return ConfigError{fmt.Sprintf("invalid window counts `%d'/`%d'", up, down)}
  }
  if up+down == 0 {
    return ConfigError{"window counts are both zero"}
  }
  if config.Position < Position5Prime || config.Position > PositionSummit {
    return ConfigError{"invalid position mode"}
  }
  if config.Method < Mean || config.Method > NameCount {
    return ConfigError{"invalid aggregation method"}
  }
  if config.ForcedStrand != 0 && config.ForcedStrand != '+' && config.ForcedStrand != '-' {
    return ConfigError{fmt.Sprintf("invalid forced strand `%c'", config.ForcedStrand)}
  }
  return nil
}

// SummitOrMidpoint substitutes the midpoint mode if any feature lacks a
// summit. The substitution the original tool performed silently is made
// an explicit caller decision here; the returned flag reports whether the
// substitution took place.
func (config Config) SummitOrMidpoint(features []Feature) (Config, bool) {
  if config.Position != PositionSummit {
    return config, false
  }
  for i := 0; i < len(features); i++ {
    if features[i].Summit < 0 {
      config.Position = PositionMidpoint
      return config, true
    }
  }
  return config, false
}
