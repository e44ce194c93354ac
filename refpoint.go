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

// effectiveStrand yields the strand used for all strand-aware decisions
// of a feature. A forced strand, if given, replaces the native strand.
func effectiveStrand(f Feature, forced byte) byte {
  if forced == '+' || forced == '-' {
    return forced
  }
  return f.Strand
}

/* -------------------------------------------------------------------------- */

// ReferencePoint computes the absolute coordinate the window plan of a
// feature is anchored to. The 5' and 3' modes flip on reverse-strand
// features; unstranded features are treated as forward. The summit mode
// requires a summit offset on the feature and does not fall back
// silently, see Config.SummitOrMidpoint for an explicit substitution.
func ReferencePoint(f Feature, mode PositionMode, forced byte) (int, error) {
  strand := effectiveStrand(f, forced)

  switch mode {
  case Position5Prime:
    if strand == '-' {
      return f.To, nil
    }
    return f.From, nil
  case Position3Prime:
    if strand == '-' {
      return f.From, nil
    }
    return f.To, nil
  case PositionMidpoint:
    // round half up
    return (f.From + f.To + 1)/2, nil
  case PositionSummit:
    if f.Summit < 0 {
      return 0, ConfigError{fmt.Sprintf("feature `%s' has no summit", f.Name)}
    }
    return f.From + f.Summit, nil
  }
  return 0, ConfigError{"invalid position mode"}
}
