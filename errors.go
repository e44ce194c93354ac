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

// ConfigError reports an invalid configuration. It is always raised
// before any feature is processed, there is no partial output.
type ConfigError struct {
  Reason string
}

func (err ConfigError) Error() string {
  return fmt.Sprintf("invalid configuration: %s", err.Reason)
}

/* -------------------------------------------------------------------------- */

// ShardError reports a failed or missing worker shard. A run with any
// failed shard has no valid result to merge and is aborted as a whole.
type ShardError struct {
  Shard int
  Err   error
}

func (err ShardError) Error() string {
  if err.Err == nil {
    return fmt.Sprintf("shard %d produced no result", err.Shard)
  }
  return fmt.Sprintf("shard %d failed: %v", err.Shard, err.Err)
}

func (err ShardError) Unwrap() error {
  return err.Err
}
