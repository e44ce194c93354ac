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

import "sync/atomic"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Summary reports the non-fatal events of a run. Null cells are data,
// not errors; they are counted here for the caller's report.
type Summary struct {
  Features int // rows processed
  Windows  int // columns per row
  Nulls    int // null cells after the optional interpolation pass
  Avoided  int // windows nulled by the avoidance rule
  Failed   int // features whose source query failed, row is all null
}

/* -------------------------------------------------------------------------- */

// partialResult is the output of one worker shard: complete rows tagged
// with their original feature indices.
type partialResult struct {
  indices []int
  rows    [][]float64
  avoided int
  failed  int
}

/* -------------------------------------------------------------------------- */

// RelativeData computes the windowed relative-position value matrix for
// a feature list. The window plan is built once; features are sharded
// over Config.Threads workers, each with its own source handle from
// [provider]; shard outputs are merged back into the original feature
// order. Configuration and shard failures abort the run with typed
// errors, per-feature data failures only produce null rows.
func RelativeData(config Config, features []Feature, provider SourceProvider) (*ValueMatrix, []WindowSpec, Summary, error) {
  summary := Summary{}

  windows, err := BuildWindowPlan(config)
  if err != nil {
    return nil, nil, summary, err
  }
  // summit data must be complete before any feature is processed
  if config.Position == PositionSummit {
    for i := 0; i < len(features); i++ {
      if features[i].Summit < 0 {
        return nil, nil, summary, ConfigError{"summit position mode requires summit data on every feature"}
      }
    }
  }
  summary.Features = len(features)
  summary.Windows  = len(windows)

  threads  := workerCount(config, len(features))
  partials := make([]*partialResult, threads)
  done     := int64(0)

  if threads == 1 {
    src, err := provider()
    if err != nil {
      return nil, nil, summary, ShardError{0, err}
    }
    partials[0] = processShard(config, windows, features, 0, 1, &done)(src)
  } else {
    pool := threadpool.New(threads, 100*threads)
    g    := pool.NewJobGroup()

    for k := 0; k < threads; k++ {
      // make a thread safe copy of k
      shard := k
      pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
        src, err := provider()
        if err != nil {
          return ShardError{shard, err}
        }
        partials[shard] = processShard(config, windows, features, shard, threads, &done)(src)
        return nil
      })
    }
    if err := pool.Wait(g); err != nil {
      return nil, nil, summary, err
    }
  }
  // the merge requires every shard to have reported back
  for k := 0; k < threads; k++ {
    if partials[k] == nil {
      return nil, nil, summary, ShardError{k, nil}
    }
  }
  matrix := NewValueMatrix(len(features), len(windows))
  for k := 0; k < threads; k++ {
    for i := 0; i < len(partials[k].indices); i++ {
      matrix.setRow(partials[k].indices[i], partials[k].rows[i])
    }
    summary.Avoided += partials[k].avoided
    summary.Failed  += partials[k].failed
  }
  if config.Interpolate {
    matrix.Interpolate()
  }
  summary.Nulls = matrix.NullCount()

  return matrix, windows, summary, nil
}

/* -------------------------------------------------------------------------- */

// workerCount reduces the configured thread count until every shard
// holds at least Config.MinShardRows features; below that density the
// parallelism overhead is not worth it.
func workerCount(config Config, nfeatures int) int {
  threads := config.Threads
  if threads < 1 {
    threads = 1
  }
  minRows := config.minShardRows()
  for threads > 1 && nfeatures/threads < minRows {
    threads--
  }
  return threads
}

// processShard computes the rows of one shard. Shard [k] of [n] owns the
// feature indices congruent to k modulo n, a stable partition that the
// merge reverses exactly.
func processShard(config Config, windows []WindowSpec, features []Feature, k, n int, done *int64) func(ScoredRegionSource) *partialResult {
  return func(src ScoredRegionSource) *partialResult {
    partial := &partialResult{}

    for i := k; i < len(features); i += n {
      row, stats := collectRow(config, windows, features[i], src)
      partial.indices = append(partial.indices, i)
      partial.rows    = append(partial.rows,    row)
      partial.avoided += stats.avoided
      if stats.failed {
        partial.failed++
      }
      if config.Progress != nil {
        config.Progress(int(atomic.AddInt64(done, 1)), len(features))
      }
    }
    return partial
  }
}
