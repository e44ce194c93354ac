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
import "testing"

/* -------------------------------------------------------------------------- */

// syntheticRun builds a deterministic feature list and track: feature i
// sits at 10000*(i+1) with a characteristic score in every window.
func syntheticRun(n int) ([]Feature, *Track) {
  features := make([]Feature, n)
  track    := NewTrack("synthetic")

  for i := 0; i < n; i++ {
    start := 10000*(i + 1)
    strand := byte('+')
    if i % 3 == 0 {
      strand = '-'
    }
    features[i] = NewFeature(fmt.Sprintf("f%d", i), "chr1", start, start+500, strand)
    for p := start - 300; p <= start + 300; p += 7 {
      track.AddEntry("chr1", p, p, '+', "", float64(p % 13))
    }
  }
  return features, track
}

func trackProvider(track *Track) SourceProvider {
  return func() (ScoredRegionSource, error) {
    return track, nil
  }
}

/* -------------------------------------------------------------------------- */

func TestRelativeData(t *testing.T) {

  features, track := syntheticRun(10)

  config := testConfig()
  matrix, windows, summary, err := RelativeData(config, features, trackProvider(track))
  if err != nil {
    t.Fatal(err)
  }
  if matrix.NRows() != len(features) || matrix.NCols() != len(windows) {
    t.Fatal("TestRelativeData failed!")
  }
  if summary.Features != 10 || summary.Windows != 4 {
    t.Error("TestRelativeData failed!")
  }
}

func TestRelativeDataRoundTrip(t *testing.T) {

  features, track := syntheticRun(40)

  config := testConfig()
  config.Threads = 1
  m1, _, _, err := RelativeData(config, features, trackProvider(track))
  if err != nil {
    t.Fatal(err)
  }

  config.Threads      = 4
  config.MinShardRows = 1
  m2, _, _, err := RelativeData(config, features, trackProvider(track))
  if err != nil {
    t.Fatal(err)
  }
  // the merged parallel result must be identical to the single-worker
  // result, rows in original feature order
  for i := 0; i < m1.NRows(); i++ {
    if !rowEqual(m1.Row(i), m2.Row(i)) {
      t.Errorf("row %d: %v != %v", i, m1.Row(i), m2.Row(i))
    }
  }
}

func TestRelativeDataRowOrder(t *testing.T) {

  // feature i carries the score i in its first downstream window
  n        := 12
  features := make([]Feature, n)
  track    := NewTrack("order")

  for i := 0; i < n; i++ {
    start := 10000*(i + 1)
    features[i] = NewFeature(fmt.Sprintf("f%d", i), "chr1", start, start+500, '+')
    track.AddEntry("chr1", start+50, start+50, '+', "", float64(i))
  }
  config := testConfig()
  config.Threads      = 3
  config.MinShardRows = 1

  matrix, _, _, err := RelativeData(config, features, trackProvider(track))
  if err != nil {
    t.Fatal(err)
  }
  for i := 0; i < n; i++ {
    if matrix.At(i, 2) != float64(i) {
      t.Errorf("row %d holds %v", i, matrix.At(i, 2))
    }
  }
}

func TestRelativeDataProviderFailure(t *testing.T) {

  features, _ := syntheticRun(10)

  provider := func() (ScoredRegionSource, error) {
    return nil, fmt.Errorf("cannot open data source")
  }
  config := testConfig()

  if _, _, _, err := RelativeData(config, features, provider); err == nil {
    t.Error("TestRelativeDataProviderFailure failed!")
  } else if _, ok := err.(ShardError); !ok {
    t.Error("TestRelativeDataProviderFailure failed!")
  }
}

func TestRelativeDataSummitGuard(t *testing.T) {

  features, track := syntheticRun(5)

  config := testConfig()
  config.Position = PositionSummit

  // summit data is missing, the run must fail before processing
  if _, _, _, err := RelativeData(config, features, trackProvider(track)); err == nil {
    t.Error("TestRelativeDataSummitGuard failed!")
  } else if _, ok := err.(ConfigError); !ok {
    t.Error("TestRelativeDataSummitGuard failed!")
  }

  // the explicit substitution helper switches to midpoint mode
  substituted, ok := config.SummitOrMidpoint(features)
  if !ok || substituted.Position != PositionMidpoint {
    t.Error("TestRelativeDataSummitGuard failed!")
  }
  if _, _, _, err := RelativeData(substituted, features, trackProvider(track)); err != nil {
    t.Error("TestRelativeDataSummitGuard failed!")
  }
}

func TestWorkerCount(t *testing.T) {

  config := DefaultConfig()
  config.Threads = 8

  // 250 features support at most 2 shards of 100 rows
  if workerCount(config, 250) != 2 {
    t.Error("TestWorkerCount failed!")
  }
  if workerCount(config, 50) != 1 {
    t.Error("TestWorkerCount failed!")
  }
  config.MinShardRows = 1
  if workerCount(config, 8) != 8 {
    t.Error("TestWorkerCount failed!")
  }
}

func TestRelativeDataInterpolate(t *testing.T) {

  features := []Feature{NewFeature("f1", "chr1", 1000, 2000, '+')}
  track    := NewTrack("gap")
  track.AddEntry("chr1",  850,  850, '+', "", 1)  // window [800, 899]
  track.AddEntry("chr1", 1150, 1150, '+', "", 4)  // window [1101, 1200]

  config := testConfig()
  config.Interpolate = true

  matrix, _, summary, err := RelativeData(config, features, trackProvider(track))
  if err != nil {
    t.Fatal(err)
  }
  if !rowEqual(matrix.Row(0), []float64{1, 2, 3, 4}) {
    t.Errorf("got %v", matrix.Row(0))
  }
  if summary.Nulls != 0 {
    t.Error("TestRelativeDataInterpolate failed!")
  }
}
