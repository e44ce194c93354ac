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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"

import . "github.com/tjparnell/relmap"
import   "github.com/tjparnell/relmap/lib/progress"

import   "github.com/pborman/getopt"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Output   string
  Compress bool
  Plot     string
  Status   bool
  Verbose  int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importFeatures(config SessionConfig, filename, ucscGenome, ucscTable string) []Feature {
  if ucscGenome != "" {
    PrintStderr(config, 1, "Importing features from UCSC `%s.%s'... ", ucscGenome, ucscTable)
    features, err := ImportFeaturesFromUCSC(ucscGenome, ucscTable)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    return features
  }
  PrintStderr(config, 1, "Reading features from `%s'... ", filename)
  features, err := ReadFeatureTable(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return features
}

func exportMatrix(config SessionConfig, features []Feature, windows []WindowSpec, matrix *ValueMatrix) {
  if config.Output == "" {
    if err := WriteMatrixTable(os.Stdout, features, windows, matrix, true); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing matrix to `%s'... ", config.Output)
    if err := ExportMatrixTable(config.Output, features, windows, matrix, true, config.Compress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func saveProfilePlot(config SessionConfig, filename string, windows []WindowSpec, matrix *ValueMatrix) {
  means := matrix.ColumnMeans()

  xy := make(plotter.XYs, 0, len(windows))
  for j := 0; j < len(windows); j++ {
    if IsNull(means[j]) {
      continue
    }
    xy = append(xy, plotter.XY{
      X: float64(windows[j].From+windows[j].To)/2.0,
      Y: means[j]})
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "position relative to reference point"
  p.Y.Label.Text = "mean signal"

  if err := plotutil.AddLines(p, xy); err != nil {
    panic(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    panic(err)
  }
  PrintStderr(config, 1, "Wrote profile plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func mapRelativeData(config SessionConfig, runConfig Config, features []Feature, filenameBam string) {
  neighbors := NewNeighborIndex(features)
  provider  := func() (ScoredRegionSource, error) {
    src, err := OpenBamSource(filenameBam)
    if err != nil {
      return nil, err
    }
    src.SetNeighborIndex(neighbors)
    return src, nil
  }
  if config.Status {
    bar := progress.New(len(features), 1000)
    runConfig.Progress = func(done, total int) {
      bar.PrintStderr(done)
    }
  } else {
    PrintStderr(config, 1, "Mapping relative data... ")
  }
  matrix, windows, summary, err := RelativeData(runConfig, features, provider)
  if err != nil {
    if !config.Status {
      PrintStderr(config, 1, "failed\n")
    }
    log.Fatal(err)
  }
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  PrintStderr(config, 1, "Processed %d features and %d windows (%d null cells, %d avoided, %d failed)\n",
    summary.Features, summary.Windows, summary.Nulls, summary.Avoided, summary.Failed)

  exportMatrix(config, features, windows, matrix)

  if config.Plot != "" {
    saveProfilePlot(config, config.Plot, windows, matrix)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config    := SessionConfig{}
  runConfig := DefaultConfig()
  options   := getopt.New()

  optDataset    := options. StringLong("dataset",        0 , "",     "dataset identifier for the window labels")
  optWindowSize := options.    IntLong("window-size",    0 ,  100,   "window size in bp")
  optWindows    := options.    IntLong("windows",        0 ,  10,    "number of windows on both sides")
  optUp         := options.    IntLong("up",             0 ,  0,     "explicit number of upstream windows")
  optDown       := options.    IntLong("down",           0 ,  0,     "explicit number of downstream windows")
  optPosition   := options. StringLong("position",       0 , "5p",   "reference position [5p (default), 3p, midpoint, summit]")
  optMethod     := options. StringLong("method",         0 , "mean", "aggregation method [mean (default), median, sum, min, max, stddev, count, pcount, ncount]")
  optEnumerable := options.   BoolLong("enumerable",     0 ,         "count-like dataset, empty sums are 0 instead of null")
  optSense      := options. StringLong("sense",          0 , "all",  "strand sense [all (default), sense, antisense]")
  optForced     := options. StringLong("forced-strand",  0 , "",     "override the feature strand [+, -]")
  optAvoid      := options.   BoolLong("avoid",          0 ,         "null out windows overlapping neighboring features")
  optAvoidType  := options. StringLong("avoid-type",     0 , "",     "restrict avoidance to this feature type")
  optLong       := options.   BoolLong("long",           0 ,         "force per-window collection")
  optThreshold  := options.    IntLong("long-threshold", 0 ,  0,     "span threshold for per-window collection")
  optDecimals   := options.    IntLong("decimals",       0 , -1,     "decimal precision of matrix cells")
  optInterp     := options.   BoolLong("interpolate",    0 ,         "interpolate windows without data")
  optThreads    := options.    IntLong("threads",        0 ,  1,     "number of threads")
  optUCSCGenome := options. StringLong("ucsc-genome",    0 , "",     "import features from this UCSC assembly instead of a file")
  optUCSCTable  := options. StringLong("ucsc-table",     0 , "refGene", "UCSC table to import features from")
  optOutput     := options. StringLong("output",         0 , "",     "write the matrix to file")
  optCompress   := options.   BoolLong("compress",       0 ,         "gzip the output file")
  optPlot       := options. StringLong("plot",           0 , "",     "write a mean profile plot to file")
  optStatus     := options.   BoolLong("status",         0 ,         "show status bar")

  optVerbose    := options.CounterLong("verbose",       'v',         "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",          'h',         "print help")

  options.SetParameters("[<FEATURES.table>] <DATA.bam>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  filenameFeatures := ""
  filenameBam      := ""
  if *optUCSCGenome != "" {
    if len(options.Args()) != 1 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameBam = options.Args()[0]
  } else {
    if len(options.Args()) != 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    filenameFeatures = options.Args()[0]
    filenameBam      = options.Args()[1]
  }

  position, err := ParsePositionMode(*optPosition)
  if err != nil {
    log.Fatal(err)
  }
  method, err := ParseMethod(*optMethod)
  if err != nil {
    log.Fatal(err)
  }
  sense, err := ParseStrandSense(*optSense)
  if err != nil {
    log.Fatal(err)
  }
  runConfig.Dataset       = *optDataset
  runConfig.WindowSize    = *optWindowSize
  runConfig.Windows       = *optWindows
  runConfig.UpWindows     = *optUp
  runConfig.DownWindows   = *optDown
  runConfig.Position      = position
  runConfig.Method        = method
  runConfig.Enumerable    = *optEnumerable
  runConfig.Sense         = sense
  runConfig.Avoid         = *optAvoid
  runConfig.AvoidType     = *optAvoidType
  runConfig.Long          = *optLong
  runConfig.LongThreshold = *optThreshold
  runConfig.Decimals      = *optDecimals
  runConfig.Interpolate   = *optInterp
  runConfig.Threads       = *optThreads

  if *optForced != "" {
    if *optForced != "+" && *optForced != "-" {
      log.Fatalf("invalid forced strand `%s'", *optForced)
    }
    runConfig.ForcedStrand = (*optForced)[0]
  }
  if err := runConfig.Validate(); err != nil {
    log.Fatal(err)
  }
  config.Output   = *optOutput
  config.Compress = *optCompress
  config.Plot     = *optPlot
  config.Status   = *optStatus
  config.Verbose  = *optVerbose

  features := importFeatures(config, filenameFeatures, *optUCSCGenome, *optUCSCTable)

  mapRelativeData(config, runConfig, features, filenameBam)
}
