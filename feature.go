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

import "bufio"
import "compress/gzip"
import "fmt"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// A Feature is a genomic interval with identity and strand, e.g. a gene,
// a peak, or a read. Coordinates are 1-based and inclusive on both ends.
// Features are owned by the caller and read-only during a run.
type Feature struct {
  Name    string
  Seqname string
  From    int  // first position, 1-based
  To      int  // last position, inclusive
  Strand  byte // '+', '-', or '*'
  Type    string
  Summit  int  // summit offset from From, -1 if unknown
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewFeature(name, seqname string, from, to int, strand byte) Feature {
  if from > to {
    panic("NewFeature(): from > to")
  }
  if strand != '+' && strand != '-' && strand != '*' {
    panic("NewFeature(): invalid strand")
  }
  return Feature{name, seqname, from, to, strand, "", -1}
}

/* -------------------------------------------------------------------------- */

func (f Feature) Length() int {
  return f.To - f.From + 1
}

func (f Feature) String() string {
  return fmt.Sprintf("%s %s:[%d, %d] %c", f.Name, f.Seqname, f.From, f.To, f.Strand)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import features from a whitespace separated table with columns: Name,
// Seqname, From, To, and Strand, optionally followed by Type and Summit.
// Gzip compressed files are detected automatically.
func ReadFeatureTable(filename string) ([]Feature, error) {
  var scanner *bufio.Scanner
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    scanner = bufio.NewScanner(g)
  } else {
    scanner = bufio.NewScanner(f)
  }
  features := []Feature{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 5 {
      return nil, fmt.Errorf("feature table must have at least five columns")
    }
    t1, e := strconv.ParseInt(fields[2], 10, 64)
    if e != nil {
      return nil, e
    }
    t2, e := strconv.ParseInt(fields[3], 10, 64)
    if e != nil {
      return nil, e
    }
    feature := NewFeature(fields[0], fields[1], int(t1), int(t2), fields[4][0])
    if len(fields) > 5 {
      feature.Type = fields[5]
    }
    if len(fields) > 6 {
      t3, e := strconv.ParseInt(fields[6], 10, 64)
      if e != nil {
        return nil, e
      }
      feature.Summit = int(t3)
    }
    features = append(features, feature)
  }
  return features, scanner.Err()
}
