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

import "os"

import "github.com/biogo/hts/bam"
import "github.com/biogo/hts/sam"

/* -------------------------------------------------------------------------- */

// A BamSource is a ScoredRegionSource over an indexed BAM file. Every
// overlapping alignment becomes one raw entry with a score of 1, which
// makes the counting methods count reads and sum behave as a coverage
// count. A reader handle is not safe to share; a SourceProvider must
// open one BamSource per worker.
type BamSource struct {
  file      *os.File
  reader    *bam.Reader
  index     *bam.Index
  refs      map[string]*sam.Reference
  neighbors *NeighborIndex
}

/* constructor
 * -------------------------------------------------------------------------- */

// OpenBamSource opens [filename] and its companion index
// `[filename].bai'.
func OpenBamSource(filename string) (*BamSource, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  reader, err := bam.NewReader(f, 1)
  if err != nil {
    f.Close()
    return nil, err
  }
  fi, err := os.Open(filename + ".bai")
  if err != nil {
    reader.Close()
    f.Close()
    return nil, err
  }
  defer fi.Close()

  index, err := bam.ReadIndex(fi)
  if err != nil {
    reader.Close()
    f.Close()
    return nil, err
  }
  refs := make(map[string]*sam.Reference)
  for _, ref := range reader.Header().Refs() {
    refs[ref.Name()] = ref
  }
  return &BamSource{file: f, reader: reader, index: index, refs: refs}, nil
}

func (src *BamSource) Close() error {
  if err := src.reader.Close(); err != nil {
    src.file.Close()
    return err
  }
  return src.file.Close()
}

// SetNeighborIndex installs the feature index consulted by the
// avoidance rule.
func (src *BamSource) SetNeighborIndex(index *NeighborIndex) {
  src.neighbors = index
}

/* scored region source
 * -------------------------------------------------------------------------- */

func (src *BamSource) Entries(q ScoredRegionQuery) ([]RawEntry, error) {
  ref, ok := src.refs[q.Seqname]
  if !ok {
    // a missing sequence yields null cells, not a run failure
    return nil, nil
  }
  beg := iMax(q.From-1, 0)
  chunks, err := src.index.Chunks(ref, beg, q.To)
  if err != nil {
    return nil, nil
  }
  it, err := bam.NewIterator(src.reader, chunks)
  if err != nil {
    return nil, err
  }
  defer it.Close()

  entries := []RawEntry{}
  for it.Next() {
    r := it.Record()
    from := r.Start() + 1
    to   := r.End()
    if to < q.From || from > q.To {
      continue
    }
    strand := byte('+')
    if r.Flags&sam.Reverse != 0 {
      strand = '-'
    }
    if !q.MatchStrand(strand) {
      continue
    }
    entries = append(entries, RawEntry{from, to, strand, r.Name, 1.0})
  }
  return entries, it.Error()
}

func (src *BamSource) Score(q ScoredRegionQuery, method Method) (float64, bool, error) {
  overlap := false
  if q.Avoid {
    overlap = src.Overlaps(q.Seqname, q.From, q.To, q.AvoidType, q.Exclude)
  }
  entries, err := src.Entries(q)
  if err != nil {
    return Null(), overlap, err
  }
  return Reduce(method, entries, q.From, q.To), overlap, nil
}

func (src *BamSource) Overlaps(seqname string, from, to int, featType, exclude string) bool {
  if src.neighbors == nil {
    return false
  }
  return src.neighbors.Overlaps(seqname, from, to, featType, exclude)
}
