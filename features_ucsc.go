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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import features from ucsc
 * -------------------------------------------------------------------------- */

// ImportFeaturesFromUCSC fetches a feature list from the public UCSC
// annotation database for the given genome assembly and gene table
// (e.g. "hg19" and "refGene"). UCSC stores 0-based half-open intervals;
// they are converted to the 1-based inclusive convention used here. The
// table name is recorded as the feature type.
func ImportFeaturesFromUCSC(genome, table string) ([]Feature, error) {
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand string
  var i_txFrom, i_txTo int

  features := []Feature{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return nil, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo)
    if err != nil {
      return nil, err
    }
    feature := NewFeature(i_name, i_seqname, i_txFrom+1, i_txTo, i_strand[0])
    feature.Type = table
    features = append(features, feature)
  }
  return features, rows.Err()
}
