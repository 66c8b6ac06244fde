// Copyright © 2016 Abcum Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package optimize

// Run is a maximal contiguous sequence of matrix rows, [From, To]
// inclusive, that agree column-by-column under nft.StmtEqual. A run
// always has at least two rows.
type Run struct {
	From, To int
}

// Len returns the number of rows in the run.
func (r Run) Len() int {
	return r.To - r.From + 1
}

// ScanRuns walks the matrix rows with a moving window and returns the
// non-overlapping, maximal runs in row order. A window that breaks
// after a single row is not emitted. When a run ends, scanning restarts
// at the row that broke it — that row may itself begin the next run
// (spec §4.4, §9).
func ScanRuns(m *Matrix, rows int) []Run {

	var runs []Run

	i := 0
	for i < rows {

		j := i + 1
		for j < rows && m.RowsEqual(i, j) {
			j++
		}

		if j-1 > i {
			runs = append(runs, Run{From: i, To: j - 1})
		}

		i = j

	}

	return runs

}
