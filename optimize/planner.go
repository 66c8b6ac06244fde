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

import "github.com/abcum/nftoptim/nft"

// Plan records which columns of a merge run participate in the
// rewrite: exactly the columns whose cell, on the run's first row, is
// an expression statement. Every other populated column — verdict,
// counter, limit, log, reject — is shared identically across the run
// by construction of matrix equality, and carries through unchanged on
// the surviving rule without any rewrite (spec §4.5).
type Plan struct {
	Columns []int
}

// PlanMerge examines the columns populated at row run.From and records
// the ordered list of participating columns.
func PlanMerge(m *Matrix, run Run) Plan {

	var cols []int

	for s, stmt := range m.Row(run.From) {
		if _, ok := stmt.(*nft.ExprStatement); ok {
			cols = append(cols, s)
		}
	}

	return Plan{Columns: cols}

}
