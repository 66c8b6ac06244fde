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

// Matrix is the R x S table: row r, column s holds the statement
// inside rule r that matches column s, or nil if rule r doesn't test
// that selector at all. Cells borrow references into the chain's
// rules; the matrix never owns a statement.
type Matrix struct {
	reg   *Registry
	cells [][]nft.Statement
}

// BuildMatrix fills the registry from rules (phase 1) and then
// allocates and populates the matrix (phase 2). It returns
// ErrRegistryOverflow, unmodified, the moment the registry would need
// more than cap columns — the caller must discard any partial state
// and leave the chain's rules untouched (spec §4.2, §7).
func BuildMatrix(rules []*nft.Rule, cap int) (*Matrix, error) {

	reg := NewRegistry(cap)

	// Each statement is placed in the column Add assigned it, so a
	// statement that is not equal even to its own column key (an
	// unsupported kind) still occupies a cell of its own and keeps its
	// row from matching any other row.
	placed := make([][]int, len(rules))

	for r, rule := range rules {
		placed[r] = make([]int, len(rule.Statements))
		for i, stmt := range rule.Statements {
			col, err := reg.Add(stmt)
			if err != nil {
				return nil, err
			}
			placed[r][i] = col
		}
	}

	cells := make([][]nft.Statement, len(rules))

	for r, rule := range rules {
		row := make([]nft.Statement, reg.Len())
		for i, stmt := range rule.Statements {
			row[placed[r][i]] = stmt
		}
		cells[r] = row
	}

	return &Matrix{reg: reg, cells: cells}, nil

}

// Columns returns the number of columns in the matrix.
func (m *Matrix) Columns() int {
	return m.reg.Len()
}

// Row returns the populated-or-empty statement slots for row r, in
// column order.
func (m *Matrix) Row(r int) []nft.Statement {
	return m.cells[r]
}

// RowsEqual reports whether rows i and j agree in every column under
// nft.StmtEqual — the "matrix-equal" relation the adjacency scanner
// groups rows by (spec §4.4).
func (m *Matrix) RowsEqual(i, j int) bool {
	a, b := m.cells[i], m.cells[j]
	for s := range a {
		if !nft.StmtEqual(a[s], b[s]) {
			return false
		}
	}
	return true
}
