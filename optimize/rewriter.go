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

// Rewrite collapses the matrix rows [run.From, run.To] into a single
// surviving rule — rules[run.From], mutated in place — per plan. It
// returns the surviving rule; the caller is responsible for removing
// rows run.From+1..run.To from the chain's rule list (spec §4.6's "row
// retirement" is a chain-level concern, not the rewriter's).
//
// Ownership follows spec §4.6/§9: every right-hand and left-hand value
// expression moved into a newly built set or concatenation is detached
// from its donor statement first, so no two live parents ever
// reference the same child node.
func Rewrite(rules []*nft.Rule, m *Matrix, run Run, plan Plan) *nft.Rule {

	first := rules[run.From]

	if len(plan.Columns) == 1 {
		rewriteSingle(m, run, plan.Columns[0])
	} else {
		rewriteMulti(m, run, plan.Columns, first)
	}

	return first

}

// rewriteSingle implements spec §4.6's single-selector case (k = 1):
// the surviving statement's right-hand side becomes a fresh anonymous
// set whose elements are, in row order, the original right-hand sides.
func rewriteSingle(m *Matrix, run Run, col int) {

	elems := make([]nft.Expr, 0, run.Len())

	for r := run.From; r <= run.To; r++ {
		es := m.Row(r)[col].(*nft.ExprStatement)
		elems = append(elems, &nft.SetElem{Item: es.Match.RHS})
		es.Match.RHS = nil // donor slot released; ownership moved into the set
	}

	surviving := m.Row(run.From)[col].(*nft.ExprStatement)
	surviving.Match.RHS = &nft.SetExpr{Elems: elems, Anonymous: true}

}

// rewriteMulti implements spec §4.6's multi-selector case (k >= 2):
// a left concatenation of the first row's selectors replaces the
// surviving statement's left-hand side, a right anonymous set of
// per-row concatenations replaces its right-hand side, and the other
// participating columns are dropped from the surviving rule entirely.
func rewriteMulti(m *Matrix, run Run, cols []int, first *nft.Rule) {

	lhsItems := make([]nft.Expr, len(cols))
	for i, col := range cols {
		es := m.Row(run.From)[col].(*nft.ExprStatement)
		lhsItems[i] = es.Match.LHS
	}

	rhsElems := make([]nft.Expr, 0, run.Len())
	for r := run.From; r <= run.To; r++ {
		tuple := make([]nft.Expr, len(cols))
		for i, col := range cols {
			es := m.Row(r)[col].(*nft.ExprStatement)
			tuple[i] = es.Match.RHS
			es.Match.RHS = nil
		}
		rhsElems = append(rhsElems, &nft.SetElem{Item: &nft.ConcatExpr{Items: tuple}})
	}

	surviving := m.Row(run.From)[cols[0]].(*nft.ExprStatement)
	surviving.Match.LHS = &nft.ConcatExpr{Items: lhsItems}
	surviving.Match.RHS = &nft.SetExpr{Elems: rhsElems, Anonymous: true}

	drop := make(map[nft.Statement]bool, len(cols)-1)
	for _, col := range cols[1:] {
		drop[m.Row(run.From)[col]] = true
	}
	first.Statements = dropStatements(first.Statements, drop)

}

func dropStatements(stmts []nft.Statement, drop map[nft.Statement]bool) []nft.Statement {
	out := stmts[:0]
	for _, stmt := range stmts {
		if !drop[stmt] {
			out = append(out, stmt)
		}
	}
	return out
}
