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

import (
	"math/big"

	"github.com/abcum/nftoptim/nft"
	"github.com/abcum/nftoptim/util/deep"
)

// Registry holds the ordered set of distinct matchable statements
// encountered within one chain — the columns of the statement matrix.
// Column order is insertion order: the rules are scanned in order and
// a column is appended the first time a statement is seen that isn't
// equivalent, under nft.StmtEqual, to any existing column.
type Registry struct {
	columns []nft.Statement
	cap     int
}

// NewRegistry creates an empty registry bounded at cap columns.
func NewRegistry(cap int) *Registry {
	return &Registry{cap: cap}
}

// Len returns the number of columns registered so far.
func (r *Registry) Len() int {
	return len(r.columns)
}

// ColumnOf returns the column index equivalent to stmt, if any.
func (r *Registry) ColumnOf(stmt nft.Statement) (int, bool) {
	for i, key := range r.columns {
		if nft.StmtEqual(stmt, key) {
			return i, true
		}
	}
	return -1, false
}

// Add registers stmt, returning its column index. If an equivalent
// column already exists it is reused. Otherwise a new column is
// appended, holding an independently-owned key built from stmt by
// columnKey — never a borrowed reference to stmt itself (spec §4.2,
// §5). ErrRegistryOverflow is
// returned once the cap would be exceeded; the registry is left as it
// was before the call.
func (r *Registry) Add(stmt nft.Statement) (int, error) {

	if i, ok := r.ColumnOf(stmt); ok {
		return i, nil
	}

	if len(r.columns) >= r.cap {
		return -1, ErrRegistryOverflow
	}

	r.columns = append(r.columns, columnKey(stmt))

	return len(r.columns) - 1, nil

}

// columnKey builds the independently-owned equality key for a column.
// For an expression statement only the left-hand selector survives —
// the right-hand side is exactly what differs between merge candidates
// and has no business living in a column's identity. A log statement
// with an integer prefix is copied field by field with the prefix's
// big.Int duplicated explicitly, because util/deep skips unexported
// fields and would leave a zero big.Int behind. Every other kind is
// deep-copied wholesale via util/deep, since their equality-relevant
// fields are simple values cheap to clone; spec §9 sanctions storing
// only a compact descriptor in place of a full clone, and this is that
// simplification applied per kind.
func columnKey(stmt nft.Statement) nft.Statement {

	if es, ok := stmt.(*nft.ExprStatement); ok {
		if es.Match == nil {
			return &nft.ExprStatement{}
		}
		return &nft.ExprStatement{Match: &nft.RelExpr{LHS: es.Match.LHS}}
	}

	if ls, ok := stmt.(*nft.LogStatement); ok && ls.Prefix != nil && ls.Prefix.Int != nil {
		key := *ls
		key.Prefix = nft.NewBigValue(new(big.Int).Set(ls.Prefix.Int))
		return &key
	}

	if clone, ok := deep.Copy(stmt).(nft.Statement); ok {
		return clone
	}

	return stmt

}
