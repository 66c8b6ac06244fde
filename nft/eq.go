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

package nft

// StmtEqual compares two statement slots for "same kind, same
// non-value parameters", the predicate the selector registry and the
// statement matrix are built on. Two empty slots are equal; one empty
// and one present are never equal. Any statement kind not explicitly
// handled below is treated as not equivalent to anything — including a
// copy of itself — which is the safe default: it blocks merging
// through a statement the optimizer doesn't understand.
func StmtEqual(a, b Statement) bool {

	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch x := a.(type) {

	case *ExprStatement:
		y, ok := b.(*ExprStatement)
		return ok && exprStatementEqual(x, y)

	case *CounterStatement:
		_, ok := b.(*CounterStatement)
		return ok

	case *NotrackStatement:
		_, ok := b.(*NotrackStatement)
		return ok

	case *VerdictStatement:
		y, ok := b.(*VerdictStatement)
		return ok && verdictEqual(x.Verdict, y.Verdict)

	case *LimitStatement:
		y, ok := b.(*LimitStatement)
		return ok && limitEqual(x, y)

	case *LogStatement:
		y, ok := b.(*LogStatement)
		return ok && logEqual(x, y)

	case *RejectStatement:
		y, ok := b.(*RejectStatement)
		return ok && rejectEqual(x, y)

	default:
		return false
	}

}

// exprStatementEqual compares the left-hand selector of two match
// statements, deliberately ignoring the right-hand comparand: the
// right-hand side is exactly what is allowed to differ between rows of
// a merge run.
func exprStatementEqual(a, b *ExprStatement) bool {

	if a.Match == nil || b.Match == nil {
		return a.Match == b.Match
	}

	return selectorEqual(a.Match.LHS, b.Match.LHS)

}

// selectorEqual compares the left-hand expression of a match statement.
// Only the enumerated selector kinds are comparable; any other
// left-hand expression kind makes the enclosing statements unequal.
func selectorEqual(a, b Expr) bool {

	switch x := a.(type) {

	case *PayloadExpr:
		y, ok := b.(*PayloadExpr)
		return ok && x.Desc == y.Desc && x.Template == y.Template

	case *ExthdrExpr:
		y, ok := b.(*ExthdrExpr)
		return ok && x.Desc == y.Desc && x.Template == y.Template

	case *MetaExpr:
		y, ok := b.(*MetaExpr)
		return ok && x.Key == y.Key && x.Base == y.Base

	case *CtExpr:
		y, ok := b.(*CtExpr)
		return ok && x.Key == y.Key && x.Base == y.Base && x.Dir == y.Dir && x.Proto == y.Proto

	case *RoutingExpr:
		y, ok := b.(*RoutingExpr)
		return ok && x.Key == y.Key

	case *SocketExpr:
		y, ok := b.(*SocketExpr)
		return ok && x.Key == y.Key && x.Level == y.Level

	default:
		return false
	}

}

// verdictEqual compares two verdict values: the verdict tag must
// match, and the target chain reference must be either absent on both
// sides or present on both sides with identical kind and, when
// identifier-valued, identical name. Non-identifier chain expressions
// are unsupported and compare unequal.
func verdictEqual(a, b *VerdictValue) bool {

	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind {
		return false
	}

	if a.Chain == nil && b.Chain == nil {
		return true
	}
	if a.Chain == nil || b.Chain == nil {
		return false
	}

	av, aok := a.Chain.(*Value)
	bv, bok := b.Chain.(*Value)
	if !aok || !bok {
		return false
	}

	return av.IsIdent() && bv.IsIdent() && av.Ident == bv.Ident

}

func limitEqual(a, b *LimitStatement) bool {
	return a.Rate == b.Rate &&
		a.Unit == b.Unit &&
		a.Burst == b.Burst &&
		a.Type == b.Type &&
		a.Flags == b.Flags
}

// logEqual compares every field of a log statement except the
// free-form message; both prefixes must be immediate values (not
// identifiers) with equal numeric content.
func logEqual(a, b *LogStatement) bool {

	if a.Snaplen != b.Snaplen ||
		a.Group != b.Group ||
		a.QThreshold != b.QThreshold ||
		a.Level != b.Level ||
		a.LogFlags != b.LogFlags ||
		a.Flags != b.Flags {
		return false
	}

	if a.Prefix == nil || b.Prefix == nil {
		return a.Prefix == b.Prefix
	}

	if a.Prefix.Int == nil || b.Prefix.Int == nil {
		return false
	}

	return a.Prefix.Int.Cmp(b.Prefix.Int) == 0

}

// rejectEqual compares a reject statement; a reject carrying an
// extended expression payload never merges with anything.
func rejectEqual(a, b *RejectStatement) bool {
	if a.Extended != nil || b.Extended != nil {
		return false
	}
	return a.Family == b.Family && a.Type == b.Type && a.ICMPCode == b.ICMPCode
}
