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

package cli

import (
	"fmt"
	"strings"

	"github.com/abcum/nftoptim/nft"
)

// printer is a minimal demo nft.Printer: it renders just enough of the
// statement/expression tree back to surface syntax for cmd/nftoptim to
// have something to show (SPEC_FULL.md §6, added). A production parser
// and pretty-printer are explicit non-goals of the core (spec.md §1);
// this exists purely to drive the demo end to end.
type printer struct{}

func (printer) Render(stmt nft.Statement) string {
	switch s := stmt.(type) {
	case *nft.ExprStatement:
		return renderExprStatement(s)
	case *nft.CounterStatement:
		return "counter"
	case *nft.NotrackStatement:
		return "notrack"
	case *nft.VerdictStatement:
		return renderVerdict(s.Verdict)
	case *nft.LimitStatement:
		return fmt.Sprintf("limit rate %d/%s", s.Rate, s.Unit)
	case *nft.LogStatement:
		if s.Prefix != nil {
			return fmt.Sprintf("log prefix %q", s.Prefix.String())
		}
		return "log"
	case *nft.RejectStatement:
		return "reject"
	default:
		return fmt.Sprintf("<%T>", stmt)
	}
}

func renderExprStatement(s *nft.ExprStatement) string {
	if s.Match == nil {
		return ""
	}
	lhs := renderExpr(s.Match.LHS)
	rhs := renderExpr(s.Match.RHS)
	if s.Match.Op == nft.OpEQ {
		return fmt.Sprintf("%s %s", lhs, rhs)
	}
	return fmt.Sprintf("%s %s %s", lhs, relOpSymbol(s.Match.Op), rhs)
}

func relOpSymbol(op nft.RelOp) string {
	switch op {
	case nft.OpNEQ:
		return "!="
	case nft.OpLT:
		return "<"
	case nft.OpLTE:
		return "<="
	case nft.OpGT:
		return ">"
	case nft.OpGTE:
		return ">="
	default:
		return "=="
	}
}

func renderExpr(e nft.Expr) string {
	switch x := e.(type) {
	case nil:
		return ""
	case *nft.PayloadExpr:
		return fmt.Sprintf("%s %s", x.Desc.Name, x.Template.Name)
	case *nft.ExthdrExpr:
		return fmt.Sprintf("%s %s", x.Desc.Name, x.Template.Name)
	case *nft.MetaExpr:
		return "meta"
	case *nft.CtExpr:
		return "ct"
	case *nft.RoutingExpr:
		return "rt"
	case *nft.SocketExpr:
		return "socket"
	case *nft.Value:
		return x.String()
	case *nft.ConcatExpr:
		parts := make([]string, len(x.Items))
		for i, item := range x.Items {
			parts[i] = renderExpr(item)
		}
		return strings.Join(parts, " . ")
	case *nft.SetExpr:
		parts := make([]string, len(x.Elems))
		for i, elem := range x.Elems {
			if se, ok := elem.(*nft.SetElem); ok {
				parts[i] = renderExpr(se.Item)
			}
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func renderVerdict(v *nft.VerdictValue) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case nft.VerdictAccept:
		return "accept"
	case nft.VerdictDrop:
		return "drop"
	case nft.VerdictContinue:
		return "continue"
	case nft.VerdictReturn:
		return "return"
	case nft.VerdictJump:
		return fmt.Sprintf("jump %s", renderExpr(v.Chain))
	case nft.VerdictGoto:
		return fmt.Sprintf("goto %s", renderExpr(v.Chain))
	default:
		return "<verdict>"
	}
}

// lineRecoverer is a minimal demo nft.LineRecoverer: the demo chain
// carries its own source text directly on each rule's Location, so
// recovering a line is just returning it (SPEC_FULL.md §6, added).
// A real deployment would recover the line from the original input
// descriptor the location references.
type lineRecoverer struct{}

func (lineRecoverer) Line(loc nft.Location) string {
	return loc.Text
}
