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
	"github.com/abcum/nftoptim/nft"
)

var (
	tcpDesc     = &nft.PayloadDesc{Name: "tcp"}
	tcpDportTpl = &nft.PayloadTemplate{Name: "dport"}
)

func tcpDport() *nft.PayloadExpr {
	return &nft.PayloadExpr{Desc: tcpDesc, Template: tcpDportTpl}
}

func acceptRule(chain string, line int, text string, port int64) *nft.Rule {
	return &nft.Rule{
		Location: nft.Location{Chain: chain, Line: line, Text: text},
		Statements: []nft.Statement{
			&nft.ExprStatement{Match: &nft.RelExpr{
				LHS: tcpDport(),
				Op:  nft.OpEQ,
				RHS: nft.NewIntValue(port),
			}},
			&nft.VerdictStatement{Verdict: &nft.VerdictValue{Kind: nft.VerdictAccept}},
		},
	}
}

// demoChain builds the chain from spec.md's S1 scenario in memory: three
// rules that match one TCP port each and accept, collapsible into a
// single rule with a {22,23,80} set. Building a chain in memory like
// this stands in for a real parser, which is out of this library's
// scope (spec.md §1).
func demoChain() *nft.Chain {
	return &nft.Chain{
		Name: "input",
		Rules: []*nft.Rule{
			acceptRule("input", 1, "tcp dport 22 accept", 22),
			acceptRule("input", 2, "tcp dport 23 accept", 23),
			acceptRule("input", 3, "tcp dport 80 accept", 80),
		},
	}
}

func demoCommands() []*nft.Command {
	return []*nft.Command{{
		Op: "add",
		Table: &nft.Table{
			Name:   "filter",
			Chains: []*nft.Chain{demoChain()},
		},
	}}
}
