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
	"bytes"
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/abcum/nftoptim/cache"
	"github.com/abcum/nftoptim/nft"
)

type fakePrinter struct{ calls int }

func (p *fakePrinter) Render(stmt nft.Statement) string {
	p.calls++
	switch s := stmt.(type) {
	case *nft.ExprStatement:
		return fmt.Sprintf("%v", s.Match.RHS)
	case *nft.VerdictStatement:
		return "accept"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}

type fakeLines struct{}

func (fakeLines) Line(loc nft.Location) string { return loc.Text }

func chainWithLocations() *nft.Chain {
	return &nft.Chain{
		Name: "input",
		Rules: []*nft.Rule{
			{
				Location:   nft.Location{Chain: "input", Line: 1, Text: "tcp dport 22 accept"},
				Statements: []nft.Statement{tcpDport(22), accept()},
			},
			{
				Location:   nft.Location{Chain: "input", Line: 2, Text: "tcp dport 23 accept"},
				Statements: []nft.Statement{tcpDport(23), accept()},
			},
			{
				Location:   nft.Location{Chain: "input", Line: 3, Text: "tcp dport 80 accept"},
				Statements: []nft.Statement{tcpDport(80), accept()},
			},
		},
	}
}

func TestOptimizeChainEmitsMergingDiagnostic(t *testing.T) {

	Convey("Merging three rows emits the literal Merging:/into: diagnostic block", t, func() {

		chain := chainWithLocations()
		var buf bytes.Buffer

		removed, err := OptimizeChain(chain, Options{
			Printer:     &fakePrinter{},
			Lines:       fakeLines{},
			Diagnostics: &buf,
		})

		So(err, ShouldBeNil)
		So(removed, ShouldEqual, 2)
		So(chain.Rules, ShouldHaveLength, 1)

		out := buf.String()
		So(out, ShouldContainSubstring, "Merging:")
		So(out, ShouldContainSubstring, "input:1 tcp dport 22 accept")
		So(out, ShouldContainSubstring, "input:2 tcp dport 23 accept")
		So(out, ShouldContainSubstring, "input:3 tcp dport 80 accept")
		So(out, ShouldContainSubstring, "into:")

	})

}

func TestOptimizeChainS2NoMergeAcrossDifferingVerdict(t *testing.T) {

	Convey("S2: a chain with no mergeable run is left untouched and emits no diagnostic", t, func() {

		chain := &nft.Chain{Name: "input", Rules: []*nft.Rule{
			rule(tcpDport(22), accept()),
			rule(tcpDport(23), drop()),
		}}
		var buf bytes.Buffer

		removed, err := OptimizeChain(chain, Options{Printer: &fakePrinter{}, Lines: fakeLines{}, Diagnostics: &buf})

		So(err, ShouldBeNil)
		So(removed, ShouldEqual, 0)
		So(chain.Rules, ShouldHaveLength, 2)
		So(buf.String(), ShouldBeEmpty)

	})

}

func TestOptimizeChainS6HardwareOffloadUntouched(t *testing.T) {

	Convey("S6: a hardware-offload chain is byte-identical before and after", t, func() {

		chain := chainWithLocations()
		chain.Flags = nft.FlagHWOffload
		before := len(chain.Rules)

		removed, err := OptimizeChain(chain, Options{Printer: &fakePrinter{}})

		So(err, ShouldBeNil)
		So(removed, ShouldEqual, 0)
		So(chain.Rules, ShouldHaveLength, before)

	})

}

func TestOptimizeChainS7CacheReplay(t *testing.T) {

	Convey("S7: a pass that actually merged rows is replayed from cache, not re-run", t, func() {

		c, err := cache.New(64)
		So(err, ShouldBeNil)

		chain := chainWithLocations()
		printer := &fakePrinter{}
		var buf bytes.Buffer
		opts := Options{Printer: printer, Lines: fakeLines{}, Diagnostics: &buf, Cache: c}

		removed1, err := OptimizeChain(chain, opts)
		So(err, ShouldBeNil)
		So(removed1, ShouldEqual, 2)
		So(chain.Rules, ShouldHaveLength, 1)

		firstDiagnostic := buf.String()
		So(firstDiagnostic, ShouldContainSubstring, "Merging:")
		So(firstDiagnostic, ShouldContainSubstring, "into:")

		// The stored key's fingerprint is the one remembered the first
		// time this *nft.Chain was ever seen, not one recomputed from
		// its now-already-merged contents — Cache.OriginalFingerprint
		// is idempotent, so calling it again just returns that value.
		fp := c.OriginalFingerprint(chain, func() uint64 { return 0 })
		key := cache.Key{Chain: chain, Fingerprint: fp}

		entry, ok := c.Get(key)
		So(ok, ShouldBeTrue)
		So(entry.RulesRemoved, ShouldEqual, 2)
		So(entry.Diagnostic, ShouldEqual, firstDiagnostic)

		callsBeforeReplay := printer.calls
		buf.Reset()

		removed2, err := OptimizeChain(chain, opts)
		So(err, ShouldBeNil)

		// The cache hit reports the outcome of the real pass (2 rules
		// removed), not the 0 a genuine second pass over the
		// already-merged chain would find, and reaches it without
		// re-rendering anything through the Printer.
		So(removed2, ShouldEqual, 2)
		So(printer.calls, ShouldEqual, callsBeforeReplay)
		So(buf.String(), ShouldEqual, firstDiagnostic)

	})

}

func TestOptimizeCommandsSkipsNonAddCommands(t *testing.T) {

	Convey("Only add commands targeting a table are walked", t, func() {

		chain := chainWithLocations()
		commands := []*nft.Command{
			{Op: "delete", Table: &nft.Table{Chains: []*nft.Chain{chain}}},
			{Op: "add", Table: nil},
			{Op: "add", Table: &nft.Table{Chains: []*nft.Chain{chain}}},
		}

		res, err := OptimizeCommands(commands, Options{Printer: &fakePrinter{}})

		So(err, ShouldBeNil)
		So(res.ChainsSeen, ShouldEqual, 1)
		So(res.ChainsOptimized, ShouldEqual, 1)
		So(res.RulesRemoved, ShouldEqual, 2)

	})

}

func TestOptimizeCommandsSharded(t *testing.T) {

	Convey("Sharded optimization across several chains removes the expected total", t, func() {

		var chains []*nft.Chain
		for i := 0; i < 5; i++ {
			chains = append(chains, chainWithLocations())
		}

		res, err := OptimizeCommands([]*nft.Command{{
			Op:    "add",
			Table: &nft.Table{Chains: chains},
		}}, Options{Printer: &fakePrinter{}, Workers: 3})

		So(err, ShouldBeNil)
		So(res.ChainsSeen, ShouldEqual, 5)
		So(res.ChainsOptimized, ShouldEqual, 5)
		So(res.RulesRemoved, ShouldEqual, 10)

	})

}

func TestRenderRuleJoinsStatements(t *testing.T) {

	Convey("renderRule joins every statement's rendering with a space", t, func() {

		r := rule(tcpDport(22), accept())
		out := renderRule(Options{Printer: &fakePrinter{}}, r)
		So(strings.Count(out, " "), ShouldBeGreaterThan, 0)

	})

}
