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

// Package optimize implements the rule-merging optimizer: it collapses
// runs of adjacent rules within a chain that differ only in the values
// tested by their match expressions into a single rule with a set- or
// concatenation-valued match, via the Selector Registry, Statement
// Matrix, Adjacency Scanner, Merge Planner and Rewriter, orchestrated
// per chain by the Chain Driver in this file.
package optimize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/abcum/nftoptim/cache"
	"github.com/abcum/nftoptim/log"
	"github.com/abcum/nftoptim/nft"
	"github.com/abcum/nftoptim/util/uuid"
)

// OptimizeCommands walks commands, running the Chain Driver over every
// chain of every table targeted by an "add" command (spec §4.7/§6). A
// chain's pass never fails the enclosing command — only an error that
// cannot be attributed to any single chain is returned here, and no
// such error currently exists in this implementation; the return keeps
// the signature future-proof per SPEC_FULL.md §6.
func OptimizeCommands(commands []*nft.Command, opts Options) (Result, error) {

	var res Result
	var chains []*nft.Chain

	for _, cmd := range commands {
		if cmd.Op != "add" || cmd.Table == nil {
			continue
		}
		chains = append(chains, cmd.Table.Chains...)
	}

	res.ChainsSeen = len(chains)

	if opts.Workers > 1 {
		removed := runSharded(chains, opts)
		for _, n := range removed {
			if n > 0 {
				res.ChainsOptimized++
			}
			res.RulesRemoved += n
		}
		return res, nil
	}

	for _, chain := range chains {
		n, err := OptimizeChain(chain, opts)
		if err != nil {
			continue
		}
		if n > 0 {
			res.ChainsOptimized++
		}
		res.RulesRemoved += n
	}

	return res, nil

}

// runSharded partitions chains statically across opts.Workers goroutines
// and joins with a sync.WaitGroup, never splitting a single chain across
// shards (spec §5's "must shard by chain", SPEC_FULL.md §5 added).
func runSharded(chains []*nft.Chain, opts Options) []int {

	removed := make([]int, len(chains))

	shards := opts.Workers
	if shards > len(chains) {
		shards = len(chains)
	}
	if shards < 1 {
		return removed
	}

	var wg sync.WaitGroup
	for s := 0; s < shards; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for i := s; i < len(chains); i += shards {
				n, err := OptimizeChain(chains[i], opts)
				if err != nil {
					continue
				}
				removed[i] = n
			}
		}(s)
	}
	wg.Wait()

	return removed

}

// OptimizeChain runs the Chain Driver over a single chain: registry
// fill, matrix build, adjacency scan, merge plan and rewrite, in that
// order (spec §4.7). Hardware-offload chains are skipped untouched
// (Testable Property 7). A phase-1 registry overflow short-circuits the
// chain with no mutation (Testable Property 8); later-phase errors are
// not currently reachable since every later phase is total over a
// well-formed matrix.
func OptimizeChain(chain *nft.Chain, opts Options) (removed int, err error) {

	if chain.HasFlag(nft.FlagHWOffload) {
		return 0, nil
	}

	runID := uuid.NewV4()
	logger := log.WithPrefix("optimize").WithFields(map[string]interface{}{
		"chain": chain.Name,
		"run":   runID,
	})

	var key cache.Key
	if opts.Cache != nil {
		// The fingerprint must describe the chain's shape before this
		// pass mutates it. Recomputing it from chain's current contents
		// on every call would, for any chain that actually merges,
		// compare a pre-merge fingerprint (stored at Set time below)
		// against a post-merge one (recomputed on the next call) — they
		// would never match, so a pass that performed real rewrites
		// could never be replayed from cache. OriginalFingerprint
		// remembers the value computed the first time this *nft.Chain
		// was ever seen and returns that same value on every later call.
		fp := opts.Cache.OriginalFingerprint(chain, func() uint64 { return fingerprint(chain) })
		key = cache.Key{Chain: chain, Fingerprint: fp}
		if entry, ok := opts.Cache.Get(key); ok {
			replay(logger, opts, entry.Diagnostic)
			return entry.RulesRemoved, nil
		}
	}

	m, err := BuildMatrix(chain.Rules, opts.columnCap())
	if err != nil {
		logger.WithField("error", err).Debug("registry overflow, chain left untouched")
		return 0, nil
	}

	runs := ScanRuns(m, len(chain.Rules))
	if len(runs) == 0 {
		if opts.Cache != nil {
			opts.Cache.Set(key, cache.Entry{RulesRemoved: 0})
		}
		return 0, nil
	}

	var diagnostic strings.Builder

	// Runs are applied in descending From order so that removing rows
	// from an earlier run never shifts the row indices a later-applied
	// (but earlier-occurring) run still needs; ScanRuns already
	// guarantees the runs themselves are non-overlapping.
	for i := len(runs) - 1; i >= 0; i-- {
		run := runs[i]
		plan := PlanMerge(m, run)

		// A run with no expression-statement column has no value to
		// merge into a set; its rules are left as they are.
		if len(plan.Columns) == 0 {
			continue
		}

		merging := mergingBlock(chain, opts, run)

		Rewrite(chain.Rules, m, run, plan)
		survivor := chain.Rules[run.From]
		chain.Rules = append(chain.Rules[:run.From+1], chain.Rules[run.To+1:]...)

		diagnostic.WriteString(diagnose(logger, opts, merging, survivor))

		removed += run.Len() - 1
	}

	if opts.Cache != nil {
		opts.Cache.Set(key, cache.Entry{
			RulesRemoved: removed,
			Optimized:    removed > 0,
			Diagnostic:   diagnostic.String(),
		})
	}

	return removed, nil

}

// mergingBlock renders the "Merging:" half of the diagnostic block
// before the run's rows are rewritten and retired — one source-line-
// annotated line per row from run.From through run.To (spec §4.6/§6).
func mergingBlock(chain *nft.Chain, opts Options, run Run) string {

	if opts.Lines == nil && opts.Printer == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Merging:\n")
	for r := run.From; r <= run.To; r++ {
		loc := chain.Rules[r].Location
		line := ""
		if opts.Lines != nil {
			line = opts.Lines.Line(loc)
		}
		fmt.Fprintf(&b, "%s:%d %s\n", loc.Chain, loc.Line, line)
	}

	return b.String()

}

// renderRule joins a rule's statements into one rendered line via
// opts.Printer, in statement order.
func renderRule(opts Options, rule *nft.Rule) string {
	if opts.Printer == nil {
		return ""
	}
	parts := make([]string, len(rule.Statements))
	for i, stmt := range rule.Statements {
		parts[i] = opts.Printer.Render(stmt)
	}
	return strings.Join(parts, " ")
}

// diagnose completes and emits the literal "Merging:"/"into:" block
// (spec §4.6/§6) through the logger at info level and, if configured,
// to Options.Diagnostics verbatim, returning the block it emitted so
// the caller can accumulate it for cache replay (see OptimizeChain).
// It is a no-op when merging is empty, since that only happens when
// neither collaborator is configured.
func diagnose(logger *logrus.Entry, opts Options, merging string, survivor *nft.Rule) string {

	if merging == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(merging)
	b.WriteString("into:\n")
	fmt.Fprintf(&b, "\t%s\n", renderRule(opts, survivor))

	text := b.String()

	logger.Info(text)

	if opts.Diagnostics != nil {
		fmt.Fprint(opts.Diagnostics, text)
	}

	return text

}

// replay re-emits a diagnostic block recorded by a previous, real pass
// on a cache hit, so a chain whose pass is served from cache still
// satisfies §6's diagnostic contract instead of going silent. A no-op
// when diagnostic is empty, which happens whenever the original pass
// found nothing to merge or neither diagnostic collaborator was
// configured.
func replay(logger *logrus.Entry, opts Options, diagnostic string) {

	if diagnostic == "" {
		return
	}

	logger.Info(diagnostic)

	if opts.Diagnostics != nil {
		fmt.Fprint(opts.Diagnostics, diagnostic)
	}

}
