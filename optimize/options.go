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
	"io"

	"github.com/abcum/nftoptim/cache"
	"github.com/abcum/nftoptim/nft"
)

const defaultColumnCap = 32

// Options configures one optimizer run across a set of commands or a
// single chain (SPEC_FULL.md §4, added; spec §9's "configurable column
// cap" Open Question resolved by ColumnCap below — see DESIGN.md).
type Options struct {

	// Printer renders statements back to surface text for diagnostics.
	// Diagnostics are skipped entirely when both Printer and Lines are
	// nil.
	Printer nft.Printer

	// Lines recovers source text for a rule's location, used alongside
	// Printer to build the "Merging:" diagnostic block. Optional.
	Lines nft.LineRecoverer

	// Diagnostics receives one "Merging:"/"into:" block per merge
	// performed. If nil, diagnostics are not written anywhere, though
	// they are still logged at info level.
	Diagnostics io.Writer

	// ColumnCap bounds the number of distinct selector columns the
	// registry will track per chain; BuildMatrix aborts that chain's
	// pass with ErrRegistryOverflow once it would be exceeded. Zero
	// means defaultColumnCap.
	ColumnCap int

	// Workers bounds how many chains are optimized concurrently when
	// OptimizeCommands shards work across chains. Zero or one disables
	// sharding and optimizes chains sequentially, in order.
	Workers int

	// Cache memoizes chain-pass outcomes across repeated calls on an
	// unchanged chain. A nil Cache disables memoization.
	Cache *cache.Cache
}

func (o Options) columnCap() int {
	if o.ColumnCap <= 0 {
		return defaultColumnCap
	}
	return o.ColumnCap
}

// Result aggregates the outcome of optimizing a set of commands.
type Result struct {
	ChainsSeen      int
	ChainsOptimized int
	RulesRemoved    int
}
