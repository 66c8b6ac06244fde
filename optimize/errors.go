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

// Package optimize implements the rule-merging optimizer: the selector
// registry and statement matrix that canonicalise matchable selectors
// across a chain's rules, the adjacency scan that finds maximal merge
// runs, and the two rewrite operations that collapse a run into its
// first rule's match.
package optimize

import "errors"

// ErrRegistryOverflow is returned internally when a chain would need
// more than its configured column cap; the chain driver recovers from
// it locally and leaves the chain untouched (spec §7). It is never
// returned to the caller of OptimizeCommands/OptimizeChain.
var ErrRegistryOverflow = errors.New("optimize: chain exceeds selector column cap")
