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
	"fmt"
	"hash/fnv"

	"github.com/abcum/nftoptim/nft"
)

// fingerprint computes a cheap structural hash over a chain's rule
// count, each rule's statement count, the concrete type of every
// statement and, for expression statements, the concrete type of the
// left-hand selector. Field values are not hashed: it ignores the
// selectors' identity fields and the parameters of non-expression
// statements, and it deliberately ignores
// right-hand values, matching the equality predicate's own blind spot —
// two chains that will rewrite to different merged values can still
// share a fingerprint. The cache key (cache.Key) pairs this with the
// chain's own identity so that never matters for correctness, only for
// cache-hit rate.
func fingerprint(chain *nft.Chain) uint64 {

	h := fnv.New64a()

	fmt.Fprintf(h, "chain:%d;", len(chain.Rules))

	for _, rule := range chain.Rules {
		fmt.Fprintf(h, "rule[%d]:", len(rule.Statements))
		for _, stmt := range rule.Statements {
			fmt.Fprintf(h, "%T|", stmt)
			if es, ok := stmt.(*nft.ExprStatement); ok && es.Match != nil {
				fmt.Fprintf(h, "%T;", es.Match.LHS)
			}
		}
	}

	return h.Sum64()

}
