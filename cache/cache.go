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

// Package cache memoizes chain-pass results so that calling the
// optimizer twice on a chain the first call already collapsed is a
// cache hit rather than a repeated registry/matrix/scan/rewrite pass.
// It is backed by github.com/dgraph-io/ristretto, a dependency the
// teacher repository this project is grounded on lists but never
// imports anywhere in its own source (see DESIGN.md).
package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// Entry records the outcome of one chain pass, keyed by a fingerprint
// of the chain's shape plus the chain's own identity (see Key). It also
// carries the exact rendered "Merging:"/"into:" diagnostic block that
// pass produced, so a cache hit can replay it instead of emitting
// nothing.
type Entry struct {
	RulesRemoved int
	Optimized    bool
	Diagnostic   string
}

// Cache is a thin, typed wrapper around a ristretto cache.
type Cache struct {
	rc *ristretto.Cache
}

// New creates a cache sized to hold roughly maxEntries chain-pass
// results. A nil *Cache is valid and behaves as an always-miss cache,
// so callers may pass a zero Options.Cache to disable memoization.
func New(maxEntries int64) (*Cache, error) {

	if maxEntries <= 0 {
		maxEntries = 1024
	}

	rc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{rc: rc}, nil

}

// Key identifies a chain pass: the chain's own identity (so two
// distinct chains that happen to fingerprint the same never collide)
// plus a structural fingerprint of it (spec SPEC_FULL.md §4 added).
// Chain is any value whose identity is stable across calls — callers
// pass the *nft.Chain pointer itself. The fingerprint must be the one
// OriginalFingerprint hands back, not one recomputed from the chain's
// current (possibly already-merged) contents — see OriginalFingerprint.
type Key struct {
	Chain       interface{}
	Fingerprint uint64
}

// cacheKey renders a Key into the string form ristretto hashes on.
// Ristretto's key-to-hash conversion only understands a handful of
// scalar types directly; %p plus the fingerprint gives a cheap,
// collision-resistant-enough string key without asking callers to
// manage hashing themselves.
func cacheKey(key Key) string {
	return fmt.Sprintf("%p:%x", key.Chain, key.Fingerprint)
}

// identKey renders the pointer-only half of a Key, used by
// OriginalFingerprint to remember the fingerprint a chain had the
// first time it was ever seen, independently of Entry storage.
func identKey(chain interface{}) string {
	return fmt.Sprintf("fp:%p", chain)
}

// OriginalFingerprint returns the fingerprint compute produced the
// first time chain's identity was ever seen, computing and
// remembering it on first sight and returning the remembered value on
// every later call. A chain pass mutates the chain's rules in place,
// so recomputing a structural fingerprint from the chain's current
// contents on every call would never match the value recorded before
// the first pass's merges happened, and a chain that did merge could
// never be served from cache again. Remembering the pre-pass value
// keeps the Key stable across repeated calls on the same chain.
func (c *Cache) OriginalFingerprint(chain interface{}, compute func() uint64) uint64 {

	if c == nil || c.rc == nil {
		return compute()
	}

	if v, ok := c.rc.Get(identKey(chain)); ok {
		return v.(uint64)
	}

	fp := compute()
	c.rc.Set(identKey(chain), fp, 1)
	c.rc.Wait()

	return fp

}

// Get looks up a previously recorded chain-pass outcome.
func (c *Cache) Get(key Key) (Entry, bool) {
	if c == nil || c.rc == nil {
		return Entry{}, false
	}
	v, ok := c.rc.Get(cacheKey(key))
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Set records a chain-pass outcome.
func (c *Cache) Set(key Key, e Entry) {
	if c == nil || c.rc == nil {
		return
	}
	c.rc.Set(cacheKey(key), e, 1)
	c.rc.Wait()
}
