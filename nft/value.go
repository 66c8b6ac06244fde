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

import "math/big"

// NewIntValue builds an immediate Value from a signed integer.
func NewIntValue(i int64) *Value {
	return &Value{Int: big.NewInt(i)}
}

// NewBigValue builds an immediate Value from an arbitrary-precision
// integer.
func NewBigValue(i *big.Int) *Value {
	return &Value{Int: i}
}

// NewStringValue builds an immediate Value carrying the bytes of a
// string constant (e.g. a log prefix or an interface name), packed
// into its numeric content the same way any other immediate is
// represented. Use NewIdentValue instead for a name that identifies
// another object (a chain, a set) rather than a literal value.
func NewStringValue(s string) *Value {
	return &Value{Int: new(big.Int).SetBytes([]byte(s))}
}

// NewIdentValue builds a Value that names something — a chain, a set —
// rather than carrying a literal value.
func NewIdentValue(name string) *Value {
	return &Value{Ident: name}
}

// String renders the value the way it was constructed: the original
// bytes for a packed string constant, the identifier name, or the
// decimal integer.
func (v *Value) String() string {
	if v.IsIdent() {
		return v.Ident
	}
	if b := v.Int.Bytes(); len(b) > 0 && isPrintable(b) {
		return string(b)
	}
	return v.Int.String()
}

func isPrintable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
