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

// Expr represents a match-tree expression.
type Expr interface{}

// PayloadDesc and PayloadTemplate are opaque header/template
// descriptors; equality of a Payload expression compares these
// pointers by identity, never by value.
type PayloadDesc struct{ Name string }
type PayloadTemplate struct{ Name string }

// PayloadExpr selects a field out of a protocol header, e.g. `tcp dport`.
type PayloadExpr struct {
	Desc     *PayloadDesc
	Template *PayloadTemplate
}

// ExthdrDesc and ExthdrTemplate are the extension-header analogue of
// PayloadDesc/PayloadTemplate.
type ExthdrDesc struct{ Name string }
type ExthdrTemplate struct{ Name string }

// ExthdrExpr selects a field out of an IPv6 extension header.
type ExthdrExpr struct {
	Desc     *ExthdrDesc
	Template *ExthdrTemplate
}

// MetaKey and MetaBase identify a meta selector, e.g. `meta iifname`.
type MetaKey int
type MetaBase int

// MetaExpr selects a packet metadata field.
type MetaExpr struct {
	Key  MetaKey
	Base MetaBase
}

// CtKey, CtBase, CtDir and NetProto identify a connection-tracking
// selector, e.g. `ct state`.
type CtKey int
type CtBase int
type CtDir int
type NetProto int

// CtExpr selects a connection-tracking field.
type CtExpr struct {
	Key   CtKey
	Base  CtBase
	Dir   CtDir
	Proto NetProto
}

// RoutingKey identifies a routing selector, e.g. `rt classid`.
type RoutingKey int

// RoutingExpr selects a routing-table field.
type RoutingExpr struct {
	Key RoutingKey
}

// SocketKey and SocketLevel identify a socket selector.
type SocketKey int
type SocketLevel int

// SocketExpr selects a socket-level field.
type SocketExpr struct {
	Key   SocketKey
	Level SocketLevel
}

// RelOp is a relational match operator.
type RelOp int

const (
	OpEQ RelOp = iota
	OpNEQ
	OpLT
	OpLTE
	OpGT
	OpGTE
)

// RelExpr is the "match" form used by a rule's expression statements:
// <selector> <op> <value>. Equality of the enclosing statement ignores
// RHS entirely — RHS is exactly what a merge is allowed to vary.
type RelExpr struct {
	LHS Expr
	Op  RelOp
	RHS Expr
}

// Value is an immediate: either an arbitrary-precision integer or an
// identifier string, never both.
type Value struct {
	Int   *big.Int
	Ident string
}

// IsIdent reports whether this value carries an identifier rather than
// an integer.
func (v *Value) IsIdent() bool {
	return v.Int == nil
}

// SetElem wraps a single element destined for a Set's element list.
type SetElem struct {
	Item Expr
}

// SetExpr is a (possibly anonymous) compound of elements, tested by
// membership.
type SetExpr struct {
	Elems     []Expr // each a *SetElem
	Anonymous bool
}

// ConcatExpr is an ordered tuple of sub-expressions, used both as a
// compound selector and as a set's element type.
type ConcatExpr struct {
	Items []Expr
}

// VerdictKind enumerates the rule verdicts.
type VerdictKind int

const (
	VerdictAccept VerdictKind = iota
	VerdictDrop
	VerdictContinue
	VerdictReturn
	VerdictJump
	VerdictGoto
)

// VerdictValue carries a verdict kind plus, for jump/goto, the target
// chain reference.
type VerdictValue struct {
	Kind  VerdictKind
	Chain Expr // nil, or typically a *Value naming the target chain
}
