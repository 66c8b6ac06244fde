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

// Package nft defines the statement and expression tree that the
// optimizer in package optimize rewrites, along with the equality
// predicate those rewrites depend on. Parsing rule text into this tree,
// and rendering the tree back to text, are both external collaborators
// (see the Printer and LineRecoverer interfaces in contracts.go) — this
// package only defines the shapes and compares them.
package nft

// --------------------------------------------------
// Statements
// --------------------------------------------------

// Statement represents one element of a rule: either a match
// (ExprStatement) or an action/modifier.
type Statement interface{}

// ExprStatement is a match statement: "<selector> <op> <value>".
type ExprStatement struct {
	Match *RelExpr
}

// CounterStatement represents the `counter` statement.
type CounterStatement struct {
	Packets uint64
	Bytes   uint64
}

// NotrackStatement represents the `notrack` statement.
type NotrackStatement struct{}

// VerdictStatement represents a terminating or non-terminating verdict.
type VerdictStatement struct {
	Verdict *VerdictValue
}

// LimitType distinguishes packet-rate from byte-rate limiting.
type LimitType int

const (
	LimitPackets LimitType = iota
	LimitBytes
)

// LimitStatement represents the `limit rate ...` statement.
type LimitStatement struct {
	Rate  uint64
	Unit  string // "second", "minute", "hour", "day"
	Burst uint64
	Type  LimitType
	Flags uint32
}

// LogStatement represents the `log` statement. Prefix must be an
// immediate Value; a non-immediate prefix expression makes two log
// statements compare unequal.
type LogStatement struct {
	Prefix     *Value
	Snaplen    uint32
	Group      uint16
	QThreshold uint16
	Level      uint32
	LogFlags   uint32
	Flags      uint32
}

// RejectStatement represents the `reject` statement. A reject carrying
// an extended expression payload is never mergeable.
type RejectStatement struct {
	Extended Expr
	Family   uint8
	Type     uint8
	ICMPCode uint8
}

// --------------------------------------------------
// Rule / Chain / Table / Command
// --------------------------------------------------

// Location is an opaque source reference, carried through to
// diagnostics only; the optimizer never interprets it.
type Location struct {
	Chain string
	Line  int
	Text  string
}

// Rule is an ordered list of statements plus its source location.
type Rule struct {
	Statements []Statement
	Location   Location
}

// ChainFlags carries chain-level flags relevant to the optimizer.
type ChainFlags uint32

const (
	// FlagHWOffload marks a chain whose rules are offloaded to
	// hardware; such chains are never touched by the optimizer.
	FlagHWOffload ChainFlags = 1 << iota
)

// Chain is an ordered list of rules plus a flag set.
type Chain struct {
	Name  string
	Rules []*Rule
	Flags ChainFlags
}

// HasFlag reports whether f is set on the chain.
func (c *Chain) HasFlag(f ChainFlags) bool {
	return c.Flags&f != 0
}

// Table is a named collection of chains.
type Table struct {
	Name   string
	Chains []*Chain
}

// Command is one parsed top-level operation. Only "add" commands whose
// Table is non-nil are ever passed to the optimizer.
type Command struct {
	Op    string
	Table *Table
}
