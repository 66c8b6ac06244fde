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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStmtEqualNilHandling(t *testing.T) {

	Convey("Two nil statement slots are equal", t, func() {
		So(StmtEqual(nil, nil), ShouldBeTrue)
	})

	Convey("A nil and a present slot are never equal", t, func() {
		So(StmtEqual(nil, &CounterStatement{}), ShouldBeFalse)
		So(StmtEqual(&CounterStatement{}, nil), ShouldBeFalse)
	})

	Convey("An unsupported statement kind is never equal to anything, even itself", t, func() {
		type mystery struct{}
		m := &mystery{}
		So(StmtEqual(m, m), ShouldBeFalse)
	})

}

func TestStmtEqualExprStatement(t *testing.T) {

	desc := &PayloadDesc{Name: "tcp"}
	tpl := &PayloadTemplate{Name: "dport"}
	otherTpl := &PayloadTemplate{Name: "sport"}

	a := &ExprStatement{Match: &RelExpr{LHS: &PayloadExpr{Desc: desc, Template: tpl}, Op: OpEQ, RHS: NewIntValue(22)}}
	b := &ExprStatement{Match: &RelExpr{LHS: &PayloadExpr{Desc: desc, Template: tpl}, Op: OpEQ, RHS: NewIntValue(23)}}
	c := &ExprStatement{Match: &RelExpr{LHS: &PayloadExpr{Desc: desc, Template: otherTpl}, Op: OpEQ, RHS: NewIntValue(22)}}

	Convey("Expression statements with the same selector are equal regardless of right-hand value", t, func() {
		So(StmtEqual(a, b), ShouldBeTrue)
	})

	Convey("Expression statements with different selectors are not equal", t, func() {
		So(StmtEqual(a, c), ShouldBeFalse)
	})

	Convey("Payload selectors compare descriptor/template pointers by identity, not value", t, func() {
		clone := &PayloadExpr{Desc: &PayloadDesc{Name: "tcp"}, Template: &PayloadTemplate{Name: "dport"}}
		d := &ExprStatement{Match: &RelExpr{LHS: clone, Op: OpEQ, RHS: NewIntValue(22)}}
		So(StmtEqual(a, d), ShouldBeFalse)
	})

}

func TestStmtEqualVerdict(t *testing.T) {

	accept := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictAccept}}
	drop := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictDrop}}

	Convey("Differing verdict kinds are never equal", t, func() {
		So(StmtEqual(accept, drop), ShouldBeFalse)
	})

	Convey("A verdict with a chain target never equals one without", t, func() {
		toA := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump, Chain: NewIdentValue("A")}}
		toNone := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump}}
		So(StmtEqual(toA, toNone), ShouldBeFalse)
	})

	Convey("Two jumps to the same identifier-named chain are equal", t, func() {
		toA1 := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump, Chain: NewIdentValue("A")}}
		toA2 := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump, Chain: NewIdentValue("A")}}
		So(StmtEqual(toA1, toA2), ShouldBeTrue)
	})

	Convey("Jumps to differently-named chains are not equal", t, func() {
		toA := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump, Chain: NewIdentValue("A")}}
		toB := &VerdictStatement{Verdict: &VerdictValue{Kind: VerdictJump, Chain: NewIdentValue("B")}}
		So(StmtEqual(toA, toB), ShouldBeFalse)
	})

}

func TestStmtEqualLog(t *testing.T) {

	Convey("Log statements with string prefixes of equal numeric content are equal", t, func() {
		a := &LogStatement{Prefix: NewStringValue("ssh")}
		b := &LogStatement{Prefix: NewStringValue("ssh")}
		So(StmtEqual(a, b), ShouldBeTrue)
	})

	Convey("Log statements with different prefixes are not equal", t, func() {
		a := &LogStatement{Prefix: NewStringValue("ssh")}
		b := &LogStatement{Prefix: NewStringValue("ftp")}
		So(StmtEqual(a, b), ShouldBeFalse)
	})

	Convey("Log statements differing in a scalar field are not equal", t, func() {
		a := &LogStatement{Prefix: NewStringValue("ssh"), Level: 1}
		b := &LogStatement{Prefix: NewStringValue("ssh"), Level: 2}
		So(StmtEqual(a, b), ShouldBeFalse)
	})

}

func TestStmtEqualReject(t *testing.T) {

	Convey("A reject carrying an extended payload never merges with anything", t, func() {
		a := &RejectStatement{Extended: NewIntValue(1)}
		b := &RejectStatement{}
		So(StmtEqual(a, b), ShouldBeFalse)
		So(StmtEqual(a, a), ShouldBeFalse)
	})

	Convey("Two plain reject statements with identical fields are equal", t, func() {
		a := &RejectStatement{Family: 2, Type: 1, ICMPCode: 3}
		b := &RejectStatement{Family: 2, Type: 1, ICMPCode: 3}
		So(StmtEqual(a, b), ShouldBeTrue)
	})

}

func TestStmtEqualCounterAndNotrack(t *testing.T) {

	Convey("Any two counter statements are equal regardless of their running totals", t, func() {
		a := &CounterStatement{Packets: 10, Bytes: 100}
		b := &CounterStatement{Packets: 0, Bytes: 0}
		So(StmtEqual(a, b), ShouldBeTrue)
	})

	Convey("Any two notrack statements are equal", t, func() {
		So(StmtEqual(&NotrackStatement{}, &NotrackStatement{}), ShouldBeTrue)
	})

}

func TestStmtEqualLimit(t *testing.T) {

	base := &LimitStatement{Rate: 10, Unit: "second", Burst: 5, Type: LimitPackets, Flags: 0}

	Convey("Limit statements with identical rate, unit, burst, type and flags are equal", t, func() {
		other := &LimitStatement{Rate: 10, Unit: "second", Burst: 5, Type: LimitPackets, Flags: 0}
		So(StmtEqual(base, other), ShouldBeTrue)
	})

	Convey("Limit statements differing in rate are not equal", t, func() {
		other := &LimitStatement{Rate: 20, Unit: "second", Burst: 5, Type: LimitPackets, Flags: 0}
		So(StmtEqual(base, other), ShouldBeFalse)
	})

	Convey("Limit statements differing in unit are not equal", t, func() {
		other := &LimitStatement{Rate: 10, Unit: "minute", Burst: 5, Type: LimitPackets, Flags: 0}
		So(StmtEqual(base, other), ShouldBeFalse)
	})

	Convey("Limit statements differing in burst are not equal", t, func() {
		other := &LimitStatement{Rate: 10, Unit: "second", Burst: 9, Type: LimitPackets, Flags: 0}
		So(StmtEqual(base, other), ShouldBeFalse)
	})

	Convey("Limit statements differing in type (packets vs bytes) are not equal", t, func() {
		other := &LimitStatement{Rate: 10, Unit: "second", Burst: 5, Type: LimitBytes, Flags: 0}
		So(StmtEqual(base, other), ShouldBeFalse)
	})

	Convey("Limit statements differing in flags are not equal", t, func() {
		other := &LimitStatement{Rate: 10, Unit: "second", Burst: 5, Type: LimitPackets, Flags: 1}
		So(StmtEqual(base, other), ShouldBeFalse)
	})

}
