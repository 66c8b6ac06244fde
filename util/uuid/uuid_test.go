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

package uuid

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewV4(t *testing.T) {

	str := NewV4()

	Convey(str, t, func() {
		Convey("Should not be empty", func() {
			So(str, ShouldNotBeEmpty)
		})
		Convey("Should be of length 36", func() {
			So(str, ShouldHaveLength, 36)
		})
		Convey("Two calls should differ", func() {
			So(NewV4(), ShouldNotEqual, str)
		})
	})

}
