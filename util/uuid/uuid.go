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

// Package uuid tags a chain pass with a correlation id for log lines
// that need to be attributed back to one optimizer run, particularly
// across the sharded goroutines optimize.runSharded spreads chains
// over. Only the random (Version 4) constructor is needed for that;
// the teacher's wrapper also exposed time/MAC-based, DCE and
// name-based constructors plus a string parser, none of which a
// correlation id has any use for, so they are not carried over here.
package uuid

import (
	"github.com/satori/go.uuid"
)

// NewV4 returns a new UUID (Version 4) using 16 random bytes.
func NewV4() string {
	return uuid.NewV4().String()
}
