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

package cnf

// Options defines global configuration options for the optimizer CLI.
type Options struct {

	Logging struct {
		Level  string // Stores the configured logging level
		Output string // Stores the configured logging output
		Format string // Stores the configured logging format
	}

	Optimize struct {
		ColumnCap int // Maximum distinct selector columns per chain before a pass is abandoned
		Workers   int // Number of goroutines sharding chains across a command list
	}

	Cache struct {
		Size int64 // Approximate number of entries retained by the chain-pass memoization cache
	}
}

// Settings is a package-level Options value. Nothing in this module
// writes or reads it; the cli package parses its flags into an Options
// value of its own.
var Settings = &Options{}
