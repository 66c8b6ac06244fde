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

// Printer renders a statement back to surface text for diagnostics.
// The optimizer never renders text itself; rendering rule text is an
// external collaborator.
type Printer interface {
	Render(stmt Statement) string
}

// LineRecoverer yields the originating source line for a rule's
// location, used only to build the "Merging:" diagnostic block.
type LineRecoverer interface {
	Line(loc Location) string
}
