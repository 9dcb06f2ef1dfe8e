// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package term

import "hash/fnv"

// hashCombine folds value into seed using the Boost hash_combine mixing
// function, reimplemented over uint64.  Order-sensitive: combining children
// in a different order produces a different hash, which is what lets
// And(l,r) and And(r,l) hash differently when l != r.
func hashCombine(seed *uint64, value uint64) {
	*seed ^= value + 0x9e3779b9 + (*seed << 6) + (*seed >> 2)
}

// hashString hashes a symbol the way a string-keyed Const/App/Var relies on
// a stable, collision-resistant digest; FNV-1a mirrors the convention
// already used elsewhere in this module (see pkg/proof/hypothesis.go).
func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

// Per-variant hash salts.  Binders and connectives each mix in a distinct
// arbitrary constant before combining their children's hashes, so that e.g.
// Forall and Exists over structurally identical bodies never collide.
const (
	saltForall  uint64 = 0x123456
	saltExists  uint64 = 0x234567
	saltAnd     uint64 = 0x345678
	saltOr      uint64 = 0x456789
	saltNot     uint64 = 0x567890
	saltImplies uint64 = 0x678901
)
