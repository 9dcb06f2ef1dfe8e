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

// Package gensym generates fresh, human-readable symbol names for binder
// renaming (named<->DB conversion), proof metavariables and skolem constants.
package gensym

import "fmt"

// counter is a process-global monotonic generator.  This is deliberately
// *not* synchronised: the kernel is single-threaded and cooperative (see
// the concurrency model), and the original this was ported from uses the
// same unguarded counter.  Callers sharing a kernel across goroutines must
// synchronise externally.
var counter uint64

// Next returns a fresh name "prefix_N" where N increases by one on every
// call, starting from 0.  Never returns the same name twice for a given
// prefix within a process lifetime.
func Next(prefix string) string {
	n := counter
	counter++

	return fmt.Sprintf("%s_%d", prefix, n)
}

// Reset restarts the counter at zero.  Exists only for deterministic tests;
// production callers have no reason to call this.
func Reset() {
	counter = 0
}
