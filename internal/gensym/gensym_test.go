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
package gensym

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_Next_IncrementsWithinPrefix(t *testing.T) {
	Reset()

	assert.Equal(t, "h_0", Next("h"))
	assert.Equal(t, "h_1", Next("h"))
	assert.Equal(t, "h_2", Next("h"))
}

func Test_Next_SharesCounterAcrossPrefixes(t *testing.T) {
	Reset()

	assert.Equal(t, "witness_0", Next("witness"))
	assert.Equal(t, "mp_result_1", Next("mp_result"))
}

func Test_Reset_RestartsCounter(t *testing.T) {
	Reset()
	Next("a")
	Next("a")
	Reset()

	assert.Equal(t, "a_0", Next("a"))
}
