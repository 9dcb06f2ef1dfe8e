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

// Command folcore-demo is a small example binary exercising pkg/proof and
// pkg/rules end to end, for manual smoke-testing. It is not the kernel's
// own CLI — the kernel is a library with no command-line surface of its
// own — it is simply a caller of that library, like any other Go program
// would be.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/orbisforge/folcore/pkg/proof"
	"github.com/orbisforge/folcore/pkg/rules"
	"github.com/orbisforge/folcore/pkg/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folcore-demo",
	Short: "Demonstrates the folcore proof kernel on a canned derivation.",
	Run: func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}

		runAndCommutativityDemo()
	},
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
}

// runAndCommutativityDemo proves P∧Q → Q∧P: assume P∧Q, split it via
// And-Elimination, and recombine the conjuncts in the opposite order via
// And-Introduction.
func runAndCommutativityDemo() {
	p, q := term.NewConst("P"), term.NewConst("Q")
	goal := &term.Implies{
		Antecedent: &term.And{Left: p, Right: q},
		Consequent: &term.And{Left: q, Right: p},
	}

	ctx := proof.NewContext(proof.WithGensymPrefix("demo"))
	state := ctx.CreateInitialState(goal)

	fmt.Printf("goal: %s\n", goal)

	introRule := rules.NewImpliesIntro()
	states, violation := introRule.Apply(ctx, state, nil)
	mustSucceed(introRule, violation)
	state = states[0]

	conjunctionHyp := state.Hypotheses[len(state.Hypotheses)-1]

	elimLeft := rules.NewAndElim(conjunctionHyp.Name, true)
	states, violation = elimLeft.Apply(ctx, state, nil)
	mustSucceed(elimLeft, violation)
	state = states[0]
	leftHyp := state.Hypotheses[len(state.Hypotheses)-1]

	elimRight := rules.NewAndElim(conjunctionHyp.Name, false)
	states, violation = elimRight.Apply(ctx, state, nil)
	mustSucceed(elimRight, violation)
	state = states[0]
	rightHyp := state.Hypotheses[len(state.Hypotheses)-1]

	introAnd := rules.NewAndIntro(rightHyp.Name, leftHyp.Name)
	states, violation = introAnd.Apply(ctx, state, nil)
	mustSucceed(introAnd, violation)
	state = states[0]

	conclusion := state.Hypotheses[len(state.Hypotheses)-1]
	state.MarkAsProved(proof.StatusProvedByRule, "derived by "+conclusion.Name)

	fmt.Println("proof trace:")

	for i, step := range state.GetProofTrace() {
		fmt.Printf("  %d. %s => %s\n", i+1, step.RuleName, step.Conclusion)
	}

	fmt.Printf("proved: %v (states explored: %d)\n", state.IsProved(), ctx.Size())
}

func mustSucceed(rule rules.Rule, violation *rules.ConstraintViolation) {
	if violation != nil {
		fmt.Printf("rule %q failed: %s\n", rule.Name(), violation.Message)
		os.Exit(1)
	}
}
