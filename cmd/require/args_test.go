package require

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func runTestCases(t *testing.T, testCases []testCase) {
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			cmd := &cobra.Command{
				Use:  "root",
				Run:  func(*cobra.Command, []string) {},
				Args: tc.validateFunc,
			}
			cmd.SetArgs(tc.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			err := cmd.Execute()
			if tc.wantError == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantError)
			}
		})
	}
}

type testCase struct {
	args         []string
	validateFunc cobra.PositionalArgs
	wantError    string
}

func TestArgs(t *testing.T) {
	runTestCases(t, []testCase{
		{validateFunc: NoArgs},
		{args: []string{"one"}, validateFunc: NoArgs, wantError: `"root" accepts no arguments`},
		{args: []string{"one"}, validateFunc: ExactArgs(1)},
		{validateFunc: ExactArgs(1), wantError: `"root" requires 1 argument`},
		{validateFunc: ExactArgs(2), wantError: `"root" requires 2 arguments`},
		{args: []string{"one"}, validateFunc: MaximumNArgs(1)},
		{args: []string{"one", "two"}, validateFunc: MaximumNArgs(1), wantError: `"root" accepts at most 1 argument`},
		{validateFunc: MinimumNArgs(1), wantError: `"root" requires at least 1 argument`},
		{args: []string{"one", "two"}, validateFunc: MinimumNArgs(1)},
	})
}
