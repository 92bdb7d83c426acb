package cli

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

func TestRegisterToggleFlagParsesValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		arguments   []string
		expected    bool
		expectError bool
	}{
		{name: "defaults_to_false", arguments: []string{}, expected: false},
		{name: "sets_true_without_value", arguments: []string{"--copy"}, expected: true},
		{name: "sets_false_with_equals", arguments: []string{"--copy=false"}, expected: false},
		{name: "sets_false_with_no_literal", arguments: []string{"--copy", "no"}, expected: false},
		{name: "sets_true_with_on_literal", arguments: []string{"--copy", "on"}, expected: true},
		{name: "leaves_directory_positional", arguments: []string{"--copy", "./docs"}, expected: true},
		{name: "rejects_invalid_literal", arguments: []string{"--copy=maybe"}, expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			command := &cobra.Command{Use: "toggle-test"}
			var flagValue bool
			registerToggleFlag(command.Flags(), &flagValue, "copy", "copy the report")
			parseErr := command.ParseFlags(normalizeToggleArguments(command, testCase.arguments))
			if testCase.expectError {
				if parseErr == nil {
					t.Fatalf("expected parse error for arguments %v", testCase.arguments)
				}
				return
			}
			if parseErr != nil {
				t.Fatalf("unexpected parse error: %v", parseErr)
			}
			if flagValue != testCase.expected {
				t.Fatalf("expected %t, got %t", testCase.expected, flagValue)
			}
		})
	}
}

func TestNormalizeToggleArgumentsStopsAtTerminator(t *testing.T) {
	command := &cobra.Command{Use: "toggle-test"}
	var flagValue bool
	registerToggleFlag(command.Flags(), &flagValue, "tokens", "estimate tokens")
	arguments := []string{"--tokens", "yes", "--", "--tokens", "no"}
	expected := []string{"--tokens=yes", "--", "--tokens", "no"}
	if normalized := normalizeToggleArguments(command, arguments); !reflect.DeepEqual(normalized, expected) {
		t.Fatalf("expected %v, got %v", expected, normalized)
	}
}
