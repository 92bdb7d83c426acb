package mapping

import (
	"reflect"
	"testing"
)

func TestExtensionTallyAnnotation(t *testing.T) {
	testCases := []struct {
		name     string
		tally    ExtensionTally
		expected string
	}{
		{
			name:     "empty",
			tally:    ExtensionTally{},
			expected: "",
		},
		{
			name:     "single",
			tally:    ExtensionTally{"txt": 2},
			expected: " # files here: `txt = 2`",
		},
		{
			name:     "count descending then label",
			tally:    ExtensionTally{"md": 1, "txt": 3, "go": 1, NoExtensionLabel: 2},
			expected: " # files here: `txt = 3`, `no_extension = 2`, `go = 1`, `md = 1`",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := testCase.tally.Annotation()
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestExtensionTallyByLabel(t *testing.T) {
	tally := ExtensionTally{}
	for _, label := range []string{"txt", "md", "txt", "go", "txt"} {
		tally.Add(label)
	}
	expected := []ExtensionCount{
		{Label: "go", Count: 1},
		{Label: "md", Count: 1},
		{Label: "txt", Count: 3},
	}
	if result := tally.ByLabel(); !reflect.DeepEqual(result, expected) {
		t.Fatalf("expected %+v, got %+v", expected, result)
	}
	if tally.Total() != 5 {
		t.Fatalf("expected total 5, got %d", tally.Total())
	}
}
