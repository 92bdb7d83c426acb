package mapping

import "testing"

func TestExtensionLabel(t *testing.T) {
	testCases := []struct {
		name     string
		fileName string
		expected string
	}{
		{name: "simple", fileName: "notes.txt", expected: "txt"},
		{name: "uppercase", fileName: "REPORT.PDF", expected: "pdf"},
		{name: "mixed case", fileName: "Photo.JpEg", expected: "jpeg"},
		{name: "last suffix wins", fileName: "archive.tar.gz", expected: "gz"},
		{name: "no suffix", fileName: "README", expected: NoExtensionLabel},
		{name: "dotfile", fileName: ".gitignore", expected: NoExtensionLabel},
		{name: "dotfile with suffix", fileName: ".env.local", expected: "local"},
		{name: "trailing dot", fileName: "draft.", expected: NoExtensionLabel},
		{name: "double leading dot", fileName: "..hidden", expected: "hidden"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := ExtensionLabel(testCase.fileName)
			if result != testCase.expected {
				t.Fatalf("ExtensionLabel(%q): expected %q, got %q", testCase.fileName, testCase.expected, result)
			}
		})
	}
}
