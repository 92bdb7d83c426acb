package cli

import (
	"os"
	"testing"
)

// changeWorkingDirectory mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func changeWorkingDirectory(t *testing.T, directory string) {
	t.Helper()
	previousDirectory, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(directory); err != nil {
		t.Fatalf("chdir %s: %v", directory, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(previousDirectory); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
