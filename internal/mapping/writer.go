package mapping

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	artifactFileMode         = 0o644
	temporaryArtifactPattern = ".%s.*.tmp"
)

// WriteArtifact saves content at outputPath in one step. The content is written to a sibling
// temporary file that is renamed over outputPath, so a failed write leaves no partial report.
func WriteArtifact(outputPath string, content []byte) error {
	outputDirectory := filepath.Dir(outputPath)
	temporaryFile, createError := os.CreateTemp(outputDirectory, fmt.Sprintf(temporaryArtifactPattern, filepath.Base(outputPath)))
	if createError != nil {
		return &WriteError{Path: outputPath, Err: createError}
	}
	temporaryPath := temporaryFile.Name()

	if _, writeError := temporaryFile.Write(content); writeError != nil {
		_ = temporaryFile.Close()
		_ = os.Remove(temporaryPath)
		return &WriteError{Path: outputPath, Err: writeError}
	}
	if chmodError := temporaryFile.Chmod(artifactFileMode); chmodError != nil {
		_ = temporaryFile.Close()
		_ = os.Remove(temporaryPath)
		return &WriteError{Path: outputPath, Err: chmodError}
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		_ = os.Remove(temporaryPath)
		return &WriteError{Path: outputPath, Err: closeError}
	}
	if renameError := os.Rename(temporaryPath, outputPath); renameError != nil {
		_ = os.Remove(temporaryPath)
		return &WriteError{Path: outputPath, Err: renameError}
	}
	return nil
}
