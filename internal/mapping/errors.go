package mapping

import (
	"errors"
	"fmt"
)

// ErrRootNotFound matches every NotFoundError via errors.Is.
var ErrRootNotFound = errors.New("root directory not found")

const (
	errorRootMissingFormat      = "directory '%s' not found"
	errorRootNotDirectoryFormat = "path '%s' is not a directory"
	errorSaveFileFormat         = "saving file %s: %v"
)

// NotFoundError reports a root path that does not exist or is not a directory.
type NotFoundError struct {
	Path         string
	NotDirectory bool
}

func (notFoundError *NotFoundError) Error() string {
	if notFoundError.NotDirectory {
		return fmt.Sprintf(errorRootNotDirectoryFormat, notFoundError.Path)
	}
	return fmt.Sprintf(errorRootMissingFormat, notFoundError.Path)
}

// Is reports whether target is ErrRootNotFound.
func (notFoundError *NotFoundError) Is(target error) bool {
	return target == ErrRootNotFound
}

// WriteError reports a report artifact that could not be saved.
type WriteError struct {
	Path string
	Err  error
}

func (writeError *WriteError) Error() string {
	return fmt.Sprintf(errorSaveFileFormat, writeError.Path, writeError.Err)
}

func (writeError *WriteError) Unwrap() error {
	return writeError.Err
}
