package mapping

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
)

// ListingStatus reports whether a directory's immediate children could be read.
type ListingStatus int

const (
	// ListingComplete means the directory was read.
	ListingComplete ListingStatus = iota
	// ListingDenied means reading the directory failed with a permission error.
	ListingDenied
	// ListingFailed means reading the directory failed for any other reason.
	ListingFailed
)

// ListingResult holds the sorted immediate children of one directory.
// Directories and Files are each ordered case-insensitively; symbolic links are listed as files.
type ListingResult struct {
	Status      ListingStatus
	Directories []string
	Files       []string
	Err         error
}

// Len returns the number of listed children.
func (listing ListingResult) Len() int {
	return len(listing.Directories) + len(listing.Files)
}

// Tally counts the extension labels of the listed files.
func (listing ListingResult) Tally() ExtensionTally {
	tally := make(ExtensionTally, len(listing.Files))
	for _, fileName := range listing.Files {
		tally.Add(ExtensionLabel(fileName))
	}
	return tally
}

// listDirectory reads directoryPath from fileSystem, skipping names present in excludedNames.
func listDirectory(fileSystem fs.FS, directoryPath string, excludedNames map[string]struct{}) ListingResult {
	directoryEntries, readDirectoryError := fs.ReadDir(fileSystem, directoryPath)
	if readDirectoryError != nil {
		status := ListingFailed
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			status = ListingDenied
		}
		return ListingResult{Status: status, Err: readDirectoryError}
	}

	listing := ListingResult{Status: ListingComplete}
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if _, isExcluded := excludedNames[entryName]; isExcluded {
			continue
		}
		if directoryEntry.IsDir() {
			listing.Directories = append(listing.Directories, entryName)
		} else {
			listing.Files = append(listing.Files, entryName)
		}
	}
	sortNamesCaseInsensitive(listing.Directories)
	sortNamesCaseInsensitive(listing.Files)
	return listing
}

// sortNamesCaseInsensitive orders names by their lowercase form; names that differ only by case
// fall back to byte order so the result does not depend on the listing order.
func sortNamesCaseInsensitive(names []string) {
	sort.Slice(names, func(leftIndex, rightIndex int) bool {
		leftLower := strings.ToLower(names[leftIndex])
		rightLower := strings.ToLower(names[rightIndex])
		if leftLower != rightLower {
			return leftLower < rightLower
		}
		return names[leftIndex] < names[rightIndex]
	})
}
