package mapping

import (
	"fmt"
	"sort"
	"strings"
)

const (
	annotationPrefix         = " # files here: "
	annotationEntryFormat    = "`%s = %d`"
	annotationEntrySeparator = ", "
)

// ExtensionTally maps an extension label to the number of files carrying it.
type ExtensionTally map[string]int

// ExtensionCount is one label and its count.
type ExtensionCount struct {
	Label string
	Count int
}

// Add records one file with the provided label.
func (tally ExtensionTally) Add(label string) {
	tally[label]++
}

// Total returns the number of files recorded.
func (tally ExtensionTally) Total() int {
	var total int
	for _, count := range tally {
		total += count
	}
	return total
}

// ByFrequency orders entries by count descending, then label ascending.
func (tally ExtensionTally) ByFrequency() []ExtensionCount {
	counts := tally.entries()
	sort.Slice(counts, func(leftIndex, rightIndex int) bool {
		if counts[leftIndex].Count != counts[rightIndex].Count {
			return counts[leftIndex].Count > counts[rightIndex].Count
		}
		return counts[leftIndex].Label < counts[rightIndex].Label
	})
	return counts
}

// ByLabel orders entries alphabetically by label.
func (tally ExtensionTally) ByLabel() []ExtensionCount {
	counts := tally.entries()
	sort.Slice(counts, func(leftIndex, rightIndex int) bool {
		return counts[leftIndex].Label < counts[rightIndex].Label
	})
	return counts
}

// Annotation renders the inline "# files here" suffix of a directory line.
// An empty tally renders as an empty string.
func (tally ExtensionTally) Annotation() string {
	if len(tally) == 0 {
		return ""
	}
	orderedCounts := tally.ByFrequency()
	renderedEntries := make([]string, 0, len(orderedCounts))
	for _, extensionCount := range orderedCounts {
		renderedEntries = append(renderedEntries, fmt.Sprintf(annotationEntryFormat, extensionCount.Label, extensionCount.Count))
	}
	return annotationPrefix + strings.Join(renderedEntries, annotationEntrySeparator)
}

func (tally ExtensionTally) entries() []ExtensionCount {
	counts := make([]ExtensionCount, 0, len(tally))
	for label, count := range tally {
		counts = append(counts, ExtensionCount{Label: label, Count: count})
	}
	return counts
}
