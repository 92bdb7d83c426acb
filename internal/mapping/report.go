package mapping

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// OutputFileSuffix is appended to the root directory name to form the report file name.
	OutputFileSuffix = "_file_mapping.md"

	reportTitle                = "# Folder Tree"
	mainDirectoryHeadingFormat = "## Main Dir: %s"
	summaryHeading             = "## Summary"
	totalFilesFormat           = "- Total files: %d"
	totalDirectoriesFormat     = "- Directories: %d"
	extensionSummaryFormat     = "- %s: %d"
	directoryLineFormat        = "%s%s%s/%s"
	fileLineFormat             = "%s%s%s"
	rootLineFormat             = "%s/%s"
	successMessageFormat       = "✅ Success! Report generated at:\n-> %s"

	branchConnector  = "├── "
	closingConnector = "└── "
	branchIndent     = "│   "
	closingIndent    = "    "

	accessDeniedMarker = "🔒 <Access Denied>"
	unreadableMarker   = "⚠️ <Unreadable>"

	fallbackRootName = "root"
	rootListingPath  = "."
	lineSeparator    = "\n"

	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	errorStatRootFormat     = "stat failed for '%s': %w"
)

// Reporter builds and saves file mapping reports.
type Reporter struct {
	Logger *zap.Logger
}

// NewReporter returns a Reporter logging through logger. A nil logger discards output.
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{Logger: logger}
}

// Document is a rendered report and the totals it summarizes.
type Document struct {
	RootName         string
	Lines            []string
	TotalFiles       int
	TotalDirectories int
	Extensions       ExtensionTally
	// SkippedDirectories lists slash-separated paths, relative to the root, whose contents could not be read.
	SkippedDirectories []string
}

// String joins the report lines into the Markdown text written to disk.
func (document Document) String() string {
	return strings.Join(document.Lines, lineSeparator) + lineSeparator
}

// Result describes a saved report.
type Result struct {
	OutputPath string
	Document   Document
}

// Message returns the user-facing success text.
func (result Result) Message() string {
	return fmt.Sprintf(successMessageFormat, result.OutputPath)
}

// accumulator owns every counter and line produced by a single traversal.
type accumulator struct {
	lines              []string
	extensions         ExtensionTally
	totalFiles         int
	totalDirectories   int
	skippedDirectories []string
}

func newAccumulator() *accumulator {
	return &accumulator{extensions: make(ExtensionTally)}
}

func (state *accumulator) appendLines(lines ...string) {
	state.lines = append(state.lines, lines...)
}

func (state *accumulator) recordFile(fileName string) {
	state.totalFiles++
	state.extensions.Add(ExtensionLabel(fileName))
}

// GenerateReport maps the tree under rootPath and writes the report to
// rootPath/<root name>_file_mapping.md. The report file itself is never listed.
func (reporter *Reporter) GenerateReport(rootPath string) (Result, error) {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return Result{}, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	rootInfo, rootStatError := os.Stat(absoluteRootPath)
	if rootStatError != nil {
		if os.IsNotExist(rootStatError) {
			return Result{}, &NotFoundError{Path: rootPath}
		}
		return Result{}, fmt.Errorf(errorStatRootFormat, rootPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return Result{}, &NotFoundError{Path: rootPath, NotDirectory: true}
	}

	rootName := RootName(absoluteRootPath)
	outputFileName := rootName + OutputFileSuffix
	outputPath := filepath.Join(absoluteRootPath, outputFileName)

	document := reporter.Build(os.DirFS(absoluteRootPath), rootName, outputFileName)
	if writeError := WriteArtifact(outputPath, []byte(document.String())); writeError != nil {
		return Result{}, writeError
	}
	reporter.logger().Debug("report written",
		zap.String("path", outputPath),
		zap.Int("files", document.TotalFiles),
		zap.Int("directories", document.TotalDirectories),
	)
	return Result{OutputPath: outputPath, Document: document}, nil
}

// Build renders the report for the tree rooted at "." in fileSystem without touching the disk.
// Names in excludedNames are skipped in the root listing only.
func (reporter *Reporter) Build(fileSystem fs.FS, rootName string, excludedNames ...string) Document {
	rootExclusions := make(map[string]struct{}, len(excludedNames))
	for _, excludedName := range excludedNames {
		rootExclusions[excludedName] = struct{}{}
	}

	state := newAccumulator()
	rootListing := listDirectory(fileSystem, rootListingPath, rootExclusions)
	state.appendLines(
		reportTitle,
		"",
		fmt.Sprintf(mainDirectoryHeadingFormat, rootName),
		"",
		fmt.Sprintf(rootLineFormat, rootName, rootListing.Tally().Annotation()),
	)
	reporter.visitDirectory(fileSystem, rootListingPath, rootListing, "", state)

	state.appendLines(
		"",
		summaryHeading,
		"",
		fmt.Sprintf(totalFilesFormat, state.totalFiles),
		fmt.Sprintf(totalDirectoriesFormat, state.totalDirectories),
	)
	for _, extensionCount := range state.extensions.ByLabel() {
		state.appendLines(fmt.Sprintf(extensionSummaryFormat, extensionCount.Label, extensionCount.Count))
	}

	return Document{
		RootName:           rootName,
		Lines:              state.lines,
		TotalFiles:         state.totalFiles,
		TotalDirectories:   state.totalDirectories,
		Extensions:         state.extensions,
		SkippedDirectories: state.skippedDirectories,
	}
}

// visitDirectory appends the lines for every child in listing, descending into subdirectories in pre-order.
func (reporter *Reporter) visitDirectory(fileSystem fs.FS, directoryPath string, listing ListingResult, prefix string, state *accumulator) {
	if listing.Status != ListingComplete {
		marker := unreadableMarker
		if listing.Status == ListingDenied {
			marker = accessDeniedMarker
		}
		reporter.logger().Warn("skipping unreadable directory",
			zap.String("path", directoryPath),
			zap.Error(listing.Err),
		)
		state.skippedDirectories = append(state.skippedDirectories, directoryPath)
		state.appendLines(prefix + closingConnector + marker)
		return
	}
	reporter.logger().Debug("visiting directory",
		zap.String("path", directoryPath),
		zap.Int("directories", len(listing.Directories)),
		zap.Int("files", len(listing.Files)),
	)

	childCount := listing.Len()
	childIndex := 0
	for _, directoryName := range listing.Directories {
		childIndex++
		connector, childPrefix := connectorsFor(prefix, childIndex == childCount)
		state.totalDirectories++

		childPath := path.Join(directoryPath, directoryName)
		childListing := listDirectory(fileSystem, childPath, nil)
		state.appendLines(fmt.Sprintf(directoryLineFormat, prefix, connector, directoryName, childListing.Tally().Annotation()))
		reporter.visitDirectory(fileSystem, childPath, childListing, childPrefix, state)
	}
	for _, fileName := range listing.Files {
		childIndex++
		connector, _ := connectorsFor(prefix, childIndex == childCount)
		state.recordFile(fileName)
		state.appendLines(fmt.Sprintf(fileLineFormat, prefix, connector, fileName))
	}
}

// connectorsFor returns the connector for a child line and the prefix handed to that child's own children.
func connectorsFor(prefix string, isLastChild bool) (string, string) {
	if isLastChild {
		return closingConnector, prefix + closingIndent
	}
	return branchConnector, prefix + branchIndent
}

// RootName returns the display name of an absolute root path.
// Filesystem roots such as "/" have no base name and are reported as "root".
func RootName(absoluteRootPath string) string {
	baseName := filepath.Base(absoluteRootPath)
	if baseName == "" || baseName == "." || strings.ContainsAny(baseName, `/\`) || strings.HasSuffix(baseName, ":") {
		return fallbackRootName
	}
	return baseName
}

func (reporter *Reporter) logger() *zap.Logger {
	if reporter == nil || reporter.Logger == nil {
		return zap.NewNop()
	}
	return reporter.Logger
}
