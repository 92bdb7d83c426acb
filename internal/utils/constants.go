// Package utils holds helpers shared by the filemap command: logging, version lookup, and naming constants.
package utils

const (
	// ApplicationName is the executable and configuration namespace.
	ApplicationName = "filemap"
	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the configuration file looked up in the working directory.
	LocalConfigFileName = ".filemap.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".filemap"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors.
	ApplicationExecutionFailedMessage = "❌ Error"
)
