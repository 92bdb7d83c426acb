package main

import (
	"fmt"

	"github.com/temirov/filemap/internal/cli"
	"github.com/temirov/filemap/internal/services/clipboard"
	"github.com/temirov/filemap/internal/tokenizer"
	"github.com/temirov/filemap/internal/utils"
)

// main is the entry point for the filemap command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(false)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()

	dependencies := cli.Dependencies{
		Logger:     loggerInstance,
		Copier:     clipboard.NewService(),
		NewCounter: tokenizer.NewCounter,
	}
	if applicationExecutionError := cli.Execute(dependencies); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
