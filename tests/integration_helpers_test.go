package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const integrationCommandTimeoutConstant = 30 * time.Second

// runCLICommand executes the repository binary through `go run .` and returns combined output.
func runCLICommand(testInstance *testing.T, environmentOverrides []string, commandArguments ...string) (string, error) {
	testInstance.Helper()

	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	repositoryRootDirectory := filepath.Dir(currentWorkingDirectory)

	executionContext, cancelFunction := context.WithTimeout(context.Background(), integrationCommandTimeoutConstant)
	defer cancelFunction()

	arguments := append([]string{"run", "."}, commandArguments...)
	command := exec.CommandContext(executionContext, "go", arguments...)
	command.Dir = repositoryRootDirectory
	command.Env = append(os.Environ(), environmentOverrides...)

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

// writeIntegrationFile creates a file beneath the provided directory with the given content.
func writeIntegrationFile(testInstance *testing.T, directoryPath string, fileName string, fileContent string) string {
	testInstance.Helper()

	filePath := filepath.Join(directoryPath, fileName)
	require.NoError(testInstance, os.WriteFile(filePath, []byte(fileContent), 0o644))
	return filePath
}
