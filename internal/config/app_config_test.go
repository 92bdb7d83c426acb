package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/filemap/internal/utils"
)

type configTestCase struct {
	name            string
	globalContent   string
	localContent    string
	explicitPath    string
	explicitContent string
	expectDirectory string
	expectCopy      *bool
	expectTokens    *bool
	expectModel     string
}

func boolPointer(value bool) *bool {
	pointer := value
	return &pointer
}

func TestLoadApplicationConfigurationMergesSources(t *testing.T) {
	testCases := []configTestCase{
		{
			name:            "local_overrides_global",
			globalContent:   "report:\n  directory: /srv/global\n  copy: true\n  tokens:\n    model: gpt-4\n",
			localContent:    "report:\n  directory: ./docs\n  tokens:\n    enabled: true\n",
			expectDirectory: "./docs",
			expectCopy:      boolPointer(true),
			expectTokens:    boolPointer(true),
			expectModel:     "gpt-4",
		},
		{
			name:            "explicit_path_replaces_local",
			globalContent:   "report:\n  copy: false\n",
			localContent:    "report:\n  directory: ignored\n",
			explicitPath:    "custom.yaml",
			explicitContent: "report:\n  directory: chosen\n",
			expectDirectory: "chosen",
			expectCopy:      boolPointer(false),
		},
		{
			name: "no_files",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			homeDir := t.TempDir()
			workingDir := t.TempDir()
			configDir := filepath.Join(homeDir, utils.GlobalConfigDirectoryName)
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				t.Fatalf("create config dir: %v", err)
			}
			if testCase.globalContent != "" {
				globalPath := filepath.Join(configDir, utils.ConfigFileName)
				if err := os.WriteFile(globalPath, []byte(testCase.globalContent), 0o600); err != nil {
					t.Fatalf("write global config: %v", err)
				}
			}
			if testCase.localContent != "" {
				localPath := filepath.Join(workingDir, utils.LocalConfigFileName)
				if err := os.WriteFile(localPath, []byte(testCase.localContent), 0o600); err != nil {
					t.Fatalf("write local config: %v", err)
				}
			}
			if testCase.explicitPath != "" {
				target := filepath.Join(workingDir, testCase.explicitPath)
				if err := os.WriteFile(target, []byte(testCase.explicitContent), 0o600); err != nil {
					t.Fatalf("write explicit config: %v", err)
				}
			}

			t.Setenv("HOME", homeDir)
			t.Setenv("USERPROFILE", homeDir)

			loadedConfig, err := LoadApplicationConfiguration(LoadOptions{
				WorkingDirectory: workingDir,
				ExplicitFilePath: testCase.explicitPath,
			})
			if err != nil {
				t.Fatalf("LoadApplicationConfiguration error: %v", err)
			}

			report := loadedConfig.Report
			if report.Directory != testCase.expectDirectory {
				t.Fatalf("expected directory %q, got %q", testCase.expectDirectory, report.Directory)
			}
			assertBoolPointer(t, "copy", testCase.expectCopy, report.Copy)
			assertBoolPointer(t, "tokens.enabled", testCase.expectTokens, report.Tokens.Enabled)
			if report.Tokens.Model != testCase.expectModel {
				t.Fatalf("expected model %q, got %q", testCase.expectModel, report.Tokens.Model)
			}
		})
	}
}

func TestLoadApplicationConfigurationRejectsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))
	workingDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(workingDir, utils.LocalConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDir}); err == nil {
		t.Fatalf("expected error for configuration directory")
	}
}

func TestBoolValue(t *testing.T) {
	if !BoolValue(nil, true) || BoolValue(nil, false) {
		t.Fatalf("nil must yield fallback")
	}
	if BoolValue(boolPointer(false), true) {
		t.Fatalf("explicit false must win over fallback")
	}
}

func assertBoolPointer(t *testing.T, name string, expected *bool, actual *bool) {
	t.Helper()
	if expected == nil {
		if actual != nil {
			t.Fatalf("expected no %s override, got %t", name, *actual)
		}
		return
	}
	if actual == nil || *actual != *expected {
		t.Fatalf("unexpected %s value", name)
	}
}
