// ABOUTME: Standard filesystem paths for hecto configuration
// ABOUTME: Resolves ~/.hecto/ for global and .hecto/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".hecto"
	projectDirName = ".hecto"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.hecto/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.hecto/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ConfigFiles returns every file Load reads, global first.
func ConfigFiles(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}
