// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirEnv names the environment variable that overrides the
// configuration directory.
const ConfigDirEnv = "VLPLOT_CONFIG_DIR"

// GetConfigDir returns the vlplot configuration directory.
//
// Priority:
// 1. VLPLOT_CONFIG_DIR environment variable (if set and non-empty)
// 2. ~/.vlplot (default)
//
// The returned path is always absolute. Tilde (~) in VLPLOT_CONFIG_DIR
// is expanded to the user's home directory.
//
// Examples:
//
//	VLPLOT_CONFIG_DIR=/etc/vlplot     -> /etc/vlplot
//	VLPLOT_CONFIG_DIR=~/plots         -> /home/user/plots
//	VLPLOT_CONFIG_DIR not set         -> /home/user/.vlplot
//
// It reads the environment directly rather than through viper because it
// is needed to locate the config file itself.
func GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return expandPath(dir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vlplot"
	}
	return filepath.Join(homeDir, ".vlplot")
}

// expandPath expands ~ and resolves to absolute path
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
