// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	t.Run("default to ~/.vlplot", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "")

		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, ".vlplot"), GetConfigDir())
	})

	t.Run("use VLPLOT_CONFIG_DIR when set", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "/custom/vlplot")
		assert.Equal(t, "/custom/vlplot", GetConfigDir())
	})

	t.Run("expand ~", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "~/plots/.vlplot")

		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, "plots", ".vlplot"), GetConfigDir())
	})

	t.Run("make relative path absolute", func(t *testing.T) {
		t.Setenv(ConfigDirEnv, "relative/path")

		dir := GetConfigDir()
		assert.True(t, filepath.IsAbs(dir))
		assert.True(t, strings.HasSuffix(dir, "relative/path") || strings.HasSuffix(dir, "relative\\path"))
	})
}
