// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Theme holds the design tokens applied to a chart's top-level config.
type Theme struct {
	ColorPrimary    string   `yaml:"color_primary"`    // default mark color
	ColorBackground string   `yaml:"color_background"` // chart background
	ColorText       string   `yaml:"color_text"`       // titles and labels
	ColorTextMuted  string   `yaml:"color_text_muted"` // axis labels
	ColorBorder     string   `yaml:"color_border"`     // grid, domain and view stroke
	ColorPalette    []string `yaml:"color_palette"`    // categorical color range

	FontFamily    string `yaml:"font_family"`
	FontSizeTitle int    `yaml:"font_size_title"`
	FontSizeLabel int    `yaml:"font_size_label"`
}

// DefaultTheme returns the dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		ColorPrimary:    "#f37021",
		ColorBackground: "#1a1a1a",
		ColorText:       "#f5f5f5",
		ColorTextMuted:  "#b5b5b5",
		ColorBorder:     "#3a3a3a",
		ColorPalette: []string{
			"#f37021",
			"#60a5fa",
			"#8b5cf6",
			"#10b981",
			"#f59e0b",
			"#ec4899",
			"#14b8a6",
		},
		FontFamily:    "IBM Plex Mono, monospace",
		FontSizeTitle: 14,
		FontSizeLabel: 11,
	}
}

var themeVariants = map[string]func(*Theme){
	"dark": func(*Theme) {},
	"light": func(t *Theme) {
		t.ColorBackground = "#ffffff"
		t.ColorText = "#1a1a1a"
		t.ColorTextMuted = "#6b7280"
		t.ColorBorder = "#e5e7eb"
	},
	"teradata": func(t *Theme) {
		t.ColorPrimary = "#f37021"
		t.ColorPalette = []string{"#f37021", "#00233d", "#fbbf24", "#10b981"}
	},
	"minimal": func(t *Theme) {
		t.ColorPrimary = "#6b7280"
		t.ColorPalette = []string{"#1f2937", "#374151", "#4b5563", "#6b7280", "#9ca3af"}
	},
}

// ThemeNames returns the names of the built-in themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themeVariants))
	for name := range themeVariants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetThemeVariant returns the built-in theme called variant.
func GetThemeVariant(variant string) (*Theme, error) {
	apply, ok := themeVariants[variant]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", variant, ThemeNames())
	}
	t := DefaultTheme()
	apply(t)
	return t, nil
}

// ResolveTheme returns the built-in theme called name, or loads a theme
// file when name ends in .yaml or .yml.
func ResolveTheme(name string) (*Theme, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return LoadTheme(name)
	}
	return GetThemeVariant(name)
}

// LoadTheme reads a YAML theme file. A file may set an "extends" key
// naming the built-in theme it starts from (dark when unset); any token
// it leaves out keeps that theme's value.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	var file struct {
		Extends string `yaml:"extends"`
		Theme   `yaml:",inline"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	base := DefaultTheme()
	if file.Extends != "" {
		if base, err = GetThemeVariant(file.Extends); err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
	}
	t := MergeThemes(&file.Theme, base)
	if err := ValidateTheme(t); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return t, nil
}

// MergeThemes overlays the non-zero fields of custom on defaults.
func MergeThemes(custom, defaults *Theme) *Theme {
	if defaults == nil {
		defaults = DefaultTheme()
	}
	merged := *defaults
	merged.ColorPalette = append([]string(nil), defaults.ColorPalette...)
	if custom == nil {
		return &merged
	}

	if custom.ColorPrimary != "" {
		merged.ColorPrimary = custom.ColorPrimary
	}
	if custom.ColorBackground != "" {
		merged.ColorBackground = custom.ColorBackground
	}
	if custom.ColorText != "" {
		merged.ColorText = custom.ColorText
	}
	if custom.ColorTextMuted != "" {
		merged.ColorTextMuted = custom.ColorTextMuted
	}
	if custom.ColorBorder != "" {
		merged.ColorBorder = custom.ColorBorder
	}
	if len(custom.ColorPalette) > 0 {
		merged.ColorPalette = append([]string(nil), custom.ColorPalette...)
	}
	if custom.FontFamily != "" {
		merged.FontFamily = custom.FontFamily
	}
	if custom.FontSizeTitle > 0 {
		merged.FontSizeTitle = custom.FontSizeTitle
	}
	if custom.FontSizeLabel > 0 {
		merged.FontSizeLabel = custom.FontSizeLabel
	}
	return &merged
}

// ValidateTheme checks that every color is a hex color and that the
// required fields are set.
func ValidateTheme(t *Theme) error {
	if t == nil {
		return fmt.Errorf("theme is nil")
	}
	colors := map[string]string{
		"color_primary":    t.ColorPrimary,
		"color_background": t.ColorBackground,
		"color_text":       t.ColorText,
		"color_text_muted": t.ColorTextMuted,
		"color_border":     t.ColorBorder,
	}
	for i, c := range t.ColorPalette {
		colors[fmt.Sprintf("color_palette[%d]", i)] = c
	}
	for name, c := range colors {
		if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("%s: %q is not a hex color", name, c)
		}
	}
	if t.FontFamily == "" {
		return fmt.Errorf("font_family is required")
	}
	if t.FontSizeTitle <= 0 || t.FontSizeLabel <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	return nil
}

// VegaLiteConfig renders the theme as a Vega-Lite config object.
func (t *Theme) VegaLiteConfig() map[string]interface{} {
	axis := map[string]interface{}{
		"labelColor":    t.ColorTextMuted,
		"titleColor":    t.ColorText,
		"gridColor":     t.ColorBorder,
		"domainColor":   t.ColorBorder,
		"tickColor":     t.ColorBorder,
		"labelFont":     t.FontFamily,
		"titleFont":     t.FontFamily,
		"labelFontSize": t.FontSizeLabel,
		"titleFontSize": t.FontSizeLabel,
	}
	return map[string]interface{}{
		"background": t.ColorBackground,
		"font":       t.FontFamily,
		"axis":       axis,
		"legend": map[string]interface{}{
			"labelColor":    t.ColorTextMuted,
			"titleColor":    t.ColorText,
			"labelFont":     t.FontFamily,
			"titleFont":     t.FontFamily,
			"labelFontSize": t.FontSizeLabel,
		},
		"title": map[string]interface{}{
			"color":    t.ColorText,
			"font":     t.FontFamily,
			"fontSize": t.FontSizeTitle,
		},
		"header": map[string]interface{}{
			"labelColor": t.ColorText,
			"titleColor": t.ColorText,
		},
		"mark":  map[string]interface{}{"color": t.ColorPrimary},
		"range": map[string]interface{}{"category": append([]string(nil), t.ColorPalette...)},
		"view":  map[string]interface{}{"stroke": t.ColorBorder},
	}
}
