// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package output

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Script URLs for the page's renderer.
const (
	VegaURL      = "https://cdn.jsdelivr.net/npm/vega@5"
	VegaLiteURL  = "https://cdn.jsdelivr.net/npm/vega-lite@5"
	VegaEmbedURL = "https://cdn.jsdelivr.net/npm/vega-embed@6"
)

// renderHTML builds a self-contained page that renders doc with
// vega-embed. Warnings are listed under the chart.
func renderHTML(doc map[string]interface{}, warnings []string, opts Options) ([]byte, error) {
	// encoding/json escapes <, > and & so the document is safe inside a script.
	specJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	t := DefaultTheme()
	if opts.Theme != "" {
		if t, err = ResolveTheme(opts.Theme); err != nil {
			return nil, err
		}
	}
	title := opts.Title
	if title == "" {
		title = "Chart"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="%s"></script>
    <script src="%s"></script>
    <script src="%s"></script>
    <style>
        body {
            font-family: %s;
            background: %s;
            color: %s;
            padding: 40px 20px;
        }
        h1 {
            font-size: %dpx;
            margin-bottom: 20px;
            font-weight: 600;
        }
        .warning {
            border-left: 3px solid %s;
            padding: 8px 12px;
            margin-top: 12px;
            font-size: %dpx;
            color: %s;
        }
    </style>
</head>
<body>
    <h1>%s</h1>
    <div id="vis"></div>
`,
		html.EscapeString(title),
		VegaURL, VegaLiteURL, VegaEmbedURL,
		t.FontFamily,
		t.ColorBackground,
		t.ColorText,
		t.FontSizeTitle*2,
		t.ColorPrimary,
		t.FontSizeLabel+1,
		t.ColorTextMuted,
		html.EscapeString(title),
	))

	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("    <div class=\"warning\">%s</div>\n", html.EscapeString(w)))
	}

	sb.WriteString(fmt.Sprintf(`    <script>
        vegaEmbed("#vis", %s, {actions: false}).catch(console.error);
    </script>
</body>
</html>
`, specJSON))

	return []byte(sb.String()), nil
}
