// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"github.com/jurgen-paul/altair-pandas/pkg/vegalite"
)

func seriesScatter(*call) (*vegalite.Chart, error) {
	return nil, ErrScatterRequiresTable
}

// tableScatter plots y against x, with optional color ("c") and size
// ("s") columns. Only the referenced columns reach the chart data.
func tableScatter(c *call) (*vegalite.Chart, error) {
	if !c.opts.Has("x") || !c.opts.Has("y") {
		return nil, configErrorf("x", "kind=\"scatter\" requires both x and y")
	}

	channels := []struct{ key, channel string }{
		{"x", "x"}, {"y", "y"}, {"c", "color"}, {"s", "size"},
	}
	var used []interface{}
	names := make(map[string]string)
	seen := make(map[string]bool)
	for _, ch := range channels {
		if !c.opts.Has(ch.key) {
			continue
		}
		name := ValidColumn(c.opts[ch.key])
		names[ch.channel] = name
		if !seen[name] {
			seen[name] = true
			used = append(used, name)
		}
	}

	t, err := c.data(false, used)
	if err != nil {
		return nil, err
	}
	mark, err := c.markDef(vegalite.Mark{Type: "point"})
	if err != nil {
		return nil, err
	}

	enc := vegalite.Encoding{Tooltip: tooltip(t, t.Columns()...)}
	for _, ch := range channels {
		if name, ok := names[ch.channel]; ok {
			enc = enc.With(ch.channel, field(t, name))
		}
	}
	chart := &vegalite.Chart{Table: t, Mark: mark, Encoding: enc}
	c.interactive(chart)
	return chart, nil
}
