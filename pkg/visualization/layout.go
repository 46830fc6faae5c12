// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

// DefaultLayout returns the grid requested when a caller gives none:
// infer the rows, two columns.
func DefaultLayout() []int {
	return []int{-1, 2}
}

// ResolveLayout returns the (rows, columns) grid for panels panels.
// A negative entry in requested is inferred from the other one; at
// most one entry may be negative. A nil requested means DefaultLayout.
func ResolveLayout(panels int, requested []int) ([2]int, error) {
	if requested == nil {
		requested = DefaultLayout()
	}
	if len(requested) != 2 {
		return [2]int{}, configErrorf("layout", "must have exactly two elements; got %d", len(requested))
	}
	rows, cols := requested[0], requested[1]
	switch {
	case rows < 0 && cols < 0:
		return [2]int{}, configErrorf("layout", "at most one dimension may be negative; got (%d, %d)", rows, cols)
	case rows == 0 || cols == 0:
		return [2]int{}, configErrorf("layout", "dimensions must be nonzero; got (%d, %d)", rows, cols)
	case rows < 0:
		rows = max(1, ceilDiv(panels, cols))
	case cols < 0:
		cols = max(1, ceilDiv(panels, rows))
	}
	if rows*cols < panels {
		return [2]int{}, configErrorf("layout", "(%d, %d) holds %d panels; need %d", rows, cols, rows*cols, panels)
	}
	return [2]int{rows, cols}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
