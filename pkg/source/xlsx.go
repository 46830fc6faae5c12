// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"
)

// loadXLSX reads one sheet of a workbook. The first row is the header;
// cell values are coerced the same way as delimited text.
func loadXLSX(path, sheet string) (*frame.Frame, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}
	return fromStrings(rows[0], rows[1:])
}
