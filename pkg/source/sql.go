// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jurgen-paul/altair-pandas/pkg/frame"

	// SQL drivers
	_ "github.com/go-sql-driver/mysql" // mysql
	_ "github.com/lib/pq"              // postgres
	_ "modernc.org/sqlite"             // sqlite
)

// driverName maps a configured driver to its database/sql name.
func driverName(driver string) (string, error) {
	switch driver {
	case "", "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	}
	return "", fmt.Errorf("unsupported driver: %s (supported: sqlite, postgres, mysql)", driver)
}

func loadSQL(ctx context.Context, driver, dsn, query string) (*frame.Frame, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	name, err := driverName(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return Query(ctx, db, query)
}

// Query runs query on db and returns the result set as a frame. Column
// types follow the scanned values; NULLs in numeric columns become NaN.
func Query(ctx context.Context, db *sql.DB, query string) (*frame.Frame, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := make([][]interface{}, len(columns))
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			// Text columns scan as []byte with some drivers.
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			data[i] = append(data[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	seen := make(map[string]bool, len(columns))
	f := frame.New()
	for i, col := range columns {
		if seen[col] {
			return nil, fmt.Errorf("duplicate column %q in result set", col)
		}
		seen[col] = true
		f.Add(col, typedColumn(data[i]))
	}
	return f, nil
}
