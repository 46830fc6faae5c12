// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned for input that is neither a series
	// nor a table.
	ErrUnsupportedType = errors.New("unsupported data type")

	// ErrUnsupportedOperation is returned when a plot kind has no
	// implementation for the shape of the input.
	ErrUnsupportedOperation = errors.New("unsupported plot kind")

	// ErrConfiguration is returned for structurally invalid options.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrUnsupportedDataShape is returned when a composite index or
	// column structure reaches a path that cannot flatten it.
	ErrUnsupportedDataShape = errors.New("unsupported data shape")

	// ErrScatterRequiresTable is returned for scatter plots of a series.
	ErrScatterRequiresTable = errors.New("kind=\"scatter\" requires a table with x and y columns")
)

// OperationError names the plot kind and input shape that have no
// implementation.
type OperationError struct {
	Kind  string
	Shape Shape
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: kind=%q for data of type %s", ErrUnsupportedOperation, e.Kind, e.Shape)
}

func (e *OperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// ConfigError reports an invalid option value.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Option, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(option, format string, args ...interface{}) error {
	return &ConfigError{Option: option, Reason: fmt.Sprintf(format, args...)}
}

// DataShapeError reports a composite structure that cannot be handled.
type DataShapeError struct {
	What string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedDataShape, e.What)
}

func (e *DataShapeError) Unwrap() error {
	return ErrUnsupportedDataShape
}
