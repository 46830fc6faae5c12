// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// ServiceName is the keyring service that holds stored DSNs.
const ServiceName = "vlplot"

// KeyringPrefix marks a DSN that is stored in the system keyring, e.g.
// "keyring:warehouse".
const KeyringPrefix = "keyring:"

// ResolveDSN returns dsn, or the stored DSN when dsn is a keyring
// reference.
func ResolveDSN(dsn string) (string, error) {
	name, ok := strings.CutPrefix(dsn, KeyringPrefix)
	if !ok {
		return dsn, nil
	}
	if name == "" {
		return "", fmt.Errorf("keyring DSN reference has no name")
	}
	secret, err := keyring.Get(ServiceName, name)
	if err != nil {
		return "", fmt.Errorf("failed to read DSN %q from keyring (set it with: vlplot config set-dsn %s): %w", name, name, err)
	}
	return secret, nil
}

// SaveDSN stores a DSN in the system keyring.
func SaveDSN(name, dsn string) error {
	if name == "" || dsn == "" {
		return fmt.Errorf("name and DSN are required")
	}
	return keyring.Set(ServiceName, name, dsn)
}

// DeleteDSN removes a stored DSN.
func DeleteDSN(name string) error {
	return keyring.Delete(ServiceName, name)
}
