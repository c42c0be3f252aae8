/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the datastore interfaces for testing
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/ddbgateway/errors"
	"github.com/suparena/ddbgateway/storagemodels"
)

// Scanner is a mock implementation of datastore.Scanner for testing
type Scanner struct {
	mu       sync.RWMutex
	tables   map[string][]storagemodels.Record
	scanFunc func(ctx context.Context, tableName string) (*storagemodels.ScanResult, error)
	scanErr  error
	calls    []string
}

// New creates a new mock Scanner
func New() *Scanner {
	return &Scanner{
		tables: make(map[string][]storagemodels.Record),
	}
}

// WithTable seeds a table with records, kept in the given order
func (m *Scanner) WithTable(tableName string, records ...storagemodels.Record) *Scanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[tableName] = append([]storagemodels.Record(nil), records...)
	return m
}

// WithScanFunc sets a custom scan function for testing
func (m *Scanner) WithScanFunc(f func(ctx context.Context, tableName string) (*storagemodels.ScanResult, error)) *Scanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanFunc = f
	return m
}

// WithScanError makes ScanTable operations return an error wrapped as a scan failure
func (m *Scanner) WithScanError(err error) *Scanner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanErr = err
	return m
}

// ScanTable returns every record seeded for tableName
func (m *Scanner) ScanTable(ctx context.Context, tableName string) (*storagemodels.ScanResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, tableName)
	scanFunc, scanErr := m.scanFunc, m.scanErr
	m.mu.Unlock()

	if scanFunc != nil {
		return scanFunc(ctx, tableName)
	}
	if scanErr != nil {
		return nil, errors.NewScanFailedError(tableName, scanErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewScanFailedError(tableName, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records, exists := m.tables[tableName]
	if !exists {
		return nil, errors.NewScanFailedError(tableName, fmt.Errorf("table %q does not exist", tableName))
	}

	items := make([]storagemodels.Record, len(records))
	copy(items, records)
	return &storagemodels.ScanResult{
		Items:        items,
		Count:        int32(len(items)),
		ScannedCount: int32(len(items)),
	}, nil
}

// Helper methods for testing

// Calls returns the table names passed to ScanTable, in call order
func (m *Scanner) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns the number of ScanTable invocations
func (m *Scanner) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// Reset clears recorded calls and injected failures
func (m *Scanner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.scanErr = nil
	m.scanFunc = nil
}
