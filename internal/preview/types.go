/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package preview

import (
	"sort"

	"github.com/orien/acaenv/internal/engine"
)

// Engine operation names as reported in change summaries
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpReplace = "replace"
	OpDelete  = "delete"
	OpSame    = "same"
)

// operationOrder lists the operations shown first, most significant first
var operationOrder = []string{OpCreate, OpUpdate, OpReplace, OpDelete, OpSame}

// Result is the outcome of previewing one environment
type Result struct {
	Environment string
	Stack       string
	Changes     engine.ChangeSummary
}

// HasChanges reports whether applying the program would change any resource
func (r *Result) HasChanges() bool {
	for op, count := range r.Changes {
		if op != OpSame && count > 0 {
			return true
		}
	}
	return false
}

// Total returns the number of resources the preview touched, unchanged ones included
func (r *Result) Total() int {
	total := 0
	for _, count := range r.Changes {
		total += count
	}
	return total
}

// Operations returns the operations with a non-zero count. Known operations come
// first in a fixed order followed by the rest alphabetically.
func (r *Result) Operations() []string {
	known := make(map[string]bool, len(operationOrder))
	ops := make([]string, 0, len(r.Changes))

	for _, op := range operationOrder {
		known[op] = true
		if r.Changes[op] > 0 {
			ops = append(ops, op)
		}
	}

	var rest []string
	for op, count := range r.Changes {
		if !known[op] && count > 0 {
			rest = append(rest, op)
		}
	}
	sort.Strings(rest)

	return append(ops, rest...)
}
