// Package domain holds the value types of the process algebra: actions,
// terms, transitions, traces and check results.
//
// Everything here is immutable and safe for concurrent reads. Terms form a
// closed sum; their canonical String form is the identity used for state
// deduplication everywhere else in the module.
package domain
