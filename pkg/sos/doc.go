// Package sos derives one-step transitions from term structure.
//
// An Engine bundles the rule set of one semantic model (CCS, CSP or ACP).
// The models share the prefix, choice and recursion rules and differ only in
// parallel composition: CCS synchronizes complementary actions into the
// silent action, CSP requires a rendezvous on a fixed alphabet that keeps the
// visible action, and ACP communicates through a caller-supplied gamma
// function.
package sos
