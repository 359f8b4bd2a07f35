package domain

import "errors"

// ErrUnknownModel is returned when a semantic model name cannot be resolved.
var ErrUnknownModel = errors.New("unknown semantic model")

// ErrUnknownEquivalence is returned when an equivalence kind cannot be resolved.
var ErrUnknownEquivalence = errors.New("unknown equivalence kind")

// ErrExplorationLimit is returned when a state-count ceiling or depth bound
// stops exploration before it finished naturally. Checks that hit it report
// an inconclusive verdict, never "not equivalent".
var ErrExplorationLimit = errors.New("exploration limit exceeded")

// ErrInvalidCommunication is returned when an ACP communication function
// fails its commutativity or associativity validation.
var ErrInvalidCommunication = errors.New("invalid communication function")
