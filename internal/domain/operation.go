package domain

import "time"

// OpKind identifies the kind of vault operation recorded in history.
type OpKind string

const (
	OpMove   OpKind = "move"
	OpCopy   OpKind = "copy"
	OpPrefix OpKind = "prefix"
	OpStrip  OpKind = "strip"
)

// Operation is one executed vault operation, as recorded in history.
type Operation struct {
	Kind        OpKind
	Source      string // vault-relative path before the operation
	Destination string // vault-relative path after the operation
	MappingID   string // empty for prefix/strip operations
	At          time.Time
}
