package plait

// Tag is a key/value annotation attached to a delivered transaction so
// that clients can subscribe to or filter results.
type Tag struct {
	Key   []byte
	Value []byte
}

// NewTag is a shortcut for string literals.
func NewTag(key, value string) Tag {
	return Tag{Key: []byte(key), Value: []byte(value)}
}

// CheckResult captures any non-error response from a pre-flight check.
type CheckResult struct {
	// Data is a machine-parseable return value, like an id.
	Data []byte
	// Log is human readable informational text.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error response from delivering
// a transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like an id.
	Data []byte
	// Log is human readable informational text.
	Log string
	// Tags annotate the result for indexing.
	Tags []Tag
}
