package vault

// Op identifies a document-change event kind.
type Op uint8

// Document event kinds emitted by the event stream.
const (
	OpCreated Op = iota
	OpModified
	OpRenamed
	OpDeleted
)

// String returns the lowercase event name.
func (o Op) String() string {
	switch o {
	case OpCreated:
		return "created"
	case OpModified:
		return "modified"
	case OpRenamed:
		return "renamed"
	case OpDeleted:
		return "deleted"
	}

	return "unknown"
}

// Event is one document-change notification. ID is the document's current
// id; OldID is set only for OpRenamed.
type Event struct {
	Op    Op
	ID    string
	OldID string
}
