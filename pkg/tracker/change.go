package tracker

// Op enumerates mutation actions reported by the stores.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Kind names the entity a change touched.
type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
)

// Change describes a completed mutation so a dispatcher can decide which
// view fragments to rebuild. A zero Change means nothing happened (the
// operation was a silent no-op).
type Change struct {
	Op    Op
	Kind  Kind
	ID    string
	Title string

	// Orphaned counts tasks whose project reference was cleared as part
	// of a project delete. When non-zero the task table is stale too.
	Orphaned int
}

// Empty reports whether the change represents a no-op.
func (c Change) Empty() bool {
	return c.Op == "" && c.Kind == ""
}
