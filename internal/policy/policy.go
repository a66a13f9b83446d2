// Package policy maps column names to the metadata state a card in that
// column should have.
package policy

// StatusBacklog is the status every quadrant column resolves to.
const StatusBacklog = "backlog"

// Flags are the Eisenhower urgency/importance markers of a quadrant.
type Flags struct {
	Urgent    bool `json:"urgent"`
	Important bool `json:"important"`
}

// Target is the metadata state a column maps to. When Quadrant is false,
// Urgent and Important are unspecified and existing values must be left
// untouched.
type Target struct {
	Status    string
	Urgent    bool
	Important bool
	Quadrant  bool
}

// Table maps reserved column names to their quadrant flags. Matching is
// exact, decorative symbols included; a renamed quadrant heading degrades
// to a plain status column. The mapping is data rather than logic so
// hosts can remap headings through configuration.
type Table map[string]Flags

// DefaultTable returns the four reserved Eisenhower quadrant columns.
func DefaultTable() Table {
	return Table{
		"⚪ Eliminate (NI & NU)": {Urgent: false, Important: false},
		"🟢 Delegate (NI & U)":  {Urgent: true, Important: false},
		"🟡 Schedule (I & NU)":  {Urgent: false, Important: true},
		"🔴 Do First (I & U)":   {Urgent: true, Important: true},
	}
}

// Resolve maps a column name to its target state. Quadrant columns
// resolve to StatusBacklog plus their fixed flags; every other name
// resolves to itself as the status with flags unspecified. There are no
// error cases: every string is a valid column name.
func (t Table) Resolve(column string) Target {
	if flags, ok := t[column]; ok {
		return Target{
			Status:    StatusBacklog,
			Urgent:    flags.Urgent,
			Important: flags.Important,
			Quadrant:  true,
		}
	}

	return Target{Status: column}
}
