package models

// Two independent kanban boards with disjoint column sets. Keeping the sets
// apart makes a cross-board status an invalid value instead of a silent mix.

type KanbanType string

const (
	KanbanGeneral     KanbanType = "general"
	KanbanOperational KanbanType = "operational"
)

func (t KanbanType) Valid() bool {
	return t == KanbanGeneral || t == KanbanOperational
}

// General board columns.
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Operational board columns (content production flow).
const (
	StatusBriefing         = "briefing"
	StatusCopy             = "copy"
	StatusDesign           = "design"
	StatusInternalApproval = "internal_approval"
	StatusClientApproval   = "client_approval"
	StatusScheduling       = "scheduling"
	StatusPublished        = "published"
)

var generalColumns = []string{StatusTodo, StatusDoing, StatusDone}

var operationalColumns = []string{
	StatusBriefing,
	StatusCopy,
	StatusDesign,
	StatusInternalApproval,
	StatusClientApproval,
	StatusScheduling,
}

// BoardColumns returns the ordered columns rendered for a board type.
// The operational board archives published cards off-board, so "published"
// is a valid stored status but not a rendered column.
func BoardColumns(t KanbanType) []string {
	if t == KanbanOperational {
		cols := make([]string, len(operationalColumns))
		copy(cols, operationalColumns)
		return cols
	}
	cols := make([]string, len(generalColumns))
	copy(cols, generalColumns)
	return cols
}

// ValidColumn reports whether status belongs to the column set of t.
func ValidColumn(t KanbanType, status string) bool {
	switch t {
	case KanbanGeneral:
		for _, c := range generalColumns {
			if c == status {
				return true
			}
		}
	case KanbanOperational:
		if status == StatusPublished {
			return true
		}
		for _, c := range operationalColumns {
			if c == status {
				return true
			}
		}
	}
	return false
}

// FirstColumn is where newly created tasks land.
func FirstColumn(t KanbanType) string {
	if t == KanbanOperational {
		return StatusBriefing
	}
	return StatusTodo
}
