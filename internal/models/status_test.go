package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidColumn(t *testing.T) {
	assert.True(t, ValidColumn(KanbanGeneral, StatusTodo))
	assert.True(t, ValidColumn(KanbanOperational, StatusBriefing))

	// Columns never cross boards.
	assert.False(t, ValidColumn(KanbanGeneral, StatusDesign))
	assert.False(t, ValidColumn(KanbanOperational, StatusTodo))

	assert.False(t, ValidColumn(KanbanGeneral, "archived"))
	assert.False(t, ValidColumn("backlog", StatusTodo))
}

func TestPublishedIsStoredButNotRendered(t *testing.T) {
	assert.True(t, ValidColumn(KanbanOperational, StatusPublished))
	assert.NotContains(t, BoardColumns(KanbanOperational), StatusPublished)
}

func TestBoardColumns(t *testing.T) {
	assert.Equal(t, []string{StatusTodo, StatusDoing, StatusDone}, BoardColumns(KanbanGeneral))
	assert.Len(t, BoardColumns(KanbanOperational), 6)
}

func TestFirstColumn(t *testing.T) {
	assert.Equal(t, StatusTodo, FirstColumn(KanbanGeneral))
	assert.Equal(t, StatusBriefing, FirstColumn(KanbanOperational))
}
