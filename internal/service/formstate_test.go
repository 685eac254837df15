package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormStateFromRequest(t *testing.T) {
	assert.True(t, FormStateFromRequest("", false).IsBrowsing())
	assert.True(t, FormStateFromRequest("", true).IsCreating())
	assert.True(t, FormStateFromRequest("rec1", false).IsEditing())

	// editing wins over opening a second blank form
	state := FormStateFromRequest("rec1", true)
	assert.True(t, state.IsEditing())
	assert.Equal(t, "rec1", state.EditID())
}

func TestEditing_EmptyIDDegradesToBrowsing(t *testing.T) {
	assert.True(t, Editing("").IsBrowsing())
}

func TestCanDelete_BlockedWhileFormOpen(t *testing.T) {
	assert.True(t, Browsing().CanDelete())
	assert.False(t, Creating().CanDelete())
	assert.False(t, Editing("rec1").CanDelete())
}

func TestFormOpen(t *testing.T) {
	assert.False(t, Browsing().FormOpen())
	assert.True(t, Creating().FormOpen())
	assert.True(t, Editing("rec1").FormOpen())
	assert.Empty(t, Creating().EditID())
}
