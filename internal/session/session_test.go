package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	ctx := context.Background()
	m := NewManager("")

	_, ok := m.UserID()
	assert.False(t, ok)

	require.ErrorIs(t, m.SignIn(ctx, ""), ErrEmptyUserID)
	require.NoError(t, m.SignIn(ctx, "u-42"))

	id, ok := m.UserID()
	require.True(t, ok)
	assert.Equal(t, "u-42", id)

	require.NoError(t, m.LogOut(ctx))
	require.NoError(t, m.LogOut(ctx))
	_, ok = m.UserID()
	assert.False(t, ok)
}

func TestNewManager_SignedIn(t *testing.T) {
	id, ok := NewManager("u-1").UserID()
	assert.True(t, ok)
	assert.Equal(t, "u-1", id)
}
