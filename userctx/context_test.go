package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserEmail(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Anonymous, GetUserEmail(ctx))
	assert.False(t, IsAuthenticated(ctx))

	ctx = SetUserEmail(ctx, "admin@example.com")
	assert.Equal(t, "admin@example.com", GetUserEmail(ctx))
	assert.True(t, IsAuthenticated(ctx))

	assert.False(t, IsAuthenticated(SetUserEmail(context.Background(), "")))
}
