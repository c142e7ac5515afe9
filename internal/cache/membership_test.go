package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemberKey(t *testing.T) {
	assert.Equal(t, "team:t1:member:u1", MemberKey("t1", "u1"))
	assert.Equal(t, "team:t1:member:*", teamPattern("t1"))
}

func TestNop(t *testing.T) {
	var c Membership = Nop{}
	ctx := context.Background()

	c.Remember(ctx, "t1", "u1")
	assert.False(t, c.Has(ctx, "t1", "u1"))
}
