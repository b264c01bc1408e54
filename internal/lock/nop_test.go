package lock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLocker(t *testing.T) {
	var l NopLocker

	token, err := l.Acquire(context.Background(), "slot:t1:2024-01-01")
	require.NoError(t, err)

	// a second acquire of the same key is never refused
	_, err = l.Acquire(context.Background(), "slot:t1:2024-01-01")
	require.NoError(t, err)

	assert.NoError(t, l.Release(context.Background(), "slot:t1:2024-01-01", token))
}
