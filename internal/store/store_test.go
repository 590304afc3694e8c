package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("list groups", nil))

	notFound := fmt.Errorf("group abc: %w", ErrNotFound)
	assert.Same(t, notFound, Wrap("get group", notFound))

	cause := errors.New("disk full")
	err := Wrap("create group", cause)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create group", storageErr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage create group: disk full", err.Error())

	assert.Same(t, err, Wrap("outer", err))
}
