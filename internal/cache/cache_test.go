package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	err := c.Set(ctx, "exam:abc", []byte(`{"title":"Networking"}`), time.Minute)
	require.NoError(t, err)

	got, err := c.Get(ctx, "exam:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"title":"Networking"}`), got)
}

func TestCacheGetMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)

	got, err := c.Get(context.Background(), "no-such-key")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "exam:abc", []byte("payload"), time.Minute))
	require.NoError(t, c.Delete(ctx, "exam:abc"))

	got, err := c.Get(ctx, "exam:abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "exam:abc", []byte("payload"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := c.Get(ctx, "exam:abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Every failure mode behaves like a miss: a dead server and a nil client both
// come back empty with no error.
func TestCacheFailsSafe(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	mr.Close()
	ctx := context.Background()

	got, err := c.Get(ctx, "exam:abc")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "exam:abc", []byte("payload"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "exam:abc"))

	var nilClient *Client
	got, err = nilClient.Get(ctx, "exam:abc")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, nilClient.Set(ctx, "exam:abc", []byte("payload"), time.Minute))
}
