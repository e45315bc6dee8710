package db

import (
	"context"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSubscription(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, gdb, model.User{Email: "a@example.com", Username: "alice"})
	bob := testutil.CreateUser(t, gdb, model.User{Email: "b@example.com", Username: "bob"})

	subscribed, err := ToggleSubscription(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	ok, err := IsSubscribed(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	n, err := CountSubscribers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	subs, err := ListSubscriptions(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].Channel)
	assert.Equal(t, "bob", subs[0].Channel.Username)

	subscribed, err = ToggleSubscription(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
	ok, err = IsSubscribed(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
