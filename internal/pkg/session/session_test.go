package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_StartAndGet(t *testing.T) {
	store := NewStore()

	sess := store.Start()
	require.NotEmpty(t, sess.ID)

	got := store.Get(sess.ID)
	assert.Same(t, sess, got)

	assert.Nil(t, store.Get("missing"))
}

func TestSession_PutGetDelete(t *testing.T) {
	store := NewStore()
	sess := store.Start()

	_, ok := sess.Get(KeyCurrentTeamID)
	assert.False(t, ok)

	sess.Put(KeyCurrentTeamID, "team-42")
	v, ok := sess.Get(KeyCurrentTeamID)
	assert.True(t, ok)
	assert.Equal(t, "team-42", v)

	sess.Delete(KeyCurrentTeamID)
	_, ok = sess.Get(KeyCurrentTeamID)
	assert.False(t, ok)
}

func TestStore_Destroy(t *testing.T) {
	store := NewStore()
	sess := store.Start()

	store.Destroy(sess.ID)
	assert.Nil(t, store.Get(sess.ID))
}

func TestSession_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	sess := store.Start()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Put(KeyInvitationToken, "tok")
			sess.Get(KeyInvitationToken)
		}()
	}
	wg.Wait()

	v, ok := sess.Get(KeyInvitationToken)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)
}

func TestContextRoundTrip(t *testing.T) {
	store := NewStore()
	sess := store.Start()

	ctx := WithContext(context.Background(), sess)
	assert.Same(t, sess, FromContext(ctx))

	assert.Nil(t, FromContext(context.Background()))
}
