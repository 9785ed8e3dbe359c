package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
)

const workers = 32

func TestUserRepository_ConcurrentCreateAndRead(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &entity.User{Email: fmt.Sprintf("user-%d@x.com", i), HashedPassword: "h"}
			if err := repo.Create(ctx, u); err == nil {
				ids[i] = u.ID
			}
		}(i)
	}
	// readers race the writers; they may miss users not created yet but
	// must never observe a torn record
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := repo.GetByEmail(ctx, fmt.Sprintf("user-%d@x.com", i))
			if err == nil {
				assert.NotEmpty(t, u.ID)
				assert.Equal(t, "h", u.HashedPassword)
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i, id := range ids {
		require.NotEmpty(t, id, "create %d failed", i)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUserRepository_ConcurrentConsumeSingleWinner(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{Email: "a@x.com", HashedPassword: "h1"}
	require.NoError(t, repo.Create(ctx, u))
	tok := "tok-1"
	require.NoError(t, repo.UpdateCredentials(ctx, u.ID, repository.CredentialUpdate{ResetToken: &tok}))

	var wg sync.WaitGroup
	wins := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.ConsumeResetToken(ctx, "tok-1", fmt.Sprintf("h-%d", i)); err == nil {
				wins <- i
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []int
	for w := range wins {
		winners = append(winners, w)
	}
	require.Len(t, winners, 1)

	// the stored hash is the winner's, not a mix
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("h-%d", winners[0]), got.HashedPassword)
	assert.Empty(t, got.ResetToken)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := fmt.Sprintf("sid-%d", i)
			assert.NoError(t, store.Put(ctx, sid, fmt.Sprintf("user-%d", i)))
			uid, err := store.Get(ctx, sid)
			if assert.NoError(t, err) {
				assert.Equal(t, fmt.Sprintf("user-%d", i), uid)
			}
		}(i)
	}
	wg.Wait()

	// concurrent destroys of one session: exactly one reports true
	require.NoError(t, store.Put(ctx, "shared", "user-0"))
	deleted := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Delete(ctx, "shared")
			if assert.NoError(t, err) && ok {
				deleted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(deleted)

	var n int
	for range deleted {
		n++
	}
	assert.Equal(t, 1, n)
}
