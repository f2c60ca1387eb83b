package storage

import (
	"math/rand"
	"sync"
	"testing"

	"TechDashboard/internal/domain"
)

func TestLikeStoreGetUnseen(t *testing.T) {
	t.Parallel()

	store := NewLikeStore()
	if got := store.Get("https://example.org/a"); got != 0 {
		t.Fatalf("expected 0 for unseen url, got %d", got)
	}
	if store.Len() != 0 {
		t.Fatalf("Get must not create entries, len=%d", store.Len())
	}
}

func TestLikeStoreUnlikeFloorsAtZero(t *testing.T) {
	t.Parallel()

	store := NewLikeStore()
	if got := store.Apply("u", domain.ActionUnlike); got != 0 {
		t.Fatalf("unlike on fresh url returned %d", got)
	}
	if got := store.Get("u"); got != 0 {
		t.Fatalf("expected count 0, got %d", got)
	}

	store.Apply("u", domain.ActionLike)
	store.Apply("u", domain.ActionLike)
	if got := store.Apply("u", domain.ActionUnlike); got != 1 {
		t.Fatalf("expected 1 after like,like,unlike, got %d", got)
	}
}

func TestLikeStoreSequencesMatchModel(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		store := NewLikeStore()
		want := 0
		for step := 0; step < 40; step++ {
			action := domain.ActionLike
			if rng.Intn(2) == 0 {
				action = domain.ActionUnlike
			}
			if action == domain.ActionLike {
				want++
			} else if want > 0 {
				want--
			}

			got := store.Apply("url", action)
			if got != want {
				t.Fatalf("run %d step %d: got %d, want %d", run, step, got, want)
			}
			if got < 0 {
				t.Fatalf("count went negative: %d", got)
			}
		}
	}
}

func TestLikeStoreIgnoresUnknownAction(t *testing.T) {
	t.Parallel()

	store := NewLikeStore()
	store.Apply("u", domain.ActionLike)
	if got := store.Apply("u", domain.Action("boost")); got != 1 {
		t.Fatalf("unknown action changed count to %d", got)
	}
}

func TestLikeStoreConcurrentLikes(t *testing.T) {
	t.Parallel()

	store := NewLikeStore()
	const workers, perWorker = 16, 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				store.Apply("shared", domain.ActionLike)
			}
		}()
	}
	wg.Wait()

	if got := store.Get("shared"); got != workers*perWorker {
		t.Fatalf("lost updates: got %d, want %d", got, workers*perWorker)
	}
}
