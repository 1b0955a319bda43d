package memory

import (
	"testing"
	"time"

	"adminsearch-be/internal/entity"
	"adminsearch-be/internal/repository/contract"
	"adminsearch-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ contract.SearchSessionRepository = (*SearchSessionRepository)(nil)
var _ search.Source = (*RecordSource)(nil)

func TestRecordSourceIsReadOnly(t *testing.T) {
	src := NewSampleRecordSource()

	users := src.Users()
	require.NotEmpty(t, users)
	users[0].Name = "Mallory"

	assert.Equal(t, "Rahul Sharma", src.Users()[0].Name)
}

func TestRecordSourceCopiesInput(t *testing.T) {
	users := []entity.User{{Id: "u-1", Name: "Original"}}
	src := NewRecordSource(users, nil, nil, nil)
	users[0].Name = "Changed"

	assert.Equal(t, "Original", src.Users()[0].Name)
	assert.Empty(t, src.Transactions())
}

func TestSampleIdsUniquePerCategory(t *testing.T) {
	src := NewSampleRecordSource()

	seen := map[string]bool{}
	for _, u := range src.Users() {
		assert.False(t, seen[u.Id], u.Id)
		seen[u.Id] = true
	}
	seen = map[string]bool{}
	for _, tx := range src.Transactions() {
		assert.False(t, seen[tx.Id], tx.Id)
		seen[tx.Id] = true
	}
	seen = map[string]bool{}
	for _, w := range src.Withdrawals() {
		assert.False(t, seen[w.Id], w.Id)
		seen[w.Id] = true
	}
	seen = map[string]bool{}
	for _, c := range src.Contents() {
		assert.False(t, seen[c.Id], c.Id)
		seen[c.Id] = true
	}
}

type stubTimer struct{ stopped bool }

func (t *stubTimer) Stop() bool {
	t.stopped = true
	return true
}

type stubScheduler struct{ timers []*stubTimer }

func (s *stubScheduler) AfterFunc(time.Duration, func()) search.Timer {
	t := &stubTimer{}
	s.timers = append(s.timers, t)
	return t
}

func TestSessionRepository(t *testing.T) {
	repo := NewSearchSessionRepository(time.Minute, time.Minute, nil)
	sched := &stubScheduler{}
	engine := search.NewEngine(NewSampleRecordSource(), search.WithScheduler(sched))

	repo.Save("s-1", engine)
	got, ok := repo.Get("s-1")
	require.True(t, ok)
	assert.Same(t, engine, got)
	assert.Equal(t, 1, repo.Count())

	engine.Search("rahul")
	require.Len(t, sched.timers, 1)

	repo.Delete("s-1")
	_, ok = repo.Get("s-1")
	assert.False(t, ok)
	assert.True(t, sched.timers[0].stopped, "eviction cancels pending flips")
	assert.Zero(t, engine.Pending())
}

func TestSessionRepositoryExpires(t *testing.T) {
	repo := NewSearchSessionRepository(20*time.Millisecond, 5*time.Millisecond, nil)
	repo.Save("s-1", search.NewEngine(NewSampleRecordSource()))

	// Count does not touch the entry, so only the janitor can empty it.
	assert.Eventually(t, func() bool {
		return repo.Count() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestSessionRepositoryReportsEvictions(t *testing.T) {
	var evicted []string
	repo := NewSearchSessionRepository(time.Minute, time.Minute, func(sessionID string) {
		evicted = append(evicted, sessionID)
	})
	repo.Save("s-1", search.NewEngine(NewSampleRecordSource()))
	repo.Save("s-2", search.NewEngine(NewSampleRecordSource()))

	repo.Delete("s-1")
	repo.Delete("missing")

	assert.Equal(t, []string{"s-1"}, evicted)
}

func TestSessionRepositoryGetSlidesExpiry(t *testing.T) {
	repo := NewSearchSessionRepository(200*time.Millisecond, time.Hour, nil)
	repo.Save("s-1", search.NewEngine(NewSampleRecordSource()))

	time.Sleep(120 * time.Millisecond)
	_, ok := repo.Get("s-1")
	require.True(t, ok)

	time.Sleep(120 * time.Millisecond)
	_, ok = repo.Get("s-1")
	assert.True(t, ok, "each Get restarts the TTL")
}

func TestSessionRepositoryGetDoesNotResurrect(t *testing.T) {
	repo := NewSearchSessionRepository(time.Minute, time.Minute, nil)
	engine := search.NewEngine(NewSampleRecordSource())
	repo.Save("s-1", engine)
	repo.Delete("s-1")

	_, ok := repo.Get("s-1")
	assert.False(t, ok)

	// Replace only refreshes entries that still exist.
	assert.Error(t, repo.cache.Replace("s-1", engine, 0))
	assert.Zero(t, repo.Count())
}
