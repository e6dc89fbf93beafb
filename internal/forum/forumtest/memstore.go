// Package forumtest provides an in-memory forum.Store for tests. Each call is
// atomic under one mutex and documents are deep-copied on the way in and out,
// so callers never alias stored state — the same single-document guarantees a
// real document database gives, and nothing more.
package forumtest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
	"github.com/zanspiler/forums/internal/forum"
)

type MemStore struct {
	mu     sync.Mutex
	forums map[primitive.ObjectID]*domain.Forum
	posts  map[primitive.ObjectID]*domain.Post
	users  map[primitive.ObjectID]*domain.User

	postSeq map[primitive.ObjectID]int // insertion order, tie-break for equal timestamps
	seq     int

	// FailForums injects a lookup error per forum id, for exercising
	// lookup-failure paths (feed branch isolation, delete propagation).
	FailForums map[primitive.ObjectID]error
}

var _ forum.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		forums:     make(map[primitive.ObjectID]*domain.Forum),
		posts:      make(map[primitive.ObjectID]*domain.Post),
		users:      make(map[primitive.ObjectID]*domain.User),
		postSeq:    make(map[primitive.ObjectID]int),
		FailForums: make(map[primitive.ObjectID]error),
	}
}

func (m *MemStore) ForumByID(ctx context.Context, id primitive.ObjectID) (*domain.Forum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailForums[id]; ok {
		return nil, err
	}
	f, ok := m.forums[id]
	if !ok {
		return nil, nil
	}
	return cloneForum(f), nil
}

func (m *MemStore) ForumByName(ctx context.Context, name string) (*domain.Forum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = strings.TrimSpace(name)
	for _, f := range m.forums {
		if f.Name == name {
			return cloneForum(f), nil
		}
	}
	return nil, nil
}

func (m *MemStore) InsertForum(ctx context.Context, f *domain.Forum) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.forums {
		if existing.Name == f.Name {
			return forum.ErrDuplicateKey
		}
	}
	m.forums[f.ID] = cloneForum(f)
	return nil
}

func (m *MemStore) ReplaceForum(ctx context.Context, f *domain.Forum) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forums[f.ID] = cloneForum(f)
	return nil
}

func (m *MemStore) ListForums(ctx context.Context) ([]domain.Forum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Forum, 0, len(m.forums))
	for _, f := range m.forums {
		out = append(out, *cloneForum(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// RemoveForum drops a forum outright, simulating deletion out from under
// followers and posts.
func (m *MemStore) RemoveForum(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.forums, id)
}

func (m *MemStore) PostByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return clonePost(p), nil
}

func (m *MemStore) InsertPost(ctx context.Context, p *domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.postSeq[p.ID] = m.seq
	m.posts[p.ID] = clonePost(p)
	return nil
}

func (m *MemStore) ReplacePost(ctx context.Context, p *domain.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[p.ID] = clonePost(p)
	return nil
}

func (m *MemStore) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	delete(m.postSeq, id)
	return nil
}

func (m *MemStore) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(*domain.Post) bool { return true }, limit), nil
}

func (m *MemStore) ListForumPosts(ctx context.Context, forumID primitive.ObjectID, limit int) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(p *domain.Post) bool { return p.ForumID == forumID }, limit), nil
}

// sorted returns matching posts newest-first; insertion order breaks timestamp
// ties so rapid-fire test inserts stay deterministic.
func (m *MemStore) sorted(match func(*domain.Post) bool, limit int) []domain.Post {
	out := make([]domain.Post, 0)
	for _, p := range m.posts {
		if match(p) {
			out = append(out, *clonePost(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return m.postSeq[out[i].ID] > m.postSeq[out[j].ID]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *MemStore) UserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (m *MemStore) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (m *MemStore) InsertUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return forum.ErrDuplicateKey
		}
	}
	m.users[u.ID] = cloneUser(u)
	return nil
}

func (m *MemStore) ReplaceUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = cloneUser(u)
	return nil
}

func cloneForum(f *domain.Forum) *domain.Forum {
	cp := *f
	cp.Posts = append([]domain.PostRef(nil), f.Posts...)
	return &cp
}

func clonePost(p *domain.Post) *domain.Post {
	cp := *p
	cp.Likes = append([]domain.Like(nil), p.Likes...)
	cp.Comments = make([]domain.Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := c
		cc.Likes = append([]domain.Like(nil), c.Likes...)
		cp.Comments[i] = cc
	}
	return &cp
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	cp.Follows = append([]primitive.ObjectID(nil), u.Follows...)
	return &cp
}
