package forum

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
)

// Service holds the forum core: keeping a forum's post-reference list and its
// posts' forum references in agreement, the embedded like/comment collections,
// and the following feed. Each operation is a plain sequence of store calls;
// nothing is cached between requests.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Author is the already-authenticated caller identity, resolved by the HTTP
// layer before any core operation runs.
type Author struct {
	ID   primitive.ObjectID
	Name string
}

func (s *Service) CreateForum(ctx context.Context, name string, creator primitive.ObjectID) (*domain.Forum, error) {
	f := &domain.Forum{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(name),
		Posts:     []domain.PostRef{},
		CreatedBy: creator,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.InsertForum(ctx, f); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, ErrForumExists
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Forums(ctx context.Context) ([]domain.Forum, error) {
	return s.store.ListForums(ctx)
}

// CreatePost inserts the post first and only then prepends a weak reference to
// it on the forum. The two writes are separate documents; a crash in between
// leaves an orphan post that the forum's list does not reach. No rollback is
// attempted — readers of the list tolerate refs that resolve to nothing, and
// an orphan post is still reachable through the flat post queries.
func (s *Service) CreatePost(ctx context.Context, forumID primitive.ObjectID, author Author, title, text string) (*domain.Post, error) {
	f, err := s.store.ForumByID(ctx, forumID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrForumNotFound
	}

	p := &domain.Post{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Text:       text,
		ForumID:    f.ID,
		ForumName:  f.Name, // snapshot; stays stale if the forum is renamed
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now().UTC(),
		Likes:      []domain.Like{},
		Comments:   []domain.Comment{},
	}
	if err := s.store.InsertPost(ctx, p); err != nil {
		return nil, err
	}

	f.Posts = append([]domain.PostRef{{PostID: p.ID}}, f.Posts...)
	if err := s.store.ReplaceForum(ctx, f); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePost removes the post document, then drops its reference from the
// owning forum. A crash between the two writes leaves a dangling ref on the
// forum; readers skip refs that no longer resolve. A forum that has itself
// vanished is treated the same way and is not an error.
func (s *Service) DeletePost(ctx context.Context, postID, caller primitive.ObjectID) error {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.AuthorID != caller {
		return ErrNotOwner
	}

	if err := s.store.DeletePost(ctx, p.ID); err != nil {
		return err
	}

	f, err := s.store.ForumByID(ctx, p.ForumID)
	if err != nil {
		return err
	}
	if f == nil {
		return nil // forum vanished; nothing left to point at the post
	}
	refs := f.Posts[:0]
	for _, r := range f.Posts {
		if r.PostID != p.ID {
			refs = append(refs, r)
		}
	}
	f.Posts = refs
	return s.store.ReplaceForum(ctx, f)
}

func (s *Service) Post(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	p, err := s.store.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Posts lists posts newest-first. limit <= 0 returns everything.
func (s *Service) Posts(ctx context.Context, limit int) ([]domain.Post, error) {
	return s.store.ListPosts(ctx, limit)
}

// ForumPosts resolves a forum by name and dereferences its post list in stored
// order (newest first by construction). Refs whose post has been deleted out
// from under the forum resolve to nothing and are skipped silently.
func (s *Service) ForumPosts(ctx context.Context, name string) ([]domain.Post, error) {
	f, err := s.store.ForumByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrForumNotFound
	}
	out := make([]domain.Post, 0, len(f.Posts))
	for _, r := range f.Posts {
		p, err := s.store.PostByID(ctx, r.PostID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue // dangling weak ref
		}
		out = append(out, *p)
	}
	return out, nil
}
