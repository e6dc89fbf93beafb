package forum

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
)

// The engagement operations all follow the same read-modify-replace cycle on a
// single post document. Two concurrent toggles on the same post can both pass
// the guard before either replace lands; the last replace wins. See the
// optimistic-versioning note in DESIGN.md.

func hasLike(likes []domain.Like, user primitive.ObjectID) bool {
	for _, l := range likes {
		if l.UserID == user {
			return true
		}
	}
	return false
}

// removeLike drops the first entry whose user matches, scanning front to back.
func removeLike(likes []domain.Like, user primitive.ObjectID) []domain.Like {
	for i, l := range likes {
		if l.UserID == user {
			return append(likes[:i], likes[i+1:]...)
		}
	}
	return likes
}

// LikePost records a like from user on the post. A second like from the same
// user is rejected, never merged.
func (s *Service) LikePost(ctx context.Context, postID, user primitive.ObjectID) ([]domain.Like, error) {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	if hasLike(p.Likes, user) {
		return nil, ErrAlreadyLiked
	}
	p.Likes = append([]domain.Like{{UserID: user}}, p.Likes...)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

func (s *Service) UnlikePost(ctx context.Context, postID, user primitive.ObjectID) ([]domain.Like, error) {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	if !hasLike(p.Likes, user) {
		return nil, ErrNotYetLiked
	}
	p.Likes = removeLike(p.Likes, user)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment prepends a comment to the post. Any authenticated user may
// comment; there is no per-forum membership.
func (s *Service) AddComment(ctx context.Context, postID primitive.ObjectID, author Author, text string) ([]domain.Comment, error) {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	c := domain.Comment{
		ID:         primitive.NewObjectID(),
		Text:       text,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  time.Now().UTC(),
		Likes:      []domain.Like{},
	}
	p.Comments = append([]domain.Comment{c}, p.Comments...)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// DeleteComment removes exactly the comment located by id. Removal is keyed on
// the located index, not on a rescan by author, so a caller with several
// comments on one post always deletes the one they pointed at.
func (s *Service) DeleteComment(ctx context.Context, postID, commentID, caller primitive.ObjectID) ([]domain.Comment, error) {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if p.Comments[idx].AuthorID != caller {
		return nil, ErrNotOwner
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// LikeComment applies the post-like semantics to a comment's own like list.
// Comments have no storage of their own, so the containing post is replaced.
func (s *Service) LikeComment(ctx context.Context, postID, commentID, user primitive.ObjectID) ([]domain.Like, error) {
	p, c, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if hasLike(c.Likes, user) {
		return nil, ErrAlreadyLiked
	}
	c.Likes = append([]domain.Like{{UserID: user}}, c.Likes...)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return c.Likes, nil
}

func (s *Service) UnlikeComment(ctx context.Context, postID, commentID, user primitive.ObjectID) ([]domain.Like, error) {
	p, c, err := s.findComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !hasLike(c.Likes, user) {
		return nil, ErrNotYetLiked
	}
	c.Likes = removeLike(c.Likes, user)
	if err := s.store.ReplacePost(ctx, p); err != nil {
		return nil, err
	}
	return c.Likes, nil
}

// findComment returns the post and a pointer into its comment slice, so that
// mutations through the pointer land in the document that gets replaced.
func (s *Service) findComment(ctx context.Context, postID, commentID primitive.ObjectID) (*domain.Post, *domain.Comment, error) {
	p, err := s.store.PostByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrPostNotFound
	}
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return p, &p.Comments[i], nil
		}
	}
	return nil, nil, ErrCommentNotFound
}
