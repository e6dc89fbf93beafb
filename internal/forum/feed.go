package forum

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
)

// feedPostsPerForum caps how many recent posts each followed forum contributes.
const feedPostsPerForum = 5

// FollowingFeed computes the feed at read time: one branch per followed forum,
// run concurrently, each resolving the forum and fetching its most recent
// posts. A branch that fails — the forum was deleted, or its fetch errored —
// contributes nothing and does not fail the request. Results keep the user's
// follow order: posts are grouped per forum, not globally time-merged.
func (s *Service) FollowingFeed(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	perForum := make([][]domain.Post, len(u.Follows))
	var wg sync.WaitGroup
	for i, forumID := range u.Follows {
		wg.Add(1)
		go func(i int, forumID primitive.ObjectID) {
			defer wg.Done()
			f, err := s.store.ForumByID(ctx, forumID)
			if err != nil || f == nil {
				return
			}
			posts, err := s.store.ListForumPosts(ctx, f.ID, feedPostsPerForum)
			if err != nil {
				return
			}
			perForum[i] = posts
		}(i, forumID)
	}
	wg.Wait()

	feed := make([]domain.Post, 0)
	for _, posts := range perForum {
		feed = append(feed, posts...)
	}
	return feed, nil
}

// FollowForum adds the forum to the user's follow list, guarded the same way
// likes are: a duplicate follow is rejected, not merged.
func (s *Service) FollowForum(ctx context.Context, userID, forumID primitive.ObjectID) error {
	f, err := s.store.ForumByID(ctx, forumID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrForumNotFound
	}
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	for _, id := range u.Follows {
		if id == forumID {
			return ErrAlreadyFollowed
		}
	}
	u.Follows = append(u.Follows, forumID)
	return s.store.ReplaceUser(ctx, u)
}

func (s *Service) UnfollowForum(ctx context.Context, userID, forumID primitive.ObjectID) error {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	idx := -1
	for i, id := range u.Follows {
		if id == forumID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFollowed
	}
	u.Follows = append(u.Follows[:idx], u.Follows[idx+1:]...)
	return s.store.ReplaceUser(ctx, u)
}
