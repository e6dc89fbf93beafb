package forum_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/forum"
)

func TestFollowingFeed_CapsPerForumAndKeepsFollowOrder(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	reader := registerUser(t, svc, "reader")

	f1, err := svc.CreateForum(ctx, "F1", alice.ID)
	require.NoError(t, err)
	f2, err := svc.CreateForum(ctx, "F2", alice.ID)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := svc.CreatePost(ctx, f1.ID, alice, fmt.Sprintf("f1-%d", i), "x")
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.CreatePost(ctx, f2.ID, alice, fmt.Sprintf("f2-%d", i), "x")
		require.NoError(t, err)
	}

	require.NoError(t, svc.FollowForum(ctx, reader.ID, f1.ID))
	require.NoError(t, svc.FollowForum(ctx, reader.ID, f2.ID))

	feed, err := svc.FollowingFeed(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, feed, 7, "5 from F1, 2 from F2")

	for i, p := range feed[:5] {
		require.Equal(t, f1.ID, p.ForumID, "post %d should come from F1", i)
	}
	for i, p := range feed[5:] {
		require.Equal(t, f2.ID, p.ForumID, "post %d should come from F2", i)
	}
	// within a forum the posts are newest-first
	require.Equal(t, "f1-9", feed[0].Title)
	require.Equal(t, "f2-1", feed[5].Title)
}

func TestFollowingFeed_SwallowsFailedBranches(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	reader := registerUser(t, svc, "reader")

	gone, err := svc.CreateForum(ctx, "gone", alice.ID)
	require.NoError(t, err)
	flaky, err := svc.CreateForum(ctx, "flaky", alice.ID)
	require.NoError(t, err)
	ok, err := svc.CreateForum(ctx, "ok", alice.ID)
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, ok.ID, alice, "still here", "x")
	require.NoError(t, err)

	require.NoError(t, svc.FollowForum(ctx, reader.ID, gone.ID))
	require.NoError(t, svc.FollowForum(ctx, reader.ID, flaky.ID))
	require.NoError(t, svc.FollowForum(ctx, reader.ID, ok.ID))

	store.RemoveForum(gone.ID)
	store.FailForums[flaky.ID] = errors.New("connection reset")

	feed, err := svc.FollowingFeed(ctx, reader.ID)
	require.NoError(t, err, "a single branch failure must not fail the request")
	require.Len(t, feed, 1)
	require.Equal(t, "still here", feed[0].Title)
}

func TestFollowingFeed_NoFollows(t *testing.T) {
	svc, _ := newService(t)
	reader := registerUser(t, svc, "reader")

	feed, err := svc.FollowingFeed(context.Background(), reader.ID)
	require.NoError(t, err)
	require.Empty(t, feed)

	_, err = svc.FollowingFeed(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, forum.ErrUserNotFound)
}

func TestFollowForum_Guards(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	reader := registerUser(t, svc, "reader")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)

	err = svc.FollowForum(ctx, reader.ID, primitive.NewObjectID())
	require.ErrorIs(t, err, forum.ErrForumNotFound)

	require.NoError(t, svc.FollowForum(ctx, reader.ID, f.ID))
	err = svc.FollowForum(ctx, reader.ID, f.ID)
	require.ErrorIs(t, err, forum.ErrAlreadyFollowed)

	require.NoError(t, svc.UnfollowForum(ctx, reader.ID, f.ID))
	err = svc.UnfollowForum(ctx, reader.ID, f.ID)
	require.ErrorIs(t, err, forum.ErrNotFollowed)
}
