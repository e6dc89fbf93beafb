package forum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/forum"
	"github.com/zanspiler/forums/internal/forum/forumtest"
)

func newService(t *testing.T) (*forum.Service, *forumtest.MemStore) {
	t.Helper()
	store := forumtest.NewMemStore()
	return forum.NewService(store), store
}

func registerUser(t *testing.T, svc *forum.Service, username string) forum.Author {
	t.Helper()
	u, err := svc.RegisterUser(context.Background(), username, username+"@example.com", "x")
	require.NoError(t, err)
	return forum.Author{ID: u.ID, Name: u.Username}
}

func TestCreateForum_DuplicateName(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	creator := registerUser(t, svc, "alice")

	_, err := svc.CreateForum(ctx, "Chess", creator.ID)
	require.NoError(t, err)

	_, err = svc.CreateForum(ctx, "Chess", creator.ID)
	require.ErrorIs(t, err, forum.ErrForumExists)
}

func TestCreatePost_AppearsAtFrontOfForumList(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)

	first, err := svc.CreatePost(ctx, f.ID, alice, "Opening theory", "e4 is strong")
	require.NoError(t, err)
	require.Equal(t, "Chess", first.ForumName)
	require.Equal(t, "alice", first.AuthorName)

	second, err := svc.CreatePost(ctx, f.ID, alice, "Endgames", "rook endings")
	require.NoError(t, err)

	posts, err := svc.ForumPosts(ctx, "Chess")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, second.ID, posts[0].ID, "newest post must lead the forum list")
	require.Equal(t, first.ID, posts[1].ID)

	// the new post appears exactly once
	seen := 0
	for _, p := range posts {
		if p.ID == second.ID {
			seen++
		}
	}
	require.Equal(t, 1, seen)
}

func TestCreatePost_UnknownForum(t *testing.T) {
	svc, _ := newService(t)
	alice := registerUser(t, svc, "alice")

	_, err := svc.CreatePost(context.Background(), primitive.NewObjectID(), alice, "t", "x")
	require.ErrorIs(t, err, forum.ErrForumNotFound)
}

func TestDeletePost_NotOwnerLeavesEverythingIntact(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)
	p, err := svc.CreatePost(ctx, f.ID, alice, "Opening theory", "e4 is strong")
	require.NoError(t, err)

	err = svc.DeletePost(ctx, p.ID, bob.ID)
	require.ErrorIs(t, err, forum.ErrNotOwner)

	got, err := svc.Post(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	posts, err := svc.ForumPosts(ctx, "Chess")
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestDeletePost_RemovesPostAndForumRef(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)
	p, err := svc.CreatePost(ctx, f.ID, alice, "Opening theory", "e4 is strong")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, p.ID, alice.ID))

	_, err = svc.Post(ctx, p.ID)
	require.ErrorIs(t, err, forum.ErrPostNotFound)

	posts, err := svc.ForumPosts(ctx, "Chess")
	require.NoError(t, err)
	require.Empty(t, posts)

	err = svc.DeletePost(ctx, p.ID, alice.ID)
	require.ErrorIs(t, err, forum.ErrPostNotFound)
}

func TestDeletePost_ForumLookupFailureSurfaces(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)
	p, err := svc.CreatePost(ctx, f.ID, alice, "Opening theory", "e4 is strong")
	require.NoError(t, err)

	store.FailForums[f.ID] = errors.New("store unavailable")

	err = svc.DeletePost(ctx, p.ID, alice.ID)
	require.Error(t, err)

	// the first write already went through: the post is gone, the forum keeps
	// a dangling ref until a reader skips it
	_, err = svc.Post(ctx, p.ID)
	require.ErrorIs(t, err, forum.ErrPostNotFound)
}

func TestDeletePost_VanishedForumIsBenign(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)
	p, err := svc.CreatePost(ctx, f.ID, alice, "Opening theory", "e4 is strong")
	require.NoError(t, err)

	store.RemoveForum(f.ID)

	require.NoError(t, svc.DeletePost(ctx, p.ID, alice.ID))
	_, err = svc.Post(ctx, p.ID)
	require.ErrorIs(t, err, forum.ErrPostNotFound)
}

func TestForumPosts_SkipsDanglingRefs(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)
	p1, err := svc.CreatePost(ctx, f.ID, alice, "one", "x")
	require.NoError(t, err)
	p2, err := svc.CreatePost(ctx, f.ID, alice, "two", "y")
	require.NoError(t, err)

	// delete the post document directly, leaving the forum's ref dangling —
	// the partial-failure window of the delete protocol
	require.NoError(t, store.DeletePost(ctx, p2.ID))

	posts, err := svc.ForumPosts(ctx, "Chess")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, p1.ID, posts[0].ID)
}

func TestForumPosts_UnknownName(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.ForumPosts(context.Background(), "nope")
	require.ErrorIs(t, err, forum.ErrForumNotFound)
}

func TestPosts_NewestFirstWithLimit(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	f, err := svc.CreateForum(ctx, "Chess", alice.ID)
	require.NoError(t, err)

	ids := make([]primitive.ObjectID, 0, 5)
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		p, err := svc.CreatePost(ctx, f.ID, alice, title, "x")
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	all, err := svc.Posts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, ids[4], all[0].ID)
	require.Equal(t, ids[0], all[4].ID)

	top, err := svc.Posts(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, ids[4], top[0].ID)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "a@example.com", "x")
	require.NoError(t, err)
	_, err = svc.RegisterUser(ctx, "alice", "b@example.com", "x")
	require.ErrorIs(t, err, forum.ErrUserExists)
}
