package forum_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
	"github.com/zanspiler/forums/internal/forum"
)

func seedPost(t *testing.T, svc *forum.Service, author forum.Author) *domain.Post {
	t.Helper()
	ctx := context.Background()
	f, err := svc.CreateForum(ctx, "Chess", author.ID)
	require.NoError(t, err)
	p, err := svc.CreatePost(ctx, f.ID, author, "Opening theory", "e4 is strong")
	require.NoError(t, err)
	return p
}

func TestLikePost_OncePerUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	u := registerUser(t, svc, "u")
	p := seedPost(t, svc, alice)

	likes, err := svc.LikePost(ctx, p.ID, u.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.Equal(t, u.ID, likes[0].UserID)

	_, err = svc.LikePost(ctx, p.ID, u.ID)
	require.ErrorIs(t, err, forum.ErrAlreadyLiked)

	got, err := svc.Post(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1, "rejected like must not change the sequence")
}

func TestUnlikePost_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	u := registerUser(t, svc, "u")
	p := seedPost(t, svc, alice)

	_, err := svc.UnlikePost(ctx, p.ID, u.ID)
	require.ErrorIs(t, err, forum.ErrNotYetLiked)

	_, err = svc.LikePost(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.LikePost(ctx, p.ID, u.ID)
	require.NoError(t, err)

	likes, err := svc.UnlikePost(ctx, p.ID, u.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.Equal(t, alice.ID, likes[0].UserID, "only the caller's like is removed")
}

func TestLikePost_UnknownPost(t *testing.T) {
	svc, _ := newService(t)
	u := registerUser(t, svc, "u")

	_, err := svc.LikePost(context.Background(), primitive.NewObjectID(), u.ID)
	require.ErrorIs(t, err, forum.ErrPostNotFound)
}

func TestAddComment_PrependsWithSnapshot(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	p := seedPost(t, svc, alice)

	first, err := svc.AddComment(ctx, p.ID, bob, "Agreed")
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, "bob", first[0].AuthorName)
	require.Empty(t, first[0].Likes)

	second, err := svc.AddComment(ctx, p.ID, alice, "Thanks")
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, "Thanks", second[0].Text, "newest comment leads")
	require.Equal(t, "Agreed", second[1].Text)
}

func TestDeleteComment_TargetsTheLocatedComment(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	p := seedPost(t, svc, alice)

	// bob authors two comments on the same post
	_, err := svc.AddComment(ctx, p.ID, bob, "first")
	require.NoError(t, err)
	comments, err := svc.AddComment(ctx, p.ID, bob, "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// deleting the older one by id must remove exactly it, not whichever of
	// bob's comments a scan finds first
	older := comments[1]
	require.Equal(t, "first", older.Text)

	left, err := svc.DeleteComment(ctx, p.ID, older.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "second", left[0].Text)
}

func TestDeleteComment_Authorization(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	p := seedPost(t, svc, alice)

	comments, err := svc.AddComment(ctx, p.ID, bob, "mine")
	require.NoError(t, err)

	_, err = svc.DeleteComment(ctx, p.ID, comments[0].ID, alice.ID)
	require.ErrorIs(t, err, forum.ErrNotOwner)

	_, err = svc.DeleteComment(ctx, p.ID, primitive.NewObjectID(), bob.ID)
	require.ErrorIs(t, err, forum.ErrCommentNotFound)

	got, err := svc.Post(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
}

func TestCommentLikes_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	v := registerUser(t, svc, "v")
	p := seedPost(t, svc, alice)

	comments, err := svc.AddComment(ctx, p.ID, alice, "Agreed")
	require.NoError(t, err)
	commentID := comments[0].ID

	likes, err := svc.LikeComment(ctx, p.ID, commentID, v.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	require.Equal(t, v.ID, likes[0].UserID)

	_, err = svc.LikeComment(ctx, p.ID, commentID, v.ID)
	require.ErrorIs(t, err, forum.ErrAlreadyLiked)

	likes, err = svc.UnlikeComment(ctx, p.ID, commentID, v.ID)
	require.NoError(t, err)
	require.Empty(t, likes)

	_, err = svc.UnlikeComment(ctx, p.ID, commentID, v.ID)
	require.ErrorIs(t, err, forum.ErrNotYetLiked)

	_, err = svc.LikeComment(ctx, p.ID, primitive.NewObjectID(), v.ID)
	require.ErrorIs(t, err, forum.ErrCommentNotFound)
}
