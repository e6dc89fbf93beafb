package forum

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
)

// Store is the persistence contract the service runs against. Lookups return
// (nil, nil) when the document is absent. Every call touches a single document
// and is atomic on its own; there is no multi-document transaction, so a
// sequence of two writes can be interrupted between them. The service is
// written to tolerate that.
type Store interface {
	ForumByID(ctx context.Context, id primitive.ObjectID) (*domain.Forum, error)
	ForumByName(ctx context.Context, name string) (*domain.Forum, error)
	InsertForum(ctx context.Context, f *domain.Forum) error
	ReplaceForum(ctx context.Context, f *domain.Forum) error
	ListForums(ctx context.Context) ([]domain.Forum, error)

	PostByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	InsertPost(ctx context.Context, p *domain.Post) error
	ReplacePost(ctx context.Context, p *domain.Post) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error
	// ListPosts returns posts ordered by created_at descending. limit <= 0
	// means no limit. The post collection has no intrinsic order, so the
	// ordering is part of the contract.
	ListPosts(ctx context.Context, limit int) ([]domain.Post, error)
	ListForumPosts(ctx context.Context, forumID primitive.ObjectID, limit int) ([]domain.Post, error)

	UserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	InsertUser(ctx context.Context, u *domain.User) error
	ReplaceUser(ctx context.Context, u *domain.User) error
}
