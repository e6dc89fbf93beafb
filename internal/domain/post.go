package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like carries the liking user only. At most one like per user per target.
type Like struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
}

type Comment struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Text       string             `bson:"text" json:"text"`
	AuthorID   primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	Likes      []Like             `bson:"likes" json:"likes"`
}

// Post owns its likes and comments; they live and die with the document.
// ForumName and AuthorName are snapshots taken at creation time and are not
// updated if the forum or user is later renamed.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Text       string             `bson:"text" json:"text"`
	ForumID    primitive.ObjectID `bson:"forum_id" json:"forum_id"`
	ForumName  string             `bson:"forum_name" json:"forum_name"`
	AuthorID   primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	Likes      []Like             `bson:"likes" json:"likes"`
	Comments   []Comment          `bson:"comments" json:"comments"`
}
