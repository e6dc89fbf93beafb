package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRef is a weak reference kept on a forum: it records that a post belongs
// to the forum but owns nothing. The post itself may already be gone, in which
// case readers skip the ref.
type PostRef struct {
	PostID primitive.ObjectID `bson:"post_id" json:"post_id"`
}

type Forum struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"` // unique across forums
	Posts     []PostRef          `bson:"posts" json:"posts"`
	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
