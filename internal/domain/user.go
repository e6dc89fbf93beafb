package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"` // unique
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password_hash" json:"-"`
	Follows      []primitive.ObjectID `bson:"follows" json:"follows"` // followed forum ids
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
}
