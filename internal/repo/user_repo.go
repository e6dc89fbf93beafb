package repo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zanspiler/forums/internal/domain"
	"github.com/zanspiler/forums/internal/forum"
)

func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.colUsers.FindOne(ctx, bson.M{"username": strings.TrimSpace(username)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (s *Store) InsertUser(ctx context.Context, u *domain.User) error {
	_, err := s.colUsers.InsertOne(ctx, u)
	if IsDup(err) {
		return forum.ErrDuplicateKey
	}
	return err
}

func (s *Store) ReplaceUser(ctx context.Context, u *domain.User) error {
	_, err := s.colUsers.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	return err
}
