package repo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zanspiler/forums/internal/domain"
	"github.com/zanspiler/forums/internal/forum"
)

func normalizeName(s string) string {
	return strings.TrimSpace(s)
}

func (s *Store) ForumByID(ctx context.Context, id primitive.ObjectID) (*domain.Forum, error) {
	var f domain.Forum
	err := s.colForums.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

func (s *Store) ForumByName(ctx context.Context, name string) (*domain.Forum, error) {
	var f domain.Forum
	err := s.colForums.FindOne(ctx, bson.M{"name": normalizeName(name)}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &f, err
}

func (s *Store) InsertForum(ctx context.Context, f *domain.Forum) error {
	f.Name = normalizeName(f.Name)
	_, err := s.colForums.InsertOne(ctx, f)
	if IsDup(err) {
		return forum.ErrDuplicateKey
	}
	return err
}

// ReplaceForum rewrites the whole document. The replace itself is atomic;
// agreement with the post collection is the service's problem.
func (s *Store) ReplaceForum(ctx context.Context, f *domain.Forum) error {
	_, err := s.colForums.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	return err
}

func (s *Store) ListForums(ctx context.Context) ([]domain.Forum, error) {
	cur, err := s.colForums.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Forum
	for cur.Next(ctx) {
		var f domain.Forum
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, cur.Err()
}
