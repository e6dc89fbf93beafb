package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zanspiler/forums/internal/domain"
)

func (s *Store) PostByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var p domain.Post
	err := s.colPosts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (s *Store) InsertPost(ctx context.Context, p *domain.Post) error {
	_, err := s.colPosts.InsertOne(ctx, p)
	return err
}

func (s *Store) ReplacePost(ctx context.Context, p *domain.Post) error {
	_, err := s.colPosts.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return err
}

func (s *Store) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.colPosts.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Store) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	return s.findPosts(ctx, bson.M{}, limit)
}

func (s *Store) ListForumPosts(ctx context.Context, forumID primitive.ObjectID, limit int) ([]domain.Post, error) {
	return s.findPosts(ctx, bson.M{"forum_id": forumID}, limit)
}

func (s *Store) findPosts(ctx context.Context, filter bson.M, limit int) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cur, err := s.colPosts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Post
	for cur.Next(ctx) {
		var p domain.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
