package forum

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/domain"
)

// Identity plumbing. The core only ever consumes an already-resolved caller;
// these exist so the HTTP layer can mint one.

func (s *Service) RegisterUser(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	u := &domain.User{
		ID:           primitive.NewObjectID(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Follows:      []primitive.ObjectID{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.InsertUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) User(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
