package forum

import "errors"

var (
	ErrForumNotFound   = errors.New("forum not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrNotOwner = errors.New("caller does not own the resource")

	ErrAlreadyLiked    = errors.New("already liked")
	ErrNotYetLiked     = errors.New("not yet liked")
	ErrAlreadyFollowed = errors.New("forum already followed")
	ErrNotFollowed     = errors.New("forum not followed")

	ErrForumExists = errors.New("forum name already taken")
	ErrUserExists  = errors.New("username already taken")
)

// ErrDuplicateKey is returned by Store implementations when an insert hits a
// unique index. The service maps it to the entity-specific sentinel.
var ErrDuplicateKey = errors.New("duplicate key")
