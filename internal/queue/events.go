package queue

// Routing keys on the forum.events exchange.
const (
	KeyPostCreated    = "post.created"
	KeyPostDeleted    = "post.deleted"
	KeyCommentCreated = "comment.created"
)

type PostCreated struct {
	PostID    string `json:"post_id"`
	ForumID   string `json:"forum_id"`
	ForumName string `json:"forum_name"`
	AuthorID  string `json:"author_id"`
}

type PostDeleted struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
}

type CommentCreated struct {
	PostID    string `json:"post_id"`
	CommentID string `json:"comment_id"`
	AuthorID  string `json:"author_id"`
}
