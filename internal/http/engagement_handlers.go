package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/zanspiler/forums/internal/metrics"
	"github.com/zanspiler/forums/internal/queue"
)

const maxCommentLen = 1000

// LikePost godoc
// @Summary Like a post
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "post id"
// @Produce json
// @Success 200 {array} domain.Like
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/posts/{id}/like [put]
func (h *Handler) LikePost(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	likes, err := h.Svc.LikePost(c.Request.Context(), id, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.LikeToggles.WithLabelValues("post", "like").Inc()
	c.JSON(http.StatusOK, likes)
}

// UnlikePost godoc
// @Summary Remove own like from a post
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "post id"
// @Produce json
// @Success 200 {array} domain.Like
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/posts/{id}/like [delete]
func (h *Handler) UnlikePost(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	likes, err := h.Svc.UnlikePost(c.Request.Context(), id, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.LikeToggles.WithLabelValues("post", "unlike").Inc()
	c.JSON(http.StatusOK, likes)
}

type addCommentReq struct {
	Text string `json:"text"`
}

// AddComment godoc
// @Summary Comment on a post
// @Tags engagement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "post id"
// @Param payload body addCommentReq true "text"
// @Success 201 {array} domain.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in addCommentReq
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Text) == "" || utf8.RuneCountInString(in.Text) > maxCommentLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required, at most 1000 chars"})
		return
	}
	comments, err := h.Svc.AddComment(c.Request.Context(), id, au, in.Text)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.CommentsCreated.Inc()
	_ = h.Events.Publish(c.Request.Context(), queue.KeyCommentCreated,
		queue.CommentCreated{
			PostID:    id.Hex(),
			CommentID: comments[0].ID.Hex(),
			AuthorID:  au.ID.Hex(),
		}, c.GetString(ctxReqID))

	c.JSON(http.StatusCreated, comments)
}

// DeleteComment godoc
// @Summary Delete own comment from a post
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "post id"
// @Param commentId path string true "comment id"
// @Produce json
// @Success 200 {array} domain.Comment
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/comments/{commentId} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	comments, err := h.Svc.DeleteComment(c.Request.Context(), postID, commentID, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// LikeComment godoc
// @Summary Like a comment
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "post id"
// @Param commentId path string true "comment id"
// @Produce json
// @Success 200 {array} domain.Like
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/posts/{id}/comments/{commentId}/like [put]
func (h *Handler) LikeComment(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	likes, err := h.Svc.LikeComment(c.Request.Context(), postID, commentID, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.LikeToggles.WithLabelValues("comment", "like").Inc()
	c.JSON(http.StatusOK, likes)
}

// UnlikeComment godoc
// @Summary Remove own like from a comment
// @Tags engagement
// @Security BearerAuth
// @Param id path string true "post id"
// @Param commentId path string true "comment id"
// @Produce json
// @Success 200 {array} domain.Like
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/posts/{id}/comments/{commentId}/like [delete]
func (h *Handler) UnlikeComment(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	likes, err := h.Svc.UnlikeComment(c.Request.Context(), postID, commentID, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.LikeToggles.WithLabelValues("comment", "unlike").Inc()
	c.JSON(http.StatusOK, likes)
}
