package http

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/zanspiler/forums/internal/domain"
	"github.com/zanspiler/forums/internal/metrics"
	"github.com/zanspiler/forums/internal/queue"
)

const (
	maxTitleLen = 200
	maxTextLen  = 42000
)

type createPostReq struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// CreatePost godoc
// @Summary Create post in a forum
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "forum id"
// @Param payload body createPostReq true "title, text"
// @Success 201 {object} domain.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/forums/{id}/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	forumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in createPostReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	title := strings.TrimSpace(in.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required, at most 200 chars"})
		return
	}
	if strings.TrimSpace(in.Text) == "" || utf8.RuneCountInString(in.Text) > maxTextLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required, at most 42000 chars"})
		return
	}

	p, err := h.Svc.CreatePost(c.Request.Context(), forumID, au, title, in.Text)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.PostsCreated.Inc()
	_ = h.Events.Publish(c.Request.Context(), queue.KeyPostCreated,
		queue.PostCreated{
			PostID:    p.ID.Hex(),
			ForumID:   p.ForumID.Hex(),
			ForumName: p.ForumName,
			AuthorID:  p.AuthorID.Hex(),
		}, c.GetString(ctxReqID))

	c.JSON(http.StatusCreated, p)
}

// ListPosts godoc
// @Summary List posts, newest first
// @Tags posts
// @Param limit query int false "cap the result, e.g. 30 for the recent listing"
// @Produce json
// @Success 200 {array} domain.Post
// @Router /api/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	posts, err := h.Svc.Posts(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Get post by id
// @Tags posts
// @Param id path string true "post id"
// @Produce json
// @Success 200 {object} domain.Post
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Post(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePost godoc
// @Summary Delete own post
// @Tags posts
// @Security BearerAuth
// @Param id path string true "post id"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeletePost(c.Request.Context(), id, au.ID); err != nil {
		fail(c, err)
		return
	}
	metrics.PostsDeleted.Inc()
	_ = h.Events.Publish(c.Request.Context(), queue.KeyPostDeleted,
		queue.PostDeleted{PostID: id.Hex(), AuthorID: au.ID.Hex()},
		c.GetString(ctxReqID))

	c.Status(http.StatusNoContent)
}

// Feed godoc
// @Summary Following feed: recent posts of followed forums
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Post
// @Router /api/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	posts, err := h.Svc.FollowingFeed(c.Request.Context(), au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
