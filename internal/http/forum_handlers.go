package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zanspiler/forums/internal/domain"
)

type createForumReq struct {
	Name string `json:"name"`
}

// CreateForum godoc
// @Summary Create forum
// @Tags forums
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body createForumReq true "forum name"
// @Success 201 {object} domain.Forum
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/forums [post]
func (h *Handler) CreateForum(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	var in createForumReq
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	f, err := h.Svc.CreateForum(c.Request.Context(), in.Name, au.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// ListForums godoc
// @Summary List forums
// @Tags forums
// @Produce json
// @Success 200 {array} domain.Forum
// @Router /api/forums [get]
func (h *Handler) ListForums(c *gin.Context) {
	fs, err := h.Svc.Forums(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if fs == nil {
		fs = []domain.Forum{}
	}
	c.JSON(http.StatusOK, fs)
}

// ForumPosts godoc
// @Summary Posts of a forum, by forum name, newest first
// @Tags forums
// @Param name path string true "forum name"
// @Produce json
// @Success 200 {array} domain.Post
// @Failure 404 {object} map[string]string
// @Router /api/f/{name}/posts [get]
func (h *Handler) ForumPosts(c *gin.Context) {
	posts, err := h.Svc.ForumPosts(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// FollowForum godoc
// @Summary Follow a forum
// @Tags forums
// @Security BearerAuth
// @Param id path string true "forum id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/forums/{id}/follow [put]
func (h *Handler) FollowForum(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	forumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.FollowForum(c.Request.Context(), au.ID, forumID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnfollowForum godoc
// @Summary Unfollow a forum
// @Tags forums
// @Security BearerAuth
// @Param id path string true "forum id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/forums/{id}/follow [delete]
func (h *Handler) UnfollowForum(c *gin.Context) {
	au, ok := caller(c)
	if !ok {
		return
	}
	forumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.UnfollowForum(c.Request.Context(), au.ID, forumID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
