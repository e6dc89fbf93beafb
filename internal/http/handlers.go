package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zanspiler/forums/internal/forum"
	"github.com/zanspiler/forums/internal/queue"
)

type Handler struct {
	Svc       *forum.Service
	JWTSecret string
	AccessTTL time.Duration
	Events    queue.Publisher
}

func NewHandler(svc *forum.Service, jwtSecret string, accessTTLMin int, pub queue.Publisher) *Handler {
	return &Handler{
		Svc:       svc,
		JWTSecret: jwtSecret,
		AccessTTL: time.Duration(accessTTLMin) * time.Minute,
		Events:    pub,
	}
}

// caller pulls the authenticated identity set by AuthJWT out of the context.
func caller(c *gin.Context) (forum.Author, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(ctxUID))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid uid"})
		return forum.Author{}, false
	}
	return forum.Author{ID: id, Name: c.GetString(ctxUsername)}, true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}

// fail maps core sentinels onto HTTP statuses. Anything unrecognized is a
// store failure and surfaces as 503.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, forum.ErrForumNotFound),
		errors.Is(err, forum.ErrPostNotFound),
		errors.Is(err, forum.ErrCommentNotFound),
		errors.Is(err, forum.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, forum.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, forum.ErrAlreadyLiked),
		errors.Is(err, forum.ErrNotYetLiked),
		errors.Is(err, forum.ErrAlreadyFollowed),
		errors.Is(err, forum.ErrNotFollowed),
		errors.Is(err, forum.ErrForumExists),
		errors.Is(err, forum.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
