package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler, rl Limiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := AuthJWT(h.JWTSecret)
	write := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		if rl == nil {
			return handlers
		}
		return append([]gin.HandlerFunc{RateLimit(rl)}, handlers...)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/register", write(h.Register)...)
		api.POST("/auth/login", write(h.Login)...)
		api.GET("/auth/me", auth, h.Me)

		api.POST("/forums", write(auth, h.CreateForum)...)
		api.GET("/forums", h.ListForums)
		api.PUT("/forums/:id/follow", auth, h.FollowForum)
		api.DELETE("/forums/:id/follow", auth, h.UnfollowForum)
		api.POST("/forums/:id/posts", write(auth, h.CreatePost)...)

		// posts by forum name; kept apart from /forums/:id to keep the
		// name-keyed lookup its own route tree
		api.GET("/f/:name/posts", h.ForumPosts)

		api.GET("/posts", h.ListPosts)
		api.GET("/posts/:id", h.GetPost)
		api.DELETE("/posts/:id", auth, h.DeletePost)

		api.PUT("/posts/:id/like", auth, h.LikePost)
		api.DELETE("/posts/:id/like", auth, h.UnlikePost)
		api.POST("/posts/:id/comments", write(auth, h.AddComment)...)
		api.DELETE("/posts/:id/comments/:commentId", auth, h.DeleteComment)
		api.PUT("/posts/:id/comments/:commentId/like", auth, h.LikeComment)
		api.DELETE("/posts/:id/comments/:commentId/like", auth, h.UnlikeComment)

		api.GET("/feed", auth, h.Feed)
	}
	return r
}
