package router

import (
	"Tieba_Community/internal/handler"
	"Tieba_Community/internal/middleware"
	"Tieba_Community/internal/repository/redis"
	"Tieba_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter builds the gin engine. cache is optional; passing nil serves
// hot bars straight from the database, for deployments without redis.
func InitRouter(db *gorm.DB, cache *redis.HotBarCacheRepository) *gin.Engine {
	r := gin.Default()

	auth := service.NewAuthService(db)
	bars := service.NewBarService(db)
	posts := service.NewPostService(db)
	comments := service.NewCommentService(db)
	engagement := service.NewEngagementService(db)
	query := service.NewQueryService(db, cache)

	user := handler.NewUserHandler(auth)
	bar := handler.NewBarHandler(bars, engagement, query)
	post := handler.NewPostHandler(posts, engagement)
	comment := handler.NewCommentHandler(comments, engagement)
	stats := handler.NewStatsHandler(query)

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/refresh", user.Refresh)
		userGroup.GET("/:id", user.GetUser)
	}

	// Reads work anonymously; a valid token adds liked-by-me enrichment.
	readGroup := r.Group("/api")
	readGroup.Use(middleware.OptionalAuthMiddleware())
	{
		readGroup.GET("/bar/name/:name", bar.GetByName)
		readGroup.GET("/bar/hot", bar.Hot)
		readGroup.GET("/bar/:id/posts", post.ListByBar)
		readGroup.GET("/post/latest", post.Latest)
		readGroup.GET("/post/search", post.Search)
		readGroup.GET("/post/:id", post.Get)
		readGroup.GET("/post/:id/comments", comment.List)
		readGroup.GET("/stats", stats.Get)
	}

	authGroup := r.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/user/logout", user.Logout)
		authGroup.GET("/user/me", user.Me)

		authGroup.POST("/bar/create", bar.Create)
		authGroup.GET("/bar/followed", bar.Followed)
		authGroup.POST("/bar/:id/follow", bar.Follow)
		authGroup.POST("/bar/:id/unfollow", bar.Unfollow)

		authGroup.POST("/post/create", post.Create)
		authGroup.POST("/post/:id/like", post.ToggleLike)

		authGroup.POST("/comment/create", comment.Create)
		authGroup.POST("/comment/:id/like", comment.ToggleLike)
	}

	return r
}
