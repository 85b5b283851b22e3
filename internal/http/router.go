package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/coursetube-backend/internal/http/handlers"
	httpMW "github.com/yungbote/coursetube-backend/internal/http/middleware"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	CourseHandler   *httpH.CourseHandler
	ProgressHandler *httpH.ProgressHandler
	NoteHandler     *httpH.NoteHandler

	AuthMiddleware *httpMW.AuthMiddleware
	CORSOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	api := r.Group("/api")
	{
		// Public probes
		if cfg.HealthHandler != nil {
			api.GET("/", cfg.HealthHandler.Root)
			api.GET("/test", cfg.HealthHandler.Test)
		}

		// Login exchanges the external credential; everything else needs a
		// resolved session.
		if cfg.AuthHandler != nil {
			api.POST("/auth/google", cfg.AuthHandler.GoogleLogin)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.GET("/auth/profile", cfg.AuthHandler.Profile)
			protected.GET("/auth/logout", cfg.AuthHandler.Logout)
		}

		if cfg.CourseHandler != nil {
			protected.POST("/courses", cfg.CourseHandler.Create)
			protected.GET("/courses", cfg.CourseHandler.List)
			protected.GET("/courses/:id", cfg.CourseHandler.Get)
			protected.PUT("/courses/:id", cfg.CourseHandler.Update)
			protected.DELETE("/courses/:id", cfg.CourseHandler.Delete)
		}

		if cfg.ProgressHandler != nil {
			protected.POST("/progress", cfg.ProgressHandler.Upsert)
			protected.GET("/progress/:courseId", cfg.ProgressHandler.GetForCourse)
		}

		if cfg.NoteHandler != nil {
			protected.POST("/notes", cfg.NoteHandler.Create)
			protected.PUT("/notes/:id", cfg.NoteHandler.Update)
			protected.GET("/notes/:videoId", cfg.NoteHandler.ListForVideo)
			protected.DELETE("/notes/:id", cfg.NoteHandler.Delete)
		}
	}

	return r
}
