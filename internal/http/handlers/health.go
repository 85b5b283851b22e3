package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/coursetube-backend/internal/http/response"
)

type HealthHandler struct {
	youtubeConfigured bool
}

func NewHealthHandler(youtubeConfigured bool) *HealthHandler {
	return &HealthHandler{youtubeConfigured: youtubeConfigured}
}

func (h *HealthHandler) Root(c *gin.Context) {
	response.RespondOK(c, gin.H{"message": "YouTube Course Converter API"})
}

func (h *HealthHandler) Test(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"message":                "API is working!",
		"youtube_api_configured": h.youtubeConfigured,
	})
}
