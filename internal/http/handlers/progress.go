package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/http/response"
	"github.com/yungbote/coursetube-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursetube-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) Upsert(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CourseID     string `json:"course_id"`
		VideoID      string `json:"video_id"`
		Watched      bool   `json:"watched"`
		WatchTime    int    `json:"watch_time"`
		LastPosition int    `json:"last_position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	if req.VideoID == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_video_id", nil)
		return
	}
	progress, err := h.progressService.Upsert(c.Request.Context(), rd.UserID, services.ProgressInput{
		CourseID:     courseID,
		VideoID:      req.VideoID,
		Watched:      req.Watched,
		WatchTime:    req.WatchTime,
		LastPosition: req.LastPosition,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, progress)
}

func (h *ProgressHandler) GetForCourse(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	progress, err := h.progressService.MapForCourse(c.Request.Context(), rd.UserID, courseID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, progress)
}
