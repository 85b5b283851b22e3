package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/coursetube-backend/internal/http/response"
	"github.com/yungbote/coursetube-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursetube-backend/internal/services"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) Create(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CourseID  string `json:"course_id"`
		VideoID   string `json:"video_id"`
		Content   string `json:"content"`
		Timestamp int    `json:"timestamp"`
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
	note, err := h.noteService.Create(c.Request.Context(), rd.UserID, services.NoteInput{
		CourseID:  courseID,
		VideoID:   req.VideoID,
		Content:   req.Content,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_note_id", err)
		return
	}
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	note, err := h.noteService.Update(c.Request.Context(), rd.UserID, noteID, req.Content)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, note)
}

func (h *NoteHandler) ListForVideo(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	videoID := c.Param("videoId")
	if videoID == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_video_id", nil)
		return
	}
	notes, err := h.noteService.ListForVideo(c.Request.Context(), rd.UserID, videoID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, notes)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_note_id", err)
		return
	}
	if err := h.noteService.Delete(c.Request.Context(), rd.UserID, noteID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
