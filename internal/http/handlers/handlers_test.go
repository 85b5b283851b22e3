package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/coursetube-backend/internal/domain"
	"github.com/yungbote/coursetube-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursetube-backend/internal/platform/logger"
	"github.com/yungbote/coursetube-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("prod")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

// withUser simulates the auth middleware for handler-level tests.
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			UserID:    userID,
			SessionID: uuid.New(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(tb testing.TB, w *httptest.ResponseRecorder) map[string]any {
	tb.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		tb.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(tb testing.TB, w *httptest.ResponseRecorder) string {
	tb.Helper()
	body := decodeBody(tb, w)
	errObj, _ := body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

type stubCourseService struct {
	course  *types.Course
	courses []*types.Course
	err     error
}

func (s *stubCourseService) CreateFromPlaylist(ctx context.Context, userID uuid.UUID, playlistURL string) (*types.Course, error) {
	return s.course, s.err
}
func (s *stubCourseService) List(ctx context.Context, userID uuid.UUID) ([]*types.Course, error) {
	return s.courses, s.err
}
func (s *stubCourseService) Get(ctx context.Context, userID, courseID uuid.UUID) (*types.Course, error) {
	return s.course, s.err
}
func (s *stubCourseService) Update(ctx context.Context, userID, courseID uuid.UUID, patch services.CoursePatch) (*types.Course, error) {
	return s.course, s.err
}
func (s *stubCourseService) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	return s.err
}

type stubProgressService struct {
	progress *types.Progress
	byVideo  map[string]*types.Progress
	err      error
}

func (s *stubProgressService) Upsert(ctx context.Context, userID uuid.UUID, input services.ProgressInput) (*types.Progress, error) {
	return s.progress, s.err
}
func (s *stubProgressService) MapForCourse(ctx context.Context, userID, courseID uuid.UUID) (map[string]*types.Progress, error) {
	return s.byVideo, s.err
}

type stubNoteService struct {
	note  *types.Note
	notes []*types.Note
	err   error
}

func (s *stubNoteService) Create(ctx context.Context, userID uuid.UUID, input services.NoteInput) (*types.Note, error) {
	return s.note, s.err
}
func (s *stubNoteService) Update(ctx context.Context, userID, noteID uuid.UUID, content string) (*types.Note, error) {
	return s.note, s.err
}
func (s *stubNoteService) ListForVideo(ctx context.Context, userID uuid.UUID, videoID string) ([]*types.Note, error) {
	return s.notes, s.err
}
func (s *stubNoteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	return s.err
}

type stubAuthService struct {
	login *services.LoginResult
	user  *types.User
	err   error
}

func (s *stubAuthService) LoginWithIDToken(ctx context.Context, idToken string) (*services.LoginResult, error) {
	return s.login, s.err
}
func (s *stubAuthService) ResolveSession(ctx context.Context, token string) (context.Context, error) {
	if s.err != nil {
		return nil, s.err
	}
	return ctx, nil
}
func (s *stubAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return s.user, s.err
}
func (s *stubAuthService) Logout(ctx context.Context, userID uuid.UUID) error { return s.err }
func (s *stubAuthService) SessionTTL() time.Duration                          { return time.Hour }
