package domain

import (
	"github.com/yungbote/coursetube-backend/internal/domain/auth"
	"github.com/yungbote/coursetube-backend/internal/domain/course"
	"github.com/yungbote/coursetube-backend/internal/domain/user"
)

type User = user.User

type UserIdentity = auth.UserIdentity
type Session = auth.Session

type Course = course.Course
type Video = course.Video
type Progress = course.Progress
type Note = course.Note
