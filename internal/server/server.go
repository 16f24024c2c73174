package server

import (
	"context"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/Sakib928/synaps-server/internal/client"
	"github.com/Sakib928/synaps-server/internal/model"
)

type Server struct {
	DB             Store
	Client         client.Client
	Logger         logger
	AuthSecretKey  jwk.Key
	AllowedOrigins []string
}

type logger interface {
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// Store is the slice of the database the handlers need. database.Database
// implements it; tests swap in a fake.
type Store interface {
	UserInsert(ctx context.Context, u model.User) (string, error)
	UserFindByEmail(ctx context.Context, email string) (model.User, error)
	UsersFindAll(ctx context.Context) ([]model.User, error)
	UsersSearch(ctx context.Context, search string) ([]model.User, error)
	UsersFindByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UserRoleUpdate(ctx context.Context, userID string, role model.Role) (model.UpdateResult, error)

	SessionInsert(ctx context.Context, sess model.Session) (string, error)
	SessionFindOne(ctx context.Context, sessionID string) (model.Session, error)
	SessionsFindByStatuses(ctx context.Context, statuses []model.SessionStatus) ([]model.Session, error)
	SessionsFindByTutor(ctx context.Context, tutorEmail string) ([]model.Session, error)
	SessionsFindApprovedByTutor(ctx context.Context, tutorEmail string) ([]model.Session, error)
	SessionApprove(ctx context.Context, sessionID string, fee float64) (model.UpdateResult, error)
	SessionStatusSet(ctx context.Context, sessionID string, status model.SessionStatus) (model.UpdateResult, error)

	FeedbackInsert(ctx context.Context, f model.Feedback) (string, error)
	FeedbackFindLatest(ctx context.Context, sessionID string) (model.Feedback, error)

	MaterialInsert(ctx context.Context, m model.Material) (string, error)
	MaterialsFindByTutor(ctx context.Context, tutorEmail string) ([]model.Material, error)
	MaterialsFindAll(ctx context.Context) ([]model.Material, error)
	MaterialsFindBySessions(ctx context.Context, sessionIDs []string) ([]model.Material, error)
	MaterialUpdate(ctx context.Context, materialID string, title string, image string, driveLink string) (model.UpdateResult, error)
	MaterialDelete(ctx context.Context, materialID string) (model.DeleteResult, error)

	BookedSessionInsert(ctx context.Context, bs model.BookedSession) (string, error)
	BookedSessionsFindByStudent(ctx context.Context, studentEmail string) ([]model.BookedSession, error)
	BookedSessionFindOne(ctx context.Context, bookedSessionID string) (model.BookedSession, error)

	ReviewInsert(ctx context.Context, rv model.Review) (string, error)
	ReviewsFindBySession(ctx context.Context, sessionID string) ([]model.Review, error)

	NoteInsert(ctx context.Context, n model.Note) (string, error)
	NotesFindByUser(ctx context.Context, userEmail string) ([]model.Note, error)
	NoteUpdate(ctx context.Context, noteID string, title string, note string) (model.UpdateResult, error)
	NoteDelete(ctx context.Context, noteID string) (model.DeleteResult, error)

	AnnouncementInsert(ctx context.Context, a model.Announcement) (string, error)
	AnnouncementsFindAll(ctx context.Context) ([]model.Announcement, error)
}
