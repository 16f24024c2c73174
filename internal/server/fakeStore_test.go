package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/client"
	"github.com/Sakib928/synaps-server/internal/database"
	logpkg "github.com/Sakib928/synaps-server/internal/logger"
	"github.com/Sakib928/synaps-server/internal/model"
)

// fakeStore keeps everything in memory and counts writes so tests can assert
// that guarded requests never touch the store.
type fakeStore struct {
	users         []model.User
	sessions      []model.Session
	feedbacks     []model.Feedback
	materials     []model.Material
	bookings      []model.BookedSession
	reviews       []model.Review
	notes         []model.Note
	announcements []model.Announcement

	mutations  int
	lastSearch string
}

func (f *fakeStore) UserInsert(_ context.Context, u model.User) (string, error) {
	for _, eu := range f.users {
		if eu.Email == u.Email {
			return "", database.ErrUserExists
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, u)
	f.mutations++
	return u.ID.Hex(), nil
}

func (f *fakeStore) UserFindByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, mongo.ErrNoDocuments
}

func (f *fakeStore) UsersFindAll(_ context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeStore) UsersSearch(_ context.Context, search string) ([]model.User, error) {
	f.lastSearch = search
	if search == "" {
		return f.users, nil
	}
	var us []model.User
	for _, u := range f.users {
		if u.Name == search || u.Email == search {
			us = append(us, u)
		}
	}
	return us, nil
}

func (f *fakeStore) UsersFindByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var us []model.User
	for _, u := range f.users {
		if u.Role == role {
			us = append(us, u)
		}
	}
	return us, nil
}

func (f *fakeStore) UserRoleUpdate(_ context.Context, userID string, role model.Role) (model.UpdateResult, error) {
	f.mutations++
	for i, u := range f.users {
		if u.ID.Hex() == userID {
			f.users[i].Role = role
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeStore) SessionInsert(_ context.Context, sess model.Session) (string, error) {
	sess.ID = primitive.NewObjectID()
	f.sessions = append(f.sessions, sess)
	f.mutations++
	return sess.ID.Hex(), nil
}

func (f *fakeStore) SessionFindOne(_ context.Context, sessionID string) (model.Session, error) {
	for _, sess := range f.sessions {
		if sess.ID.Hex() == sessionID {
			return sess, nil
		}
	}
	return model.Session{}, mongo.ErrNoDocuments
}

func (f *fakeStore) SessionsFindByStatuses(_ context.Context, statuses []model.SessionStatus) ([]model.Session, error) {
	var ss []model.Session
	for _, sess := range f.sessions {
		for _, st := range statuses {
			if sess.Status == st {
				ss = append(ss, sess)
				break
			}
		}
	}
	return ss, nil
}

func (f *fakeStore) SessionsFindByTutor(_ context.Context, tutorEmail string) ([]model.Session, error) {
	var ss []model.Session
	for _, sess := range f.sessions {
		if sess.TutorEmail == tutorEmail {
			ss = append(ss, sess)
		}
	}
	return ss, nil
}

func (f *fakeStore) SessionsFindApprovedByTutor(_ context.Context, tutorEmail string) ([]model.Session, error) {
	var ss []model.Session
	for _, sess := range f.sessions {
		if sess.TutorEmail == tutorEmail && sess.Status == model.SessionStatusApproved {
			ss = append(ss, sess)
		}
	}
	return ss, nil
}

func (f *fakeStore) SessionApprove(_ context.Context, sessionID string, fee float64) (model.UpdateResult, error) {
	f.mutations++
	for i, sess := range f.sessions {
		if sess.ID.Hex() == sessionID {
			f.sessions[i].Status = model.SessionStatusApproved
			f.sessions[i].Fee = &fee
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeStore) SessionStatusSet(_ context.Context, sessionID string, status model.SessionStatus) (model.UpdateResult, error) {
	f.mutations++
	for i, sess := range f.sessions {
		if sess.ID.Hex() == sessionID {
			modified := int64(0)
			if f.sessions[i].Status != status {
				f.sessions[i].Status = status
				modified = 1
			}
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeStore) FeedbackInsert(_ context.Context, fb model.Feedback) (string, error) {
	fb.ID = primitive.NewObjectID()
	f.feedbacks = append(f.feedbacks, fb)
	f.mutations++
	return fb.ID.Hex(), nil
}

func (f *fakeStore) FeedbackFindLatest(_ context.Context, sessionID string) (model.Feedback, error) {
	for i := len(f.feedbacks) - 1; i >= 0; i-- {
		if f.feedbacks[i].SessionID == sessionID {
			return f.feedbacks[i], nil
		}
	}
	return model.Feedback{}, mongo.ErrNoDocuments
}

func (f *fakeStore) MaterialInsert(_ context.Context, m model.Material) (string, error) {
	m.ID = primitive.NewObjectID()
	f.materials = append(f.materials, m)
	f.mutations++
	return m.ID.Hex(), nil
}

func (f *fakeStore) MaterialsFindByTutor(_ context.Context, tutorEmail string) ([]model.Material, error) {
	var ms []model.Material
	for _, m := range f.materials {
		if m.TutorEmail == tutorEmail {
			ms = append(ms, m)
		}
	}
	return ms, nil
}

func (f *fakeStore) MaterialsFindAll(_ context.Context) ([]model.Material, error) {
	return f.materials, nil
}

func (f *fakeStore) MaterialsFindBySessions(_ context.Context, sessionIDs []string) ([]model.Material, error) {
	var ms []model.Material
	for _, m := range f.materials {
		for _, id := range sessionIDs {
			if m.SessionID == id {
				ms = append(ms, m)
				break
			}
		}
	}
	return ms, nil
}

func (f *fakeStore) MaterialUpdate(_ context.Context, materialID string, title string, image string, driveLink string) (model.UpdateResult, error) {
	f.mutations++
	for i, m := range f.materials {
		if m.ID.Hex() == materialID {
			f.materials[i].Title = title
			f.materials[i].Image = image
			f.materials[i].DriveLink = driveLink
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeStore) MaterialDelete(_ context.Context, materialID string) (model.DeleteResult, error) {
	f.mutations++
	for i, m := range f.materials {
		if m.ID.Hex() == materialID {
			f.materials = append(f.materials[:i], f.materials[i+1:]...)
			return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return model.DeleteResult{Acknowledged: true}, nil
}

func (f *fakeStore) BookedSessionInsert(_ context.Context, bs model.BookedSession) (string, error) {
	bs.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, bs)
	f.mutations++
	return bs.ID.Hex(), nil
}

func (f *fakeStore) BookedSessionsFindByStudent(_ context.Context, studentEmail string) ([]model.BookedSession, error) {
	var bss []model.BookedSession
	for _, bs := range f.bookings {
		if bs.StudentEmail == studentEmail {
			bss = append(bss, bs)
		}
	}
	return bss, nil
}

func (f *fakeStore) BookedSessionFindOne(_ context.Context, bookedSessionID string) (model.BookedSession, error) {
	for _, bs := range f.bookings {
		if bs.ID.Hex() == bookedSessionID {
			return bs, nil
		}
	}
	return model.BookedSession{}, mongo.ErrNoDocuments
}

func (f *fakeStore) ReviewInsert(_ context.Context, rv model.Review) (string, error) {
	rv.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, rv)
	f.mutations++
	return rv.ID.Hex(), nil
}

func (f *fakeStore) ReviewsFindBySession(_ context.Context, sessionID string) ([]model.Review, error) {
	var rvs []model.Review
	for _, rv := range f.reviews {
		if rv.SessionID == sessionID {
			rvs = append(rvs, rv)
		}
	}
	return rvs, nil
}

func (f *fakeStore) NoteInsert(_ context.Context, n model.Note) (string, error) {
	n.ID = primitive.NewObjectID()
	f.notes = append(f.notes, n)
	f.mutations++
	return n.ID.Hex(), nil
}

func (f *fakeStore) NotesFindByUser(_ context.Context, userEmail string) ([]model.Note, error) {
	var ns []model.Note
	for _, n := range f.notes {
		if n.UserEmail == userEmail {
			ns = append(ns, n)
		}
	}
	return ns, nil
}

func (f *fakeStore) NoteUpdate(_ context.Context, noteID string, title string, note string) (model.UpdateResult, error) {
	f.mutations++
	for i, n := range f.notes {
		if n.ID.Hex() == noteID {
			f.notes[i].Title = title
			f.notes[i].Note = note
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return model.UpdateResult{Acknowledged: true}, nil
}

func (f *fakeStore) NoteDelete(_ context.Context, noteID string) (model.DeleteResult, error) {
	f.mutations++
	for i, n := range f.notes {
		if n.ID.Hex() == noteID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return model.DeleteResult{Acknowledged: true}, nil
}

func (f *fakeStore) AnnouncementInsert(_ context.Context, a model.Announcement) (string, error) {
	a.ID = primitive.NewObjectID()
	f.announcements = append(f.announcements, a)
	f.mutations++
	return a.ID.Hex(), nil
}

func (f *fakeStore) AnnouncementsFindAll(_ context.Context) ([]model.Announcement, error) {
	return f.announcements, nil
}

func newTestServer(t *testing.T, store *fakeStore) Server {
	t.Helper()
	key, err := jwk.FromRaw([]byte("test-secret-key"))
	require.NoError(t, err)
	return Server{
		DB:             store,
		Client:         client.Client{Client: &http.Client{Timeout: 5 * time.Second}, Logger: logpkg.NewLogger(logpkg.LevelOff, io.Discard)},
		Logger:         logpkg.NewLogger(logpkg.LevelOff, io.Discard),
		AuthSecretKey:  key,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

func bearerToken(t *testing.T, s Server, email string) string {
	t.Helper()
	at, err := s.createAccessToken(email, "Test User")
	require.NoError(t, err)
	return "Bearer " + at
}
