package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func TestNoteLifecycle(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, store)
	auth := bearerToken(t, s, "student@synaps.app")

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(
		`{"userEmail":"student@synaps.app","title":"Trig","note":"remember SOH CAH TOA"}`))
	req.Header.Set("Authorization", auth)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.notes, 1)
	noteID := store.notes[0].ID.Hex()

	req = httptest.NewRequest(http.MethodPatch, "/notes/"+noteID, strings.NewReader(
		`{"title":"Trigonometry","note":"updated"}`))
	req.Header.Set("Authorization", auth)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trigonometry", store.notes[0].Title)
	assert.Equal(t, "updated", store.notes[0].Note)

	req = httptest.NewRequest(http.MethodGet, "/notes?email=student@synaps.app", nil)
	req.Header.Set("Authorization", auth)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var ns []model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ns))
	require.Len(t, ns, 1)

	req = httptest.NewRequest(http.MethodDelete, "/notes/"+noteID, nil)
	req.Header.Set("Authorization", auth)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
	assert.Empty(t, store.notes)
}

func TestMaterialUpdateReplacesNamedFields(t *testing.T) {
	m := model.Material{
		ID:         primitive.NewObjectID(),
		Title:      "Old",
		SessionID:  "sess-1",
		TutorEmail: "tutor@synaps.app",
		Image:      "old.png",
		DriveLink:  "https://drive.example/old",
	}
	store := &fakeStore{
		users:     []model.User{{Email: "tutor@synaps.app", Role: model.RoleTutor}},
		materials: []model.Material{m},
	}
	s := newTestServer(t, store)

	req := httptest.NewRequest(http.MethodPatch, "/materials/"+m.ID.Hex(), strings.NewReader(
		`{"title":"New","image":"new.png","driveLink":"https://drive.example/new"}`))
	req.Header.Set("Authorization", bearerToken(t, s, "tutor@synaps.app"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New", store.materials[0].Title)
	assert.Equal(t, "new.png", store.materials[0].Image)
	assert.Equal(t, "https://drive.example/new", store.materials[0].DriveLink)
	// fields outside the merge stay put
	assert.Equal(t, "sess-1", store.materials[0].SessionID)
}

func TestCourseMaterialsBySessionSet(t *testing.T) {
	store := &fakeStore{materials: []model.Material{
		{ID: primitive.NewObjectID(), SessionID: "s1", Title: "one"},
		{ID: primitive.NewObjectID(), SessionID: "s2", Title: "two"},
		{ID: primitive.NewObjectID(), SessionID: "s3", Title: "three"},
	}}
	s := newTestServer(t, store)

	req := httptest.NewRequest(http.MethodPost, "/myCourseMaterials", strings.NewReader(
		`{"sessions":["s1","s3"]}`))
	req.Header.Set("Authorization", bearerToken(t, s, "student@synaps.app"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var ms []model.Material
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ms))
	require.Len(t, ms, 2)
	assert.Equal(t, "one", ms[0].Title)
	assert.Equal(t, "three", ms[1].Title)
}

func TestReviewsArePublic(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, store)

	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(
		`{"sessionId":"s1","rating":4.5,"review":"great session"}`))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.reviews, 1)

	req = httptest.NewRequest(http.MethodGet, "/reviews/s1", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var rvs []model.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rvs))
	require.Len(t, rvs, 1)
	assert.Equal(t, 4.5, rvs[0].Rating)
}

func TestAnnouncementReadIsPublicWriteIsAdmin(t *testing.T) {
	store := &fakeStore{users: []model.User{{Email: "admin@synaps.app", Role: model.RoleAdmin}}}
	s := newTestServer(t, store)

	req := httptest.NewRequest(http.MethodPost, "/announcements", strings.NewReader(
		`{"title":"Exam week","details":"no sessions friday"}`))
	req.Header.Set("Authorization", bearerToken(t, s, "admin@synaps.app"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.announcements, 1)

	req = httptest.NewRequest(http.MethodGet, "/announcements", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var as []model.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &as))
	require.Len(t, as, 1)
	assert.Equal(t, "Exam week", as[0].Title)
}
