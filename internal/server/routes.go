package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sakib928/synaps-server/internal/model"
)

// Handler wraps the router with the middlewares that must run on every
// request, preflight OPTIONS included.
func (s Server) Handler() http.Handler {
	return s.loggingMw(s.corsMw(s.maxBytesMw(s.Router())))
}

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.health()).Methods(http.MethodGet)
	r.HandleFunc("/jwt", s.tokenIssue()).Methods(http.MethodPost)

	// users and roles
	r.HandleFunc("/users", s.userCreate()).Methods(http.MethodPost)
	r.HandleFunc("/users", s.authenticate(s.requireRole(model.RoleAdmin, s.userList()))).Methods(http.MethodGet)
	r.HandleFunc("/searchUsers", s.authenticate(s.requireRole(model.RoleAdmin, s.userSearch()))).Methods(http.MethodGet)
	r.HandleFunc("/tutors", s.tutorList()).Methods(http.MethodGet)
	r.HandleFunc("/role", s.roleGet()).Methods(http.MethodGet)
	r.HandleFunc("/admin/{id}", s.authenticate(s.requireRole(model.RoleAdmin, s.userRoleSet(model.RoleAdmin)))).Methods(http.MethodPatch)
	r.HandleFunc("/tutor/{id}", s.authenticate(s.requireRole(model.RoleAdmin, s.userRoleSet(model.RoleTutor)))).Methods(http.MethodPatch)
	r.HandleFunc("/student/{id}", s.authenticate(s.requireRole(model.RoleAdmin, s.userRoleSet(model.RoleStudent)))).Methods(http.MethodPatch)

	// session listings
	r.HandleFunc("/sessions", s.authenticate(s.requireRole(model.RoleTutor, s.sessionCreate()))).Methods(http.MethodPost)
	r.HandleFunc("/sessions", s.authenticate(s.requireRole(model.RoleAdmin, s.sessionList()))).Methods(http.MethodGet)
	r.HandleFunc("/homeSessions", s.homeSessionList()).Methods(http.MethodGet)
	r.HandleFunc("/singleSession/{id}", s.authenticate(s.sessionGetOne())).Methods(http.MethodGet)
	r.HandleFunc("/approve/{id}", s.authenticate(s.requireRole(model.RoleAdmin, s.sessionApprove()))).Methods(http.MethodPatch)
	r.HandleFunc("/reject/{id}", s.authenticate(s.requireRole(model.RoleAdmin, s.sessionReject()))).Methods(http.MethodPatch)
	r.HandleFunc("/resend/{id}", s.authenticate(s.requireRole(model.RoleTutor, s.sessionResend()))).Methods(http.MethodPatch)
	r.HandleFunc("/feedback/{id}", s.authenticate(s.requireRole(model.RoleTutor, s.feedbackLatest()))).Methods(http.MethodGet)
	r.HandleFunc("/mySessions", s.authenticate(s.requireRole(model.RoleTutor, s.mySessionList()))).Methods(http.MethodGet)
	r.HandleFunc("/approved", s.authenticate(s.requireRole(model.RoleTutor, s.approvedSessionList()))).Methods(http.MethodGet)

	// materials
	r.HandleFunc("/materials", s.authenticate(s.requireRole(model.RoleTutor, s.materialCreate()))).Methods(http.MethodPost)
	r.HandleFunc("/materials", s.authenticate(s.requireRole(model.RoleTutor, s.materialList()))).Methods(http.MethodGet)
	r.HandleFunc("/materials/{id}", s.authenticate(s.requireRole(model.RoleTutor, s.materialUpdate()))).Methods(http.MethodPatch)
	r.HandleFunc("/materials/{id}", s.authenticate(s.requireRole(model.RoleTutor, s.materialDelete()))).Methods(http.MethodDelete)
	r.HandleFunc("/allMaterials", s.authenticate(s.requireRole(model.RoleAdmin, s.materialListAll()))).Methods(http.MethodGet)
	r.HandleFunc("/myCourseMaterials", s.authenticate(s.courseMaterialList())).Methods(http.MethodPost)

	// bookings and payment
	r.HandleFunc("/bookedSessions", s.authenticate(s.bookingCreate())).Methods(http.MethodPost)
	r.HandleFunc("/bookedSessions", s.authenticate(s.bookingList())).Methods(http.MethodGet)
	r.HandleFunc("/singleBookedSession/{id}", s.authenticate(s.bookingGetOne())).Methods(http.MethodGet)
	r.HandleFunc("/create-payment-intent", s.authenticate(s.paymentIntentCreate())).Methods(http.MethodPost)

	// reviews
	r.HandleFunc("/reviews", s.reviewCreate()).Methods(http.MethodPost)
	r.HandleFunc("/reviews/{id}", s.reviewList()).Methods(http.MethodGet)

	// notes
	r.HandleFunc("/notes", s.authenticate(s.noteCreate())).Methods(http.MethodPost)
	r.HandleFunc("/notes", s.authenticate(s.noteList())).Methods(http.MethodGet)
	r.HandleFunc("/notes/{id}", s.authenticate(s.noteUpdate())).Methods(http.MethodPatch)
	r.HandleFunc("/notes/{id}", s.authenticate(s.noteDelete())).Methods(http.MethodDelete)

	// announcements
	r.HandleFunc("/announcements", s.authenticate(s.requireRole(model.RoleAdmin, s.announcementCreate()))).Methods(http.MethodPost)
	r.HandleFunc("/announcements", s.announcementList()).Methods(http.MethodGet)

	return r
}
