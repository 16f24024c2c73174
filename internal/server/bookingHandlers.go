package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/model"
)

// bookingCreate inserts a new BookedSession. Bookings are never deduplicated:
// paying for the same listing twice simply records two documents.
func (s Server) bookingCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bs := model.BookedSession{}
		if err := json.NewDecoder(r.Body).Decode(&bs); err != nil {
			s.Logger.Debugf("bookingCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		bs.ID = primitive.NilObjectID

		id, err := s.DB.BookedSessionInsert(r.Context(), bs)
		if err != nil {
			s.Logger.Errorf("bookingCreate: Error inserting BookedSession, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) bookingList() http.HandlerFunc {
	type response []model.BookedSession
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		bss, err := s.DB.BookedSessionsFindByStudent(r.Context(), email)
		if err != nil {
			s.Logger.Errorf("bookingList: Error finding BookedSessions of student: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if bss == nil {
			bss = []model.BookedSession{}
		}
		s.writeJsonResponse(w, response(bss), http.StatusOK)
	}
}

func (s Server) bookingGetOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookedSessionID := pathID(r)
		bs, err := s.DB.BookedSessionFindOne(r.Context(), bookedSessionID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				s.writeJsonResponse(w, nil, http.StatusOK)
				return
			}
			s.Logger.Errorf("bookingGetOne: Error finding BookedSession with ID: %s, err: %v", bookedSessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, bs, http.StatusOK)
	}
}
