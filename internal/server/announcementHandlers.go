package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (s Server) announcementCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := model.Announcement{}
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			s.Logger.Debugf("announcementCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		a.ID = primitive.NilObjectID

		id, err := s.DB.AnnouncementInsert(r.Context(), a)
		if err != nil {
			s.Logger.Errorf("announcementCreate: Error inserting Announcement, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) announcementList() http.HandlerFunc {
	type response []model.Announcement
	return func(w http.ResponseWriter, r *http.Request) {
		as, err := s.DB.AnnouncementsFindAll(r.Context())
		if err != nil {
			s.Logger.Errorf("announcementList: Error finding all Announcements, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if as == nil {
			as = []model.Announcement{}
		}
		s.writeJsonResponse(w, response(as), http.StatusOK)
	}
}
