package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (s Server) reviewCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rv := model.Review{}
		if err := json.NewDecoder(r.Body).Decode(&rv); err != nil {
			s.Logger.Debugf("reviewCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		rv.ID = primitive.NilObjectID

		id, err := s.DB.ReviewInsert(r.Context(), rv)
		if err != nil {
			s.Logger.Errorf("reviewCreate: Error inserting Review, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) reviewList() http.HandlerFunc {
	type response []model.Review
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		rvs, err := s.DB.ReviewsFindBySession(r.Context(), sessionID)
		if err != nil {
			s.Logger.Errorf("reviewList: Error finding Reviews for SessionID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if rvs == nil {
			rvs = []model.Review{}
		}
		s.writeJsonResponse(w, response(rvs), http.StatusOK)
	}
}
