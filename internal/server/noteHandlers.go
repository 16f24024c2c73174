package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (s Server) noteCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := model.Note{}
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			s.Logger.Debugf("noteCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		n.ID = primitive.NilObjectID

		id, err := s.DB.NoteInsert(r.Context(), n)
		if err != nil {
			s.Logger.Errorf("noteCreate: Error inserting Note, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) noteList() http.HandlerFunc {
	type response []model.Note
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		ns, err := s.DB.NotesFindByUser(r.Context(), email)
		if err != nil {
			s.Logger.Errorf("noteList: Error finding Notes of user: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ns == nil {
			ns = []model.Note{}
		}
		s.writeJsonResponse(w, response(ns), http.StatusOK)
	}
}

func (s Server) noteUpdate() http.HandlerFunc {
	type request struct {
		Title string `json:"title"`
		Note  string `json:"note"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := pathID(r)
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("noteUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		res, err := s.DB.NoteUpdate(r.Context(), noteID, req.Title, req.Note)
		if err != nil {
			s.Logger.Errorf("noteUpdate: Error updating Note with ID: %s, err: %v", noteID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

func (s Server) noteDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := pathID(r)
		res, err := s.DB.NoteDelete(r.Context(), noteID)
		if err != nil {
			s.Logger.Errorf("noteDelete: Error deleting Note with ID: %s, err: %v", noteID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}
