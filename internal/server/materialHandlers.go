package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (s Server) materialCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := model.Material{}
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			s.Logger.Debugf("materialCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		m.ID = primitive.NilObjectID

		id, err := s.DB.MaterialInsert(r.Context(), m)
		if err != nil {
			s.Logger.Errorf("materialCreate: Error inserting Material, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) materialList() http.HandlerFunc {
	type response []model.Material
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		ms, err := s.DB.MaterialsFindByTutor(r.Context(), email)
		if err != nil {
			s.Logger.Errorf("materialList: Error finding Materials of tutor: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ms == nil {
			ms = []model.Material{}
		}
		s.writeJsonResponse(w, response(ms), http.StatusOK)
	}
}

func (s Server) materialListAll() http.HandlerFunc {
	type response []model.Material
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := s.DB.MaterialsFindAll(r.Context())
		if err != nil {
			s.Logger.Errorf("materialListAll: Error finding all Materials, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ms == nil {
			ms = []model.Material{}
		}
		s.writeJsonResponse(w, response(ms), http.StatusOK)
	}
}

func (s Server) materialUpdate() http.HandlerFunc {
	type request struct {
		Title     string `json:"title"`
		Image     string `json:"image"`
		DriveLink string `json:"driveLink"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		materialID := pathID(r)
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("materialUpdate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		res, err := s.DB.MaterialUpdate(r.Context(), materialID, req.Title, req.Image, req.DriveLink)
		if err != nil {
			s.Logger.Errorf("materialUpdate: Error updating Material with ID: %s, err: %v", materialID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

func (s Server) materialDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID := pathID(r)
		res, err := s.DB.MaterialDelete(r.Context(), materialID)
		if err != nil {
			s.Logger.Errorf("materialDelete: Error deleting Material with ID: %s, err: %v", materialID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

// courseMaterialList returns the Materials for every session a student has
// booked, selected by the session IDs sent in the body.
func (s Server) courseMaterialList() http.HandlerFunc {
	type request struct {
		Sessions []string `json:"sessions"`
	}
	type response []model.Material
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("courseMaterialList: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		ms, err := s.DB.MaterialsFindBySessions(r.Context(), req.Sessions)
		if err != nil {
			s.Logger.Errorf("courseMaterialList: Error finding Materials for SessionIDs: %v, err: %v", req.Sessions, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ms == nil {
			ms = []model.Material{}
		}
		s.writeJsonResponse(w, response(ms), http.StatusOK)
	}
}
