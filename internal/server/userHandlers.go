package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/database"
	"github.com/Sakib928/synaps-server/internal/model"
)

// userCreate registers a new User. A duplicate email is not an error: the
// existing document stays as-is and the caller gets a null insertedId.
func (s Server) userCreate() http.HandlerFunc {
	type request struct {
		Name     string     `json:"name"`
		Email    string     `json:"email"`
		PhotoURL string     `json:"photoURL"`
		Role     model.Role `json:"role"`
	}
	type existsResponse struct {
		Message    string  `json:"message"`
		InsertedID *string `json:"insertedId"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("userCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if !req.Role.Valid() {
			s.Logger.Debugf("userCreate: Invalid role: %q, email: %s", req.Role, req.Email)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		id, err := s.DB.UserInsert(r.Context(), model.User{
			Name:     req.Name,
			Email:    req.Email,
			PhotoURL: req.PhotoURL,
			Role:     req.Role,
		})
		if err != nil {
			if errors.Is(err, database.ErrUserExists) {
				s.Logger.Debugf("userCreate: User already exists with email: %s", req.Email)
				s.writeJsonResponse(w, existsResponse{Message: "user already exists", InsertedID: nil}, http.StatusOK)
				return
			}
			s.Logger.Errorf("userCreate: Error inserting User, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

func (s Server) userList() http.HandlerFunc {
	type response []model.User
	return func(w http.ResponseWriter, r *http.Request) {
		us, err := s.DB.UsersFindAll(r.Context())
		if err != nil {
			s.Logger.Errorf("userList: Error finding all Users, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if us == nil {
			us = []model.User{}
		}
		s.writeJsonResponse(w, response(us), http.StatusOK)
	}
}

func (s Server) userSearch() http.HandlerFunc {
	type response []model.User
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		us, err := s.DB.UsersSearch(r.Context(), search)
		if err != nil {
			s.Logger.Errorf("userSearch: Error searching Users with: %s, err: %v", search, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if us == nil {
			us = []model.User{}
		}
		s.writeJsonResponse(w, response(us), http.StatusOK)
	}
}

func (s Server) tutorList() http.HandlerFunc {
	type response []model.User
	return func(w http.ResponseWriter, r *http.Request) {
		us, err := s.DB.UsersFindByRole(r.Context(), model.RoleTutor)
		if err != nil {
			s.Logger.Errorf("tutorList: Error finding tutors, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if us == nil {
			us = []model.User{}
		}
		s.writeJsonResponse(w, response(us), http.StatusOK)
	}
}

// roleGet returns the stored role string for an email, or null when the
// user does not exist or never had a role set.
func (s Server) roleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		u, err := s.DB.UserFindByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				s.writeJsonResponse(w, nil, http.StatusOK)
				return
			}
			s.Logger.Errorf("roleGet: Error finding User with email: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if u.Role == model.RoleNone {
			s.writeJsonResponse(w, nil, http.StatusOK)
			return
		}
		s.writeJsonResponse(w, u.Role, http.StatusOK)
	}
}

func (s Server) userRoleSet(role model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := pathID(r)
		res, err := s.DB.UserRoleUpdate(r.Context(), userID, role)
		if err != nil {
			s.Logger.Errorf("userRoleSet: Error setting role %s on User with ID: %s, err: %v", role, userID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}
