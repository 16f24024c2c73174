package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/model"
)

func (s Server) sessionCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := model.Session{}
		if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
			s.Logger.Debugf("sessionCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		// a fresh listing always starts pending and without a fee
		sess.ID = primitive.NilObjectID
		sess.Status = model.SessionStatusPending
		sess.Fee = nil

		id, err := s.DB.SessionInsert(r.Context(), sess)
		if err != nil {
			s.Logger.Errorf("sessionCreate: Error inserting Session, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, insertResponse{Acknowledged: true, InsertedID: &id}, http.StatusOK)
	}
}

// sessionList is the admin view: pending and approved listings only.
func (s Server) sessionList() http.HandlerFunc {
	type response []model.Session
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := s.DB.SessionsFindByStatuses(r.Context(), []model.SessionStatus{
			model.SessionStatusPending,
			model.SessionStatusApproved,
		})
		if err != nil {
			s.Logger.Errorf("sessionList: Error finding Sessions, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ss == nil {
			ss = []model.Session{}
		}
		s.writeJsonResponse(w, response(ss), http.StatusOK)
	}
}

func (s Server) homeSessionList() http.HandlerFunc {
	type response []model.Session
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := s.DB.SessionsFindByStatuses(r.Context(), []model.SessionStatus{model.SessionStatusApproved})
		if err != nil {
			s.Logger.Errorf("homeSessionList: Error finding approved Sessions, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ss == nil {
			ss = []model.Session{}
		}
		s.writeJsonResponse(w, response(ss), http.StatusOK)
	}
}

func (s Server) sessionGetOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		sess, err := s.DB.SessionFindOne(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				s.writeJsonResponse(w, nil, http.StatusOK)
				return
			}
			s.Logger.Errorf("sessionGetOne: Error finding Session with ID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, sess, http.StatusOK)
	}
}

func (s Server) sessionApprove() http.HandlerFunc {
	type request struct {
		Fee float64 `json:"fee"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("sessionApprove: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		res, err := s.DB.SessionApprove(r.Context(), sessionID, req.Fee)
		if err != nil {
			s.Logger.Errorf("sessionApprove: Error approving Session with ID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

// sessionReject sets the status and then records the rejection feedback as
// two separate writes. When the second write fails the session stays
// rejected with no feedback; that is logged, not compensated.
func (s Server) sessionReject() http.HandlerFunc {
	type request struct {
		Feedback   string `json:"feedback"`
		TutorEmail string `json:"tutorEmail"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("sessionReject: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		res, err := s.DB.SessionStatusSet(r.Context(), sessionID, model.SessionStatusRejected)
		if err != nil {
			s.Logger.Errorf("sessionReject: Error rejecting Session with ID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if _, err = s.DB.FeedbackInsert(r.Context(), model.Feedback{
			SessionID:  sessionID,
			TutorEmail: req.TutorEmail,
			Feedback:   req.Feedback,
		}); err != nil {
			s.Logger.Errorf("sessionReject: Error inserting Feedback for SessionID: %s, err: %v", sessionID, err)
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

func (s Server) sessionResend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		res, err := s.DB.SessionStatusSet(r.Context(), sessionID, model.SessionStatusPending)
		if err != nil {
			s.Logger.Errorf("sessionResend: Error resending Session with ID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, res, http.StatusOK)
	}
}

func (s Server) feedbackLatest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := pathID(r)
		f, err := s.DB.FeedbackFindLatest(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				s.writeJsonResponse(w, nil, http.StatusOK)
				return
			}
			s.Logger.Errorf("feedbackLatest: Error finding Feedback for SessionID: %s, err: %v", sessionID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, f, http.StatusOK)
	}
}

func (s Server) mySessionList() http.HandlerFunc {
	type response []model.Session
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		ss, err := s.DB.SessionsFindByTutor(r.Context(), email)
		if err != nil {
			s.Logger.Errorf("mySessionList: Error finding Sessions of tutor: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ss == nil {
			ss = []model.Session{}
		}
		s.writeJsonResponse(w, response(ss), http.StatusOK)
	}
}

func (s Server) approvedSessionList() http.HandlerFunc {
	type response []model.Session
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		ss, err := s.DB.SessionsFindApprovedByTutor(r.Context(), email)
		if err != nil {
			s.Logger.Errorf("approvedSessionList: Error finding approved Sessions of tutor: %s, err: %v", email, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if ss == nil {
			ss = []model.Session{}
		}
		s.writeJsonResponse(w, response(ss), http.StatusOK)
	}
}
