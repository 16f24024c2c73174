package server

import (
	"context"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sakib928/synaps-server/internal/misc"
	"github.com/Sakib928/synaps-server/internal/model"
)

type userContextKey struct{}
type userContext struct {
	email string
	name  string
}

type traceContextKey struct{}
type traceContext struct {
	traceID string
}

func setUserContext(ctx context.Context, uc userContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, uc)
}
func getUserContext(ctx context.Context) (userContext, error) {
	uc, ok := ctx.Value(userContextKey{}).(userContext)
	if !ok {
		return uc, errors.New("failed to get UserContext")
	}
	return uc, nil
}

func setTraceContext(ctx context.Context, tc traceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}
func getTraceContext(ctx context.Context) traceContext {
	tc, _ := ctx.Value(traceContextKey{}).(traceContext)
	return tc
}

func (s Server) maxBytesMw(next http.Handler) http.Handler {
	return http.MaxBytesHandler(next, 30000)
}

func (s Server) loggingMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		traceID := uuid.NewString()
		s.Logger.Debugf("loggingMw: New incoming request %s %s from %s, UA: %s, TraceID: %s",
			r.Method, r.URL.Path, r.RemoteAddr, misc.StringLimit(r.UserAgent(), 200), traceID)

		defer func() {
			if re := recover(); re != nil {
				s.Logger.Errorf("loggingMw: Handler crashed, err: %v, TraceID: %s, stack trace:\n%s", re, traceID, debug.Stack())
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		tc := traceContext{traceID: traceID}
		next.ServeHTTP(w, r.WithContext(setTraceContext(r.Context(), tc)))

		s.Logger.Debugf("loggingMw: Incoming request %s %s took %dms, TraceID: %s",
			r.Method, r.URL.Path, time.Since(start).Milliseconds(), traceID)
	})
}

// corsMw honors the configured origin allow-list and answers preflight
// requests before routing happens.
func (s Server) corsMw(next http.Handler) http.Handler {
	originSet := make(map[string]struct{}, len(s.AllowedOrigins))
	for _, origin := range s.AllowedOrigins {
		originSet[strings.TrimRight(origin, "/")] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if _, ok := originSet[strings.TrimRight(origin, "/")]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		w.Header().Add("Vary", "Origin")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate verifies the bearer token and stashes the decoded identity in
// the request context. Anything short of a valid token gets a 401 and the
// handler never runs.
func (s Server) authenticate(next http.HandlerFunc) http.HandlerFunc {
	type unauthorized struct {
		Message string `json:"message"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		at := r.Header.Get("Authorization")
		if !strings.HasPrefix(at, "Bearer ") {
			s.Logger.Debugf("authenticate: Missing bearer token, TraceID: %s", tid)
			s.writeJsonResponse(w, unauthorized{Message: "unauthorized access"}, http.StatusUnauthorized)
			return
		}
		at = strings.TrimPrefix(at, "Bearer ")

		token, err := jwt.Parse([]byte(at), jwt.WithKey(jwa.HS256, s.AuthSecretKey), jwt.WithValidate(true))
		if err != nil {
			s.Logger.Debugf("authenticate: Failed to validate access token, err: %v, TraceID: %s", err, tid)
			s.writeJsonResponse(w, unauthorized{Message: "unauthorized access"}, http.StatusUnauthorized)
			return
		}

		email, _ := token.Get("email")
		emailStr, ok := email.(string)
		if !ok || emailStr == "" {
			s.Logger.Debugf("authenticate: Valid token contains no email claim, TraceID: %s", tid)
			s.writeJsonResponse(w, unauthorized{Message: "unauthorized access"}, http.StatusUnauthorized)
			return
		}
		name, _ := token.Get("name")
		nameStr, _ := name.(string)

		uc := userContext{
			email: emailStr,
			name:  nameStr,
		}
		next.ServeHTTP(w, r.WithContext(setUserContext(r.Context(), uc)))
	}
}

// requireRole looks up the authenticated user's stored role and lets the
// request through only on an exact match. Must run after authenticate.
func (s Server) requireRole(role model.Role, next http.HandlerFunc) http.HandlerFunc {
	type forbidden struct {
		Status string `json:"status"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		tid := getTraceContext(r.Context()).traceID
		uc, err := getUserContext(r.Context())
		if err != nil {
			s.Logger.Errorf("requireRole: Error getting userContext, err: %v, TraceID: %s", err, tid)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		u, err := s.DB.UserFindByEmail(r.Context(), uc.email)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				s.Logger.Debugf("requireRole: No User found for email: %s, TraceID: %s", uc.email, tid)
				s.writeJsonResponse(w, forbidden{Status: "forbidden access"}, http.StatusForbidden)
				return
			}
			s.Logger.Errorf("requireRole: Error finding User with email: %s, err: %v, TraceID: %s", uc.email, err, tid)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if u.Role != role {
			s.Logger.Debugf("requireRole: User %s has role %q, needs %q, TraceID: %s", uc.email, u.Role, role, tid)
			s.writeJsonResponse(w, forbidden{Status: "forbidden access"}, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}
