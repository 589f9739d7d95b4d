package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	adminSubject  = "admin"
	adminTokenTTL = 12 * time.Hour
)

func issueAdminToken(secret []byte, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(adminTokenTTL)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	return signed, expiresAt, err
}

// parseAdminToken validates an HS256 token and returns its subject.
func parseAdminToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithSubject(adminSubject))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	password  string
	secret    []byte
}

func newAuthHandler(password string, secret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		password:  password,
		secret:    secret,
	}
}

// login exchanges the backend password for an admin bearer token.
// POST /admin/login {"password": "..."}
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.password == "" || len(h.secret) == 0 {
			h.responder.WriteError(w, errs.NewAdminDisabledError())
			return
		}

		var req LoginRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
			metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
			h.logger.Warn().Str("remote_addr", clientIP(r)).Msg("Rejected admin login")
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		token, expiresAt, err := issueAdminToken(h.secret, time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not sign token", err))
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()})
	}
}
