package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grillz/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

const sessionCookie = "grillz_session"

// Claims carries the guest session id inside the session cookie.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// GuestSession resolves the caller's session. A valid session cookie is
// reused; anything else gets a fresh session id minted and set on the
// response. The session id lands in the request context either way.
func GuestSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sid := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			if claims, err := parseSessionToken(c.Value); err == nil {
				sid = claims.SessionID
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			token, err := mintSessionToken(sid)
			if err != nil {
				http.Error(w, "Failed to start session", http.StatusInternalServerError)
				return
			}
			if !websocket.IsWebSocketUpgrade(r) {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int((30 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), globals.SessionIDKey, sid)
		next(w, r.WithContext(ctx), ps)
	}
}

func mintSessionToken(sid string) (string, error) {
	claims := &Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}

func parseSessionToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("empty session id")
	}
	return claims, nil
}

// SessionID pulls the session id a GuestSession middleware stored on the
// request context.
func SessionID(r *http.Request) string {
	sid, _ := r.Context().Value(globals.SessionIDKey).(string)
	return sid
}
