package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"examination-backend/errs"

	"github.com/gorilla/mux"
)

var ErrExpired = errors.New("token expired")

// Level is the access requirement of a route.
type Level int

const (
	Public Level = iota
	Token
	Admin
)

type ctxKey struct{}

// Guard is a router-wide middleware enforcing a "METHOD /route-template"
// -> Level table before any handler body runs. Templates are the exact
// strings the routes were registered with; unlisted routes are Public.
func Guard(key []byte, rules map[string]Level) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			level := Public
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					level = rules[r.Method+" "+tpl]
				}
			}

			if level == Public {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := claimsFromHeader(r, key)
			if err != nil {
				writeGuardError(w, http.StatusUnauthorized, err)
				return
			}

			if level == Admin && !claims.IsAdmin() {
				writeGuardError(w, http.StatusForbidden, errs.ErrNotAdmin)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		})
	}
}

func writeGuardError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func claimsFromHeader(r *http.Request, key []byte) (*AccessClaims, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return nil, errs.ErrUnauthorized
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errs.ErrUnauthorized
	}

	claims, err := ValidateAccessToken(parts[1], key)
	if err != nil {
		if err == ErrExpired {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrJWT
	}

	return claims, nil
}

// GetClaimsFromCtx returns the claims the guard stored for the request,
// if any.
func GetClaimsFromCtx(ctx context.Context) (*AccessClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*AccessClaims)
	return claims, ok
}
