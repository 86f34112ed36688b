package handler

import (
	"net/http"

	"examination-backend/entity"
	"examination-backend/errs"
	"examination-backend/jwt"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type authHandler struct {
	cUsers *mongo.Collection
	key    []byte
}

func NewAuthHandler(client *mongo.Client, key []byte) *authHandler {
	return &authHandler{
		cUsers: client.Database(dbName).Collection("users"),
		key:    key,
	}
}

// Token issues an access token for an email. The role claim comes from
// the users collection; unknown emails get the student role so the
// frontend can request a token right after sign-up.
func (h *authHandler) Token(w http.ResponseWriter, r *http.Request) {
	body := struct {
		Email string `json:"email"`
	}{}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	if body.Email == "" {
		writeError(w, errs.ErrEmailRequired)
		return
	}

	role := "student"
	u := &entity.User{}
	err := h.cUsers.FindOne(r.Context(), bson.M{"email": body.Email}).Decode(u)
	if err != nil && err != mongo.ErrNoDocuments {
		log.Logger.Error("database error", zap.Error(err), zap.String("email", body.Email))
		writeError(w, errs.ErrDatabase)
		return
	}
	if err == nil && u.Role != "" {
		role = u.Role
	}

	token, err := jwt.NewAccessToken(body.Email, role, h.key)
	if err != nil {
		writeError(w, errs.ErrJWT)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
