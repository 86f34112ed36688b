package handler

import (
	"net/http"

	"examination-backend/errs"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type wishlistHandler struct {
	c *mongo.Collection
}

func NewWishlistHandler(client *mongo.Client) *wishlistHandler {
	return &wishlistHandler{
		c: client.Database(dbName).Collection("wishlist"),
	}
}

func (h *wishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc := bson.M{}
	if err := decodeBody(r, &doc); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.c.InsertOne(r.Context(), doc)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		writeError(w, errs.ErrDatabase)
		return
	}

	writeJSON(w, http.StatusOK, insertAck{InsertedID: res.InsertedID})
}

// ListByEmail requires the email query parameter. A missing email is an
// invalid request, never a wildcard over other users' entries.
func (h *wishlistHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, errs.ErrEmailRequired)
		return
	}

	docs, err := findAll(r.Context(), h.c, bson.M{"email": email})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *wishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.c.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		writeError(w, errs.ErrDatabase)
		return
	}

	writeJSON(w, http.StatusOK, deleteAck{DeletedCount: res.DeletedCount})
}
