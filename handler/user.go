package handler

import (
	"net/http"

	"examination-backend/errs"
	"examination-backend/log"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type userHandler struct {
	c *mongo.Collection
}

func NewUserHandler(client *mongo.Client) *userHandler {
	return &userHandler{
		c: client.Database(dbName).Collection("users"),
	}
}

func (h *userHandler) Create(w http.ResponseWriter, r *http.Request) {
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

func (h *userHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// PatchByEmail merges arbitrary body fields into the user matched by
// email, creating the user when absent. The badge flow on the frontend
// patches users that may not have signed up yet.
func (h *userHandler) PatchByEmail(w http.ResponseWriter, r *http.Request) {
	// The route only matches a non-empty {email} segment, so the var is
	// always set here; a missing segment never reaches the handler.
	email := mux.Vars(r)["email"]

	set := bson.M{}
	if err := decodeBody(r, &set); err != nil {
		writeError(w, err)
		return
	}
	delete(set, "_id")

	ack, err := applyUpdate(r.Context(), h.c, bson.M{"email": email}, set, true)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ack)
}

func adminPromotionDoc() bson.M {
	return bson.M{"role": "admin"}
}

// PromoteAdmin upserts role="admin" by id. A miss fabricates a document
// holding only the role field, matching the behavior clients rely on.
func (h *userHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ack, err := applyUpdate(r.Context(), h.c, bson.M{"_id": id}, adminPromotionDoc(), true)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ack)
}
