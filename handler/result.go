package handler

import (
	"net/http"

	"examination-backend/errs"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// resultHandler stores submitted exam results verbatim. Results are
// append-only, there is no update or delete path.
type resultHandler struct {
	c *mongo.Collection
}

func NewResultHandler(client *mongo.Client) *resultHandler {
	return &resultHandler{
		c: client.Database(dbName).Collection("results"),
	}
}

func (h *resultHandler) Create(w http.ResponseWriter, r *http.Request) {
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

func (h *resultHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}
