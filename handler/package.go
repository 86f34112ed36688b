package handler

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type packageHandler struct {
	c *mongo.Collection
}

func NewPackageHandler(client *mongo.Client) *packageHandler {
	// The collection name carries the original deployment's spelling.
	return &packageHandler{
		c: client.Database(dbName).Collection("packeges"),
	}
}

func (h *packageHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}
