package handler

import (
	"net/http"
	"regexp"

	"examination-backend/entity"
	"examination-backend/errs"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// examHandler serves both the "exams" and the short-answer "cq"
// collections, which share the same document shape and routes.
type examHandler struct {
	c *mongo.Collection
}

func NewExamHandler(client *mongo.Client, collection string) *examHandler {
	return &examHandler{
		c: client.Database(dbName).Collection(collection),
	}
}

// buildListFilter matches name case-insensitively as a substring and
// category exactly. The category value "all" is a sentinel meaning no
// category restriction.
func buildListFilter(search, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}
	if category != "" && category != "all" {
		filter["category"] = category
	}

	return filter
}

func (h *examHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := buildListFilter(r.URL.Query().Get("search"), r.URL.Query().Get("category"))

	docs, err := findAll(r.Context(), h.c, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *examHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// examUpdateDoc is the fixed $set document of an exam PATCH: exactly these
// five fields, taken from the body as sent. The id is immutable.
func examUpdateDoc(e *entity.Exam) bson.M {
	return bson.M{
		"name":        e.Name,
		"category":    e.Category,
		"image":       e.Image,
		"description": e.Description,
		"questions":   e.Questions,
	}
}

func (h *examHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	e := &entity.Exam{}
	if err := decodeBody(r, e); err != nil {
		writeError(w, err)
		return
	}

	// Update-only: an unknown id yields a matched-0 ack, never a created
	// document.
	ack, err := applyUpdate(r.Context(), h.c, bson.M{"_id": id}, examUpdateDoc(e), false)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ack)
}

func (h *examHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
