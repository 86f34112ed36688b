package handler

import (
	"net/http"

	"examination-backend/entity"
	"examination-backend/errs"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type sessionHandler struct {
	c *mongo.Collection
}

func NewSessionHandler(client *mongo.Client) *sessionHandler {
	return &sessionHandler{
		c: client.Database(dbName).Collection("sessions"),
	}
}

func (h *sessionHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *sessionHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// sessionUpdateDoc is the fixed $set document of a session PATCH.
func sessionUpdateDoc(s *entity.Session) bson.M {
	return bson.M{
		"title":           s.Title,
		"description":     s.Description,
		"speaker":         s.Speaker,
		"scheduledTime":   s.ScheduledTime,
		"durationMinutes": s.DurationMinutes,
		"link":            s.Link,
	}
}

func (h *sessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	s := &entity.Session{}
	if err := decodeBody(r, s); err != nil {
		writeError(w, err)
		return
	}

	ack, err := applyUpdate(r.Context(), h.c, bson.M{"_id": id}, sessionUpdateDoc(s), false)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ack)
}

func (h *sessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
