package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"examination-backend/errs"
	"examination-backend/log"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const dbName = "examinationSystem"

// Ack shapes mirror the driver results the original API exposed verbatim,
// so existing clients keep working.
type insertAck struct {
	InsertedID interface{} `json:"insertedId"`
}

type updateAck struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type deleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Logger.Debug("response encoding failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInvalidID),
		errors.Is(err, errs.ErrEmailRequired),
		errors.Is(err, errs.ErrInvalidBody),
		errors.Is(err, errs.ErrInvalidPrice),
		errors.Is(err, errs.ErrAnswerIndices):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAdmin):
		status = http.StatusForbidden
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func insertedIDHex(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}

	return fmt.Sprint(id)
}

func idFromRequest(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}

	return id, nil
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Logger.Debug("body decoding failed", zap.Error(err))
		return errs.ErrInvalidBody
	}

	return nil
}

// findAll drains a query into raw documents so callers return stored
// fields untouched. The result is never nil, a miss serializes as [].
func findAll(ctx context.Context, c *mongo.Collection, filter bson.M) ([]bson.M, error) {
	cursor, err := c.Find(ctx, filter)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	docs := []bson.M{}
	for cursor.Next(ctx) {
		doc := bson.M{}
		if err := cursor.Decode(&doc); err != nil {
			log.Logger.Error("decode error", zap.Error(err))
			return nil, errs.ErrDatabase
		}

		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return docs, nil
}

// applyUpdate is the single update routine behind every PATCH route.
// Whether a miss may create the document is the caller's explicit choice,
// never a property of the collection.
func applyUpdate(ctx context.Context, c *mongo.Collection, filter, set bson.M, upsert bool) (*updateAck, error) {
	res, err := c.UpdateOne(ctx, filter, bson.M{"$set": set}, options.Update().SetUpsert(upsert))
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return &updateAck{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
