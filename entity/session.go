package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Session is live-session metadata shown on the platform schedule.
type Session struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Speaker         string             `bson:"speaker" json:"speaker"`
	ScheduledTime   string             `bson:"scheduledTime" json:"scheduledTime"`
	DurationMinutes int32              `bson:"durationMinutes" json:"durationMinutes"`
	Link            string             `bson:"link" json:"link"`
}
