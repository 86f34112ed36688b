package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is identified by the store id everywhere except the badge-patch
// path, which keys on email.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Badge string             `bson:"badge,omitempty" json:"badge,omitempty"`
}
