package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishlistEntry references an exam a user bookmarked. The referenced exam
// is not checked for existence.
type WishlistEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	ExamID   string             `bson:"examId,omitempty" json:"examId,omitempty"`
	ExamName string             `bson:"examName,omitempty" json:"examName,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
}
