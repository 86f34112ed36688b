package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Exam is the stored shape shared by the "exams" and the short-answer "cq"
// collections. Question bodies are not validated by the backend.
type Exam struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Questions   []Question         `bson:"questions" json:"questions"`
}

type Question struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
	Answer   string   `bson:"answer,omitempty" json:"answer,omitempty"`
	Marks    int32    `bson:"marks,omitempty" json:"marks,omitempty"`
}
