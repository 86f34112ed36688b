package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// AnswerSubmission is one uploaded answer script: the scalar exam fields
// from the multipart form plus the answer files ordered by their
// submission index.
type AnswerSubmission struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ExamID     string             `bson:"examId" json:"examId"`
	ExamName   string             `bson:"examName" json:"examName"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Marks      string             `bson:"marks,omitempty" json:"marks,omitempty"`
	GivenMarks string             `bson:"givenMarks,omitempty" json:"givenMarks,omitempty"`
	Answers    []AnswerFile       `bson:"answers" json:"answers"`
}

type AnswerFile struct {
	FileName   string `bson:"fileName" json:"fileName"`
	FileBuffer []byte `bson:"fileBuffer" json:"fileBuffer"`
}
