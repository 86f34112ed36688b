package events

import (
	"encoding/json"

	"examination-backend/log"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	GSubmitted = "submitted"
	GMarked    = "marked"
)

// GradingEvent notifies the grading pipeline that an answer script was
// submitted or marked.
type GradingEvent struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	SubmissionID string    `json:"submissionId"`
	ExamID       string    `json:"examId,omitempty"`
	Email        string    `json:"email,omitempty"`
}

// PublishGrading is fire-and-forget: a broker failure is logged and never
// fails the originating request.
func PublishGrading(event *GradingEvent) {
	if e == nil {
		return
	}

	event.ID = uuid.New()
	b, err := json.Marshal(event)
	if err != nil {
		log.Logger.Error("unable to encode event", zap.Error(err))
		return
	}

	rch, err := e.Conn.Channel()
	if err != nil {
		log.Logger.Error("queue error", zap.Error(err))
		return
	}
	defer rch.Close()

	err = rch.Publish(GradingExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
	if err != nil {
		log.Logger.Error("queue error", zap.Error(err))
	}
}
