package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"

	"examination-backend/entity"
	"examination-backend/errs"
	"examination-backend/events"
	"examination-backend/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20

// Answer files arrive as multipart parts named answers[<index>][file].
var answerFieldPattern = regexp.MustCompile(`^answers\[(\d+)\]\[file\]$`)

type submissionHandler struct {
	c *mongo.Collection
}

func NewSubmissionHandler(client *mongo.Client) *submissionHandler {
	return &submissionHandler{
		c: client.Database(dbName).Collection("pdfs"),
	}
}

// collectAnswerFiles reconstructs the ordered answer list from the form.
// Parts not matching the field pattern are ignored. The result is ordered
// by the submitted index, and indices must be unique and contiguous from
// zero, regardless of the order parts arrived in.
func collectAnswerFiles(form *multipart.Form) ([]entity.AnswerFile, error) {
	type indexedFile struct {
		index int
		file  entity.AnswerFile
	}

	var collected []indexedFile
	for field, headers := range form.File {
		m := answerFieldPattern.FindStringSubmatch(field)
		if m == nil {
			continue
		}

		index, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errs.ErrAnswerIndices
		}

		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}

			buf, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}

			collected = append(collected, indexedFile{
				index: index,
				file:  entity.AnswerFile{FileName: fh.Filename, FileBuffer: buf},
			})
		}
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	files := make([]entity.AnswerFile, 0, len(collected))
	for i, v := range collected {
		// Repeated field names surface here as duplicate indices.
		if v.index != i {
			return nil, errs.ErrAnswerIndices
		}

		files = append(files, v.file)
	}

	return files, nil
}

// writeUploadError is the fixed-shape failure body of the upload route.
// Clients may rely on this body, unlike every other error response.
func writeUploadError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
}

func (h *submissionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Logger.Debug("multipart parsing failed", zap.Error(err))
		writeUploadError(w)
		return
	}

	files, err := collectAnswerFiles(r.MultipartForm)
	if err != nil {
		if errors.Is(err, errs.ErrAnswerIndices) {
			writeError(w, err)
			return
		}

		log.Logger.Error("reading answer files failed", zap.Error(err))
		writeUploadError(w)
		return
	}

	sub := &entity.AnswerSubmission{
		ExamID:   r.FormValue("examId"),
		ExamName: r.FormValue("examName"),
		Email:    r.FormValue("email"),
		Marks:    r.FormValue("totalMarks"),
		Answers:  files,
	}

	res, err := h.c.InsertOne(r.Context(), sub)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		writeUploadError(w)
		return
	}

	events.PublishGrading(&events.GradingEvent{
		Type:         events.GSubmitted,
		SubmissionID: insertedIDHex(res.InsertedID),
		ExamID:       sub.ExamID,
		Email:        sub.Email,
	})

	writeJSON(w, http.StatusOK, insertAck{InsertedID: res.InsertedID})
}

func (h *submissionHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// PatchMarks upserts givenMarks by id once an examiner has graded the
// script.
func (h *submissionHandler) PatchMarks(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body := bson.M{}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	givenMarks, ok := body["givenMarks"]
	if !ok {
		writeError(w, errs.ErrInvalidBody)
		return
	}

	ack, err := applyUpdate(r.Context(), h.c, bson.M{"_id": id}, bson.M{"givenMarks": givenMarks}, true)
	if err != nil {
		writeError(w, err)
		return
	}

	events.PublishGrading(&events.GradingEvent{
		Type:         events.GMarked,
		SubmissionID: id.Hex(),
	})

	writeJSON(w, http.StatusOK, ack)
}
