package int

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"examination-backend/entity"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Answer submissions", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	upload := func(fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for k, v := range fields {
			Expect(w.WriteField(k, v)).To(BeNil())
		}
		for field, filename := range files {
			part, err := w.CreateFormFile(field, filename)
			Expect(err).To(BeNil())
			_, err = part.Write([]byte("%PDF-1.4 " + filename))
			Expect(err).To(BeNil())
		}
		Expect(w.Close()).To(BeNil())
		return buf, w.FormDataContentType()
	}

	Specify("a two-file upload stores one submission with ordered answers", func() {
		body, contentType := upload(
			map[string]string{"examId": "E1", "examName": "Algebra", "email": "a@test.test", "totalMarks": "100"},
			map[string]string{
				"answers[0][file]": "page1.pdf",
				"answers[1][file]": "page2.pdf",
			},
		)

		w := do(http.MethodPost, "/pdf", body, contentType)
		Expect(w.Code).To(Equal(http.StatusOK))
		insertedID := decodeAck(w)["insertedId"].(string)

		id, err := primitive.ObjectIDFromHex(insertedID)
		Expect(err).To(BeNil())

		sub := &entity.AnswerSubmission{}
		err = client.Database("examinationSystem").Collection("pdfs").
			FindOne(context.Background(), bson.M{"_id": id}).Decode(sub)
		Expect(err).To(BeNil())

		Expect(sub.ExamID).To(Equal("E1"))
		Expect(sub.ExamName).To(Equal("Algebra"))
		Expect(sub.Marks).To(Equal("100"))
		Expect(sub.Answers).To(HaveLen(2))
		Expect(sub.Answers[0].FileName).To(Equal("page1.pdf"))
		Expect(sub.Answers[1].FileName).To(Equal("page2.pdf"))
	})

	Specify("gapped answer indices reject the whole request", func() {
		body, contentType := upload(
			map[string]string{"examId": "E1", "examName": "Algebra"},
			map[string]string{
				"answers[0][file]": "page1.pdf",
				"answers[2][file]": "page3.pdf",
			},
		)

		w := do(http.MethodPost, "/pdf", body, contentType)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		n, err := client.Database("examinationSystem").Collection("pdfs").
			CountDocuments(context.Background(), bson.M{})
		Expect(err).To(BeNil())
		Expect(n).To(BeEquivalentTo(0))
	})

	Specify("marks are patched in with upsert semantics", func() {
		body, contentType := upload(
			map[string]string{"examId": "E1", "examName": "Algebra"},
			map[string]string{"answers[0][file]": "page1.pdf"},
		)
		w := do(http.MethodPost, "/pdf", body, contentType)
		Expect(w.Code).To(Equal(http.StatusOK))
		insertedID := decodeAck(w)["insertedId"].(string)

		w = do(http.MethodPatch, "/pdf/"+insertedID, strings.NewReader(`{"givenMarks":"87"}`), "application/json")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeAck(w)["matchedCount"]).To(BeEquivalentTo(1))

		docs := decodeDocs(do(http.MethodGet, "/pdf", nil, ""))
		Expect(docs).To(HaveLen(1))
		Expect(docs[0]["givenMarks"]).To(Equal("87"))
	})
})
