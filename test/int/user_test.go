package int

import (
	"context"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Users", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	users := func() []bson.M {
		cursor, err := client.Database("examinationSystem").Collection("users").Find(context.Background(), bson.M{})
		Expect(err).To(BeNil())
		var docs []bson.M
		Expect(cursor.All(context.Background(), &docs)).To(BeNil())
		return docs
	}

	Describe("badge patch by email", func() {
		Specify("patching an unknown email creates exactly one document with the patched fields", func() {
			w := do(http.MethodPatch, "/users/new@test.test", strings.NewReader(`{"badge":"gold"}`), "application/json")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeAck(w)["upsertedCount"]).To(BeEquivalentTo(1))

			docs := users()
			Expect(docs).To(HaveLen(1))
			Expect(docs[0]["email"]).To(Equal("new@test.test"))
			Expect(docs[0]["badge"]).To(Equal("gold"))
		})

		Specify("patching an existing email merges without dropping untouched fields", func() {
			w := do(http.MethodPost, "/users", strings.NewReader(`{"email":"a@test.test","name":"Alex","badge":"silver"}`), "application/json")
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodPatch, "/users/a@test.test", strings.NewReader(`{"badge":"gold"}`), "application/json")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeAck(w)["matchedCount"]).To(BeEquivalentTo(1))

			docs := users()
			Expect(docs).To(HaveLen(1))
			Expect(docs[0]["badge"]).To(Equal("gold"))
			Expect(docs[0]["name"]).To(Equal("Alex"))
		})
	})

	Describe("admin promotion by id", func() {
		Specify("promoting an existing user sets the role and keeps the rest", func() {
			do(http.MethodPost, "/users", strings.NewReader(`{"email":"a@test.test","name":"Alex"}`), "application/json")
			id := users()[0]["_id"].(primitive.ObjectID)

			w := do(http.MethodPatch, "/users/admin/"+id.Hex(), nil, "")
			Expect(w.Code).To(Equal(http.StatusOK))

			docs := users()
			Expect(docs).To(HaveLen(1))
			Expect(docs[0]["role"]).To(Equal("admin"))
			Expect(docs[0]["name"]).To(Equal("Alex"))
		})

		Specify("promoting an absent id fabricates a document holding only the role", func() {
			id := primitive.NewObjectID()
			w := do(http.MethodPatch, "/users/admin/"+id.Hex(), nil, "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeAck(w)["upsertedCount"]).To(BeEquivalentTo(1))

			docs := users()
			Expect(docs).To(HaveLen(1))
			Expect(docs[0]).To(HaveLen(2))
			Expect(docs[0]["_id"]).To(Equal(id))
			Expect(docs[0]["role"]).To(Equal("admin"))
		})
	})
})

var _ = Describe("Wishlist", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	Specify("listing filters by the exact email", func() {
		do(http.MethodPost, "/wishlist", strings.NewReader(`{"email":"a@test.test","examName":"Algebra"}`), "application/json")
		do(http.MethodPost, "/wishlist", strings.NewReader(`{"email":"b@test.test","examName":"History"}`), "application/json")

		docs := decodeDocs(do(http.MethodGet, "/wishlist?email=a@test.test", nil, ""))
		Expect(docs).To(HaveLen(1))
		Expect(docs[0]["examName"]).To(Equal("Algebra"))
	})

	Specify("entries are deletable by id", func() {
		do(http.MethodPost, "/wishlist", strings.NewReader(`{"email":"a@test.test","examName":"Algebra"}`), "application/json")
		docs := decodeDocs(do(http.MethodGet, "/wishlist?email=a@test.test", nil, ""))
		id := docs[0]["_id"].(string)

		w := do(http.MethodDelete, "/wishlist/"+id, nil, "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decodeAck(w)["deletedCount"]).To(BeEquivalentTo(1))

		Expect(decodeDocs(do(http.MethodGet, "/wishlist?email=a@test.test", nil, ""))).To(BeEmpty())
	})
})

var _ = Describe("Sessions", func() {
	BeforeEach(func() {
		cleanupMongo()
	})

	Specify("a patch on an unknown id never creates a session", func() {
		w := do(http.MethodPatch, "/session/653a0d2d2f1b2c3d4e5f6071",
			strings.NewReader(`{"title":"Ghost","description":"","speaker":"","scheduledTime":"","durationMinutes":0,"link":""}`),
			"application/json")
		Expect(w.Code).To(Equal(http.StatusOK))

		ack := decodeAck(w)
		Expect(ack["matchedCount"]).To(BeEquivalentTo(0))
		Expect(ack["upsertedCount"]).To(BeEquivalentTo(0))

		Expect(decodeDocs(do(http.MethodGet, "/session", nil, ""))).To(BeEmpty())
	})
})
