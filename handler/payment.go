package handler

import (
	"net/http"

	"examination-backend/errs"
	"examination-backend/log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// paymentHandler wraps Stripe payment-intent creation and the payment
// record collection. Intent creation persists nothing: the client calls
// POST /payment after completing the payment.
type paymentHandler struct {
	c *mongo.Collection
}

func NewPaymentHandler(client *mongo.Client) *paymentHandler {
	return &paymentHandler{
		c: client.Database(dbName).Collection("payments"),
	}
}

// minorUnits converts a price in decimal currency units to integer minor
// units, rounding halves away from zero: 19.99 -> 1999, 19.995 -> 2000.
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (h *paymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	body := struct {
		Price float64 `json:"price"`
	}{}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	if body.Price <= 0 {
		writeError(w, errs.ErrInvalidPrice)
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(body.Price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Logger.Error("payment intent creation failed", zap.Error(err))
		writeError(w, errs.ErrPaymentProvider)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": pi.ClientSecret})
}

func (h *paymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc := bson.M{}
	if err := decodeBody(r, &doc); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.c.InsertOne(r.Context(), doc)
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		writeError(w, errs.ErrDatabase)
		return
	}

	writeJSON(w, http.StatusOK, insertAck{InsertedID: res.InsertedID})
}

func (h *paymentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := findAll(r.Context(), h.c, bson.M{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}
