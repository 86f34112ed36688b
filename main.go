package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"examination-backend/events"
	"examination-backend/handler"
	"examination-backend/jwt"
	"examination-backend/log"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func envOrDefaultString(env, def string) string {
	if val, ok := os.LookupEnv(env); ok {
		return val
	}

	return def
}

func mongoURI() string {
	if uri, ok := os.LookupEnv("MONGO_URI"); ok {
		return uri
	}

	admin, ok := os.LookupEnv("DB_ADMIN")
	if !ok {
		return "mongodb://localhost:27017"
	}

	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.qkg2o.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		admin, os.Getenv("DB_PASS"),
	)
}

// guardRules is the access table the jwt guard evaluates before any
// handler body runs. Routes not listed are public.
var guardRules = map[string]jwt.Level{
	"POST /exams":                 jwt.Admin,
	"PATCH /exams/{id}":           jwt.Admin,
	"DELETE /exams/{id}":          jwt.Admin,
	"POST /cq":                    jwt.Admin,
	"PATCH /cq/{id}":              jwt.Admin,
	"DELETE /cq/{id}":             jwt.Admin,
	"POST /results":               jwt.Token,
	"GET /results":                jwt.Token,
	"GET /users":                  jwt.Token,
	"PATCH /users/{email}":        jwt.Token,
	"PATCH /users/admin/{id}":     jwt.Admin,
	"POST /pdf":                   jwt.Token,
	"GET /pdf":                    jwt.Token,
	"PATCH /pdf/{id}":             jwt.Admin,
	"POST /wishlist":              jwt.Token,
	"GET /wishlist":               jwt.Token,
	"DELETE /wishlist/{id}":       jwt.Token,
	"POST /session":               jwt.Admin,
	"PATCH /session/{id}":         jwt.Admin,
	"DELETE /session/{id}":        jwt.Admin,
	"POST /create-payment-intent": jwt.Token,
	"POST /payment":               jwt.Token,
	"GET /payment":                jwt.Token,
}

func main() {
	godotenv.Load()
	log.EnsureLogger()

	listenAddr := envOrDefaultString("PORT", "5000")
	key := []byte(envOrDefaultString("ACCESS_KEY", "test-key"))
	stripe.Key = envOrDefaultString("STRIPE_KEY", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI()).SetServerAPIOptions(serverAPI))
	if err != nil {
		log.Logger.Fatal("failed connecting to database", zap.Error(err))
	}

	events.EnsureEvents()

	examHandler := handler.NewExamHandler(client, "exams")
	cqHandler := handler.NewExamHandler(client, "cq")
	packageHandler := handler.NewPackageHandler(client)
	resultHandler := handler.NewResultHandler(client)
	userHandler := handler.NewUserHandler(client)
	wishlistHandler := handler.NewWishlistHandler(client)
	sessionHandler := handler.NewSessionHandler(client)
	submissionHandler := handler.NewSubmissionHandler(client)
	paymentHandler := handler.NewPaymentHandler(client)
	authHandler := handler.NewAuthHandler(client, key)

	r := mux.NewRouter()
	r.Use(jwt.Guard(key, guardRules))

	r.HandleFunc("/exams", examHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/exams", examHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/exams/{id}", examHandler.Update).Methods(http.MethodPatch)
	r.HandleFunc("/exams/{id}", examHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/cq", cqHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/cq", cqHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/cq/{id}", cqHandler.Update).Methods(http.MethodPatch)
	r.HandleFunc("/cq/{id}", cqHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/allPackages", packageHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/results", resultHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/results", resultHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/users/admin/{id}", userHandler.PromoteAdmin).Methods(http.MethodPatch)
	r.HandleFunc("/users/{email}", userHandler.PatchByEmail).Methods(http.MethodPatch)

	r.HandleFunc("/pdf", submissionHandler.Upload).Methods(http.MethodPost)
	r.HandleFunc("/pdf", submissionHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/pdf/{id}", submissionHandler.PatchMarks).Methods(http.MethodPatch)

	r.HandleFunc("/wishlist", wishlistHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/wishlist", wishlistHandler.ListByEmail).Methods(http.MethodGet)
	r.HandleFunc("/wishlist/{id}", wishlistHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/session", sessionHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/session", sessionHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}", sessionHandler.Update).Methods(http.MethodPatch)
	r.HandleFunc("/session/{id}", sessionHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/create-payment-intent", paymentHandler.CreateIntent).Methods(http.MethodPost)
	r.HandleFunc("/payment", paymentHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/payment", paymentHandler.List).Methods(http.MethodGet)

	r.HandleFunc("/jwt", authHandler.Token).Methods(http.MethodPost)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "server is cooking")
	}).Methods(http.MethodGet)

	origins := strings.Split(envOrDefaultString("CORS_ORIGINS", "*"), ",")
	srv := gorilla.CORS(
		gorilla.AllowedOrigins(origins),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	log.Logger.Info(fmt.Sprintf("Listening on port: %s", listenAddr))
	if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%s", listenAddr), srv); err != nil {
		log.Logger.Fatal("couldn't serve", zap.Error(err))
	}
}
