package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"jetsetgo/internal/api"
	"jetsetgo/internal/auth"
	"jetsetgo/internal/repository"
	"jetsetgo/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	userSvc := service.NewUserService(userRepo)
	reservationSvc := service.NewReservationService(reservationRepo, service.NewSenderService())

	userHandler := api.NewUserHandler(userSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)

	r := mux.NewRouter()
	r.Use(api.RequestIDMiddleware)
	r.Use(auth.TokenMiddleware)

	r.HandleFunc("/api/signup", userHandler.Signup).Methods("POST")
	r.HandleFunc("/api/login", userHandler.Login).Methods("POST")
	r.HandleFunc("/api/userinfo", userHandler.UserInfo).Methods("GET")

	r.HandleFunc("/api/reserve", reservationHandler.ReserveDriver).Methods("POST")
	r.HandleFunc("/api/lounge", reservationHandler.ReserveLounge).Methods("POST")
	r.HandleFunc("/api/parking", reservationHandler.ReserveParking).Methods("POST")
	r.HandleFunc("/api/companion", reservationHandler.ReserveCompanion).Methods("POST")
	r.HandleFunc("/api/bookings", reservationHandler.ListBookings).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
