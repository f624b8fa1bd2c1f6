package http

import (
	"log/slog"
	"os"

	"github.com/fitcore/gym-backend-go/internal/config"
	"github.com/fitcore/gym-backend-go/internal/handler/http/middleware"
	"github.com/fitcore/gym-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Booking    BookingHandler
	Attendance AttendanceHandler
	Staff      StaffHandler
	Holiday    HolidayHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fitcore-gym"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/bookings", func(r chi.Router) {
				// Member-facing booking flow
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireMember)
					r.Get("/availability", h.Booking.Availability)
					r.Post("/", h.Booking.Create)
					r.Get("/my", h.Booking.ListMy)
					r.Post("/{id}/cancel", h.Booking.Cancel)
				})

				// Check-in desk marks sessions completed
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireFrontDesk)
					r.Post("/{id}/complete", h.Booking.Complete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/my", h.Attendance.ListMy)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", h.Staff.Create)
				r.Get("/", h.Staff.ListByBranch)
				r.Get("/{id}", h.Staff.Get)
				r.Put("/{id}/shifts", h.Staff.UpdateShifts)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/statement", h.Payroll.GetStatement)
			})
		})
	})
	return r
}
