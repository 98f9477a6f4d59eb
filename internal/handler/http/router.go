package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopvui/backoffice-go/internal/handler/http/middleware"
	"github.com/shopvui/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	timekeepingHandler TimekeepingHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "backoffice"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", masterHandler.ListStaff)
				r.Get("/{id}", masterHandler.GetStaff)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Get("/{id}", masterHandler.GetShift)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Post("/bulk-register", scheduleHandler.BulkRegister)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/", scheduleHandler.CreateAssignments)
					r.Delete("/{id}", scheduleHandler.DeleteAssignment)
					r.Post("/swap", scheduleHandler.Swap)
				})
			})

			r.Route("/timekeeping", func(r chi.Router) {
				r.Get("/", timekeepingHandler.List)
				r.Post("/", timekeepingHandler.Record)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
				r.Get("/{id}/export", payrollHandler.Export)
				r.Get("/{id}/payslips/{staffID}/breakdown", payrollHandler.Breakdown)
				r.Get("/{id}/payslips/{staffID}/payments", payrollHandler.ListPayments)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Post("/", payrollHandler.Create)
					r.Post("/{id}/reload", payrollHandler.Reload)
					r.Post("/{id}/finalize", payrollHandler.Finalize)
					r.Delete("/{id}", payrollHandler.Delete)
					r.Patch("/{id}/payslips/{staffID}", payrollHandler.UpdatePayslip)
					r.Post("/{id}/payslips/{staffID}/payments", payrollHandler.RecordPayment)
				})
			})
		})
	})
	return r
}
