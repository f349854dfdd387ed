package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	policyHandler PolicyHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin surface
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Put("/password", authHandler.ChangePassword)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", employeeHandler.Create)
					r.Get("/", employeeHandler.List)
					r.Put("/{employeeID}", employeeHandler.Update)
					r.Delete("/{employeeID}", employeeHandler.Delete)
				})

				r.Get("/departments", employeeHandler.ListDepartments)

				r.Route("/attendances", func(r chi.Router) {
					r.Post("/", attendanceHandler.Seed)
					r.Get("/", attendanceHandler.List)
					r.Delete("/", attendanceHandler.Delete)
					r.Put("/{recordID}", attendanceHandler.UpdateRecord)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Route("/overtime", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListOvertimeRequests)
						r.Put("/approve", attendanceHandler.ApproveOvertime)
						r.Put("/reject", attendanceHandler.RejectOvertime)
					})
					r.Route("/forgotten-checkout", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListForgottenCheckoutRequests)
						r.Put("/approve", attendanceHandler.ApproveForgottenCheckout)
						r.Put("/reject", attendanceHandler.RejectForgottenCheckout)
					})
					r.Route("/leave", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListLeaveRequests)
						r.Put("/approve", attendanceHandler.ApproveLeave)
						r.Put("/reject", attendanceHandler.RejectLeave)
					})
				})

				r.Route("/policy", func(r chi.Router) {
					r.Get("/", policyHandler.Get)
					r.Put("/", policyHandler.Update)
				})

				r.Route("/payrolls", func(r chi.Router) {
					r.Post("/", payrollHandler.Compute)
					r.Get("/", payrollHandler.List)
					r.Get("/{employeeID}/detail", payrollHandler.Detail)
				})
			})

			// Employee self-service surface
			r.Route("/employee", func(r chi.Router) {
				r.Use(middleware.EmployeeOnly)

				r.Get("/me", employeeHandler.GetOwnProfile)
				r.Put("/me/contact", employeeHandler.UpdateOwnContact)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetOwn)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Route("/overtime", func(r chi.Router) {
						r.Post("/", attendanceHandler.RequestOvertime)
						r.Get("/", attendanceHandler.ListOwnOvertimeRequests)
						r.Delete("/", attendanceHandler.WithdrawOvertimeRequest)
					})
					r.Route("/forgotten-checkout", func(r chi.Router) {
						r.Post("/", attendanceHandler.ReportForgottenCheckout)
						r.Get("/", attendanceHandler.ListOwnForgottenCheckoutRequests)
						r.Delete("/", attendanceHandler.WithdrawForgottenCheckoutRequest)
					})
					r.Route("/leave", func(r chi.Router) {
						r.Post("/", attendanceHandler.RequestLeave)
						r.Get("/", attendanceHandler.ListOwnLeaveRequests)
						r.Delete("/", attendanceHandler.WithdrawLeaveRequest)
					})
				})
			})
		})
	})
	return r
}
