package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/garudasec/billing-backend-go/internal/handler/http/middleware"
	"github.com/garudasec/billing-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	Client   ClientHandler
	Rate     RateHandler
	BillRate BillRateHandler
	Invoice  InvoiceHandler
	Employee EmployeeHandler
	Payroll  PayrollHandler
	User     UserHandler
	Document DocumentHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "billing-backend"),
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.ListClients)
				r.Get("/{id}", h.Client.GetClient)
				r.Get("/{id}/units", h.Client.ListUnits)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Client.CreateClient)
					r.Put("/{id}", h.Client.UpdateClient)
					r.Delete("/{id}", h.Client.DeleteClient)
					r.Post("/{id}/units", h.Client.CreateUnit)
					r.Delete("/{id}/units/{unitID}", h.Client.DeleteUnit)
				})
			})

			r.Route("/rates", func(r chi.Router) {
				r.Get("/", h.Rate.ListRatesByClient)
				r.Get("/resolve", h.Rate.Resolve)
				r.Get("/{id}", h.Rate.GetRate)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Rate.CreateRate)
					r.Put("/{id}", h.Rate.UpdateRate)
					r.Delete("/{id}", h.Rate.DeleteRate)
				})
			})

			r.Route("/estimates", func(r chi.Router) {
				r.Post("/", h.BillRate.Estimate)
				r.Post("/save", h.BillRate.SaveEstimate)
				r.Get("/", h.BillRate.ListEstimatesByClient)
				r.Get("/{id}", h.BillRate.GetEstimate)
				r.Delete("/{id}", h.BillRate.DeleteEstimate)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", h.Invoice.CreateInvoice)
				r.Get("/", h.Invoice.ListInvoices)
				r.Get("/{id}", h.Invoice.GetInvoice)
				r.Get("/{id}/pdf", h.Invoice.DownloadInvoicePDF)
				r.Post("/{id}/issue", h.Invoice.IssueInvoice)
				r.Delete("/{id}", h.Invoice.DeleteInvoice)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Get("/{id}/documents", h.Document.ListDocuments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/resign", h.Employee.ResignEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
					r.Post("/{id}/documents", h.Document.UploadDocument)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/{id}/download", h.Document.DownloadDocument)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Document.DeleteDocument)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/slips", h.Payroll.ListSlips)
				r.Get("/slips/{id}", h.Payroll.GetSlip)
				r.Get("/slips/{id}/pdf", h.Payroll.DownloadSlipPDF)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", h.Payroll.Generate)
					r.Post("/slips/{id}/pay", h.Payroll.MarkSlipPaid)
					r.Delete("/slips/{id}", h.Payroll.DeleteSlip)
				})
			})

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.User.CreateUser)
				r.Get("/", h.User.ListUsers)
				r.Get("/{id}", h.User.GetUser)
				r.Patch("/{id}/active", h.User.SetUserActive)
			})
		})
	})
	return r
}
