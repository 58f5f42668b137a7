package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/garudasec/billing-backend-go/internal/config"
	appHTTP "github.com/garudasec/billing-backend-go/internal/handler/http"
	"github.com/garudasec/billing-backend-go/internal/pkg/cron"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/garudasec/billing-backend-go/internal/pkg/jwt"
	"github.com/garudasec/billing-backend-go/internal/pkg/oauth"
	"github.com/garudasec/billing-backend-go/internal/pkg/pdf"
	"github.com/garudasec/billing-backend-go/internal/pkg/storage"
	"github.com/garudasec/billing-backend-go/internal/repository/postgresql"
	authService "github.com/garudasec/billing-backend-go/internal/service/auth"
	billRateService "github.com/garudasec/billing-backend-go/internal/service/billrate"
	clientService "github.com/garudasec/billing-backend-go/internal/service/client"
	employeeService "github.com/garudasec/billing-backend-go/internal/service/employee"
	"github.com/garudasec/billing-backend-go/internal/service/file"
	invoiceService "github.com/garudasec/billing-backend-go/internal/service/invoice"
	payrollService "github.com/garudasec/billing-backend-go/internal/service/payroll"
	rateService "github.com/garudasec/billing-backend-go/internal/service/rate"
	userService "github.com/garudasec/billing-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	billRateRepo := postgresql.NewBillRateRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	pdfGenerator := pdf.NewGenerator(cfg.Company.Name, cfg.Company.Address, cfg.Company.GSTIN)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	clientSvc := clientService.NewClientService(clientRepo, unitRepo)
	rateSvc := rateService.NewRateService(rateRepo)
	billRateSvc := billRateService.NewBillRateService(billRateRepo)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, clientRepo, pdfGenerator)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, pdfGenerator)
	fileSvc := file.NewFileService(fileStorage, documentRepo, employeeRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterTokenPurgeJob(scheduler, JWTService)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Client:   appHTTP.NewClientHandler(clientSvc),
		Rate:     appHTTP.NewRateHandler(rateSvc),
		BillRate: appHTTP.NewBillRateHandler(billRateSvc),
		Invoice:  appHTTP.NewInvoiceHandler(invoiceSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:  appHTTP.NewPayrollHandler(payrollSvc),
		User:     appHTTP.NewUserHandler(userSvc),
		Document: appHTTP.NewDocumentHandler(fileSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
