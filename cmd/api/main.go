package main

import (
	"io"
	"log"
	"os"

	"github.com/spendwise-app/spendwise-api/internal/config"
	"github.com/spendwise-app/spendwise-api/internal/logging"
	"github.com/spendwise-app/spendwise-api/internal/repository/postgres"
	"github.com/spendwise-app/spendwise-api/internal/service"
	transporthttp "github.com/spendwise-app/spendwise-api/internal/transport/http"
	"github.com/spendwise-app/spendwise-api/internal/transport/mail"
	"github.com/spendwise-app/spendwise-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db.DB); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)

	hasher := util.NewPasswordHasher(cfg.BcryptCost)
	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	mailer := mail.NewPasswordResetMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	authService := service.NewAuthService(userRepo, hasher, jwtManager)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, hasher, mailer, cfg.FrontendBaseURL, cfg.PasswordResetTTL)
	categoryService := service.NewCategoryService(categoryRepo)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo)
	reportService := service.NewReportService(userRepo, expenseRepo)

	e := transporthttp.NewRouter(cfg.AllowOrigins)
	transporthttp.RegisterAuth(e, authService, resetService, cfg.Development())
	transporthttp.RegisterUsers(e, authService)
	transporthttp.RegisterCategories(e, authService, categoryService)
	transporthttp.RegisterExpenses(e, authService, expenseService)
	transporthttp.RegisterReports(e, authService, reportService)
	transporthttp.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
