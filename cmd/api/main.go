package main

import (
	"fmt"
	"net/http"

	"github.com/worklog-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/worklog-hq/attendance-backend-go/internal/handler/http"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklog-hq/attendance-backend-go/internal/service/attendance"
	authService "github.com/worklog-hq/attendance-backend-go/internal/service/auth"
	taskService "github.com/worklog-hq/attendance-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, taskHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
