package main

import (
	"fmt"
	"net/http"

	"github.com/ess-tools/attendance-report-go/internal/config"
	appHTTP "github.com/ess-tools/attendance-report-go/internal/handler/http"
	"github.com/ess-tools/attendance-report-go/internal/pkg/cron"
	"github.com/ess-tools/attendance-report-go/internal/pkg/ess"
	reportService "github.com/ess-tools/attendance-report-go/internal/service/report"
	sessionService "github.com/ess-tools/attendance-report-go/internal/service/session"
	taskService "github.com/ess-tools/attendance-report-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	essClient := ess.NewClient(cfg.ESS.BaseURL, cfg.ESS.Timeout)
	engine := reportService.NewReportService(cfg.Report.WorkingWeekendDay)
	editor := taskService.NewEditor()
	sessionSvc := sessionService.NewSessionService(essClient, engine, editor, cfg.Session.TTL)

	sessionHandler := appHTTP.NewSessionHandler(sessionSvc)
	exportHandler := appHTTP.NewExportHandler(sessionSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("session-sweep", cfg.Session.SweepInterval, sessionSvc.SweepExpired)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		sessionHandler,
		exportHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
