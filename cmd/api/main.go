package main

import (
	"fmt"
	"net/http"

	"github.com/tamabee-group/api-hr-sub001/internal/config"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	appHTTP "github.com/tamabee-group/api-hr-sub001/internal/handler/http"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/clock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/jwt"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/lock"
	"github.com/tamabee-group/api-hr-sub001/internal/repository/memory"
	"github.com/tamabee-group/api-hr-sub001/internal/repository/postgresql"
	adjustmentService "github.com/tamabee-group/api-hr-sub001/internal/service/adjustment"
	attendanceService "github.com/tamabee-group/api-hr-sub001/internal/service/attendance"
	scheduleService "github.com/tamabee-group/api-hr-sub001/internal/service/schedule"
)

type repositories struct {
	tx         database.TxManager
	attendance attendance.AttendanceRepository
	breaks     attendance.BreakRepository
	schedules  schedule.WorkScheduleRepository
	assigns    schedule.ScheduleAssignmentRepository
	adjust     adjustment.AdjustmentRepository
	employees  employee.EmployeeRepository
	settings   company.SettingsRepository
}

func buildRepositories(cfg *config.Config) (repositories, error) {
	if cfg.App.StorageDriver == "memory" {
		return repositories{
			tx:         memory.NewTxManager(),
			attendance: memory.NewAttendanceRepository(),
			breaks:     memory.NewBreakRepository(),
			schedules:  memory.NewWorkScheduleRepository(),
			assigns:    memory.NewScheduleAssignmentRepository(),
			adjust:     memory.NewAdjustmentRepository(),
			employees:  memory.NewEmployeeRepository(),
			settings:   memory.NewCompanySettingsRepository(),
		}, nil
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return repositories{}, fmt.Errorf("connect to database: %w", err)
	}
	return repositories{
		tx:         postgresql.NewTxManager(db),
		attendance: postgresql.NewAttendanceRepository(db),
		breaks:     postgresql.NewBreakRepository(db),
		schedules:  postgresql.NewWorkScheduleRepository(db),
		assigns:    postgresql.NewScheduleAssignmentRepository(db),
		adjust:     postgresql.NewAdjustmentRepository(db),
		employees:  postgresql.NewEmployeeRepository(db),
		settings:   postgresql.NewCompanySettingsRepository(db),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		fmt.Println("Error building repositories:", err)
		return
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.System()

	// One keyed mutex shared by both services so adjustment approval and live
	// attendance writes serialize on the same employee-day.
	dayLocks := lock.NewKeyedMutex()

	scheduleSvc := scheduleService.NewScheduleService(repos.schedules, repos.assigns, repos.employees)
	attendanceSvc := attendanceService.NewAttendanceService(
		clk,
		dayLocks,
		repos.attendance,
		repos.breaks,
		repos.employees,
		repos.settings,
		scheduleSvc,
	)
	adjustmentSvc := adjustmentService.NewAdjustmentService(
		repos.tx,
		clk,
		dayLocks,
		repos.adjust,
		repos.attendance,
		repos.breaks,
		attendanceSvc,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	adjustmentHandler := appHTTP.NewAdjustmentHandler(adjustmentSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		scheduleHandler,
		adjustmentHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
