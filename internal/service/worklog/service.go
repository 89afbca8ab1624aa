package worklog

import (
	"context"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type WorkLogServiceImpl struct {
	workLogRepo  worklog.WorkLogRepository
	employeeRepo employee.EmployeeRepository
}

func NewWorkLogService(workLogRepo worklog.WorkLogRepository, employeeRepo employee.EmployeeRepository) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		workLogRepo:  workLogRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *WorkLogServiceImpl) Create(ctx context.Context, req worklog.CreateWorkLogRequest) (worklog.WorkLogResponse, error) {
	entry, err := worklog.NewWorkLogEntry(
		req.EmployeeID,
		req.WorkDate,
		catalog.PartType(req.PartType),
		req.JobName,
		req.ProductKey,
		req.TotalParts,
		req.Rejection,
	)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	created, err := s.workLogRepo.Create(ctx, entry)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return worklog.ToResponse(created), nil
}

func (s *WorkLogServiceImpl) Get(ctx context.Context, id string) (worklog.WorkLogResponse, error) {
	entry, err := s.workLogRepo.GetByID(ctx, id)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return worklog.ToResponse(entry), nil
}

func (s *WorkLogServiceImpl) Update(ctx context.Context, req worklog.UpdateWorkLogRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	current, err := s.workLogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	// The rejection bound has to hold against the values after the patch,
	// not against each field in isolation.
	totalParts := current.TotalParts
	if req.TotalParts != nil {
		totalParts = *req.TotalParts
	}
	rejection := current.Rejection
	if req.Rejection != nil {
		rejection = *req.Rejection
	}
	if rejection > totalParts {
		return worklog.WorkLogResponse{}, validator.ValidationErrors{
			{Field: "rejection", Message: "cannot exceed total parts"},
		}
	}

	if err := s.workLogRepo.Update(ctx, req); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	updated, err := s.workLogRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return worklog.ToResponse(updated), nil
}

func (s *WorkLogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.workLogRepo.Delete(ctx, id)
}

func (s *WorkLogServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]worklog.WorkLogResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	from, to := validator.MonthRange(month, year)
	entries, err := s.workLogRepo.ListByEmployeeDateRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]worklog.WorkLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, worklog.ToResponse(e))
	}

	return result, nil
}

func (s *WorkLogServiceImpl) ListByDate(ctx context.Context, workDate string) ([]worklog.WorkLogResponse, error) {
	if _, ok := validator.IsValidWorkDate(workDate); !ok {
		return nil, validator.ValidationErrors{
			{Field: "work_date", Message: "must be a date in YYYY-MM-DD format"},
		}
	}

	entries, err := s.workLogRepo.ListByDate(ctx, workDate)
	if err != nil {
		return nil, err
	}

	result := make([]worklog.WorkLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, worklog.ToResponse(e))
	}

	return result, nil
}
