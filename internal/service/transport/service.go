package transport

import (
	"context"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type TransporterLogServiceImpl struct {
	transportRepo transport.TransporterLogRepository
	employeeRepo  employee.EmployeeRepository
}

func NewTransporterLogService(transportRepo transport.TransporterLogRepository, employeeRepo employee.EmployeeRepository) transport.TransporterLogService {
	return &TransporterLogServiceImpl{
		transportRepo: transportRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *TransporterLogServiceImpl) Create(ctx context.Context, req transport.CreateTransporterLogRequest) (transport.TransporterLogResponse, error) {
	if err := req.Validate(); err != nil {
		return transport.TransporterLogResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return transport.TransporterLogResponse{}, err
	}

	created, err := s.transportRepo.Create(ctx, transport.TransporterLogEntry{
		EmployeeID: req.EmployeeID,
		WorkDate:   req.WorkDate,
		VehicleNo:  req.VehicleNo,
		Route:      req.Route,
		Trips:      req.Trips,
		Notes:      req.Notes,
	})
	if err != nil {
		return transport.TransporterLogResponse{}, err
	}

	return transport.ToResponse(created), nil
}

func (s *TransporterLogServiceImpl) Get(ctx context.Context, id string) (transport.TransporterLogResponse, error) {
	entry, err := s.transportRepo.GetByID(ctx, id)
	if err != nil {
		return transport.TransporterLogResponse{}, err
	}

	return transport.ToResponse(entry), nil
}

func (s *TransporterLogServiceImpl) Update(ctx context.Context, req transport.UpdateTransporterLogRequest) (transport.TransporterLogResponse, error) {
	if err := req.Validate(); err != nil {
		return transport.TransporterLogResponse{}, err
	}

	if err := s.transportRepo.Update(ctx, req); err != nil {
		return transport.TransporterLogResponse{}, err
	}

	updated, err := s.transportRepo.GetByID(ctx, req.ID)
	if err != nil {
		return transport.TransporterLogResponse{}, err
	}

	return transport.ToResponse(updated), nil
}

func (s *TransporterLogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.transportRepo.Delete(ctx, id)
}

func (s *TransporterLogServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]transport.TransporterLogResponse, error) {
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
	entries, err := s.transportRepo.ListByEmployeeDateRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]transport.TransporterLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, transport.ToResponse(e))
	}

	return result, nil
}

func (s *TransporterLogServiceImpl) ListByDate(ctx context.Context, workDate string) ([]transport.TransporterLogResponse, error) {
	if _, ok := validator.IsValidWorkDate(workDate); !ok {
		return nil, validator.ValidationErrors{
			{Field: "work_date", Message: "must be a date in YYYY-MM-DD format"},
		}
	}

	entries, err := s.transportRepo.ListByDate(ctx, workDate)
	if err != nil {
		return nil, err
	}

	result := make([]transport.TransporterLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, transport.ToResponse(e))
	}

	return result, nil
}
