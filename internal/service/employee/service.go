package employee

import (
	"context"
	"time"

	"github.com/garudasec/billing-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Designation:   req.Designation,
		UnitID:        req.UnitID,
		GrossSalary:   req.GrossSalary,
		Status:        employee.EmployeeStatusActive,
		JoinDate:      joinDate,
		PAN:           req.PAN,
		UAN:           req.UAN,
		ESICNo:        req.ESICNo,
		BankName:      req.BankName,
		BankAccountNo: req.BankAccount,
		BankIFSC:      req.BankIFSC,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(e), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, len(employees))
	for i, e := range employees {
		data[i] = toEmployeeResponse(e)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.Designation != nil {
		current.Designation = *req.Designation
	}
	if req.UnitID != nil {
		current.UnitID = req.UnitID
	}
	if req.GrossSalary != nil {
		current.GrossSalary = *req.GrossSalary
	}
	if req.PAN != nil {
		current.PAN = req.PAN
	}
	if req.UAN != nil {
		current.UAN = req.UAN
	}
	if req.ESICNo != nil {
		current.ESICNo = req.ESICNo
	}
	if req.BankName != nil {
		current.BankName = req.BankName
	}
	if req.BankAccount != nil {
		current.BankAccountNo = req.BankAccount
	}
	if req.BankIFSC != nil {
		current.BankIFSC = req.BankIFSC
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.Address != nil {
		current.Address = req.Address
	}

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) ResignEmployee(ctx context.Context, id string, req employee.ResignEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !current.IsActive() {
		return employee.EmployeeResponse{}, employee.ErrEmployeeResigned
	}

	resignDate, _ := time.Parse("2006-01-02", req.ResignDate)
	if resignDate.Before(current.JoinDate) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotResignable
	}

	current.Status = employee.EmployeeStatusResigned
	current.ResignDate = &resignDate

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	var resignDate *string
	if e.ResignDate != nil {
		d := e.ResignDate.Format("2006-01-02")
		resignDate = &d
	}

	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Designation:  e.Designation,
		UnitID:       e.UnitID,
		UnitName:     e.UnitName,
		ClientName:   e.ClientName,
		GrossSalary:  e.GrossSalary,
		Status:       string(e.Status),
		JoinDate:     e.JoinDate.Format("2006-01-02"),
		ResignDate:   resignDate,
		PAN:          e.PAN,
		UAN:          e.UAN,
		ESICNo:       e.ESICNo,
		BankName:     e.BankName,
		BankAccount:  e.BankAccountNo,
		BankIFSC:     e.BankIFSC,
		Phone:        e.Phone,
		Address:      e.Address,
		CreatedAt:    e.CreatedAt,
	}
}
