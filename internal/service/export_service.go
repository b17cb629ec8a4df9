package service

import (
	"context"
	"fmt"

	"github.com/shift-planner-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService строит выгрузку графика смен в формате XLSX
type ExportService interface {
	ExportPlan(ctx context.Context, planID string) (*excelize.File, string, error)
}

type exportService struct {
	planRepo repository.ShiftPlanRepository
}

// NewExportService создаёт новый экземпляр сервиса
func NewExportService(planRepo repository.ShiftPlanRepository) ExportService {
	return &exportService{planRepo: planRepo}
}

// ExportPlan формирует книгу: строка на сотрудника (подразделения в порядке
// отображения), колонка на каждый день графика, в ячейке - код типа смены
func (s *exportService) ExportPlan(ctx context.Context, planID string) (*excelize.File, string, error) {
	plan, err := s.planRepo.GetDetails(ctx, planID)
	if err != nil {
		return nil, "", err
	}

	codes := make(map[string]string, len(plan.ShiftTypes))
	for _, st := range plan.ShiftTypes {
		codes[st.ID] = st.Code
	}

	// Назначения по сотруднику и дню
	assigned := make(map[string]map[string]string)
	for _, sched := range plan.Schedules {
		day := sched.Date.Format(dateLayout)
		if assigned[sched.EmployeeID] == nil {
			assigned[sched.EmployeeID] = make(map[string]string)
		}
		assigned[sched.EmployeeID][day] = codes[sched.ShiftTypeID]
	}

	f := excelize.NewFile()
	sheet := "Schedule"
	f.SetSheetName(f.GetSheetName(0), sheet)

	f.SetCellValue(sheet, "A1", "Employee")
	f.SetCellValue(sheet, "B1", "Department")

	var days []string
	for d := plan.StartDate; !d.After(plan.EndDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	for i, day := range days {
		cell, err := excelize.CoordinatesToCellName(3+i, 1)
		if err != nil {
			return nil, "", err
		}
		f.SetCellValue(sheet, cell, day)
	}

	row := 2
	for _, link := range plan.Departments {
		if link.Department == nil {
			continue
		}
		for _, emp := range link.Department.Employees {
			nameCell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, "", err
			}
			f.SetCellValue(sheet, nameCell, emp.FirstName+" "+emp.LastName)

			deptCell, err := excelize.CoordinatesToCellName(2, row)
			if err != nil {
				return nil, "", err
			}
			f.SetCellValue(sheet, deptCell, link.Department.Name)

			for i, day := range days {
				code, ok := assigned[emp.ID][day]
				if !ok {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(3+i, row)
				if err != nil {
					return nil, "", err
				}
				f.SetCellValue(sheet, cell, code)
			}
			row++
		}
	}

	filename := fmt.Sprintf("shift-plan-%s.xlsx", plan.ID)
	return f, filename, nil
}
