package domain

import (
	"time"
)

// Статусы подразделений
const (
	DepartmentStatusActive    = "ACTIVE"
	DepartmentStatusInactive  = "INACTIVE"
	DepartmentStatusSuspended = "SUSPENDED"
)

// Статусы сотрудников
const (
	EmployeeStatusActive   = "ACTIVE"
	EmployeeStatusInactive = "INACTIVE"
	EmployeeStatusOnLeave  = "ON_LEAVE"
)

// Статусы графиков смен
const (
	ShiftPlanStatusDraft     = "DRAFT"
	ShiftPlanStatusActive    = "ACTIVE"
	ShiftPlanStatusPublished = "PUBLISHED"
	ShiftPlanStatusArchived  = "ARCHIVED"
)

// Department представляет подразделение организации
type Department struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(50)"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Groups      []string  `json:"groups" gorm:"serializer:json;type:text"`
	Status      string    `json:"status" gorm:"type:varchar(20);not null;default:ACTIVE"`
	ManagerID   *string   `json:"managerId" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Manager   *Employee  `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника
type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID   string    `json:"employeeId" gorm:"type:varchar(50);not null;uniqueIndex"`
	FirstName    string    `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName     string    `json:"lastName" gorm:"type:varchar(100);not null"`
	Email        *string   `json:"email,omitempty" gorm:"type:varchar(200)"`
	Phone        *string   `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Group        *string   `json:"group,omitempty" gorm:"type:varchar(100)"`
	Role         string    `json:"role" gorm:"type:varchar(100)"`
	Status       string    `json:"status" gorm:"type:varchar(20);not null;default:ACTIVE"`
	DepartmentID string    `json:"departmentId" gorm:"type:varchar(50);not null;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Department *Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// ShiftPlan представляет график смен на заданный период
type ShiftPlan struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	StartDate time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate   time.Time `json:"endDate" gorm:"type:date;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:DRAFT"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	Departments []ShiftPlanDepartment `json:"departments,omitempty" gorm:"foreignKey:ShiftPlanID"`
	ShiftTypes  []ShiftType           `json:"shiftTypes,omitempty" gorm:"foreignKey:ShiftPlanID"`
	Schedules   []Schedule            `json:"schedules,omitempty" gorm:"foreignKey:ShiftPlanID"`
}

// TableName задаёт имя таблицы для GORM
func (ShiftPlan) TableName() string {
	return "shift_plans"
}

// ShiftPlanDepartment связывает график с подразделением и хранит порядок отображения
type ShiftPlanDepartment struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShiftPlanID  string `json:"shiftPlanId" gorm:"type:varchar(36);not null;uniqueIndex:idx_plan_department"`
	DepartmentID string `json:"departmentId" gorm:"type:varchar(50);not null;uniqueIndex:idx_plan_department"`
	DisplayOrder int    `json:"displayOrder" gorm:"not null;default:0"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (ShiftPlanDepartment) TableName() string {
	return "shift_plan_departments"
}

// ShiftType представляет тип смены в рамках одного графика
type ShiftType struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Code         string    `json:"code" gorm:"type:varchar(3);not null;uniqueIndex:idx_plan_code"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Color        string    `json:"color" gorm:"type:varchar(20)"`
	StartTime    *string   `json:"startTime,omitempty" gorm:"type:varchar(5)"`
	EndTime      *string   `json:"endTime,omitempty" gorm:"type:varchar(5)"`
	RequiresTime bool      `json:"requiresTime" gorm:"not null;default:false"`
	ShiftPlanID  string    `json:"shiftPlanId" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_plan_code"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (ShiftType) TableName() string {
	return "shift_types"
}

// Schedule представляет назначение сотрудника на тип смены в конкретный день.
// ShiftPlanID дублирует график типа смены для прямых выборок по графику.
type Schedule struct {
	ID                    string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID            string    `json:"employeeId" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_plan_employee_date"`
	ShiftTypeID           string    `json:"shiftTypeId" gorm:"type:varchar(36);not null;index"`
	ShiftPlanID           string    `json:"shiftPlanId" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_plan_employee_date"`
	ShiftPlanDepartmentID *string   `json:"shiftPlanDepartmentId" gorm:"type:varchar(36);index"`
	Date                  time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_plan_employee_date"`
	CreatedAt             time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt             time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Schedule) TableName() string {
	return "schedules"
}
