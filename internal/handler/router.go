package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shift-planner-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	corsOrigin   string
	deptHandler  *DepartmentHandler
	empHandler   *EmployeeHandler
	planHandler  *ShiftPlanHandler
	typeHandler  *ShiftTypeHandler
	schedHandler *ScheduleHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	planHandler *ShiftPlanHandler,
	typeHandler *ShiftTypeHandler,
	schedHandler *ScheduleHandler,
	corsOrigin string,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		logger:       logger,
		corsOrigin:   corsOrigin,
		deptHandler:  deptHandler,
		empHandler:   empHandler,
		planHandler:  planHandler,
		typeHandler:  typeHandler,
		schedHandler: schedHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/api/departments", r.departmentsRouter)
	r.mux.HandleFunc("/api/departments/", r.departmentsRouter)
	r.mux.HandleFunc("/api/employees", r.employeesRouter)
	r.mux.HandleFunc("/api/employees/", r.employeesRouter)
	r.mux.HandleFunc("/api/shift-plans", r.shiftPlansRouter)
	r.mux.HandleFunc("/api/shift-plans/", r.shiftPlansRouter)
	r.mux.HandleFunc("/api/shift-types", r.shiftTypesRouter)
	r.mux.HandleFunc("/api/shift-types/", r.shiftTypesRouter)
	r.mux.HandleFunc("/api/schedules/", r.schedulesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(r.corsOrigin)(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// departmentsRouter обрабатывает все запросы к /api/departments
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/departments")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.List(w, req)
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 && parts[0] == "employees" {
		// GET /api/departments/employees - все сотрудники всех подразделений
		if req.Method == http.MethodGet {
			r.empHandler.List(w, req)
			return
		}
		methodNotAllowed(w)
		return
	}

	if len(parts) == 1 {
		// /api/departments/{id}
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.GetByID(w, req, parts[0])
		case http.MethodPut:
			r.deptHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.deptHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 && parts[1] == "employees" {
		// /api/departments/{id}/employees
		if req.Method == http.MethodGet {
			r.deptHandler.ListEmployees(w, req, parts[0])
			return
		}
		methodNotAllowed(w)
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// employeesRouter обрабатывает все запросы к /api/employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/employees")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 {
		// /api/employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.empHandler.GetByID(w, req, parts[0])
		case http.MethodPut:
			r.empHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.empHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// shiftPlansRouter обрабатывает все запросы к /api/shift-plans
func (r *Router) shiftPlansRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/shift-plans")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.planHandler.List(w, req)
		case http.MethodPost:
			r.planHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 {
		// /api/shift-plans/{id}
		switch req.Method {
		case http.MethodGet:
			r.planHandler.GetByID(w, req, parts[0])
		case http.MethodPut:
			r.planHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.planHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 {
		switch parts[1] {
		case "details":
			// GET /api/shift-plans/{id}/details
			if req.Method == http.MethodGet {
				r.planHandler.GetDetails(w, req, parts[0])
				return
			}
		case "status":
			// PATCH /api/shift-plans/{id}/status
			if req.Method == http.MethodPatch {
				r.planHandler.UpdateStatus(w, req, parts[0])
				return
			}
		case "department-order":
			// PATCH /api/shift-plans/{id}/department-order
			if req.Method == http.MethodPatch {
				r.planHandler.ReorderDepartments(w, req, parts[0])
				return
			}
		case "schedules":
			// POST /api/shift-plans/{id}/schedules
			if req.Method == http.MethodPost {
				r.schedHandler.ApplyChanges(w, req, parts[0])
				return
			}
		case "export":
			// GET /api/shift-plans/{id}/export
			if req.Method == http.MethodGet {
				r.planHandler.Export(w, req, parts[0])
				return
			}
		default:
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		methodNotAllowed(w)
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// shiftTypesRouter обрабатывает все запросы к /api/shift-types
func (r *Router) shiftTypesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/shift-types")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.typeHandler.List(w, req)
		case http.MethodPost:
			r.typeHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}
		return
	}

	parts := strings.Split(path, "/")

	if len(parts) == 1 {
		// /api/shift-types/{id}
		switch req.Method {
		case http.MethodGet:
			r.typeHandler.GetByID(w, req, parts[0])
		case http.MethodPut:
			r.typeHandler.Update(w, req, parts[0])
		case http.MethodDelete:
			r.typeHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// schedulesRouter обрабатывает все запросы к /api/schedules
func (r *Router) schedulesRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/api/schedules")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")

	if len(parts) == 1 && parts[0] != "" {
		switch req.Method {
		case http.MethodPost:
			// POST /api/schedules/{planId} - пакетное изменение назначений
			r.schedHandler.ApplyChanges(w, req, parts[0])
		case http.MethodDelete:
			// DELETE /api/schedules/{id} - удаление одного назначения
			r.schedHandler.Delete(w, req, parts[0])
		default:
			methodNotAllowed(w)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}
