package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Intranet-api/internal/application/auth"
	"github.com/jhoicas/Intranet-api/internal/application/usecase"
	"github.com/jhoicas/Intranet-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AccountUC    *usecase.AccountUseCase
	DepartmentUC *usecase.DepartmentUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	RequestUC    *usecase.RequestUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Los guards replican la navegación del cliente:
// sesión requerida para perfil y solicitudes, rol admin para cuentas, departamentos,
// empleados y la resolución de solicitudes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Resolver de navegación (público; token opcional)
	navHandler := NewNavigateHandler(deps.JWTSecret)
	api.Get("/navigate", navHandler.Resolve)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/verify", authHandler.Verify)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)
	protected.Put("/profile", authHandler.EditProfile)

	// Requests: crear y listar para cualquier sesión; resolver solo admin
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Put("/:index/status", RequireRole(entity.RoleAdmin), requestHandler.UpdateStatus)

	// Panel admin
	admin := protected.Group("/", RequireRole(entity.RoleAdmin))
	admin.Post("/auth/reset-password", authHandler.ResetPassword)

	accounts := admin.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Put("/:index", accountHandler.Update)
	accounts.Delete("/:index", accountHandler.Delete)

	departments := admin.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Get("/", departmentHandler.List)
	departments.Post("/", departmentHandler.Create)
	departments.Put("/:index", departmentHandler.Update)
	departments.Delete("/:index", departmentHandler.Delete)

	employees := admin.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/:index", employeeHandler.Delete)
}
