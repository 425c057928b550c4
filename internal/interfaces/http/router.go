package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jpfarias/assistec-api/internal/application/auth"
	"github.com/jpfarias/assistec-api/internal/application/usecase"
	"github.com/jpfarias/assistec-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ClientUC    *usecase.ClientUseCase
	EquipmentUC *usecase.EquipmentUseCase
	OrderUC     *usecase.OrderUseCase
	OrderPDFUC  *usecase.OrderPDFUseCase
	ChecklistUC *usecase.ChecklistUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	clientHandler := NewClientHandler(deps.ClientUC)
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	checklistHandler := NewChecklistHandler(deps.ChecklistUC)

	bearer := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (login público; o resto exige Bearer Token)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", bearer, authHandler.Me)
	authGroup.Post("/verify-token", bearer, authHandler.VerifyToken)
	authGroup.Post("/logout", bearer, authHandler.Logout)

	// Users (criação e desativação só para admin)
	users := app.Group("/users", bearer)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Orders e seus recursos satélites. Os sub-recursos de caminho fixo
	// (clients, equipments, technicians, checklists) registram ANTES de
	// /orders/:id para não serem capturados pelo parâmetro.
	orders := app.Group("/orders", bearer)

	orders.Post("/clients/", clientHandler.Create)
	orders.Get("/clients/", clientHandler.List)

	orders.Post("/equipments/", equipmentHandler.Create)
	orders.Get("/equipments/", equipmentHandler.List)

	orders.Get("/technicians/", userHandler.Technicians)

	orders.Post("/checklists/", checklistHandler.Create)
	orders.Get("/checklists/", checklistHandler.List)
	orders.Get("/checklists/:id", checklistHandler.GetByID)

	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Put("/:id/assign-technician", orderHandler.AssignTechnician)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/pdf", orderHandler.PDF)
}
