package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/documentflow/documentflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	DocumentUC     *usecase.DocumentUseCase
	DeadlineUC     *usecase.DeadlineUseCase
	NotificationUC *usecase.NotificationUseCase
	ReminderUC     *usecase.ReminderUseCase
	ReportingUC    *usecase.ReportingUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users (público: el registro llega tras autenticarse con el proveedor externo)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Register)
	users.Get("/profile/:firebaseUid", userHandler.GetProfile)
	users.Get("/stats/:userId", userHandler.Stats)
	users.Get("/activity/:userId", userHandler.Activity)

	// Documents
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/recent/:userId", documentHandler.Recent)
	documents.Get("/:userId", documentHandler.ListByUser)
	documents.Patch("/:documentId/status", documentHandler.UpdateStatus)
	documents.Delete("/:documentId", documentHandler.Delete)

	// Deadlines
	deadlines := api.Group("/deadlines")
	deadlineHandler := NewDeadlineHandler(deps.DeadlineUC)
	deadlines.Post("/", deadlineHandler.Create)
	deadlines.Get("/upcoming/:userId", deadlineHandler.Upcoming)
	deadlines.Get("/:userId", deadlineHandler.ListForUser)
	deadlines.Patch("/:deadlineId", deadlineHandler.Update)
	deadlines.Delete("/:deadlineId", deadlineHandler.Delete)

	// Notifications
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/:userId", notificationHandler.ListByUser)
	notifications.Patch("/:notificationId/read", notificationHandler.MarkRead)
	notifications.Delete("/:notificationId", notificationHandler.Delete)

	// Admin: con JWT_SECRET configurado exige Bearer + rol admin;
	// sin secret queda abierto (modo desarrollo).
	admin := api.Group("/admin")
	if deps.JWTSecret != "" {
		admin.Use(AuthMiddleware(deps.JWTSecret), RequireRole("admin"))
	}
	adminHandler := NewAdminHandler(deps.UserUC, deps.DocumentUC, deps.ReportingUC)
	admin.Get("/stats", adminHandler.Stats)
	admin.Get("/compliance-by-department", adminHandler.ComplianceByDepartment)
	admin.Get("/document-types", adminHandler.DocumentTypes)
	admin.Get("/users-status", adminHandler.UsersStatus)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Patch("/users/:userId", adminHandler.UpdateUser)
	admin.Delete("/users/:userId", adminHandler.DeleteUser)
	admin.Get("/departments", adminHandler.Departments)
	admin.Get("/documents", adminHandler.ListDocuments)

	reminders := admin.Group("/reminders")
	reminderHandler := NewReminderHandler(deps.ReminderUC)
	reminders.Get("/", reminderHandler.List)
	reminders.Post("/", reminderHandler.Create)
	reminders.Patch("/:reminderId", reminderHandler.Update)
	reminders.Delete("/:reminderId", reminderHandler.Delete)
	reminders.Post("/:reminderId/send", reminderHandler.Send)
}
