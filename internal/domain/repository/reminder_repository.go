package repository

import "github.com/documentflow/documentflow-api/internal/domain/entity"

// ReminderRepository define el puerto de persistencia para Reminder.
type ReminderRepository interface {
	Create(reminder *entity.Reminder) error
	GetByID(id string) (*entity.Reminder, error)
	ListAll() ([]*entity.Reminder, error)
	Update(reminder *entity.Reminder) error
	MarkSent(id string) error
	Delete(id string) error
}
