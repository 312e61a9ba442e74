package repository

import (
	"context"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByCedula(ctx context.Context, cedula string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
