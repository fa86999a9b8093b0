package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// FindByEmail devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
