package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	SetActive(ctx context.Context, id string, active bool) error
}
