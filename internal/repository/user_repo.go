package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

// UserRepository is the global registry of shoppers. Create returns
// ErrAlreadyExists when the email is taken; GetByEmail and GetByID return
// ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// SessionRepository holds the per-scope login session and the remembered
// login email.
type SessionRepository interface {
	Get(ctx context.Context, scope string) (*entity.Session, error)
	Save(ctx context.Context, scope string, session *entity.Session) error
	Delete(ctx context.Context, scope string) error
	GetRememberedEmail(ctx context.Context, scope string) (string, error)
	SaveRememberedEmail(ctx context.Context, scope, email string) error
}

// PreferenceRepository stores small per-scope string settings such as the
// selected shipping method.
type PreferenceRepository interface {
	GetShippingMethod(ctx context.Context, scope string) (string, error)
	SaveShippingMethod(ctx context.Context, scope, method string) error
}
