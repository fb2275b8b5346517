package kvstore

import (
	"context"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

// userRepository keeps every registered user in one global JSON array.
type userRepository struct {
	store repository.KeyValueStore
	keys  Keys
}

func NewUserRepository(store repository.KeyValueStore, keys Keys) repository.UserRepository {
	return &userRepository{store: store, keys: keys}
}

func (r *userRepository) all(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if _, err := loadJSON(ctx, r.store, r.keys.Global(usersKeyName), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create refuses to overwrite an unreadable registry.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	users, err := r.all(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrAlreadyExists
		}
	}
	users = append(users, *user)
	return saveJSON(ctx, r.store, r.keys.Global(usersKeyName), users)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, strings.TrimSpace(email)) {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
