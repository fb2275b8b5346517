package kvstore

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type sessionRepository struct {
	store repository.KeyValueStore
	keys  Keys
}

func NewSessionRepository(store repository.KeyValueStore, keys Keys) repository.SessionRepository {
	return &sessionRepository{store: store, keys: keys}
}

// Get returns nil, nil when the scope is logged out.
func (r *sessionRepository) Get(ctx context.Context, scope string) (*entity.Session, error) {
	var session entity.Session
	found, err := loadJSON(ctx, r.store, r.keys.Scoped(scope, sessionKeyName), &session)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, scope string, session *entity.Session) error {
	return saveJSON(ctx, r.store, r.keys.Scoped(scope, sessionKeyName), session)
}

func (r *sessionRepository) Delete(ctx context.Context, scope string) error {
	return remove(ctx, r.store, r.keys.Scoped(scope, sessionKeyName))
}

func (r *sessionRepository) GetRememberedEmail(ctx context.Context, scope string) (string, error) {
	return loadString(ctx, r.store, r.keys.Scoped(scope, rememberKeyName))
}

func (r *sessionRepository) SaveRememberedEmail(ctx context.Context, scope, email string) error {
	return saveString(ctx, r.store, r.keys.Scoped(scope, rememberKeyName), email)
}
