package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"required"`
}

type LoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type StrengthLevel string

const (
	StrengthNone   StrengthLevel = "none"
	StrengthWeak   StrengthLevel = "weak"
	StrengthMedium StrengthLevel = "medium"
	StrengthStrong StrengthLevel = "strong"
)

type Strength struct {
	Score int           `json:"score"`
	Level StrengthLevel `json:"level"`
}

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

type AuthService interface {
	Register(ctx context.Context, scope string, in RegisterInput) (*entity.Session, error)
	Login(ctx context.Context, scope string, in LoginInput) (*entity.Session, error)
	Logout(ctx context.Context, scope string) error
	// CurrentUser returns nil, nil when the scope is logged out.
	CurrentUser(ctx context.Context, scope string) (*entity.Session, error)
	IsLoggedIn(ctx context.Context, scope string) bool
	RememberedEmail(ctx context.Context, scope string) string
	Profile(ctx context.Context, scope string) (*entity.Profile, error)
	PasswordStrength(password string) Strength
}

type AuthServiceConfig struct {
	BcryptCost int
}

type authService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	cart       CartService
	wishlist   WishlistService
	validator  *Validator
	log        logger.Logger
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	cart CartService,
	wishlist WishlistService,
	log logger.Logger,
	cfg AuthServiceConfig,
) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &authService{
		users:      users,
		sessions:   sessions,
		cart:       cart,
		wishlist:   wishlist,
		validator:  NewValidator(),
		log:        log,
		bcryptCost: cost,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, scope string, in RegisterInput) (*entity.Session, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		s.log.Errorf("Failed to create user %s: %v", in.Email, err)
		return nil, fmt.Errorf("could not create account: %w", err)
	}
	s.log.Infof("Registered user %s (ID: %s)", user.Email, user.ID)

	return s.startSession(ctx, scope, user)
}

func (s *authService) Login(ctx context.Context, scope string, in LoginInput) (*entity.Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Errorf("Failed to look up user %s: %v", in.Email, err)
		return nil, fmt.Errorf("could not log in: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		s.log.Warnf("Failed login attempt for %s", in.Email)
		return nil, ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, scope, user)
	if err != nil {
		return nil, err
	}
	if in.RememberMe {
		if err := s.sessions.SaveRememberedEmail(ctx, scope, in.Email); err != nil {
			s.log.Warnf("Failed to remember email for scope %s: %v", scope, err)
		}
	}
	return session, nil
}

func (s *authService) startSession(ctx context.Context, scope string, user *entity.User) (*entity.Session, error) {
	session := entity.NewSession(user, s.now())
	if err := s.sessions.Save(ctx, scope, session); err != nil {
		s.log.Errorf("Failed to save session for scope %s: %v", scope, err)
		return nil, fmt.Errorf("could not start session: %w", err)
	}
	s.log.Infof("User %s logged in on scope %s", user.Email, scope)
	return session, nil
}

func (s *authService) Logout(ctx context.Context, scope string) error {
	if err := s.sessions.Delete(ctx, scope); err != nil {
		s.log.Errorf("Failed to delete session for scope %s: %v", scope, err)
		return fmt.Errorf("could not log out: %w", err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, scope string) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, scope)
	if err != nil {
		if errors.Is(err, repository.ErrCorruptData) {
			s.log.Warnf("Discarding unreadable session for scope %s: %v", scope, err)
			return nil, nil
		}
		return nil, fmt.Errorf("could not read session: %w", err)
	}
	return session, nil
}

func (s *authService) IsLoggedIn(ctx context.Context, scope string) bool {
	session, err := s.CurrentUser(ctx, scope)
	if err != nil {
		s.log.Errorf("Failed to read session for scope %s: %v", scope, err)
		return false
	}
	return session != nil
}

func (s *authService) RememberedEmail(ctx context.Context, scope string) string {
	email, err := s.sessions.GetRememberedEmail(ctx, scope)
	if err != nil {
		s.log.Warnf("Failed to read remembered email for scope %s: %v", scope, err)
		return ""
	}
	return email
}

func (s *authService) Profile(ctx context.Context, scope string) (*entity.Profile, error) {
	session, err := s.CurrentUser(ctx, scope)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotLoggedIn
	}

	profile := &entity.Profile{
		UserID:        session.UserID,
		Name:          session.Name,
		FirstName:     firstName(session.Name),
		Email:         session.Email,
		WishlistCount: len(s.wishlist.GetWishlist(ctx, scope)),
		CartCount:     s.cart.GetCartCount(ctx, scope),
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	switch {
	case err == nil:
		profile.JoinedAt = user.CreatedAt
	case errors.Is(err, repository.ErrNotFound):
		s.log.Warnf("Session for scope %s refers to unknown user %s", scope, session.UserID)
	default:
		s.log.Errorf("Failed to load user %s for profile: %v", session.UserID, err)
	}
	return profile, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "User"
	}
	return fields[0]
}

// PasswordStrength scores one point each for length >= 8, length >= 12, a
// digit, mixed case and a symbol.
func (s *authService) PasswordStrength(password string) Strength {
	if password == "" {
		return Strength{Level: StrengthNone}
	}
	score := 0
	length := utf8.RuneCountInString(password)
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}
	var digit, lower, upper, symbol bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			symbol = true
		}
	}
	if digit {
		score++
	}
	if lower && upper {
		score++
	}
	if symbol {
		score++
	}

	level := StrengthStrong
	switch {
	case score <= 2:
		level = StrengthWeak
	case score <= 4:
		level = StrengthMedium
	}
	return Strength{Score: score, Level: level}
}
