package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

const defaultAvatarFormat = "https://ui-avatars.com/api/?name=%s&background=1d9bf0&color=fff"

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type OAuthInput struct {
	Email    string
	Name     string
	Avatar   string
	Provider string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a credentials-backed account. The handle is derived
// from the email local part; collisions get a numeric suffix.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("All fields are required")
	}
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	username, err := s.generateUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Username: username,
		Avatar:   defaultAvatar(name),
		Provider: models.ProviderCredentials,
	}

	// The unique indexes on email and username are the final arbiter
	// under concurrent registration; Create surfaces a ConflictError.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// AuthenticateCredentials verifies an email/password pair. A missing
// account and a wrong password both yield the same error.
func (s *UserService) AuthenticateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil || user.Password == "" {
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}

	return user, nil
}

// ResolveOAuthUser finds or creates the account behind an external
// identity, keyed by email. A credentials account with the same email
// is linked to the provider rather than duplicated.
func (s *UserService) ResolveOAuthUser(ctx context.Context, in OAuthInput) (*models.User, error) {
	if in.Provider != models.ProviderGoogle && in.Provider != models.ProviderGithub {
		return nil, models.NewValidationError("Unsupported OAuth provider")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, models.NewValidationError("OAuth profile has no email")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if user != nil {
		if user.Provider != in.Provider {
			user.Provider = in.Provider
			if in.Avatar != "" {
				user.Avatar = in.Avatar
			}
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = validation.UsernameBase(email)
	}

	username, err := s.generateUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	avatar := in.Avatar
	if avatar == "" {
		avatar = defaultAvatar(name)
	}

	user = &models.User{
		Name:     name,
		Email:    email,
		Username: username,
		Avatar:   avatar,
		Provider: in.Provider,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two sign-ins for the same new identity can race here; the
		// loser converges on the row the winner inserted.
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeConflict {
			return s.refetchByEmail(ctx, email)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) refetchByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewInternalError(fmt.Errorf("user %s vanished after unique violation", email))
	}
	return user, nil
}

// generateUsername probes base, base1, base2, ... until a free handle
// turns up. The probe count is bounded by the current user total, so
// it always terminates.
func (s *UserService) generateUsername(ctx context.Context, email string) (string, error) {
	base := validation.UsernameBase(email)

	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	candidate := base
	for i := int64(1); ; i++ {
		taken, err := s.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", models.NewInternalError(err)
		}
		if !taken {
			return candidate, nil
		}
		if i > total+1 {
			return "", models.NewInternalError(fmt.Errorf("no free username for base %q", base))
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

func defaultAvatar(name string) string {
	return fmt.Sprintf(defaultAvatarFormat, url.QueryEscape(name))
}
