package usecases

import (
	"errors"
	"strings"

	"finance-server/auth"
	"finance-server/entities"
	"finance-server/repositories"

	"gorm.io/gorm"
)

type AuthUseCase struct {
	Users  repositories.UserRepository
	Tokens *auth.TokenIssuer
}

func NewAuthUseCase(users repositories.UserRepository, tokens *auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{Users: users, Tokens: tokens}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// AuthResult is what signup and signin hand back: the public user
// fields plus a fresh bearer token.
type AuthResult struct {
	User  *entities.User
	Token string
}

// Register creates an account and logs it in.
func (uc *AuthUseCase) Register(in RegisterInput) (*AuthResult, error) {
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, validation("all fields are required")
	}

	taken, err := uc.Users.Taken(in.Email, in.Username, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("user already exists with this email or username")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
	}
	if err := uc.Users.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, validation("email and password are required")
	}

	user, err := uc.Users.GetByEmailWithHash(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetProfile(userID string) (*entities.User, error) {
	user, err := uc.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ProfileUpdate carries the updatable profile fields; nil means leave
// the field alone.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
}

func (uc *AuthUseCase) UpdateProfile(userID string, in ProfileUpdate) (*entities.User, error) {
	user, err := uc.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		if *in.FirstName == "" {
			return nil, validation("firstname cannot be empty")
		}
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if *in.LastName == "" {
			return nil, validation("lastname cannot be empty")
		}
		user.LastName = *in.LastName
	}

	identityChanged := false
	if in.Username != nil && *in.Username != user.Username {
		if *in.Username == "" {
			return nil, validation("username cannot be empty")
		}
		user.Username = *in.Username
		identityChanged = true
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" {
			return nil, validation("email cannot be empty")
		}
		if email != user.Email {
			user.Email = email
			identityChanged = true
		}
	}

	if identityChanged {
		taken, err := uc.Users.Taken(user.Email, user.Username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, conflict("user already exists with this email or username")
		}
	}

	if err := uc.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password before accepting the new
// one.
func (uc *AuthUseCase) UpdatePassword(userID, current, newPassword string) error {
	if current == "" || newPassword == "" {
		return validation("current and new password are required")
	}

	user, err := uc.Users.GetByIDWithHash(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !auth.CheckPassword(current, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return uc.Users.UpdatePassword(user.ID, hash)
}
