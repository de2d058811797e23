package usecases

import (
	"testing"
	"time"

	"finance-server/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase() (*AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	tokens := auth.NewTokenIssuer("usecase-test-secret", time.Hour)
	return NewAuthUseCase(repo, tokens), repo
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "correct-horse",
	}
}

func TestRegister(t *testing.T) {
	uc, _ := newAuthUseCase()

	result, err := uc.Register(registerInput())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ada@example.com", result.User.Email)

	// The token must resolve back to the new user
	userID, err := uc.Tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)
}

func TestRegisterMissingFields(t *testing.T) {
	uc, _ := newAuthUseCase()

	in := registerInput()
	in.Email = ""
	_, err := uc.Register(in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "all fields are required", verr.Error())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Username = "someone-else"
	_, err = uc.Register(dup)

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Username = "someone-else"
	dup.Email = "ADA@Example.COM"
	_, err = uc.Register(dup)

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Email = "other@example.com"
	_, err = uc.Register(dup)

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	uc, _ := newAuthUseCase()

	in := registerInput()
	in.Email = "  Ada@Example.COM  "
	result, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", result.User.Email)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	uc, repo := newAuthUseCase()

	result, err := uc.Register(registerInput())
	require.NoError(t, err)

	stored, err := repo.GetByIDWithHash(result.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.True(t, auth.CheckPassword("correct-horse", stored.PasswordHash))
}

func TestLogin(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	result, err := uc.Login("ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	_, unknownErr := uc.Login("nobody@example.com", "correct-horse")
	_, wrongPassErr := uc.Login("ada@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestGetProfile(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	profile, err := uc.GetProfile(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Username)
	// The read path never loads the hash
	assert.Empty(t, profile.PasswordHash)
}

func TestGetProfileUnknownUser(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.GetProfile("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	first := "Augusta"
	updated, err := uc.UpdateProfile(registered.User.ID, ProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "ada", updated.Username)
}

func TestUpdateProfileTakenUsername(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	other := registerInput()
	other.Username = "grace"
	other.Email = "grace@example.com"
	registered, err := uc.Register(other)
	require.NoError(t, err)

	taken := "ada"
	_, err = uc.UpdateProfile(registered.User.ID, ProfileUpdate{Username: &taken})

	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestUpdateProfileKeepOwnIdentity(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	// Re-submitting your own email and username is not a conflict
	email := "ada@example.com"
	username := "ada"
	updated, err := uc.UpdateProfile(registered.User.ID, ProfileUpdate{Email: &email, Username: &username})
	require.NoError(t, err)
	assert.Equal(t, "ada", updated.Username)
}

func TestUpdateProfilePreservesPassword(t *testing.T) {
	uc, repo := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	first := "Augusta"
	_, err = uc.UpdateProfile(registered.User.ID, ProfileUpdate{FirstName: &first})
	require.NoError(t, err)

	// Login must still work after a profile-only update
	_, err = uc.Login("ada@example.com", "correct-horse")
	require.NoError(t, err)

	stored, err := repo.GetByIDWithHash(registered.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUpdatePassword(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	err = uc.UpdatePassword(registered.User.ID, "correct-horse", "battery-staple")
	require.NoError(t, err)

	_, err = uc.Login("ada@example.com", "battery-staple")
	assert.NoError(t, err)
	_, err = uc.Login("ada@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, err := uc.Register(registerInput())
	require.NoError(t, err)

	err = uc.UpdatePassword(registered.User.ID, "not-my-password", "battery-staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Old password still works
	_, err = uc.Login("ada@example.com", "correct-horse")
	assert.NoError(t, err)
}
