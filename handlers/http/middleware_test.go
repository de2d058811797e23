package httpHandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-server/auth"
	"finance-server/entities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const handlerTestSecret = "handler-test-secret"

// fakeUserRepo holds users in memory; misses surface as
// gorm.ErrRecordNotFound like the postgres implementation.
type fakeUserRepo struct {
	users []*entities.User
}

func (f *fakeUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			out.PasswordHash = ""
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmailWithHash(email string) (*entities.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByIDWithHash(id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Taken(email, username, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.ID == excludeID {
			continue
		}
		if strings.EqualFold(u.Email, email) || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(user *entities.User) error {
	for _, u := range f.users {
		if u.ID == user.ID {
			u.FirstName = user.FirstName
			u.LastName = user.LastName
			u.Username = user.Username
			u.Email = user.Email
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func seedUser(t *testing.T, repo *fakeUserRepo) *entities.User {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &entities.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func protectedRouter(repo *fakeUserRepo, tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(repo, tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": CurrentUser(c).ID})
	})
	return router
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	repo := &fakeUserRepo{}
	tokens := auth.NewTokenIssuer(handlerTestSecret, time.Hour)
	router := protectedRouter(repo, tokens)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), CodeNoToken)
		})
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	repo := &fakeUserRepo{}
	tokens := auth.NewTokenIssuer(handlerTestSecret, time.Hour)
	router := protectedRouter(repo, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), CodeInvalidToken)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo)
	expired := auth.NewTokenIssuer(handlerTestSecret, -time.Minute)
	tokens := auth.NewTokenIssuer(handlerTestSecret, time.Hour)
	router := protectedRouter(repo, tokens)

	token, err := expired.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), CodeTokenExpired)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	repo := &fakeUserRepo{}
	tokens := auth.NewTokenIssuer(handlerTestSecret, time.Hour)
	router := protectedRouter(repo, tokens)

	// Valid token for a user the store has never seen
	token, err := tokens.Issue(uuid.New().String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), CodeUserNotFound)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo)
	tokens := auth.NewTokenIssuer(handlerTestSecret, time.Hour)
	router := protectedRouter(repo, tokens)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
}
