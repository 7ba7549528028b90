package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"examdesk/internal/auth"
	"examdesk/internal/model"
	"examdesk/internal/service"
)

// fakeUserRepo is an in-memory UserRepository for exercising the handler and
// service together without a database.
type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmailFold(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func newAuthTestHandler(t *testing.T) (*AuthHandler, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := auth.NewJWTService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	authService := service.NewAuthService(repo, jwtService)
	return NewAuthHandler(authService, 7*24*time.Hour), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
	}))
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func refreshCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == refreshCookieName {
			return cookie
		}
	}
	t.Fatal("refresh cookie not set")
	return nil
}

func TestAuthHandler_LoginSetsRefreshCookie(t *testing.T) {
	h, repo := newAuthTestHandler(t)
	seedUser(t, repo, "user@example.com", "password123")

	e := echo.New()
	c, rec := postJSON(e, "/auth", `{"email":"user@example.com","password":"password123"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)

	cookie := refreshCookieFrom(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	h, repo := newAuthTestHandler(t)
	seedUser(t, repo, "user@example.com", "password123")

	e := echo.New()
	c, rec := postJSON(e, "/auth", `{"email":"user@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_RefreshFromCookie(t *testing.T) {
	h, repo := newAuthTestHandler(t)
	seedUser(t, repo, "user@example.com", "password123")

	e := echo.New()
	c, rec := postJSON(e, "/auth", `{"email":"user@example.com","password":"password123"}`)
	require.NoError(t, h.Login(c))
	cookie := refreshCookieFrom(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Refresh(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)
}

func TestAuthHandler_RefreshWithoutCookie(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Refresh(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestAuthHandler_RefreshTamperedCookie(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Refresh(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "some-token"})
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cookie cleared")

	cleared := refreshCookieFrom(t, rec)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestAuthHandler_LogoutWithoutCookie(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Logout(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_SignUpAndLogin(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	c, rec := postJSON(e, "/auth/signup", `{"email":"new@example.com","password":"password123"}`)
	require.NoError(t, h.SignUp(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "New user new@example.com created")

	c, rec = postJSON(e, "/auth", `{"email":"new@example.com","password":"password123"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_SignUpDuplicate(t *testing.T) {
	h, repo := newAuthTestHandler(t)
	seedUser(t, repo, "taken@example.com", "password123")

	e := echo.New()
	c, rec := postJSON(e, "/auth/signup", `{"email":"TAKEN@example.com","password":"password123"}`)
	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email in Use")
}

func TestAuthHandler_ResetPasswordUnknownUser(t *testing.T) {
	h, _ := newAuthTestHandler(t)

	e := echo.New()
	c, rec := postJSON(e, "/auth/reset", `{"email":"ghost@example.com","password":"new-password"}`)
	require.NoError(t, h.ResetPassword(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Such User")
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	h, repo := newAuthTestHandler(t)
	seedUser(t, repo, "user@example.com", "old-password")

	e := echo.New()
	c, rec := postJSON(e, "/auth/reset", `{"email":"user@example.com","password":"new-password"}`)
	require.NoError(t, h.ResetPassword(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "change password for user: user@example.com")

	// Old credentials stop working, new ones take over.
	c, rec = postJSON(e, "/auth", `{"email":"user@example.com","password":"old-password"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = postJSON(e, "/auth", `{"email":"user@example.com","password":"new-password"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
