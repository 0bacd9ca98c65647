package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"moviebag/internal/config"
	domainMovie "moviebag/internal/domain/movie"
	domainUser "moviebag/internal/domain/user"
	"moviebag/internal/logger"
	"moviebag/internal/middleware"
	"moviebag/internal/usecase/auth"
	"moviebag/internal/usecase/movie"
	"moviebag/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- in-memory stores ---

type memUserRepo struct {
	byEmail map[string]*domainUser.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*domainUser.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *domainUser.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domainUser.ErrEmailTaken
	}
	u.ID = uuid.New()
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domainUser.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) SetResetToken(_ context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			h, e := tokenHash, expiresAt
			u.ResetTokenHash = &h
			u.ResetTokenExpiresAt = &e
			return nil
		}
	}
	return domainUser.ErrNotFound
}

func (r *memUserRepo) ConsumePasswordReset(_ context.Context, tokenHash, passwordHash string, now time.Time) error {
	for _, u := range r.byEmail {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash && u.ResetTokenExpiresAt.After(now) {
			u.PasswordHash = passwordHash
			u.ResetTokenHash = nil
			u.ResetTokenExpiresAt = nil
			return nil
		}
	}
	return domainUser.ErrInvalidResetToken
}

type memMovieRepo struct {
	movies []*domainMovie.Movie
}

func (r *memMovieRepo) Create(_ context.Context, m *domainMovie.Movie) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	r.movies = append(r.movies, m)
	return nil
}

func (r *memMovieRepo) GetByID(_ context.Context, movieID uuid.UUID) (*domainMovie.Movie, error) {
	for _, m := range r.movies {
		if m.ID == movieID {
			return m, nil
		}
	}
	return nil, domainMovie.ErrNotFound
}

func (r *memMovieRepo) GetAll(_ context.Context) ([]*domainMovie.Movie, error) {
	return r.movies, nil
}

type memMailer struct {
	sent []string // bodies
}

func (m *memMailer) Send(_, _, body string) error {
	m.sent = append(m.sent, body)
	return nil
}

// --- harness ---

func testConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Reset: config.ResetConfig{TokenTTLMinutes: 30, LinkBaseURL: "http://localhost:8080/reset"},
	}
}

func newTestRouter() (*gin.Engine, *memMailer) {
	cfg := testConfig()
	mailer := &memMailer{}

	authHandler := NewAuthHandler(auth.NewService(newMemUserRepo(), mailer, cfg))
	movieHandler := NewMovieHandler(movie.NewService(&memMovieRepo{}))

	router := gin.New()
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	movieHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	movieHandler.RegisterProtectedRoutes(protected)

	return router, mailer
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- movies ---

func TestListMovies_Empty(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/movies", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSignupLoginCreateList(t *testing.T) {
	router, _ := newTestRouter()
	creds := gin.H{"email": "a@x.com", "password": "mycoolpassword"}

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", creds, "")
	require.Equal(t, http.StatusOK, w.Code)
	signupID, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, signupID)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", creds, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)

	w = doJSON(router, http.MethodPost, "/api/v1/movies", gin.H{
		"name":   "Star Wars: The Rise of Skywalker",
		"casts":  []string{"Daisy Ridley", "Adam Driver"},
		"genres": []string{"Fantasy", "Sci-fi"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	movieID, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, movieID)

	w = doJSON(router, http.MethodGet, "/api/v1/movies", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Star Wars: The Rise of Skywalker", listed[0]["name"])
	assert.Equal(t, []interface{}{"Daisy Ridley", "Adam Driver"}, listed[0]["casts"])
	assert.Equal(t, []interface{}{"Fantasy", "Sci-fi"}, listed[0]["genres"])
	assert.Equal(t, signupID, listed[0]["added_by"])

	w = doJSON(router, http.MethodGet, "/api/v1/movies/"+movieID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Star Wars: The Rise of Skywalker", decodeBody(t, w)["name"])
}

func TestGetMovie_NotFound(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/v1/movies/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/movies/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMovie_Unauthorized(t *testing.T) {
	router, _ := newTestRouter()
	payload := gin.H{"name": "M", "casts": []string{}, "genres": []string{}}

	// No token
	w := doJSON(router, http.MethodPost, "/api/v1/movies", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed token
	w = doJSON(router, http.MethodPost, "/api/v1/movies", payload, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong scheme
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", strings.NewReader(`{"name":"M"}`))
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Expired token
	expired, err := utils.GenerateToken(uuid.New(), "test-secret", -1)
	require.NoError(t, err)
	w = doJSON(router, http.MethodPost, "/api/v1/movies", payload, expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with a different secret
	forged, err := utils.GenerateToken(uuid.New(), "other-secret", 1)
	require.NoError(t, err)
	w = doJSON(router, http.MethodPost, "/api/v1/movies", payload, forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- auth ---

func TestSignup_DuplicateEmail(t *testing.T) {
	router, _ := newTestRouter()
	creds := gin.H{"email": "a@x.com", "password": "mycoolpassword"}

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", creds, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/signup", creds, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_InvalidBody(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "a@x.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_SameResponseForUnknownEmailAndWrongPassword(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "a@x.com", "password": "mycoolpassword"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	wrongPass := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "a@x.com", "password": "wrongpassword"}, "")
	unknown := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "nobody@x.com", "password": "mycoolpassword"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestForgotPassword_SameResponseEitherWay(t *testing.T) {
	router, mailer := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "a@x.com", "password": "mycoolpassword"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	known := doJSON(router, http.MethodPost, "/api/v1/auth/forgot", gin.H{"email": "a@x.com"}, "")
	unknown := doJSON(router, http.MethodPost, "/api/v1/auth/forgot", gin.H{"email": "nobody@x.com"}, "")

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())

	// Only the existing account got an email.
	assert.Len(t, mailer.sent, 1)
}

func TestResetPassword_FullFlow(t *testing.T) {
	router, mailer := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/signup", gin.H{"email": "a@x.com", "password": "mycoolpassword"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/forgot", gin.H{"email": "a@x.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 1)

	idx := strings.Index(mailer.sent[0], "token=")
	require.GreaterOrEqual(t, idx, 0)
	raw := mailer.sent[0][idx+len("token=") : idx+len("token=")+64]

	w = doJSON(router, http.MethodPost, "/api/v1/auth/reset", gin.H{"token": raw, "password": "brandnewpassword"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	// New password works, old one is gone.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "a@x.com", "password": "brandnewpassword"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "a@x.com", "password": "mycoolpassword"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The token was consumed.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/reset", gin.H{"token": raw, "password": "anothernewpass"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/reset", gin.H{"token": "bogus", "password": "brandnewpassword"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
