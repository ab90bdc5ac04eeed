package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/news-api/internal/application"
	"github.com/dkovalev/news-api/internal/domain/entity"
	"github.com/dkovalev/news-api/internal/domain/repository"
	"github.com/dkovalev/news-api/internal/interface/middleware"
	"github.com/dkovalev/news-api/pkg/helpers"
	"github.com/dkovalev/news-api/pkg/validation"
)

type fakeNewsRepo struct {
	news   map[int64]*entity.News
	nextID int64
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{news: map[int64]*entity.News{}}
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n, ok := f.news[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNewsRepo) Create(ctx context.Context, n *entity.News) error {
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Now().UTC().Truncate(time.Second)
	cp := *n
	f.news[n.ID] = &cp
	return nil
}

func (f *fakeNewsRepo) UpdatePartial(ctx context.Context, id int64, apply func(*entity.News) error) (*entity.News, error) {
	n, ok := f.news[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	if err := apply(&cp); err != nil {
		return nil, err
	}
	cp.ID = n.ID
	cp.CreatedAt = n.CreatedAt
	f.news[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.news[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.news, id)
	return nil
}

func newNewsRouter(repo repository.NewsRepository, tm *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	svc := application.NewNewsService(repo, testLogger())
	h := NewNewsHandler(svc, testLogger())

	r := gin.New()
	r.GET("/news/:id", h.Get)
	r.POST("/news", middleware.OptionalIdentity(tm), h.Create)
	r.PATCH("/news/:id", h.Patch)
	r.DELETE("/news/:id", h.Delete)
	return r
}

func TestCreateNewsAnonymous(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	r := newNewsRouter(newFakeNewsRepo(), tm)

	w, body := doJSON(t, r, http.MethodPost, "/news", `{"title":"hello","content":"world"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "hello", body["title"])
	assert.Equal(t, "world", body["content"])
	assert.Nil(t, body["user"])

	date, ok := body["date"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, date)
	assert.NoError(t, err)
}

func TestCreateNewsWithBearerToken(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	repo := newFakeNewsRepo()
	r := newNewsRouter(repo, tm)

	token, _, err := tm.GenerateToken(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{"title":"hello","content":"world"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["user"])
}

func TestCreateNewsInvalidBearerTokenStaysAnonymous(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	r := newNewsRouter(newFakeNewsRepo(), tm)

	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{"title":"hello","content":"world"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["user"])
}

func TestCreateNewsShortTitle(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	r := newNewsRouter(newFakeNewsRepo(), tm)

	w, body := doJSON(t, r, http.MethodPost, "/news", `{"title":"ab","content":"world"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])

	desc, ok := body["description"].([]any)
	require.True(t, ok)
	require.Len(t, desc, 1)
	fe := desc[0].(map[string]any)
	assert.Equal(t, "title", fe["field"])
}

func TestGetNewsNotFound(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	r := newNewsRouter(newFakeNewsRepo(), tm)

	w, body := doJSON(t, r, http.MethodGet, "/news/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "news is not found", body["description"])
}

func TestPatchNews(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	repo := newFakeNewsRepo()
	r := newNewsRouter(repo, tm)

	w, _ := doJSON(t, r, http.MethodPost, "/news", `{"title":"hello","content":"world"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := *repo.news[1]

	w, body := doJSON(t, r, http.MethodPatch, "/news/1", `{"content":"updated"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", body["title"])
	assert.Equal(t, "updated", body["content"])
	assert.Equal(t, created.CreatedAt.Format(time.RFC3339), body["date"])
}

func TestPatchNewsUnknownFieldsIgnored(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	repo := newFakeNewsRepo()
	r := newNewsRouter(repo, tm)

	w, _ := doJSON(t, r, http.MethodPost, "/news", `{"title":"hello","content":"world"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// id and created_at are not patchable attributes; unknown keys are dropped
	w, body := doJSON(t, r, http.MethodPatch, "/news/1", `{"id":99,"date":"1999-01-01T00:00:00Z","title":"new title"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "new title", body["title"])

	stored := repo.news[1]
	assert.Equal(t, int64(1), stored.ID)
}

func TestDeleteNews(t *testing.T) {
	tm := helpers.NewTokenManager("testsecret", time.Hour)
	r := newNewsRouter(newFakeNewsRepo(), tm)

	w, _ := doJSON(t, r, http.MethodPost, "/news", `{"title":"hello","content":"world"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodDelete, "/news/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])

	w, _ = doJSON(t, r, http.MethodGet, "/news/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/news/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
