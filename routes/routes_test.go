package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	associateRepo "serenia/database/repository/associate"
	"serenia/handlers"
	"serenia/models"
	"serenia/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssociateRepo is a minimal in-memory AssociateRepository for exercising
// the route guards.
type fakeAssociateRepo struct {
	associates map[string]*models.Associate
	deleted    []string
}

func newFakeAssociateRepo(assocs ...*models.Associate) *fakeAssociateRepo {
	repo := &fakeAssociateRepo{associates: make(map[string]*models.Associate)}
	for _, a := range assocs {
		repo.associates[a.ID] = a
	}
	return repo
}

func (r *fakeAssociateRepo) GetByID(id string) (*models.Associate, error) {
	a, ok := r.associates[id]
	if !ok {
		return nil, associateRepo.ErrNotFound
	}
	return a, nil
}

func (r *fakeAssociateRepo) GetAll() ([]models.Associate, error) {
	var out []models.Associate
	for _, a := range r.associates {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAssociateRepo) GetByDesignation(designation string) ([]models.Associate, error) {
	var out []models.Associate
	for _, a := range r.associates {
		if a.Designation == designation {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAssociateRepo) Create(a *models.Associate) error {
	r.associates[a.ID] = a
	return nil
}

func (r *fakeAssociateRepo) ReplaceVersioned(a *models.Associate) error {
	r.associates[a.ID] = a
	return nil
}

func (r *fakeAssociateRepo) Delete(id string) error {
	if _, ok := r.associates[id]; !ok {
		return associateRepo.ErrNotFound
	}
	delete(r.associates, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func directoryRouter(repo *fakeAssociateRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	associateHandler := handlers.NewAssociateHandler(repo)
	hb := &handlers.HandlerBundle{
		AssociateRepo:          repo,
		CreateAssociateHandler: associateHandler.CreateAssociateHandler,
		GetAssociateHandler:    associateHandler.GetAssociateHandler,
		ListAssociatesHandler:  associateHandler.ListAssociatesHandler,
		DeleteAssociateHandler: associateHandler.DeleteAssociateHandler,
	}
	RegisterAssociateRoutes(r, hb)
	return r
}

func bearerFor(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(subject, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestDirectoryManagementRequiresAdmin(t *testing.T) {
	repo := newFakeAssociateRepo(&models.Associate{
		ID:          "victim-1",
		Name:        "Dr. Vera Lind",
		Designation: models.DesignationPsychologist,
	})
	router := directoryRouter(repo)

	// A plain client token must not reach the delete handler.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/associates/victim-1", nil)
	req.Header.Set("Authorization", bearerFor(t, "random-client", models.RoleSubject))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.deleted)
	_, err := repo.GetByID("victim-1")
	assert.NoError(t, err)

	// A doctor token is not enough either.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/associates/victim-1", nil)
	req.Header.Set("Authorization", bearerFor(t, "victim-1", models.RoleDoctor))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.deleted)

	// No token at all is unauthorized.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/associates/victim-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// An admin token goes through.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/associates/victim-1", nil)
	req.Header.Set("Authorization", bearerFor(t, "root", models.RoleAdmin))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"victim-1"}, repo.deleted)
}

func TestDirectoryReadsArePublic(t *testing.T) {
	repo := newFakeAssociateRepo(&models.Associate{
		ID:          "assoc-1",
		Name:        "Mara Oduya",
		Designation: models.DesignationCosmetologist,
	})
	router := directoryRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/associates", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/associates/assoc-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
