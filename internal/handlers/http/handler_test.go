package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inmocrm/backend/internal/handlers/middleware"
	"github.com/inmocrm/backend/internal/infrastructure/auth"
	"github.com/inmocrm/backend/internal/infrastructure/logging"
	"github.com/inmocrm/backend/internal/infrastructure/persistence/postgres"
	"github.com/inmocrm/backend/internal/services"
)

// setupTestServer levanta la API completa sobre SQLite en memoria.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(postgres.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	realEstateRepo := postgres.NewRealEstateRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	agentRepo := postgres.NewAgentRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	favoriteRepo := postgres.NewPropertyFavoriteRepository(db)
	viewRepo := postgres.NewPropertyViewRepository(db)
	interactionRepo := postgres.NewClientInteractionRepository(db)
	uow := postgres.NewUnitOfWork(db)

	log := logging.NewSlogLogger("error")
	tokens := auth.NewTokenService("clave-de-prueba", "1h")

	handlers := Handlers{
		RealEstates: NewRealEstateHandler(services.NewRealEstateService(realEstateRepo, agentRepo, propertyRepo, projectRepo, log)),
		Roles:       NewRoleHandler(services.NewRoleService(roleRepo, userRepo, uow, log)),
		Users: NewUserHandler(
			services.NewUserService(userRepo, roleRepo, agentRepo, tokens, log),
			middleware.JWTAuth(tokens),
		),
		Agents:       NewAgentHandler(services.NewAgentService(agentRepo, userRepo, realEstateRepo, clientRepo, viewRepo, interactionRepo, log)),
		Clients:      NewClientHandler(services.NewClientService(clientRepo, agentRepo, realEstateRepo, interactionRepo, log)),
		Projects:     NewProjectHandler(services.NewProjectService(projectRepo, realEstateRepo, propertyRepo, log)),
		Properties:   NewPropertyHandler(services.NewPropertyService(propertyRepo, realEstateRepo, projectRepo, agentRepo, viewRepo, favoriteRepo, log)),
		Favorites:    NewPropertyFavoriteHandler(services.NewPropertyFavoriteService(favoriteRepo, propertyRepo, userRepo, log)),
		Views:        NewPropertyViewHandler(services.NewPropertyViewService(viewRepo, propertyRepo, userRepo, clientRepo, agentRepo, log)),
		Interactions: NewClientInteractionHandler(services.NewClientInteractionService(interactionRepo, clientRepo, agentRepo, propertyRepo, log)),
	}

	engine := gin.New()
	RegisterRoutes(engine, handlers)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestRealEstateEndpoints(t *testing.T) {
	engine := setupTestServer(t)

	t.Run("crea una inmobiliaria", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/real-estates", gin.H{
			"name": "Acme", "address": "Calle Mayor 1", "phone": "555-0100", "email": "info@acme.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Acme", body["name"])
	})

	t.Run("nombre duplicado responde 400", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/real-estates", gin.H{
			"name": "Acme", "address": "Otra", "phone": "555", "email": "x@x.com",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Ya existe una inmobiliaria con ese nombre", decodeBody(t, w)["message"])
	})

	t.Run("cuerpo inválido responde 400 con los campos", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/real-estates", gin.H{"name": "A"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		message, _ := decodeBody(t, w)["message"].(string)
		assert.True(t, strings.HasPrefix(message, "Datos inválidos en los campos:"), message)
	})

	t.Run("lista las inmobiliarias", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/real-estates", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})

	t.Run("inexistente responde 404", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/real-estates/00000000-0000-0000-0000-000000000000", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Inmobiliaria no encontrada", decodeBody(t, w)["message"])
	})

	t.Run("stats de una inmobiliaria", func(t *testing.T) {
		list := doJSON(t, engine, http.MethodGet, "/api/real-estates", nil)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &rows))
		id, _ := rows[0]["id"].(string)

		w := doJSON(t, engine, http.MethodGet, "/api/real-estates/"+id+"/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body, "total_projects")
		assert.Contains(t, body, "total_properties")
		assert.Contains(t, body, "total_agents")
	})
}

func TestUserAndAuthEndpoints(t *testing.T) {
	engine := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/users", gin.H{
		"username": "ana", "email": "ana@mail.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID, _ := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, userID)

	t.Run("la respuesta nunca incluye la contraseña", func(t *testing.T) {
		assert.NotContains(t, w.Body.String(), "secreto123")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("login con contraseña incorrecta responde 401", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users/login", gin.H{
			"email": "ana@mail.com", "password": "mala",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Credenciales inválidas", decodeBody(t, w)["message"])
	})

	var token string
	t.Run("login correcto devuelve la sesión", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users/login", gin.H{
			"email": "ana@mail.com", "password": "secreto123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "ana", body["username"])
		token, _ = body["token"].(string)
		assert.NotEmpty(t, token)
		assert.Contains(t, body, "permissions")
	})

	t.Run("me sin token responde 401", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/users/me", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token no proporcionado", decodeBody(t, w)["message"])
	})

	t.Run("me con token inválido responde 401", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/users/me", nil, "Authorization", "Bearer basura")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token inválido", decodeBody(t, w)["message"])
	})

	t.Run("me con token devuelve el perfil", func(t *testing.T) {
		require.NotEmpty(t, token)
		w := doJSON(t, engine, http.MethodGet, "/api/users/me", nil, "Authorization", "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, decodeBody(t, w)["id"])
	})
}

func TestDeleteGuardsOverHTTP(t *testing.T) {
	engine := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/real-estates", gin.H{
		"name": "Guardada", "address": "x", "phone": "555", "email": "g@g.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	realEstateID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/users", gin.H{
		"username": "agente", "email": "agente@mail.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/agents", gin.H{
		"user_id": userID, "real_estate_id": realEstateID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	agentID, _ := decodeBody(t, w)["id"].(string)

	t.Run("no elimina la inmobiliaria con agentes", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/real-estates/"+realEstateID, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No se puede eliminar la inmobiliaria porque tiene agentes asociados", decodeBody(t, w)["message"])
	})

	t.Run("no elimina el usuario asignado a un agente", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/users/"+userID, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No se puede eliminar el usuario porque está asignado a un agente", decodeBody(t, w)["message"])
	})

	t.Run("eliminar el agente libera la cadena", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/agents/"+agentID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Agente eliminado correctamente", decodeBody(t, w)["message"])

		w = doJSON(t, engine, http.MethodDelete, "/api/real-estates/"+realEstateID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Inmobiliaria eliminada correctamente", decodeBody(t, w)["message"])
	})
}

func TestFavoriteEndpoints(t *testing.T) {
	engine := setupTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/real-estates", gin.H{
		"name": "Favs", "address": "x", "phone": "555", "email": "f@f.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	realEstateID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/properties", gin.H{
		"title": "Ático", "description": "d", "price": 250000.0,
		"address": "y", "type": "apartment", "real_estate_id": realEstateID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	propertyID, _ := decodeBody(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/users", gin.H{
		"username": "lucia", "email": "lucia@mail.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID, _ := decodeBody(t, w)["id"].(string)

	t.Run("crea un favorito", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/property-favorites", gin.H{
			"property_id": propertyID, "user_id": userID,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Ático", decodeBody(t, w)["property_title"])
	})

	t.Run("el par repetido responde 400", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/property-favorites", gin.H{
			"property_id": propertyID, "user_id": userID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "La propiedad ya está en favoritos", decodeBody(t, w)["message"])
	})

	t.Run("lista por usuario", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/property-favorites/user/"+userID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})

	t.Run("stats globales", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/property-favorites/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["total_favorites"])
	})
}
