package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/interfaces/http/handlers"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		walletHandler:      handlers.NewWalletHandler(nil),
		stateHandler:       handlers.NewStateHandler(nil, nil),
		invitationHandler:  handlers.NewInvitationHandler(nil),
		petHandler:         handlers.NewPetHandler(nil),
		marketplaceHandler: handlers.NewMarketplaceHandler(nil),
		inventoryHandler:   handlers.NewInventoryHandler(nil),
		arcadeHandler:      handlers.NewArcadeHandler(nil),
		sessionMiddleware:  noop,
		optionalSession:    noop,
	})
	return r
}

func TestRegisteredRoutes(t *testing.T) {
	r := newTestRouter()

	routes := make(map[string]bool)
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/v1/wallet/connect",
		"POST /api/v1/wallet/disconnect",
		"GET /api/v1/wallet/state",
		"GET /api/v1/state",
		"POST /api/v1/invitations",
		"GET /api/v1/invitations/pending",
		"POST /api/v1/invitations/:id/accept",
		"GET /api/v1/coparent",
		"POST /api/v1/pet/feed",
		"POST /api/v1/pet/love",
		"GET /api/v1/marketplace/items",
		"GET /api/v1/marketplace/items/:id",
		"POST /api/v1/marketplace/items/:id/purchase",
		"GET /api/v1/inventory",
		"GET /api/v1/nfts",
		"POST /api/v1/nfts/claim",
		"GET /api/v1/nfts/collection",
		"POST /api/v1/arcade/:kind/start",
		"GET /api/v1/arcade/games/:id",
		"POST /api/v1/arcade/games/:id/hit",
		"POST /api/v1/arcade/games/:id/move",
		"POST /api/v1/arcade/games/:id/finish",
		"POST /api/v1/arcade/games/:id/claim",
		"GET /health",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
