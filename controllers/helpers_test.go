package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAdminIDFromToken(t *testing.T) {
	adminID := primitive.NewObjectID()

	c := newTestContext(t, "/")
	c.Set("userId", adminID.Hex())
	assert.Equal(t, adminID, adminIDFromToken(c))
}

func TestAdminIDFromTokenNonHex(t *testing.T) {
	c := newTestContext(t, "/")
	c.Set("userId", "admin")
	assert.Equal(t, primitive.NilObjectID, adminIDFromToken(c))
}

func TestAdminIDFromTokenMissing(t *testing.T) {
	c := newTestContext(t, "/")
	assert.Equal(t, primitive.NilObjectID, adminIDFromToken(c))
}

func TestParseHistoryLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"default when empty", "", 20},
		{"within range", "5", 5},
		{"capped at maximum", "100", 20},
		{"zero falls back", "0", 20},
		{"negative falls back", "-3", 20},
		{"garbage falls back", "many", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHistoryLimit(tt.raw))
		})
	}
}

func TestParsePagination(t *testing.T) {
	c := newTestContext(t, "/?page=3&limit=50")
	page, limit := parsePagination(c)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	c = newTestContext(t, "/?page=-1&limit=500")
	page, limit = parsePagination(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}
