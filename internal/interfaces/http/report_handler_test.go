package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/polipostres-api/internal/application/dto"
)

func TestReportes_DiarioDevuelvePDF(t *testing.T) {
	app, l := buildTestApp()
	p := createProduct(t, app, "Torta", 50000, 10)

	_, err := l.RecordSale(p.ID, 2)
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	req := httptest.NewRequest(http.MethodGet, "/api/reports/daily?date="+today, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Greater(t, len(body), 4)
	assert.Equal(t, "%PDF", string(body[:4]), "la respuesta debe ser un PDF válido")
}

func TestReportes_SinFechaRetorna400(t *testing.T) {
	app, _ := buildTestApp()

	var errResp dto.ErrorResponse
	resp := doJSON(t, app, http.MethodGet, "/api/reports/daily", nil, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp.Code)
}
