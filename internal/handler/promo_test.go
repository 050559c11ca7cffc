package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit/experience-booking/internal/handler"
	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/repository"
	"github.com/bookit/experience-booking/internal/service"
)

type stubValidator struct {
	promo *model.Promo
	err   error
}

func (s *stubValidator) Validate(context.Context, string) (*model.Promo, error) {
	return s.promo, s.err
}

func postPromo(t *testing.T, h *handler.PromoHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/promo/validate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Validate(e.NewContext(req, rec)))
	return rec
}

func TestValidatePromo(t *testing.T) {
	h := handler.NewPromoHandler(&stubValidator{promo: &model.Promo{
		Code:  "SAVE10",
		Type:  model.PromoPercentage,
		Value: 10,
	}})

	rec := postPromo(t, h, `{"code": "save10"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid bool `json:"valid"`
		Promo struct {
			Code  string `json:"code"`
			Type  string `json:"type"`
			Value int64  `json:"value"`
		} `json:"promo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "SAVE10", resp.Promo.Code)
	assert.Equal(t, model.PromoPercentage, resp.Promo.Type)
	assert.Equal(t, int64(10), resp.Promo.Value)
}

func TestValidatePromoUnknownCode(t *testing.T) {
	h := handler.NewPromoHandler(&stubValidator{err: repository.ErrPromoNotFound})

	rec := postPromo(t, h, `{"code": "NOSUCH"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), "Invalid promo code")
}

func TestValidatePromoExpiredCode(t *testing.T) {
	h := handler.NewPromoHandler(&stubValidator{err: service.ErrPromoExpired})

	rec := postPromo(t, h, `{"code": "OLD10"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), "Promo code has expired")
}

func TestValidatePromoMissingCode(t *testing.T) {
	h := handler.NewPromoHandler(&stubValidator{})

	rec := postPromo(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidatePromoStoreFailure(t *testing.T) {
	h := handler.NewPromoHandler(&stubValidator{err: errors.New("db down")})

	rec := postPromo(t, h, `{"code": "SAVE10"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
