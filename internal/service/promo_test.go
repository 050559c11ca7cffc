package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/repository"
	"github.com/bookit/experience-booking/internal/service"
)

func TestValidateIsCaseInsensitive(t *testing.T) {
	store := &fakePromoStore{promos: map[string]*model.Promo{
		"SAVE10": {Code: "SAVE10", Type: model.PromoPercentage, Value: 10},
	}}
	svc := service.NewPromoService(store)

	lower, err := svc.Validate(context.Background(), "save10")
	require.NoError(t, err)
	upper, err := svc.Validate(context.Background(), "SAVE10")
	require.NoError(t, err)
	padded, err := svc.Validate(context.Background(), "  Save10 ")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, padded)
	assert.Equal(t, "SAVE10", lower.Code)
}

func TestValidateUnknownCode(t *testing.T) {
	svc := service.NewPromoService(&fakePromoStore{})

	_, err := svc.Validate(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, repository.ErrPromoNotFound)

	_, err = svc.Validate(context.Background(), "   ")
	assert.ErrorIs(t, err, repository.ErrPromoNotFound)
}

func TestValidateExpiredCode(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	store := &fakePromoStore{promos: map[string]*model.Promo{
		"OLD":  {Code: "OLD", Type: model.PromoFlat, Value: 100, ExpiresAt: &past},
		"LIVE": {Code: "LIVE", Type: model.PromoFlat, Value: 100, ExpiresAt: &future},
	}}
	svc := service.NewPromoService(store)

	_, err := svc.Validate(context.Background(), "OLD")
	assert.ErrorIs(t, err, service.ErrPromoExpired)

	p, err := svc.Validate(context.Background(), "LIVE")
	require.NoError(t, err)
	assert.Equal(t, "LIVE", p.Code)
}

func TestValidateIsIdempotent(t *testing.T) {
	store := &fakePromoStore{promos: map[string]*model.Promo{
		"SAVE10": {Code: "SAVE10", Type: model.PromoPercentage, Value: 10},
	}}
	svc := service.NewPromoService(store)

	first, err := svc.Validate(context.Background(), "SAVE10")
	require.NoError(t, err)
	second, err := svc.Validate(context.Background(), "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
