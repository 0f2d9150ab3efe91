package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/common"
)

func TestCatalog_PassesThrough(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCatalogService(fc)
	ctx := context.Background()

	ms, err := svc.Monuments(ctx, "  Rabat ")
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "Rabat", fc.City)

	es, err := svc.ESIMs(ctx)
	require.NoError(t, err)
	assert.Len(t, es, 1)
}

func TestBuyESIM_Validates(t *testing.T) {
	fc := &fakeClient{}
	svc := NewCatalogService(fc)
	ctx := context.Background()

	_, err := svc.BuyESIM(ctx, "", "a@b.ma")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.BuyESIM(ctx, "e1", "not-an-email")
	require.ErrorIs(t, err, common.ErrorValidation)

	p, err := svc.BuyESIM(ctx, "e1", "Traveller <trav@example.ma>")
	require.NoError(t, err)
	assert.Equal(t, "paid", p.Status)
	assert.Equal(t, "trav@example.ma", fc.ESIMReq.Email)
}
