package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

func TestValidate(t *testing.T) {
	tCases := []struct {
		name  string
		input *CreateOrderRequest
	}{
		{
			name: "registered_user",
			input: &CreateOrderRequest{
				UserID: uuid.New().String(),
				Products: []ProductLine{
					{ProductID: uuid.New().String(), Quantity: 2},
				},
				LoyaltyPointsEarned: 30,
				LoyaltyPointsUsed:   10,
			},
		},
		{
			name: "guest_with_discount",
			input: &CreateOrderRequest{
				UserID:        uuid.New().String(),
				IsGuest:       true,
				CustomerEmail: "ada@example.com",
				Products: []ProductLine{
					{ProductID: uuid.New().String(), VariantID: uuid.New().String(), Quantity: 1},
				},
				DiscountCode: "SUMMER10",
			},
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := tCase.input.validate()
			require.NoError(t, err)
		})
	}
}

func TestValidateError(t *testing.T) {
	tCases := []struct {
		name   string
		input  *CreateOrderRequest
		expErr error
	}{
		{
			name:   "no_user",
			input:  &CreateOrderRequest{},
			expErr: errMissingUser,
		},
		{
			name: "no_products",
			input: &CreateOrderRequest{
				UserID: uuid.New().String(),
			},
			expErr: errEmptyProducts,
		},
		{
			name: "bad_quantity",
			input: &CreateOrderRequest{
				UserID: uuid.New().String(),
				Products: []ProductLine{
					{ProductID: uuid.New().String(), Quantity: 0},
				},
			},
			expErr: errInvalidLine,
		},
		{
			name: "used_exceeds_earned",
			input: &CreateOrderRequest{
				UserID: uuid.New().String(),
				Products: []ProductLine{
					{ProductID: uuid.New().String(), Quantity: 1},
				},
				LoyaltyPointsEarned: 5,
				LoyaltyPointsUsed:   10,
			},
			expErr: errPointsExceedEarned,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			err := tCase.input.validate()
			require.Error(t, err)
			require.EqualError(t, tCase.expErr, err.Error())
		})
	}
}

type fakePlacer struct {
	order *models.Order
	code  string
	err   error
}

func (f *fakePlacer) Place(_ context.Context, order *models.Order) (string, error) {
	f.order = order
	return f.code, f.err
}

func TestCreateHandler(t *testing.T) {
	placer := &fakePlacer{code: "ORD-1A2B3C4D"}
	handler := NewHandler(logger.NewSlogLogger(logger.EnvLocal), placer)

	body, err := json.Marshal(CreateOrderRequest{
		UserID: "user-1",
		Products: []ProductLine{
			{ProductID: "p1", Quantity: 2},
		},
		DiscountCode:        "SUMMER10",
		LoyaltyPointsEarned: 30,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "ORD-1A2B3C4D", response["orderCode"])

	require.NotNil(t, placer.order)
	require.Equal(t, "user-1", placer.order.UserID)
	require.Equal(t, "SUMMER10", placer.order.DiscountCode)
}

func TestCreateHandlerBadRequest(t *testing.T) {
	handler := NewHandler(logger.NewSlogLogger(logger.EnvLocal), &fakePlacer{})

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/order", bytes.NewBufferString(`{"userId": ""}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandlerServiceError(t *testing.T) {
	placer := &fakePlacer{err: errors.New("storage down")}
	handler := NewHandler(logger.NewSlogLogger(logger.EnvLocal), placer)

	body, err := json.Marshal(CreateOrderRequest{
		UserID:   "user-1",
		Products: []ProductLine{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.Create(rec, httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
