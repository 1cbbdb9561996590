package orderid

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/shopworks/storefront/fulfillment_service/internal/domain/models"
	"github.com/shopworks/storefront/fulfillment_service/internal/repository/mocks"
	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

func TestHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mocks.NewMockOrderReassigner(ctrl)
	orders.EXPECT().ReassignUser(gomock.Any(), "guest-1", "user-1").Return(nil)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), orders)

	err := consumer.Handle(context.Background(), &models.OrderConverterEvent{
		EventID:   models.NewEventID(),
		OldUserID: "guest-1",
		NewUserID: "user-1",
	})
	require.NoError(t, err)
}

func TestHandleRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expErr := errors.New("storage down")

	orders := mocks.NewMockOrderReassigner(ctrl)
	orders.EXPECT().ReassignUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(expErr)

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), orders)

	err := consumer.Handle(context.Background(), &models.OrderConverterEvent{
		EventID:   models.NewEventID(),
		OldUserID: "guest-1",
		NewUserID: "user-1",
	})
	require.ErrorIs(t, err, expErr)
}

func TestSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := New(logger.NewSlogLogger(logger.EnvLocal), mocks.NewMockOrderReassigner(ctrl))

	spec := consumer.Spec()
	require.Equal(t, models.OrderIDQueue, spec.Queue)
	require.Equal(t, models.OrderEventsExchange, spec.Bindings[0].Exchange)
	require.Equal(t, models.RouteOrderConverter, spec.Bindings[0].Key)
}
