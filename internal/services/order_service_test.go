package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorlink_backend/internal/models"
	"tailorlink_backend/internal/services/dto"
	"tailorlink_backend/pkg/apperrors"
)

type orderFixture struct {
	svc      OrderService
	orders   *fakeOrderRepo
	users    *fakeUserRepo
	records  *fakeMeasurementRepo
	customer *models.User
	tailor   *models.User
	admin    *models.User
}

func setupOrderService(t *testing.T) *orderFixture {
	t.Helper()

	users := newFakeUserRepo()
	measurements := newFakeMeasurementRepo()
	orders := newFakeOrderRepo()

	customer := seedUser(t, users, "customer@example.com", "password123", models.UserRoleCustomer)
	tailor := seedUser(t, users, "tailor@example.com", "password123", models.UserRoleTailor)
	admin := seedUser(t, users, "admin@example.com", "password123", models.UserRoleAdmin)

	return &orderFixture{
		svc:      NewOrderService(orders, users, measurements),
		orders:   orders,
		users:    users,
		records:  measurements,
		customer: customer,
		tailor:   tailor,
		admin:    admin,
	}
}

func (f *orderFixture) createOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := f.svc.Create(f.customer.ID, &dto.CreateOrderRequest{
		TailorID:  f.tailor.ID,
		OrderType: "SHIRT",
		Items: []dto.CreateOrderItemRequest{
			{ItemName: "Dress shirt", Quantity: 2, Price: 15000},
		},
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	f := setupOrderService(t)

	order := f.createOrder(t)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, f.customer.ID, order.CustomerID)
	assert.Equal(t, f.tailor.ID, order.TailorID)
	assert.Equal(t, float64(30000), order.TotalPrice)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`), order.OrderNumber)
}

func TestCreateOrder_OnlyCustomers(t *testing.T) {
	f := setupOrderService(t)

	req := &dto.CreateOrderRequest{
		TailorID:  f.tailor.ID,
		OrderType: "SHIRT",
		Items:     []dto.CreateOrderItemRequest{{ItemName: "Shirt", Quantity: 1, Price: 1000}},
	}

	_, err := f.svc.Create(f.tailor.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrOnlyCustomersCreateOrders)

	_, err = f.svc.Create(f.admin.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrOnlyCustomersCreateOrders)
}

func TestCreateOrder_ForeignMeasurementDroppedSilently(t *testing.T) {
	f := setupOrderService(t)

	other := seedUser(t, f.users, "other@example.com", "password123", models.UserRoleCustomer)
	foreign := &models.CustomerMeasurement{CustomerID: other.ID, TemplateID: "t1"}
	require.NoError(t, f.records.CreateRecord(foreign))

	own := &models.CustomerMeasurement{CustomerID: f.customer.ID, TemplateID: "t1"}
	require.NoError(t, f.records.CreateRecord(own))

	t.Run("someone else's record", func(t *testing.T) {
		order, err := f.svc.Create(f.customer.ID, &dto.CreateOrderRequest{
			TailorID:      f.tailor.ID,
			OrderType:     "SHIRT",
			MeasurementID: &foreign.ID,
			Items:         []dto.CreateOrderItemRequest{{ItemName: "Shirt", Quantity: 1, Price: 1000}},
		})
		require.NoError(t, err)
		assert.Nil(t, order.MeasurementID)
	})

	t.Run("own record", func(t *testing.T) {
		order, err := f.svc.Create(f.customer.ID, &dto.CreateOrderRequest{
			TailorID:      f.tailor.ID,
			OrderType:     "SHIRT",
			MeasurementID: &own.ID,
			Items:         []dto.CreateOrderItemRequest{{ItemName: "Shirt", Quantity: 1, Price: 1000}},
		})
		require.NoError(t, err)
		require.NotNil(t, order.MeasurementID)
		assert.Equal(t, own.ID, *order.MeasurementID)
	})
}

func TestUpdateStatus_TailorLifecycle(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	steps := []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusInProgress,
		models.OrderStatusReady,
		models.OrderStatusCompleted,
	}
	for _, target := range steps {
		updated, err := f.svc.UpdateStatus(order.ID, f.tailor.ID, models.UserRoleTailor, target)
		require.NoError(t, err, "step to %s", target)
		assert.Equal(t, target, updated.Status)
	}
	assert.Equal(t, len(steps), f.orders.writes())
}

func TestUpdateStatus_WrongActorVsIllegalTransition(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	// The customer may never request CONFIRMED, from any state.
	_, err := f.svc.UpdateStatus(order.ID, f.customer.ID, models.UserRoleCustomer, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrWrongActorForTransition)

	// The tailor may request COMPLETED in general, just not from PENDING.
	_, err = f.svc.UpdateStatus(order.ID, f.tailor.ID, models.UserRoleTailor, models.OrderStatusCompleted)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)

	// Rejections write nothing.
	assert.Equal(t, 0, f.orders.writes())
	current, getErr := f.svc.GetByID(order.ID, f.customer.ID, models.UserRoleCustomer)
	require.NoError(t, getErr)
	assert.Equal(t, models.OrderStatusPending, current.Status)
}

func TestUpdateStatus_SkippingStatesRejected(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	_, err := f.svc.UpdateStatus(order.ID, f.tailor.ID, models.UserRoleTailor, models.OrderStatusReady)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErr.Code)
	assert.Equal(t, 0, f.orders.writes())
}

func TestUpdateStatus_AdminOverride(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	// Admins may jump straight to any valid status, including backwards.
	updated, err := f.svc.UpdateStatus(order.ID, f.admin.ID, models.UserRoleAdmin, models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)

	updated, err = f.svc.UpdateStatus(order.ID, f.admin.ID, models.UserRoleAdmin, models.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestUpdateStatus_AccessControl(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	stranger := seedUser(t, f.users, "stranger@example.com", "password123", models.UserRoleTailor)
	_, err := f.svc.UpdateStatus(order.ID, stranger.ID, models.UserRoleTailor, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, apperrors.ErrNoOrderAccess)
	assert.Equal(t, 0, f.orders.writes())
}

func TestCancel(t *testing.T) {
	f := setupOrderService(t)

	t.Run("customer cancels pending order", func(t *testing.T) {
		order := f.createOrder(t)
		cancelled, err := f.svc.Cancel(order.ID, f.customer.ID, models.UserRoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("customer cancels confirmed order", func(t *testing.T) {
		order := f.createOrder(t)
		_, err := f.svc.UpdateStatus(order.ID, f.tailor.ID, models.UserRoleTailor, models.OrderStatusConfirmed)
		require.NoError(t, err)

		cancelled, err := f.svc.Cancel(order.ID, f.customer.ID, models.UserRoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	})

	t.Run("too late once in progress", func(t *testing.T) {
		order := f.createOrder(t)
		for _, target := range []models.OrderStatus{models.OrderStatusConfirmed, models.OrderStatusInProgress} {
			_, err := f.svc.UpdateStatus(order.ID, f.tailor.ID, models.UserRoleTailor, target)
			require.NoError(t, err)
		}

		_, err := f.svc.Cancel(order.ID, f.customer.ID, models.UserRoleCustomer)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	})

	t.Run("tailor cannot use the cancel shortcut", func(t *testing.T) {
		order := f.createOrder(t)
		_, err := f.svc.Cancel(order.ID, f.tailor.ID, models.UserRoleTailor)
		assert.ErrorIs(t, err, apperrors.ErrNoOrderAccess)
	})
}

func TestListOrders_RoleScoped(t *testing.T) {
	f := setupOrderService(t)
	f.createOrder(t)
	f.createOrder(t)

	otherCustomer := seedUser(t, f.users, "other@example.com", "password123", models.UserRoleCustomer)

	mine, err := f.svc.List(f.customer.ID, models.UserRoleCustomer, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Total)

	theirs, err := f.svc.List(otherCustomer.ID, models.UserRoleCustomer, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), theirs.Total)

	assigned, err := f.svc.List(f.tailor.ID, models.UserRoleTailor, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), assigned.Total)

	all, err := f.svc.List(f.admin.ID, models.UserRoleAdmin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
}

func TestGetOrder_AccessControl(t *testing.T) {
	f := setupOrderService(t)
	order := f.createOrder(t)

	stranger := seedUser(t, f.users, "stranger2@example.com", "password123", models.UserRoleCustomer)
	_, err := f.svc.GetByID(order.ID, stranger.ID, models.UserRoleCustomer)
	assert.ErrorIs(t, err, apperrors.ErrNoOrderAccess)

	got, err := f.svc.GetByID(order.ID, f.admin.ID, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
