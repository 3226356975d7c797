package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		customerID := uuid.New()
		order, err := NewOrder(&customerID, decimal.NewFromInt(500))

		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(500)))
		require.NotNil(t, order.CustomerID)
		assert.Equal(t, customerID, *order.CustomerID)
	})

	t.Run("allows anonymous order", func(t *testing.T) {
		order, err := NewOrder(nil, decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Nil(t, order.CustomerID)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		order, err := NewOrder(nil, decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		order, err := NewOrder(nil, decimal.NewFromInt(100))
		require.NoError(t, err)
		return order
	}

	t.Run("walks the normal lifecycle", func(t *testing.T) {
		order := newOrder(t)
		for _, status := range []OrderStatus{
			OrderStatusConfirmed, OrderStatusReady, OrderStatusDelivered, OrderStatusCompleted,
		} {
			require.NoError(t, order.ChangeStatus(status))
			assert.Equal(t, status, order.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order := newOrder(t)
		err := order.ChangeStatus(OrderStatus("SHIPPED"))

		assert.Error(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("cancelled orders are terminal", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.ChangeStatus(OrderStatusCancelled))

		err := order.ChangeStatus(OrderStatusConfirmed)
		assert.Error(t, err)
		assert.Equal(t, OrderStatusCancelled, order.Status)
	})
}

func TestOrderIsCompleted(t *testing.T) {
	order, err := NewOrder(nil, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.False(t, order.IsCompleted())

	require.NoError(t, order.ChangeStatus(OrderStatusDelivered))
	assert.True(t, order.IsCompleted())

	require.NoError(t, order.ChangeStatus(OrderStatusCompleted))
	assert.True(t, order.IsCompleted())
}

func TestOrderAmountDue(t *testing.T) {
	order, err := NewOrder(nil, decimal.NewFromFloat(500.00))
	require.NoError(t, err)

	t.Run("equals total with no payments", func(t *testing.T) {
		assert.True(t, order.AmountDue().Equal(decimal.NewFromInt(500)))
	})

	t.Run("derived from loaded payments", func(t *testing.T) {
		p1, err := NewOrderPayment(order.ID, decimal.NewFromInt(200), PaymentMethodCash, "")
		require.NoError(t, err)
		p2, err := NewOrderPayment(order.ID, decimal.NewFromFloat(150.50), PaymentMethodTransfer, "")
		require.NoError(t, err)
		order.Payments = []OrderPayment{*p1, *p2}

		assert.True(t, order.PaidTotal().Equal(decimal.NewFromFloat(350.50)))
		assert.True(t, order.AmountDue().Equal(decimal.NewFromFloat(149.50)))
	})

	t.Run("goes negative when overpaid", func(t *testing.T) {
		p3, err := NewOrderPayment(order.ID, decimal.NewFromInt(200), PaymentMethodCash, "")
		require.NoError(t, err)
		order.Payments = append(order.Payments, *p3)

		assert.True(t, order.AmountDue().IsNegative())
	})
}

func TestNewOrderPayment(t *testing.T) {
	orderID := uuid.New()

	t.Run("rejects zero amount", func(t *testing.T) {
		payment, err := NewOrderPayment(orderID, decimal.Zero, PaymentMethodCash, "")

		assert.Error(t, err)
		assert.Nil(t, payment)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		payment, err := NewOrderPayment(orderID, decimal.NewFromInt(10), PaymentMethod("CHECK"), "")

		assert.Error(t, err)
		assert.Nil(t, payment)
	})
}
