package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/feneonmalo-star/La-boutique-de-Lea/checkout"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

func newMockedStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return New(gdb), mock
}

func TestClaimPaidTransition_Winner(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `payment_transactions` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := store.ClaimPaidTransition(context.Background(), "sess-1", "complete")

	require.NoError(t, err)
	assert.True(t, claimed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPaidTransition_AlreadySettled(t *testing.T) {
	store, mock := newMockedStore(t)

	// The WHERE guard matches no row once payment_status is already paid,
	// so the loser sees zero rows affected.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `payment_transactions` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := store.ClaimPaidTransition(context.Background(), "sess-1", "complete")

	require.NoError(t, err)
	assert.False(t, claimed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTransactionStatus(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `payment_transactions` SET")).
		WithArgs("unpaid", "open", "sess-1", models.PaymentStatusPaid).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.RefreshTransactionStatus(context.Background(), "sess-1", "open", "unpaid")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionBySession_NotFound(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `payment_transactions`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id"}))

	_, err := store.TransactionBySession(context.Background(), "sess-unknown")

	require.ErrorIs(t, err, checkout.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductByID(t *testing.T) {
	store, mock := newMockedStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "category", "stock", "created_at"}).
		AddRow("p-1", "Crème hydratante", "Soin visage", 45.00, "https://img.example.com/p1.jpg", "soin", 12, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `products`")).
		WillReturnRows(rows)

	product, err := store.ProductByID(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, "Crème hydratante", product.Name)
	assert.Equal(t, 45.00, product.Price)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClearCart(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `cart_items`")).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := store.ClearCart(context.Background(), "user-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderByID(t *testing.T) {
	store, mock := newMockedStore(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "total", "payment_status", "session_id"}).
		AddRow("order-1", "user-1", 90.00, models.PaymentStatusPaid, "sess-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders`")).
		WillReturnRows(rows)

	order, err := store.OrderByID(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, 90.00, order.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderByID_NotFound(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `orders`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.OrderByID(context.Background(), "order-unknown")

	require.ErrorIs(t, err, checkout.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
