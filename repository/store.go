// Package repository backs the checkout workflow with MySQL through GORM.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/feneonmalo-star/La-boutique-de-Lea/checkout"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CartItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, checkout.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) ClearCart(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *Store) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, checkout.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) SetOrderSession(ctx context.Context, orderID, sessionID string) error {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("session_id", sessionID).Error
}

func (s *Store) MarkOrderPaid(ctx context.Context, orderID string) error {
	return s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", models.PaymentStatusPaid).Error
}

func (s *Store) CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	return s.db.WithContext(ctx).Create(txn).Error
}

func (s *Store) TransactionBySession(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	err := s.db.WithContext(ctx).First(&txn, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("session %s: %w", sessionID, checkout.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// RefreshTransactionStatus applies a provider-reported status with
// last-writer-wins semantics, except that a transaction already settled as
// paid is never written again: payment_status is monotone.
func (s *Store) RefreshTransactionStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	return s.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("session_id = ? AND payment_status <> ?", sessionID, models.PaymentStatusPaid).
		Updates(map[string]any{
			"status":         status,
			"payment_status": paymentStatus,
		}).Error
}

// ClaimPaidTransition performs the compare-and-swap on the pending→paid edge.
// The WHERE guard makes the database the arbiter: exactly one concurrent
// caller sees RowsAffected == 1, no matter how many triggers race.
func (s *Store) ClaimPaidTransition(ctx context.Context, sessionID, status string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("session_id = ? AND payment_status <> ?", sessionID, models.PaymentStatusPaid).
		Updates(map[string]any{
			"status":         status,
			"payment_status": models.PaymentStatusPaid,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", id, checkout.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
