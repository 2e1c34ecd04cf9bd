// Package checkout owns the two halves of the payment workflow: turning a
// cart into an order with a hosted checkout session, and reconciling provider
// status reports back into the order and its transaction.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
	"github.com/feneonmalo-star/La-boutique-de-Lea/payments"
)

// Store is the persistence surface the checkout workflow needs. The paid
// transition is claimed inside the store (a conditional update) so the
// exactly-once guarantee holds across processes, not just goroutines.
type Store interface {
	CartItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	ClearCart(ctx context.Context, userID string) error

	CreateOrder(ctx context.Context, order *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	SetOrderSession(ctx context.Context, orderID, sessionID string) error
	MarkOrderPaid(ctx context.Context, orderID string) error

	CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error
	TransactionBySession(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	// RefreshTransactionStatus overwrites status fields unless the
	// transaction has already settled as paid.
	RefreshTransactionStatus(ctx context.Context, sessionID, status, paymentStatus string) error
	// ClaimPaidTransition flips payment_status to paid if and only if it is
	// not paid yet, reporting whether this caller won the edge.
	ClaimPaidTransition(ctx context.Context, sessionID, status string) (bool, error)

	UserByID(ctx context.Context, id string) (*models.User, error)
}

// Gateway is the payment provider surface, implemented by payments.Client.
type Gateway interface {
	CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.Session, error)
	GetStatus(ctx context.Context, sessionID string) (*payments.Status, error)
	VerifyAndDecode(payload []byte, signature string) (*payments.Event, error)
}

// Mailer sends the order confirmation once a payment settles. May be nil.
type Mailer interface {
	SendOrderConfirmation(to string, order *models.Order) error
}

type Service struct {
	store    Store
	gateway  Gateway
	mailer   Mailer
	currency string
	logger   *zap.Logger
}

func New(store Store, gateway Gateway, mailer Mailer, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		gateway:  gateway,
		mailer:   mailer,
		currency: cfg.Currency,
		logger:   logger,
	}
}

// CreateSession converts the user's cart into a pending order and opens a
// hosted checkout session for it. The cart itself is untouched; it is cleared
// only when the payment is confirmed.
func (s *Service) CreateSession(ctx context.Context, userID, originURL string) (*payments.Session, error) {
	cartItems, err := s.store.CartItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	var items []models.OrderItem
	for _, item := range cartItems {
		product, err := s.store.ProductByID(ctx, item.ProductID)
		if err != nil {
			// A product removed from the catalog must not sink the
			// whole checkout; its line is dropped.
			s.logger.Warn("skipping cart item, product gone",
				zap.String("product_id", item.ProductID),
				zap.String("user_id", userID))
			continue
		}
		subtotal := product.Price * float64(item.Quantity)
		total += subtotal
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// The order id goes into the session metadata, so it must exist before
	// the gateway call.
	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Total:         total,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metadata := map[string]string{
		"user_id":  userID,
		"order_id": order.ID,
	}
	session, err := s.gateway.CreateSession(ctx, payments.SessionRequest{
		Amount:     total,
		Currency:   s.currency,
		SuccessURL: originURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  originURL + "/checkout/cancel",
		WebhookURL: originURL + "/api/webhook/payments",
		Metadata:   metadata,
	})
	if err != nil {
		// The pending order stays behind without a session id; that is a
		// recoverable orphan, the user can retry checkout.
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.NewString(),
		SessionID:     session.SessionID,
		UserID:        userID,
		OrderID:       order.ID,
		Amount:        total,
		Currency:      s.currency,
		Status:        models.TransactionStatusInitiated,
		PaymentStatus: models.PaymentStatusPending,
		Metadata:      toJSONMap(metadata),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if err := s.store.SetOrderSession(ctx, order.ID, session.SessionID); err != nil {
		return nil, fmt.Errorf("attach session to order: %w", err)
	}

	return session, nil
}

func toJSONMap(m map[string]string) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func toStringMap(m datatypes.JSONMap) map[string]string {
	out := map[string]string{}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
