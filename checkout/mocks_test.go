package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
	"github.com/feneonmalo-star/La-boutique-de-Lea/payments"
)

// mockStore implements Store in memory. All methods take the mutex so the
// race tests exercise the same claim semantics the database guard provides.
type mockStore struct {
	mu sync.Mutex

	carts    map[string][]models.CartItem
	products map[string]models.Product
	orders   map[string]*models.Order
	txns     map[string]*models.PaymentTransaction
	users    map[string]models.User

	clearCartCalls int
	createTxnErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		carts:    map[string][]models.CartItem{},
		products: map[string]models.Product{},
		orders:   map[string]*models.Order{},
		txns:     map[string]*models.PaymentTransaction{},
		users:    map[string]models.User{},
	}
}

func (m *mockStore) CartItemsByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CartItem(nil), m.carts[userID]...), nil
}

func (m *mockStore) ProductByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

func (m *mockStore) ClearCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	m.clearCartCalls++
	return nil
}

func (m *mockStore) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockStore) OrderByID(_ context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	copied := *order
	return &copied, nil
}

func (m *mockStore) SetOrderSession(_ context.Context, orderID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	order.SessionID = sessionID
	return nil
}

func (m *mockStore) MarkOrderPaid(_ context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	order.PaymentStatus = models.PaymentStatusPaid
	return nil
}

func (m *mockStore) CreateTransaction(_ context.Context, txn *models.PaymentTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createTxnErr != nil {
		return m.createTxnErr
	}
	copied := *txn
	m.txns[txn.SessionID] = &copied
	return nil
}

func (m *mockStore) TransactionBySession(_ context.Context, sessionID string) (*models.PaymentTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.txns[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	copied := *txn
	return &copied, nil
}

func (m *mockStore) RefreshTransactionStatus(_ context.Context, sessionID, status, paymentStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.txns[sessionID]
	if !ok || txn.PaymentStatus == models.PaymentStatusPaid {
		return nil
	}
	txn.Status = status
	txn.PaymentStatus = paymentStatus
	return nil
}

func (m *mockStore) ClaimPaidTransition(_ context.Context, sessionID, status string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.txns[sessionID]
	if !ok || txn.PaymentStatus == models.PaymentStatusPaid {
		return false, nil
	}
	txn.Status = status
	txn.PaymentStatus = models.PaymentStatusPaid
	return true, nil
}

func (m *mockStore) UserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (m *mockStore) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *mockStore) txnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txns)
}

func (m *mockStore) order(id string) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.orders[id]
}

func (m *mockStore) txn(sessionID string) models.PaymentTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.txns[sessionID]
}

func (m *mockStore) cartSize(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts[userID])
}

func (m *mockStore) clearCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCartCalls
}

// mockGateway implements Gateway with canned responses and call counters.
type mockGateway struct {
	mu sync.Mutex

	session   *payments.Session
	createErr error

	status      *payments.Status
	statusErr   error
	statusCalls int

	event     *payments.Event
	verifyErr error

	lastRequest payments.SessionRequest
}

func (m *mockGateway) CreateSession(_ context.Context, req payments.SessionRequest) (*payments.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRequest = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.session, nil
}

func (m *mockGateway) GetStatus(_ context.Context, _ string) (*payments.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls++
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	return m.status, nil
}

func (m *mockGateway) VerifyAndDecode(_ []byte, _ string) (*payments.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	return m.event, nil
}

func (m *mockGateway) statusCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusCalls
}

// mockMailer counts confirmation sends and records the last delivery.
type mockMailer struct {
	mu        sync.Mutex
	sends     int
	lastTo    string
	lastOrder models.Order
}

func (m *mockMailer) SendOrderConfirmation(to string, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends++
	m.lastTo = to
	m.lastOrder = *order
	return nil
}

func (m *mockMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sends
}

func (m *mockMailer) lastDelivery() (string, models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTo, m.lastOrder
}
