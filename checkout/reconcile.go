package checkout

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/feneonmalo-star/La-boutique-de-Lea/models"
	"github.com/feneonmalo-star/La-boutique-de-Lea/payments"
)

// StatusComplete is the transaction status recorded for a settled session.
const StatusComplete = "complete"

// GetStatus is the poll trigger. A transaction that already settled is
// answered from the stored row without asking the provider again; otherwise
// the live status is fetched, persisted, and run through the shared paid
// transition.
func (s *Service) GetStatus(ctx context.Context, sessionID string) (*payments.Status, error) {
	txn, err := s.store.TransactionBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if txn.PaymentStatus == models.PaymentStatusPaid {
		return &payments.Status{
			Status:        txn.Status,
			PaymentStatus: txn.PaymentStatus,
			AmountTotal:   minorUnits(txn.Amount),
			Currency:      txn.Currency,
			Metadata:      toStringMap(txn.Metadata),
		}, nil
	}

	live, err := s.gateway.GetStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if err := s.applyProviderStatus(ctx, sessionID, live.Status, live.PaymentStatus); err != nil {
		return nil, err
	}
	return live, nil
}

// HandleWebhook is the asynchronous trigger. The signature is checked before
// anything else; an unverifiable payload causes no state change at all.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*payments.Event, error) {
	event, err := s.gateway.VerifyAndDecode(payload, signature)
	if err != nil {
		return nil, err
	}

	status := models.PaymentStatusPending
	if event.PaymentStatus == models.PaymentStatusPaid {
		status = StatusComplete
	}

	if err := s.applyProviderStatus(ctx, event.SessionID, status, event.PaymentStatus); err != nil {
		return nil, err
	}
	return event, nil
}

// applyProviderStatus is the single transition function both triggers feed.
// The pending→paid edge is claimed with a conditional update in the store, so
// concurrent deliveries for the same session agree on exactly one winner and
// the paid side effects run once.
func (s *Service) applyProviderStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	if paymentStatus != models.PaymentStatusPaid {
		return s.store.RefreshTransactionStatus(ctx, sessionID, status, paymentStatus)
	}

	claimed, err := s.store.ClaimPaidTransition(ctx, sessionID, status)
	if err != nil {
		return err
	}
	if claimed {
		s.finalizePaidOrder(ctx, sessionID)
	}
	return nil
}

// finalizePaidOrder runs the paid side effects: mark the order, clear the
// owner's cart, send the confirmation email. Only the claim winner gets here.
// Failures are logged rather than surfaced; the transaction is already
// settled and the provider must not be told otherwise.
func (s *Service) finalizePaidOrder(ctx context.Context, sessionID string) {
	txn, err := s.store.TransactionBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("paid transaction vanished during finalize",
			zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	// The claim is already consumed at this point and there is no retry
	// sweep; a failure here leaves the order pending with this log line as
	// the only trace.
	if err := s.store.MarkOrderPaid(ctx, txn.OrderID); err != nil {
		s.logger.Error("failed to mark order paid",
			zap.String("order_id", txn.OrderID), zap.Error(err))
	}

	if err := s.store.ClearCart(ctx, txn.UserID); err != nil {
		s.logger.Error("failed to clear cart after payment",
			zap.String("user_id", txn.UserID), zap.Error(err))
	}

	s.sendConfirmation(ctx, txn)

	s.logger.Info("payment settled",
		zap.String("session_id", sessionID),
		zap.String("order_id", txn.OrderID),
		zap.Float64("amount", txn.Amount))
}

func (s *Service) sendConfirmation(ctx context.Context, txn *models.PaymentTransaction) {
	if s.mailer == nil {
		return
	}

	user, err := s.store.UserByID(ctx, txn.UserID)
	if err != nil {
		s.logger.Warn("cannot send confirmation, user lookup failed",
			zap.String("user_id", txn.UserID), zap.Error(err))
		return
	}

	order, err := s.store.OrderByID(ctx, txn.OrderID)
	if err != nil {
		s.logger.Warn("cannot send confirmation, order lookup failed",
			zap.String("order_id", txn.OrderID), zap.Error(err))
		return
	}

	if err := s.mailer.SendOrderConfirmation(user.Email, order); err != nil {
		s.logger.Warn("order confirmation email failed",
			zap.String("order_id", txn.OrderID), zap.Error(err))
	}
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
