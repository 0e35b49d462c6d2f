package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"dushanbe-eats/entity"
	"dushanbe-eats/pkg/payment"
	"dushanbe-eats/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	Orders   *repository.OrderRepository
	Payments *repository.PaymentRepository
	Client   payment.Client
}

func NewPaymentService(or *repository.OrderRepository, pr *repository.PaymentRepository, client payment.Client) *PaymentService {
	return &PaymentService{Orders: or, Payments: pr, Client: client}
}

type CheckoutSessionOut struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CreateCheckout opens a hosted checkout session for the caller's own
// unpaid order and binds the session to it.
func (s *PaymentService) CreateCheckout(ctx context.Context, userID, orderID uint, originURL string) (*CheckoutSessionOut, error) {
	o, err := s.Orders.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.PaymentStatus == entity.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	clientRef := uuid.NewString()
	sess, err := s.Client.CreateSession(ctx, payment.SessionRequest{
		Amount:     o.Total,
		Currency:   "tjs",
		SuccessURL: originURL + "/orders/" + itoa(o.ID) + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  originURL + "/checkout",
		ClientRef:  clientRef,
		Metadata:   map[string]string{"order_id": itoa(o.ID)},
	})
	if err != nil {
		return nil, err
	}

	tr := &entity.PaymentTransaction{
		SessionID:     sess.ID,
		ClientRef:     clientRef,
		UserID:        userID,
		OrderID:       o.ID,
		Amount:        o.Total,
		Currency:      "tjs",
		Status:        "initiated",
		PaymentStatus: string(entity.PaymentUnpaid),
	}
	if err := s.Payments.Create(tr); err != nil {
		return nil, err
	}
	if err := s.Orders.SetPaymentSession(o.ID, sess.ID); err != nil {
		return nil, err
	}

	return &CheckoutSessionOut{URL: sess.URL, SessionID: sess.ID}, nil
}

// CheckStatus asks the collaborator once and, on a paid answer, confirms
// payment on the bound order.
func (s *PaymentService) CheckStatus(ctx context.Context, sessionID string) (*payment.SessionStatus, error) {
	st, err := s.Client.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.Payments.UpdateStatus(sessionID, st.Status, st.PaymentStatus); err != nil {
		log.Printf("payment transaction update failed: %v", err)
	}

	if st.Paid() {
		if err := s.ConfirmPayment(sessionID); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// ConfirmPayment marks the order bound to the session as paid. Idempotent:
// re-confirming an already-paid order is a no-op. Order status is never
// touched; a paid order still goes through operator-driven advancement.
func (s *PaymentService) ConfirmPayment(sessionRef string) error {
	if _, err := s.Orders.GetByPaymentSession(sessionRef); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	_, err := s.Orders.MarkPaidGuard(sessionRef)
	return err
}

// RetryPolicy bounds the payment status poll.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// PollUntilPaid re-checks the session until it reports paid or the policy
// is exhausted. Exhaustion is ErrPollTimeout, distinct from a final unpaid
// answer on the last attempt; request failures are logged and counted, not
// retried beyond the cap.
func (s *PaymentService) PollUntilPaid(ctx context.Context, sessionRef string, policy RetryPolicy) error {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 5
	}
	if policy.Interval <= 0 {
		policy.Interval = 2 * time.Second
	}

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		st, err := s.CheckStatus(ctx, sessionRef)
		if err != nil {
			log.Printf("payment poll attempt %d failed: %v", attempt, err)
		} else if st.Paid() {
			return nil
		}

		if attempt == policy.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(policy.Interval):
		}
	}
	return ErrPollTimeout
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
