package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"dushanbe-eats/entity"
	"dushanbe-eats/pkg/payment"
)

// stubPaymentClient stands in for the hosted checkout collaborator. Paying
// a session is an explicit test action, optionally deferred a number of
// status checks to exercise the poll loop.
type stubPaymentClient struct {
	mu            sync.Mutex
	seq           int
	sessions      map[string]*payment.SessionStatus
	checks        map[string]int
	payAfter      map[string]int
	lastClientRef string
	createErr     error
}

func newStubPaymentClient() *stubPaymentClient {
	return &stubPaymentClient{
		sessions: make(map[string]*payment.SessionStatus),
		checks:   make(map[string]int),
		payAfter: make(map[string]int),
	}
}

func (s *stubPaymentClient) CreateSession(_ context.Context, req payment.SessionRequest) (*payment.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastClientRef = req.ClientRef
	s.seq++
	id := fmt.Sprintf("sess_%d", s.seq)
	s.sessions[id] = &payment.SessionStatus{Status: "open", PaymentStatus: "unpaid"}
	return &payment.Session{ID: id, URL: "https://pay.example.com/c/" + id}, nil
}

func (s *stubPaymentClient) GetSessionStatus(_ context.Context, sessionID string) (*payment.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown session %q", sessionID)
	}
	s.checks[sessionID]++
	if after, ok := s.payAfter[sessionID]; ok && s.checks[sessionID] >= after {
		st.Status = "complete"
		st.PaymentStatus = "paid"
	}
	out := *st
	return &out, nil
}

func (s *stubPaymentClient) markPaid(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID].Status = "complete"
	s.sessions[sessionID].PaymentStatus = "paid"
}

func (s *stubPaymentClient) payOnCheck(sessionID string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payAfter[sessionID] = n
}

func newPaymentFixture(t *testing.T) (*fixture, *PaymentService, *stubPaymentClient) {
	t.Helper()
	f := newFixture(t)
	stub := newStubPaymentClient()
	return f, NewPaymentService(f.ordersRepo, f.payments, stub), stub
}

func TestCreateCheckoutBindsSession(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	if out.SessionID == "" || out.URL == "" {
		t.Fatalf("incomplete session: %+v", out)
	}

	stored, err := f.ordersRepo.Get(order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.PaymentSessionID != out.SessionID {
		t.Errorf("order session = %q, want %q", stored.PaymentSessionID, out.SessionID)
	}

	tr, err := f.payments.FindBySession(out.SessionID)
	if err != nil {
		t.Fatalf("find transaction: %v", err)
	}
	if tr.Amount != order.Total || tr.OrderID != order.ID {
		t.Errorf("transaction = %+v, want amount %v for order %d", tr, order.Total, order.ID)
	}
	// same reference on the provider side and in our records
	if tr.ClientRef == "" || tr.ClientRef != stub.lastClientRef {
		t.Errorf("client ref = %q, provider was sent %q", tr.ClientRef, stub.lastClientRef)
	}
}

func TestCreateCheckoutOwnOrderOnly(t *testing.T) {
	f, pay, _ := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	if _, err := pay.CreateCheckout(ctx, f.ownerB.ID, order.ID, "https://eats.example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user: err = %v, want ErrNotFound", err)
	}
	if _, err := pay.CreateCheckout(ctx, f.customer.ID, 9999, "https://eats.example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown order: err = %v, want ErrNotFound", err)
	}
}

func TestCreateCheckoutRejectsPaidOrder(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	stub.markPaid(out.SessionID)
	if _, err := pay.CheckStatus(ctx, out.SessionID); err != nil {
		t.Fatalf("check status: %v", err)
	}

	if _, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com"); !errors.Is(err, ErrAlreadyPaid) {
		t.Errorf("err = %v, want ErrAlreadyPaid", err)
	}
}

func TestCheckStatusConfirmsPaidOrder(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}

	// unpaid answer changes nothing
	st, err := pay.CheckStatus(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("check status: %v", err)
	}
	if st.Paid() {
		t.Fatalf("session unexpectedly paid")
	}
	stored, _ := f.ordersRepo.Get(order.ID)
	if stored.PaymentStatus != entity.PaymentUnpaid {
		t.Errorf("payment status = %s, want unpaid", stored.PaymentStatus)
	}

	// paid answer flips payment status but never order status
	stub.markPaid(out.SessionID)
	st, err = pay.CheckStatus(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("check status: %v", err)
	}
	if !st.Paid() {
		t.Fatalf("session not paid")
	}
	stored, _ = f.ordersRepo.Get(order.ID)
	if stored.PaymentStatus != entity.PaymentPaid {
		t.Errorf("payment status = %s, want paid", stored.PaymentStatus)
	}
	if stored.Status != entity.StatusPending {
		t.Errorf("order status = %s, payment must not advance the lifecycle", stored.Status)
	}
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	stub.markPaid(out.SessionID)

	for i := 0; i < 3; i++ {
		if err := pay.ConfirmPayment(out.SessionID); err != nil {
			t.Fatalf("confirm #%d: %v", i+1, err)
		}
	}
	stored, _ := f.ordersRepo.Get(order.ID)
	if stored.PaymentStatus != entity.PaymentPaid {
		t.Errorf("payment status = %s, want paid", stored.PaymentStatus)
	}

	if err := pay.ConfirmPayment("sess_unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown session: err = %v, want ErrNotFound", err)
	}
}

func TestPollUntilPaidSucceedsMidway(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}
	stub.payOnCheck(out.SessionID, 3)

	err = pay.PollUntilPaid(ctx, out.SessionID, RetryPolicy{MaxAttempts: 5, Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	stored, _ := f.ordersRepo.Get(order.ID)
	if stored.PaymentStatus != entity.PaymentPaid {
		t.Errorf("payment status = %s, want paid", stored.PaymentStatus)
	}
}

func TestPollUntilPaidExhaustsPolicy(t *testing.T) {
	f, pay, stub := newPaymentFixture(t)
	ctx := context.Background()
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(ctx, f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}

	err = pay.PollUntilPaid(ctx, out.SessionID, RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond})
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("err = %v, want ErrPollTimeout", err)
	}
	if got := stub.checks[out.SessionID]; got != 3 {
		t.Errorf("status checks = %d, want 3", got)
	}
	stored, _ := f.ordersRepo.Get(order.ID)
	if stored.PaymentStatus != entity.PaymentUnpaid {
		t.Errorf("payment status = %s, want unpaid", stored.PaymentStatus)
	}
}

func TestPollUntilPaidHonorsContext(t *testing.T) {
	f, pay, _ := newPaymentFixture(t)
	f.fillCart(t)
	order := f.checkout(t, "card")

	out, err := pay.CreateCheckout(context.Background(), f.customer.ID, order.ID, "https://eats.example.com")
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = pay.PollUntilPaid(ctx, out.SessionID, RetryPolicy{MaxAttempts: 5, Interval: time.Minute})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
