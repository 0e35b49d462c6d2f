package entity

// Status is the order lifecycle state. The happy path is linear:
// pending → confirmed → preparing → delivering → delivered.
// Cancellation is allowed only from pending and confirmed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusPreparing  Status = "preparing"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusPreparing, StatusCancelled},
	StatusPreparing:  {StatusDelivering},
	StatusDelivering: {StatusDelivered},
	// delivered and cancelled are terminal
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ParseStatus maps a wire value onto a known status.
func ParseStatus(v string) (Status, bool) {
	switch Status(v) {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return Status(v), true
	}
	return "", false
}

// PaymentStatus is orthogonal to Status and only ever moves unpaid → paid,
// driven by the payment collaborator, never by an operator.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)
