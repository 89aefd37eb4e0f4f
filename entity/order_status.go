package entity

// OrderStatus is a closed set. Transitions are strictly forward:
// PENDING -> EN_PREPARACION -> EN_CAMINO -> ENTREGADO, plus the
// customer-only PENDING -> CANCELADO handled by Cancel.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "EN_PREPARACION"
	StatusOnTheWay  OrderStatus = "EN_CAMINO"
	StatusDelivered OrderStatus = "ENTREGADO"
	StatusCancelled OrderStatus = "CANCELADO"
)

var forwardStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusOnTheWay,
	StatusOnTheWay:  StatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal states accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanAdvanceTo reports whether an owner may move the order from s to next.
// Cancellation is not reachable here; it is a separate customer action.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return forwardStatus[s] == next
}
