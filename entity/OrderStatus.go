package entity

// Order statuses are an open set: any string is accepted on update. These are
// the values the service itself writes or that clients conventionally send.
const (
	OrderStatusPending        = "pending"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
)
