package interfaces

import "context"

// IReceiptNotifier abstracts the outbound messaging channel (e.g. WhatsApp).
//
// Delivery happens only after the send intent has been recorded on the
// aggregate; a delivery failure is reported to the caller but never rolls
// back that bookkeeping.
type IReceiptNotifier interface {
	DeliverReceipt(ctx context.Context, phoneNumber, message string) error
}
