package entities

// CheckoutLine is one requested order line. Instructions is the line's own
// free-text note, used when the line is not rush-flagged.
type CheckoutLine struct {
	ProductID    int64
	Quantity     int
	RushOrder    bool
	Instructions string
}

// CheckoutRequest is a validated checkout form. Items is the selected cart
// content; Lines mirrors it with per-line rush flags; RushInfo carries the
// time windows for rush-flagged products.
type CheckoutRequest struct {
	Delivery      DeliveryInformation
	Items         []CartItem
	Lines         []CheckoutLine
	RushInfo      []RushDeliveryInfo
	PaymentMethod PaymentMethod
}

// CheckoutResult is returned on successful checkout. ClearCart signals the
// storefront to drop the purchased cart content.
type CheckoutResult struct {
	OrderID        int64
	TrackingCode   string
	TotalBeforeVAT int64
	TotalAfterVAT  int64
	VAT            int64
	Shipping       ShippingCalculation
	ClearCart      bool
}
