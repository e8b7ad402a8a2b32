package entities

// CartItem is one selected storefront cart position. Weight is the unit
// weight in kilograms; Price is the unit price in VND.
type CartItem struct {
	ProductID int64
	Title     string
	Price     int64
	Quantity  int
	Weight    float64
	RushOrder bool
}

// ShippingCalculation is the derived shipping breakdown. It is recomputed on
// every checkout attempt and never persisted independently of the order it
// funds; DeliveryInformation keeps only the final TotalShipping.
type ShippingCalculation struct {
	RegularShipping      int64
	RushShipping         int64
	FreeShippingDiscount int64
	TotalShipping        int64
	RegularItemsTotal    int64
	RushItemsTotal       int64
	HeaviestItemWeight   float64
}
