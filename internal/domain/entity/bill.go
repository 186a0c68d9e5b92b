package entity

// Bill is the priced breakdown of a cart snapshot, computed once at checkout
// and captured unchanged on the resulting order.
type Bill struct {
	Subtotal    int `json:"subtotal"`
	Discount    int `json:"discount"`
	DeliveryFee int `json:"deliveryFee"`
	GrandTotal  int `json:"grandTotal"`
}
