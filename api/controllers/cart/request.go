package cart

type addItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// setQuantityRequest uses a pointer so an explicit 0 (remove the line) passes the
// required check.
type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=999"`
}
