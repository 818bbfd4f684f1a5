package order

// UpdateOrderModel carries the mutable order fields for a partial update.
// A nil field means "leave unchanged"; a non-nil field replaces the stored
// value. CreatedAt is deliberately absent: fecha is immutable.
type UpdateOrderModel struct {
	Products *[]string
	Status   *string
}
