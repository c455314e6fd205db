package repository

// Models lists every table owned by the repositories, in migration order.
func Models() []any {
	return []any{
		&userModel{},
		&offeringModel{},
		&bookingModel{},
		&paymentModel{},
	}
}
