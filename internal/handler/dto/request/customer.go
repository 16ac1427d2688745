package request

type CreateCustomer struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type TopUpBalance struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}
