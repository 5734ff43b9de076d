package model

type ApiRequest struct {
	ID        int32  `json:"api_request_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Address   string `json:"address"`
}

type CreateApiRequestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Company   string `json:"company" validate:"max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	City      string `json:"city" validate:"required,max=255"`
	Address   string `json:"address" validate:"required,max=255"`
}
