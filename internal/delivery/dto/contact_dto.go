package dto

type CreatePhoneRequest struct {
	Number string `json:"number" validate:"required,max=15"`
}

type CreateAddressRequest struct {
	Value string `json:"value" validate:"required,max=100"`
}

type ContactResponse struct {
	ID    uint   `json:"id"`
	Value string `json:"value"`
}

type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Total int               `json:"total"`
}
