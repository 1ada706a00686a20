package dto

// LookupResponse is the short form of any named reference entity
type LookupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateLookupRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type UpdateLookupRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type LookupListResponse struct {
	Items []LookupResponse `json:"items"`
	Total int              `json:"total"`
}
