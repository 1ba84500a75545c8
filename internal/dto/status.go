package dto

type CreateStatusRequest struct {
	ClientName string `json:"client_name"`
}
