package dto

// Created is returned by create endpoints.
type Created struct {
	ID string `json:"id"`
}
