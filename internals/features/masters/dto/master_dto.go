package dto

import "strings"

type CreateItemRequest struct {
	ID   string `json:"id" validate:"required,max=20"`
	Nama string `json:"nama" validate:"required,max=100"`
}

type UpdateItemRequest struct {
	Nama string `json:"nama" validate:"required,max=100"`
}

func (r *CreateItemRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Nama = strings.TrimSpace(r.Nama)
}

func (r *UpdateItemRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
}
