package models

import "time"

type Client struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ContactPerson string     `json:"contact_person"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	GSTIN         string     `json:"gstin"`
	Address       string     `json:"address"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
