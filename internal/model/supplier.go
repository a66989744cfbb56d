package model

type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website,omitempty"`
	Notes         string `json:"notes,omitempty"`
}
