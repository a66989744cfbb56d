package dto

import "errors"

// Inputs are the typed, validated boundary between form payloads and the
// catalog logic. Validate covers what the original forms marked required;
// everything else is accepted as-is.

type CreateProductInput struct {
	Name          string
	Barcode       string
	SKU           string
	Category      string
	Description   string
	Quantity      int
	MinStockLevel int
	UnitPrice     float64
	SupplierID    string
}

func (i *CreateProductInput) Validate() error {
	if i.Name == "" {
		return errors.New("product name is required")
	}
	if i.SKU == "" {
		return errors.New("SKU is required")
	}
	if i.Barcode == "" {
		return errors.New("barcode is required")
	}
	return nil
}

type UpdateProductInput struct {
	ID            string
	Name          string
	Barcode       string
	SKU           string
	Category      string
	Description   string
	Quantity      int
	MinStockLevel int
	UnitPrice     float64
	SupplierID    string
}

func (i *UpdateProductInput) Validate() error {
	if i.ID == "" {
		return errors.New("product id is required")
	}
	if i.Name == "" {
		return errors.New("product name is required")
	}
	if i.SKU == "" {
		return errors.New("SKU is required")
	}
	return nil
}

type AdjustStockInput struct {
	ProductID string
	Delta     int // positive receives stock, negative issues it, zero records a correction
	Reason    string
	Reference string
}

func (i *AdjustStockInput) Validate() error {
	if i.ProductID == "" {
		return errors.New("product id is required")
	}
	if i.Reason == "" {
		return errors.New("adjustment reason is required")
	}
	return nil
}

type CreateSupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Website       string
	Notes         string
}

func (i *CreateSupplierInput) Validate() error {
	if i.Name == "" {
		return errors.New("supplier name is required")
	}
	return nil
}

type UpdateSupplierInput struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Website       string
	Notes         string
}

func (i *UpdateSupplierInput) Validate() error {
	if i.ID == "" {
		return errors.New("supplier id is required")
	}
	if i.Name == "" {
		return errors.New("supplier name is required")
	}
	return nil
}
