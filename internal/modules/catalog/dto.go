package catalog

import "github.com/shopspring/decimal"

type CreateOfferingRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Slots []string        `json:"slots" binding:"required,min=1,dive,required"`
}

type UpdatePricesRequest struct {
	Price decimal.Decimal `json:"price"`
}

type UpdatePricesResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}
