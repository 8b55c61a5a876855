package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	dErrors "storefront/pkg/domain-errors"
)

const maxLineQuantity = 999

type AddItemRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

func (r *AddItemRequest) Validate() error {
	r.VariantID = strings.TrimSpace(r.VariantID)
	if !govalidator.StringLength(r.VariantID, "1", "64") {
		return dErrors.New(dErrors.CodeValidation, "variant_id is required")
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Quantity < 1 || r.Quantity > maxLineQuantity {
		return dErrors.New(dErrors.CodeValidation, "quantity must be between 1 and 999")
	}
	return nil
}

type AdjustLineRequest struct {
	Quantity *int `json:"quantity"`
}

func (r *AdjustLineRequest) Validate() error {
	if r.Quantity == nil {
		return dErrors.New(dErrors.CodeValidation, "quantity is required")
	}
	if *r.Quantity < 0 || *r.Quantity > maxLineQuantity {
		return dErrors.New(dErrors.CodeValidation, "quantity must be between 0 and 999")
	}
	return nil
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

func (r *ApplyCouponRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if !govalidator.StringLength(r.Code, "1", "64") || !govalidator.IsPrintableASCII(r.Code) {
		return dErrors.New(dErrors.CodeValidation, "invalid coupon code")
	}
	return nil
}
