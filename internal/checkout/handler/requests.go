package handler

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"storefront/internal/forms"
	dErrors "storefront/pkg/domain-errors"
)

type AddressRequest struct {
	Shipping forms.Address  `json:"shipping"`
	Billing  *forms.Address `json:"billing,omitempty"`
}

func (r *AddressRequest) Validate() error {
	if err := r.Shipping.Validate(); err != nil {
		return err
	}
	if r.Billing != nil {
		return r.Billing.Validate()
	}
	return nil
}

type ShippingMethodRequest struct {
	MethodID string `json:"method_id"`
}

func (r *ShippingMethodRequest) Validate() error {
	r.MethodID = strings.TrimSpace(r.MethodID)
	if !govalidator.StringLength(r.MethodID, "1", "64") {
		return dErrors.New(dErrors.CodeValidation, "method_id is required")
	}
	return nil
}

type PaymentRequest struct {
	Method string `json:"method"`
}

func (r *PaymentRequest) Validate() error {
	r.Method = strings.TrimSpace(r.Method)
	if !govalidator.StringLength(r.Method, "1", "64") || !govalidator.IsPrintableASCII(r.Method) {
		return dErrors.New(dErrors.CodeValidation, "method is required")
	}
	return nil
}
