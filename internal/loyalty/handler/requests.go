package handler

import (
	"storefront/internal/loyalty"
	dErrors "storefront/pkg/domain-errors"
)

type ApplyPointsRequest struct {
	Points int `json:"points"`
}

// Validate only checks shape; balance and unit rules live in the service.
func (r *ApplyPointsRequest) Validate() error {
	if r.Points <= 0 {
		return dErrors.WithReason(dErrors.CodeValidation, loyalty.ReasonNotPositive, "points must be positive")
	}
	return nil
}
