package checkout

import "storefront/internal/commerce"

type Step string

const (
	StepCustomer     Step = "customer"
	StepAddress      Step = "address"
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var steps = []Step{StepCustomer, StepAddress, StepShipping, StepPayment, StepConfirmation}

type StepStatus struct {
	Step     Step `json:"step"`
	Complete bool `json:"complete"`
}

// Progress is the checkout stepper state.
type Progress struct {
	Current Step         `json:"current"`
	Steps   []StepStatus `json:"steps"`
}

// CurrentStep is the first step the order has not completed. Signed-in
// customers skip the customer step.
func CurrentStep(order *commerce.Order, loggedIn bool) Step {
	switch {
	case order == nil:
		return StepCustomer
	case order.State == commerce.StatePaymentAuthorized || order.State == commerce.StatePaymentSettled:
		return StepConfirmation
	case !loggedIn && order.Customer == nil:
		return StepCustomer
	case order.ShippingAddress == nil || order.ShippingAddress.StreetLine1 == "":
		return StepAddress
	case len(order.ShippingLines) == 0:
		return StepShipping
	}
	return StepPayment
}

func NewProgress(order *commerce.Order, loggedIn bool) Progress {
	current := CurrentStep(order, loggedIn)
	p := Progress{Current: current, Steps: make([]StepStatus, 0, len(steps))}
	done := true
	for _, s := range steps {
		if s == current {
			done = false
		}
		p.Steps = append(p.Steps, StepStatus{Step: s, Complete: done})
	}
	return p
}
