// Package forms holds the request bodies shared by checkout and account:
// addresses and customer details. Validate trims input in place.
package forms

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"storefront/internal/commerce"
	dErrors "storefront/pkg/domain-errors"
	"storefront/pkg/email"
)

type Address struct {
	FullName        string `json:"full_name"`
	Company         string `json:"company"`
	StreetLine1     string `json:"street_line1"`
	StreetLine2     string `json:"street_line2"`
	City            string `json:"city"`
	Province        string `json:"province"`
	PostalCode      string `json:"postal_code"`
	CountryCode     string `json:"country_code"`
	PhoneNumber     string `json:"phone_number"`
	DefaultShipping *bool  `json:"default_shipping,omitempty"`
	DefaultBilling  *bool  `json:"default_billing,omitempty"`
}

func (a *Address) Validate() error {
	for _, f := range []*string{
		&a.FullName, &a.Company, &a.StreetLine1, &a.StreetLine2, &a.City,
		&a.Province, &a.PostalCode, &a.CountryCode, &a.PhoneNumber,
	} {
		*f = strings.TrimSpace(*f)
	}
	a.CountryCode = strings.ToUpper(a.CountryCode)

	if !govalidator.StringLength(a.FullName, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "full_name is required")
	}
	if !govalidator.StringLength(a.StreetLine1, "1", "200") {
		return dErrors.New(dErrors.CodeValidation, "street_line1 is required")
	}
	if !govalidator.StringLength(a.City, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "city is required")
	}
	if !govalidator.StringLength(a.PostalCode, "1", "20") {
		return dErrors.New(dErrors.CodeValidation, "postal_code is required")
	}
	if !govalidator.IsISO3166Alpha2(a.CountryCode) {
		return dErrors.New(dErrors.CodeValidation, "country_code must be an ISO 3166 alpha-2 code")
	}
	if a.PhoneNumber != "" && !govalidator.StringLength(a.PhoneNumber, "3", "30") {
		return dErrors.New(dErrors.CodeValidation, "phone_number is invalid")
	}
	return nil
}

// Input converts the form to the engine's address input.
func (a Address) Input() commerce.AddressInput {
	return commerce.AddressInput{
		FullName:               a.FullName,
		Company:                a.Company,
		StreetLine1:            a.StreetLine1,
		StreetLine2:            a.StreetLine2,
		City:                   a.City,
		Province:               a.Province,
		PostalCode:             a.PostalCode,
		CountryCode:            a.CountryCode,
		PhoneNumber:            a.PhoneNumber,
		DefaultShippingAddress: a.DefaultShipping,
		DefaultBillingAddress:  a.DefaultBilling,
	}
}

type Customer struct {
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// validate checks names and phone. Email is checked only when requireEmail is
// set: guests must give one, profile updates cannot change it.
func (c *Customer) validate(requireEmail bool) error {
	c.Title = strings.TrimSpace(c.Title)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = email.Normalize(c.Email)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)

	if !govalidator.StringLength(c.FirstName, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "first_name is required")
	}
	if !govalidator.StringLength(c.LastName, "1", "100") {
		return dErrors.New(dErrors.CodeValidation, "last_name is required")
	}
	if requireEmail && !govalidator.IsEmail(c.Email) {
		return dErrors.New(dErrors.CodeValidation, "a valid email is required")
	}
	if c.PhoneNumber != "" && !govalidator.StringLength(c.PhoneNumber, "3", "30") {
		return dErrors.New(dErrors.CodeValidation, "phone_number is invalid")
	}
	return nil
}

func (c Customer) Input() commerce.CustomerInput {
	return commerce.CustomerInput{
		Title:        c.Title,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		EmailAddress: c.Email,
		PhoneNumber:  c.PhoneNumber,
	}
}

// GuestCustomer is the checkout customer step; email is mandatory.
type GuestCustomer struct {
	Customer
}

func (g *GuestCustomer) Validate() error { return g.validate(true) }

// Profile is an account profile update; email changes are not supported.
type Profile struct {
	Customer
}

func (p *Profile) Validate() error {
	p.Email = ""
	return p.validate(false)
}
