package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		FullName:    " Ada Lovelace ",
		StreetLine1: "12 Analytical St",
		City:        "London",
		PostalCode:  "N1 9GU",
		CountryCode: "gb",
	}
}

func TestAddressValidate(t *testing.T) {
	a := validAddress()
	require.NoError(t, a.Validate())
	assert.Equal(t, "Ada Lovelace", a.FullName)
	assert.Equal(t, "GB", a.CountryCode)

	in := a.Input()
	assert.Equal(t, "GB", in.CountryCode)
	assert.Equal(t, "12 Analytical St", in.StreetLine1)
}

func TestAddressValidate_Rejects(t *testing.T) {
	cases := map[string]func(a *Address){
		"missing name":    func(a *Address) { a.FullName = "  " },
		"missing street":  func(a *Address) { a.StreetLine1 = "" },
		"missing city":    func(a *Address) { a.City = "" },
		"missing postal":  func(a *Address) { a.PostalCode = "" },
		"unknown country": func(a *Address) { a.CountryCode = "XX" },
		"short phone":     func(a *Address) { a.PhoneNumber = "1" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := validAddress()
			mutate(&a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestGuestCustomerRequiresEmail(t *testing.T) {
	g := GuestCustomer{Customer{FirstName: "Ada", LastName: "Lovelace", Email: " ADA@Example.com "}}
	require.NoError(t, g.Validate())
	assert.Equal(t, "ada@example.com", g.Input().EmailAddress)

	g.Email = "not-an-email"
	assert.Error(t, g.Validate())
}

func TestProfileDropsEmail(t *testing.T) {
	p := Profile{Customer{FirstName: "Ada", LastName: "Lovelace", Email: "new@example.com"}}
	require.NoError(t, p.Validate())
	assert.Empty(t, p.Input().EmailAddress)

	p.LastName = ""
	assert.Error(t, p.Validate())
}
