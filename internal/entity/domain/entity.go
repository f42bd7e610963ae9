package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Type distinguishes households from businesses.
type Type string

const (
	TypeHousehold Type = "household"
	TypeBusiness  Type = "business"
)

// Valid reports whether t is a known entity type.
func (t Type) Valid() bool {
	return t == TypeHousehold || t == TypeBusiness
}

// DefaultCountryCode is applied to addresses stored before structured addresses existed.
const DefaultCountryCode = "US"

// Address is the structured postal address of an entity.
type Address struct {
	Formatted   string `json:"formatted"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode"`
	PlaceID     string `json:"placeId,omitempty"`
}

// Entity is a household or business whose records are shared among its members.
type Entity struct {
	ID          string
	Type        Type
	Name        string
	Address     Address
	Currency    string
	Description string
	ArchivedAt  *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DecodeAddress reads a stored address. Older rows hold a bare JSON string, which becomes both
// the formatted text and the first line.
func DecodeAddress(raw []byte) (Address, error) {
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		legacy = strings.TrimSpace(legacy)
		return Address{Formatted: legacy, Line1: legacy, CountryCode: DefaultCountryCode}, nil
	}
	var a Address
	if err := json.Unmarshal(raw, &a); err != nil {
		return Address{}, fmt.Errorf("decode address: %w", err)
	}
	return a.Normalize(), nil
}

// Normalize trims every field and upper-cases the country code.
func (a Address) Normalize() Address {
	return Address{
		Formatted:   strings.TrimSpace(a.Formatted),
		Line1:       strings.TrimSpace(a.Line1),
		Line2:       strings.TrimSpace(a.Line2),
		City:        strings.TrimSpace(a.City),
		Region:      strings.TrimSpace(a.Region),
		PostalCode:  strings.TrimSpace(a.PostalCode),
		CountryCode: strings.ToUpper(strings.TrimSpace(a.CountryCode)),
		PlaceID:     strings.TrimSpace(a.PlaceID),
	}
}

// Details are the user-editable fields of an entity.
type Details struct {
	Name        string
	Address     *Address
	Currency    string
	Description string
}

// Normalize trims the details and upper-cases the currency.
func (d Details) Normalize() Details {
	out := Details{
		Name:        strings.TrimSpace(d.Name),
		Currency:    strings.ToUpper(strings.TrimSpace(d.Currency)),
		Description: strings.TrimSpace(d.Description),
	}
	if d.Address != nil {
		a := d.Address.Normalize()
		out.Address = &a
	}
	return out
}

// Validate returns the first missing required field as a message, or "" when d is complete.
func (d Details) Validate() string {
	switch {
	case d.Name == "":
		return "entity name is required"
	case d.Currency == "":
		return "entity currency is required"
	case d.Address == nil:
		return "entity address is required"
	case d.Address.Formatted == "":
		return "entity address formatted value is required"
	case d.Address.Line1 == "":
		return "entity address line 1 is required"
	case d.Address.CountryCode == "":
		return "entity address country code is required"
	}
	return ""
}
