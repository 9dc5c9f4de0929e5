package animals

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/petadopt/svc/adoption"
)

// Animal is one adoption listing.
type Animal struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"owner_email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	ImageURL    string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"date_added"`
}

// FromReport builds a listing from a valid validation report. Values are
// taken already trimmed and normalized from the report.
func FromReport(report adoption.Report) (Animal, error) {
	if !report.Valid {
		return Animal{}, report.Errors()
	}

	age, err := strconv.Atoi(report.Value(adoption.FieldAge))
	if err != nil {
		return Animal{}, fmt.Errorf("animals: age passed validation but does not parse: %w", err)
	}

	return Animal{
		Name:        report.Value(adoption.FieldName),
		Species:     report.Value(adoption.FieldSpecies),
		Breed:       report.Value(adoption.FieldBreed),
		Age:         age,
		Description: report.Value(adoption.FieldDescription),
		OwnerEmail:  report.Value(adoption.FieldEmail),
		Address:     report.Value(adoption.FieldAddress),
		City:        report.Value(adoption.FieldCity),
		PostalCode:  report.Value(adoption.FieldPostalCode),
	}, nil
}
