package shelter

import (
	"github.com/dmitrymomot/petadopt/svc/adoption"
	"github.com/dmitrymomot/petadopt/svc/animals"
)

type pageRequest struct {
	Page string `query:"page"`
}

type animalRequest struct {
	ID int64 `path:"id"`
}

type searchRequest struct {
	Query string `query:"q"`
}

type randomRequest struct {
	Count string `query:"count"`
}

// validateRequest is a form snapshot plus the field that triggered the
// check. An empty Field validates the whole form.
type validateRequest struct {
	adoption.Submission
	Field string `query:"field" form:"-" json:"-"`
}

type postalCodeRequest struct {
	PostalCode string `form:"postal_code" json:"postal_code"`
}

type addResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	AnimalID int64  `json:"animal_id"`
}

type searchResponse struct {
	Results []animals.Animal `json:"results"`
	Count   int              `json:"count"`
	Query   string           `json:"query"`
}

type fieldResult struct {
	Field   adoption.FieldID `json:"field"`
	Name    string           `json:"name"`
	Valid   bool             `json:"valid"`
	Message string           `json:"message"`
	Value   string           `json:"value"`
}

type validateResponse struct {
	Valid   bool          `json:"valid"`
	Results []fieldResult `json:"results"`
}
