package shelter

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/petadopt/handler"
	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/pkg/validator"
	"github.com/dmitrymomot/petadopt/svc/adoption"
)

func (m *Module) addForm(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(m.views.AddPage(nil, nil))
}

// addAnimal stores a listing posted as a form or as JSON. Invalid input is
// answered with 400 and per-field messages in the client's format.
func (m *Module) addAnimal(ctx handler.Context, sub adoption.Submission) handler.Response {
	r := ctx.Request()

	a, report, err := m.svc.Add(ctx, sub)
	var invalid validator.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		errs := fieldErrors(ctx, m.tr, report)
		m.log.InfoContext(ctx, "listing rejected",
			logger.Component("shelter"),
			logger.Count(len(errs)),
		)
		switch {
		case handler.WantsJSON(r):
			return handler.JSONError(errs)
		case handler.IsDataStar(r):
			return handler.Templ(m.views.AddForm(formValues(sub), errs))
		default:
			return handler.TemplStatus(http.StatusBadRequest, m.views.AddPage(formValues(sub), errs))
		}
	case err != nil:
		return handler.Error(err)
	}

	if handler.WantsJSON(r) {
		return handler.JSON(addResponse{
			Success:  true,
			Message:  m.t(ctx, "api.added"),
			AnimalID: a.ID,
		})
	}
	return handler.Redirect("/animals")
}

// validate checks one field, or the whole form when no field is named.
// DataStar clients get each feedback slot patched and the postal code
// signal reformatted; other clients get the results as JSON.
func (m *Module) validate(ctx handler.Context, req validateRequest) handler.Response {
	engine := m.svc.Engine()

	var results []adoption.Result
	if req.Field != "" {
		id := adoption.FieldID(req.Field)
		res, err := engine.ValidateField(id, req.Snapshot()[id])
		if err != nil {
			return handler.Error(errors.Join(handler.ErrBadRequest, err))
		}
		results = []adoption.Result{res}
	} else {
		results = engine.Validate(req.Submission).Results
	}

	valid := true
	out := make([]fieldResult, 0, len(results))
	for _, res := range results {
		f, _ := fieldByID(res.Field)
		valid = valid && res.Valid
		out = append(out, fieldResult{
			Field:   res.Field,
			Name:    f.Name,
			Valid:   res.Valid,
			Message: message(ctx, m.tr, res),
			Value:   res.Value,
		})
	}

	if !handler.IsDataStar(ctx.Request()) {
		return handler.JSON(validateResponse{Valid: valid, Results: out})
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		for _, res := range out {
			f, _ := fieldByID(res.Field)
			if err := stream.SendComponent(m.views.FieldFeedback(f, res.Message)); err != nil {
				return err
			}
			if res.Field == adoption.FieldPostalCode && res.Value != "" {
				if err := stream.SendSignals(map[string]any{f.Name: res.Value}); err != nil {
					return err
				}
			}
		}
		if req.Field == "" && !valid {
			return stream.SendComponent(m.views.FormStatus(m.t(stream, "form.invalid")))
		}
		return nil
	})
}

// postalCode formats a postal code as it is typed.
func (m *Module) postalCode(_ handler.Context, req postalCodeRequest) handler.Response {
	return handler.Signals(map[string]string{
		"postal_code": adoption.NormalizePostalCodeInput(req.PostalCode),
	})
}
