// Package handler provides typed HTTP handlers with pluggable binders and
// responses that adapt to the client: HTML pages, DataStar SSE patches or
// JSON.
//
// A handler receives a Context and a bound request struct and returns a
// Response:
//
//	func showAnimal(ctx handler.Context, req animalRequest) handler.Response {
//		a, err := svc.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Redirect("/animals")
//		}
//		return handler.Templ(views.AnimalPage(a))
//	}
//
//	r.Get("/animal/{id}", handler.Wrap(showAnimal,
//		handler.WithBinders[handler.Context, animalRequest](binder.Path()),
//	))
//
// # Responses
//
//	handler.JSON(v)                    // 200 with v encoded as-is
//	handler.JSONError(err)             // status from HTTPError or ValidationError
//	handler.Templ(component)           // HTML, or an SSE patch for DataStar
//	handler.TemplStatus(400, form)     // HTML with a status
//	handler.TemplMulti(patches...)     // several SSE patches
//	handler.Signals(v)                 // signal patch, JSON for non-DataStar
//	handler.SSE(fn)                    // raw access to the event stream
//	handler.Redirect("/animals")       // 303, or a DataStar redirect
//
// # Errors
//
// Binder failures and Render errors go to the ErrorHandler. NewErrorHandler
// builds one that logs at warn for 4xx and error for 5xx and answers with
// JSON, a toast patch or an error page depending on the request.
package handler
