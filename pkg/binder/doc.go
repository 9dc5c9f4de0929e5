// Package binder decodes HTTP requests into structs for handler.Wrap.
//
// Each binder handles one source and reads its own struct tag:
//
//	Form()    `form:"name"`   url-encoded and multipart bodies
//	JSON()    `json:"name"`   application/json bodies
//	Signals() `json:"name"`   DataStar signals
//	Query()   `query:"name"`  URL query string
//	Path()    `path:"name"`   chi route parameters
//
// Body binders return ErrBinderNotApplicable when the request carries a
// different content type, so one handler can accept several encodings.
package binder
