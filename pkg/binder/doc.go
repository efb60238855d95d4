// Package binder decodes HTTP request bodies into Go structs.
//
// JSON binding is strict: the request must declare application/json, the
// body must be a single JSON object of bounded size, every key must map to a
// field of the target struct, and nothing may follow the object.
//
//	bind := binder.JSON(binder.WithMaxSize(64 << 10))
//
//	var req ValidateRequest
//	if err := bind(r, &req); err != nil {
//	    switch {
//	    case errors.Is(err, binder.ErrUnsupportedMediaType),
//	        errors.Is(err, binder.ErrMissingContentType):
//	        // 415
//	    case errors.Is(err, binder.ErrRequestTooLarge):
//	        // 413
//	    default:
//	        // 400
//	    }
//	}
//
// Every failure wraps one of the sentinel errors in errors.go.
package binder
