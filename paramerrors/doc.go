// Package paramerrors provides structured error types for paramval.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the two failure
// classes of parameter validation and respond appropriately.
//
// # Error Categories
//
//   - SchemaError: the parameter definition itself is malformed. This is a
//     deployment/configuration bug and should surface loudly (500-class).
//   - ValidationError: the supplied value does not satisfy its definition.
//     This is a client input error (400-class); the Message field is safe
//     to return as the user-visible reason.
//
// # Usage with errors.Is
//
//	value, err := v.Validate(param, raw)
//	if err != nil {
//	    if errors.Is(err, paramerrors.ErrValidation) {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    // Definition fault: do not blame the client.
//	    http.Error(w, "internal error", http.StatusInternalServerError)
//	}
package paramerrors
