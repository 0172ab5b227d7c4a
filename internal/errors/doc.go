// Package errors provides structured errors for pokeroll.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFoundf("no %q name for species", code).
//	    WithMeta("language", code)
//
// Wrapping keeps the code of a wrapped *Error, or falls back to Internal:
//
//	if err := decode(body, &out); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode response")
//	}
//
// # Checking errors
//
//	if errors.IsNotFound(err) {
//	    // no localized name
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # HTTP
//
// Upstream responses are classified with FromHTTPStatus, the inverse of
// Code.HTTPStatus for the codes that have a natural HTTP counterpart.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("id", id, 1, 151, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
