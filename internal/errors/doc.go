// Package errors provides structured error handling for spirits-api.
//
// Errors carry a Code, a human-readable message, optional metadata, and the
// wrapped cause. Handlers map codes to HTTP status via Code.HTTPStatus.
//
// Creating errors:
//
//	err := errors.NotFound("monster not found")
//	err := errors.InvalidArgumentf("invalid copy count: %d", n)
//
// Adding metadata:
//
//	err := errors.NotFound("monster not found").
//	    WithMeta("monster_id", id)
//
// Wrapping:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load monster")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//
// Validation of multi-field inputs goes through ValidationBuilder, which
// accumulates per-field problems and builds a single InvalidArgument error.
package errors
