// internal/app/authority/errors.go
package authority

// Error taxonomy for membership operations. Every failure an operation
// can return carries one of these kinds so the web layer can map it to a
// stable status code, and so "cannot remove self" stays distinguishable
// from "not authorized".

// Kind classifies an operation failure.
type Kind int

const (
	// KindNotFound: organization, membership, or user absent — or the
	// membership is already soft deleted.
	KindNotFound Kind = iota + 1
	// KindPermissionDenied: caller lacks admin/superuser capability.
	KindPermissionDenied
	// KindInvalidTransition: the state machine forbids the move
	// (self-removal, demoting an owner). Not an authorization failure.
	KindInvalidTransition
	// KindValidation: malformed input, e.g. an empty title.
	KindValidation
	// KindConflict: uniqueness violation that was not folded into an
	// idempotent no-op.
	KindConflict
)

// Error is a classified operation failure. The message is client-facing.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is matches any *Error of the same kind, so
// errors.Is(err, authority.ErrNotFound) works for every NotFound message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks. Never returned directly; operations
// return errors built by the constructors below with concrete messages.
var (
	ErrNotFound          = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrPermissionDenied  = &Error{Kind: KindPermissionDenied, Msg: "permission denied"}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition, Msg: "invalid transition"}
	ErrValidation        = &Error{Kind: KindValidation, Msg: "validation failed"}
	ErrConflict          = &Error{Kind: KindConflict, Msg: "conflict"}
)

func notFound(msg string) error          { return &Error{Kind: KindNotFound, Msg: msg} }
func permissionDenied(msg string) error  { return &Error{Kind: KindPermissionDenied, Msg: msg} }
func invalidTransition(msg string) error { return &Error{Kind: KindInvalidTransition, Msg: msg} }
func validation(msg string) error        { return &Error{Kind: KindValidation, Msg: msg} }
