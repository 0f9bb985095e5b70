package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a VerifierError along the lines the CLI exit-code
// contract cares about: how main() should react to this failure.
type Kind int

const (
	// KindParse marks a malformed CNF or proof file: bad DIMACS header,
	// truncated record, unparsable token. Maps to exit code 255.
	KindParse Kind = iota
	// KindStructural marks a proof that references clause state that
	// cannot exist: a deleted or out-of-range clause id dereferenced by a
	// hint. Maps to exit code 2.
	KindStructural
	// KindContent marks a step that fails the actual PR/RUP check: a
	// missing hint, an unreduced witness, a step that derives no
	// contradiction. Maps to exit code 0 ("s NOT VERIFIED").
	KindContent
	// KindWarning marks a non-fatal condition (e.g. deleting an
	// already-deleted id) that is logged but never changes the verdict.
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindStructural:
		return "structural"
	case KindContent:
		return "content"
	case KindWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// VerifierError is the one error type every prcheck package returns.
// Op names the component/operation that raised it, matching the
// teacher's LogicError.Op convention. Cause, when set, carries a
// pkg/errors-wrapped stack trace for diagnostic logging.
type VerifierError struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *VerifierError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("prcheck: %s error in %s: %s", e.Kind, e.Op, e.Message)
	}
	return fmt.Sprintf("prcheck: %s error: %s", e.Kind, e.Message)
}

func (e *VerifierError) Unwrap() error {
	return e.Cause
}

// NewVerifierError builds a VerifierError with a formatted message,
// mirroring the teacher's NewLogicError(system, op, message) shape.
func NewVerifierError(kind Kind, op, format string, args ...interface{}) *VerifierError {
	return &VerifierError{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches an operation name and kind to an existing error,
// preserving it as Cause with a stack trace via pkg/errors.
func Wrap(kind Kind, op string, err error) *VerifierError {
	if err == nil {
		return nil
	}
	return &VerifierError{
		Kind:    kind,
		Op:      op,
		Message: err.Error(),
		Cause:   errors.WithStack(err),
	}
}

// AsVerifierError unwraps err looking for a *VerifierError, the way a
// caller needs to in order to decide a CLI exit code.
func AsVerifierError(err error) (*VerifierError, bool) {
	var ve *VerifierError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
