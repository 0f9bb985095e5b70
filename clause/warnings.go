package clause

import (
	"github.com/hashicorp/go-multierror"
)

// joinWarnings collects the per-id warnings raised while processing one
// deletion record into a single error, the way verify.Driver wants to log
// one structured event per record instead of N independent lines.
func joinWarnings(warnings []error) error {
	if len(warnings) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, w := range warnings {
		merr = multierror.Append(merr, w)
	}
	return merr.ErrorOrNil()
}
