package valetfx

import (
	"github.com/hashicorp/go-multierror"
)

func joinFailures(failures []Failure) error {
	var errs *multierror.Error
	for _, f := range failures {
		errs = multierror.Append(errs, f)
	}

	return errs.ErrorOrNil()
}
