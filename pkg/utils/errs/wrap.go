package errs

import "fmt"

func Wrap(base, ext error) error {
	return fmt.Errorf("%w: %w", base, ext)
}

func Wrapf(base error, str string) error {
	return fmt.Errorf("%w: %s", base, str)
}

// Attr scopes base to a single attribute path.
func Attr(base error, attribute string) error {
	return fmt.Errorf("%w: attribute %q", base, attribute)
}
