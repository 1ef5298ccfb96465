// Package cli holds argument helpers shared by the command-line tools.
package cli

import (
	"errors"
	"fmt"
	"strconv"
)

// ArgError reports a malformed command-line argument. Tools exit with
// status 2 when they see one.
type ArgError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// IsArgError reports whether err is or wraps an *ArgError.
func IsArgError(err error) bool {
	var ae *ArgError
	return errors.As(err, &ae)
}

// Float parses args[i] as a float named name.
func Float(args []string, i int, name string) (float64, error) {
	if i >= len(args) {
		return 0, &ArgError{Name: name, Err: errors.New("missing")}
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, &ArgError{Name: name, Value: args[i], Err: numErr(err)}
	}
	return v, nil
}

// OptFloat is Float, returning def when args[i] is absent.
func OptFloat(args []string, i int, name string, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	return Float(args, i, name)
}

// Int parses args[i] as a base-10 integer named name.
func Int(args []string, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, &ArgError{Name: name, Err: errors.New("missing")}
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, &ArgError{Name: name, Value: args[i], Err: numErr(err)}
	}
	return v, nil
}

// numErr strips strconv's function and input prefix, which ArgError
// already prints.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
