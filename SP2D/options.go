package SP2D

import (
	"fmt"
	"strconv"
)

// EvalOptions selects which fields the slice evaluators attach to the
// result. Both default to true.
type EvalOptions struct {
	Value    bool // compute and attach ShapeFunctions
	Gradient bool // compute and attach ShapeFunctionGradients
}

func DefaultEvalOptions() EvalOptions {
	return EvalOptions{Value: true, Gradient: true}
}

// EvalOptionsFromList builds EvalOptions from a flat key/value list such as
// ["value", "true", "gradient", "false"], the form accepted on the command
// line and in input files. Keys not listed keep their defaults.
func EvalOptionsFromList(args []string) (opts EvalOptions, err error) {
	opts = DefaultEvalOptions()
	if len(args)%2 != 0 {
		err = fmt.Errorf("%w: got %d entries", ErrInvalidOptionList, len(args))
		return
	}
	for i := 0; i < len(args); i += 2 {
		var val bool
		if val, err = strconv.ParseBool(args[i+1]); err != nil {
			err = fmt.Errorf("%w: value %q for key %q is not a boolean", ErrInvalidOptionList, args[i+1], args[i])
			return
		}
		switch args[i] {
		case "value":
			opts.Value = val
		case "gradient":
			opts.Gradient = val
		default:
			err = &UnknownOptionError{Key: args[i]}
			return
		}
	}
	return
}
