package SP2D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalOptions(t *testing.T) {
	{ // defaults
		opts := DefaultEvalOptions()
		assert.True(t, opts.Value)
		assert.True(t, opts.Gradient)
	}
	{ // explicit pairs override defaults
		opts, err := EvalOptionsFromList([]string{"value", "true", "gradient", "false"})
		assert.NoError(t, err)
		assert.True(t, opts.Value)
		assert.False(t, opts.Gradient)
	}
	{ // unlisted keys keep their defaults
		opts, err := EvalOptionsFromList([]string{"gradient", "false"})
		assert.NoError(t, err)
		assert.True(t, opts.Value)
		assert.False(t, opts.Gradient)
	}
	{ // unknown key
		_, err := EvalOptionsFromList([]string{"values", "true"})
		var unknown *UnknownOptionError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, "values", unknown.Key)
	}
	{ // incomplete pair
		_, err := EvalOptionsFromList([]string{"value"})
		assert.True(t, errors.Is(err, ErrInvalidOptionList))
	}
	{ // non-boolean value
		_, err := EvalOptionsFromList([]string{"value", "yes please"})
		assert.True(t, errors.Is(err, ErrInvalidOptionList))
	}
	{ // empty list is just the defaults
		opts, err := EvalOptionsFromList(nil)
		assert.NoError(t, err)
		assert.Equal(t, DefaultEvalOptions(), opts)
	}
}
