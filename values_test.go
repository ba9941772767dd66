package quadtree

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromValues(t *testing.T) {
	rect := NewRectangle(100, 100, 10, 10)

	t.Run("accepts a rectangle or a pointer to one", func(t *testing.T) {
		for _, boundary := range []any{rect, &rect} {
			q, err := FromValues(boundary, 4)
			require.NoError(t, err)
			require.Equal(t, rect, q.Boundary())
			require.Equal(t, 4, q.Capacity())
			require.False(t, q.Divided())
			require.Empty(t, q.Points())
		}
	})

	t.Run("accepts any number as capacity", func(t *testing.T) {
		for _, capacity := range []any{int8(3), uint(3), int64(3), float32(3), float64(3)} {
			q, err := FromValues(rect, capacity)
			require.NoError(t, err)
			require.Equal(t, 3, q.Capacity())
		}
	})

	t.Run("rounds fractional capacity up", func(t *testing.T) {
		q, err := FromValues(rect, 2.5)
		require.NoError(t, err)
		require.Equal(t, 3, q.Capacity())

		for i := 0; i < 3; i++ {
			require.True(t, q.Insert(Point{100, 100}))
		}
		require.False(t, q.Divided())
	})

	tests := []struct {
		name     string
		boundary any
		capacity any
		errType  string
		message  string
	}{
		{
			name:     "nil boundary",
			boundary: nil,
			capacity: 3,
			errType:  ErrTypeArgument,
			message:  "boundary is null or undefined",
		},
		{
			name:     "nil rectangle pointer",
			boundary: (*Rectangle)(nil),
			capacity: 3,
			errType:  ErrTypeArgument,
			message:  "boundary is null or undefined",
		},
		{
			name:     "boundary is not a rectangle",
			boundary: "not a boundary object",
			capacity: 3,
			errType:  ErrTypeArgument,
			message:  "boundary should be a Rectangle",
		},
		{
			name:     "boundary is a point",
			boundary: Point{1, 2},
			capacity: 3,
			errType:  ErrTypeArgument,
			message:  "boundary should be a Rectangle",
		},
		{
			name:     "capacity less than 1",
			boundary: rect,
			capacity: 0,
			errType:  ErrTypeRange,
			message:  "capacity must be greater than 0",
		},
		{
			name:     "fractional capacity less than 1",
			boundary: rect,
			capacity: 0.5,
			errType:  ErrTypeRange,
			message:  "capacity must be greater than 0",
		},
		{
			name:     "capacity is a string",
			boundary: rect,
			capacity: "test",
			errType:  ErrTypeArgument,
			message:  "capacity should be a number but is a string",
		},
		{
			name:     "capacity is a boolean",
			boundary: rect,
			capacity: true,
			errType:  ErrTypeArgument,
			message:  "capacity should be a number but is a boolean",
		},
		{
			name:     "capacity is nil",
			boundary: rect,
			capacity: nil,
			errType:  ErrTypeArgument,
			message:  "capacity should be a number but is a null",
		},
		{
			name:     "capacity is a map",
			boundary: rect,
			capacity: map[string]int{"capacity": 4},
			errType:  ErrTypeArgument,
			message:  "capacity should be a number but is a object",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q, err := FromValues(test.boundary, test.capacity)
			require.Nil(t, q)
			require.Error(t, err)
			require.Equal(t, test.errType, errors.Type(err))
			require.Contains(t, err.Error(), test.message)
		})
	}

	t.Run("boundary is checked before capacity", func(t *testing.T) {
		_, err := FromValues(nil, "test")
		require.Contains(t, err.Error(), "boundary is null or undefined")
	})
}
