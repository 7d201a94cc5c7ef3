package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConverterForward(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	out, err := cv.Convert(42, reflect.TypeFor[string]())
	require.NoError(t, err)
	require.Equal(t, "42", out)
}

func TestConverterForwardNilTarget(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	out, err := cv.Convert(7, nil)
	require.NoError(t, err)
	require.Equal(t, "7", out)
}

func TestConverterValueTypeMismatch(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	_, err := cv.Convert("not an int", reflect.TypeFor[string]())
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestConverterTargetTypeMismatch(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	_, err := cv.Convert(42, reflect.TypeFor[float64]())
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestConverterTargetInterfaceAssignable(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	out, err := cv.Convert(42, reflect.TypeFor[any]())
	require.NoError(t, err)
	require.Equal(t, "42", out)
}

func TestConverterForwardError(t *testing.T) {
	boom := fmt.Errorf("boom")
	cv := New(func(n int) (string, error) {
		return "", boom
	})
	_, err := cv.Convert(1, nil)
	require.ErrorIs(t, err, boom)
}

func TestConverterBackWithoutInverse(t *testing.T) {
	cv := New(func(n int) (string, error) {
		return strconv.Itoa(n), nil
	})
	_, err := cv.ConvertBack("42", reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestConverterBack(t *testing.T) {
	cv := NewInvertible(
		func(n int) (string, error) { return strconv.Itoa(n), nil },
		func(s string) (int, error) { return strconv.Atoi(s) },
	)
	out, err := cv.ConvertBack("42", reflect.TypeFor[int]())
	require.NoError(t, err)
	require.Equal(t, 42, out)
	_, err = cv.ConvertBack(3.14, reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = cv.ConvertBack("42", reflect.TypeFor[string]())
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMultiConverterForward(t *testing.T) {
	cv := NewMulti(func(values []any) (string, error) {
		return fmt.Sprint(values...), nil
	})
	out, err := cv.Convert([]any{"a", 1}, reflect.TypeFor[string]())
	require.NoError(t, err)
	require.Equal(t, "a1", out)
	_, err = cv.Convert([]any{"a"}, reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMultiConverterBack(t *testing.T) {
	cv := NewMultiInvertible(
		func(values []any) (int, error) { return len(values), nil },
		func(n int) ([]any, error) {
			out := make([]any, n)
			for i := range out {
				out[i] = i
			}
			return out, nil
		},
	)
	_, err := cv.ConvertBack("nope", nil)
	require.ErrorIs(t, err, ErrTypeMismatch)
	out, err := cv.ConvertBack(2, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	//
	intT := reflect.TypeFor[int]()
	out, err = cv.ConvertBack(2, []reflect.Type{intT, intT})
	require.NoError(t, err)
	require.Equal(t, []any{0, 1}, out)
	_, err = cv.ConvertBack(2, []reflect.Type{intT})
	require.ErrorIs(t, err, ErrTypeMismatch)
	_, err = cv.ConvertBack(2, []reflect.Type{intT, reflect.TypeFor[string]()})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMultiConverterBackWithoutInverse(t *testing.T) {
	cv := NewMulti(func(values []any) (int, error) { return 0, nil })
	_, err := cv.ConvertBack(1, nil)
	require.ErrorIs(t, err, ErrNotImplemented)
}
