package expr

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errIntegerOverflow = errors.New("integer overflow")

// Value is a number produced by Eval. Integer and float values are kept
// apart so that 2+2 renders as 4 while 2.0+2 renders as 4.0.
type Value struct {
	i       int64
	f       float64
	isFloat bool
}

func Int(v int64) Value {
	return Value{i: v}
}

func Float(v float64) Value {
	return Value{f: v, isFloat: true}
}

func (v Value) IsFloat() bool { return v.isFloat }

func (v Value) Float64() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

// Int64 reports the integer value and whether v holds an integer.
func (v Value) Int64() (int64, bool) {
	return v.i, !v.isFloat
}

// Round rounds float values to the given number of decimal places.
// Integer values are returned unchanged.
func (v Value) Round(places int) Value {
	if !v.isFloat || math.IsInf(v.f, 0) || math.IsNaN(v.f) {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v.f, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return Float(rounded)
}

// String renders integers plainly and floats with a fractional part or an
// exponent, e.g. "17", "4.0", "0.333333", "1e-06".
func (v Value) String() string {
	if !v.isFloat {
		return strconv.FormatInt(v.i, 10)
	}
	abs := math.Abs(v.f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (v Value) Number() json.Number {
	return json.Number(v.String())
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

func add(a, b Value) (Value, error) {
	if a.isFloat || b.isFloat {
		return finite(a.Float64() + b.Float64())
	}
	sum := a.i + b.i
	if (sum > a.i) != (b.i > 0) {
		return Value{}, errIntegerOverflow
	}
	return Int(sum), nil
}

func sub(a, b Value) (Value, error) {
	if a.isFloat || b.isFloat {
		return finite(a.Float64() - b.Float64())
	}
	diff := a.i - b.i
	if (diff < a.i) != (b.i > 0) {
		return Value{}, errIntegerOverflow
	}
	return Int(diff), nil
}

func mul(a, b Value) (Value, error) {
	if a.isFloat || b.isFloat {
		return finite(a.Float64() * b.Float64())
	}
	if a.i == 0 || b.i == 0 {
		return Int(0), nil
	}
	product := a.i * b.i
	if product/b.i != a.i || (a.i == -1 && b.i == math.MinInt64) || (b.i == -1 && a.i == math.MinInt64) {
		return Value{}, errIntegerOverflow
	}
	return Int(product), nil
}

// div always yields a float, matching true division.
func div(a, b Value) (Value, error) {
	if b.Float64() == 0 {
		return Value{}, ErrDivisionByZero
	}
	return finite(a.Float64() / b.Float64())
}

func neg(a Value) (Value, error) {
	if a.isFloat {
		return Float(-a.f), nil
	}
	if a.i == math.MinInt64 {
		return Value{}, errIntegerOverflow
	}
	return Int(-a.i), nil
}

func finite(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, errors.New("result is not a finite number")
	}
	return Float(f), nil
}
