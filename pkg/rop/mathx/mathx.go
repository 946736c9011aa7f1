package mathx

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMinGreaterThanMax = errors.New("min can't be greater than max")
	ErrInvalidHex        = errors.New("invalid hexadecimal number")
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// Clamp bounds v into [min, max]. A NaN v is returned unchanged.
func Clamp[T Number](v, min, max T) (T, error) {
	if min > max {
		return v, errors.Wrapf(ErrMinGreaterThanMax, "clamp into [%v, %v]", min, max)
	}
	if math.IsNaN(float64(v)) {
		return v, nil
	}
	if v < min {
		return min, nil
	}
	if v > max {
		return max, nil
	}
	return v, nil
}

// Overflow maps v into [min, max] with modular wraparound:
// ((v-min) mod r + r) mod r + min, where r = max-min+1.
func Overflow[T Integer](v, min, max T) (T, error) {
	if min > max {
		return v, errors.Wrapf(ErrMinGreaterThanMax, "overflow into [%v, %v]", min, max)
	}
	// uint64 differences are exact for any pair of ordered values of T.
	r := uint64(max) - uint64(min) + 1
	if r == 0 {
		// [min, max] spans the whole 64-bit domain.
		return v, nil
	}
	var off uint64
	if v >= min {
		off = (uint64(v) - uint64(min)) % r
	} else {
		off = (r - (uint64(min)-uint64(v))%r) % r
	}
	return T(uint64(min) + off), nil
}

// Rand returns a random integer in [min, max].
func Rand(min, max int) (int, error) {
	if min > max {
		return 0, errors.Wrapf(ErrMinGreaterThanMax, "rand in [%d, %d]", min, max)
	}
	span := uint64(max) - uint64(min)
	var n uint64
	if span == math.MaxUint64 {
		n = rand.Uint64()
	} else {
		n = rand.Uint64N(span + 1)
	}
	return int(uint64(min) + n), nil
}

// Rand0 returns a random integer in [0, max].
func Rand0(max int) (int, error) {
	return Rand(0, max)
}

// DecToHex formats dec in lowercase base 16 without a prefix.
func DecToHex(dec int64) string {
	return strconv.FormatInt(dec, 16)
}

// HexToDec parses a base 16 string. An optional 0x prefix and sign are accepted.
func HexToDec(hex string) (int64, error) {
	s := strings.TrimSpace(hex)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return 0, errors.Wrapf(ErrInvalidHex, "%q", hex)
	}
	n, err := strconv.ParseInt(sign+digits, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidHex, "%q", hex)
	}
	return n, nil
}
