package things

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"
)

// Timestamp is a Unix time in whole seconds. Reddit serializes these as
// numbers that are sometimes written with a trailing ".0".
type Timestamp int64

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	c := firstByte(b)
	if c != '-' && (c < '0' || c > '9') {
		return mismatch("", "", b, errors.New("expected a number"))
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return mismatch("", "", b, err)
	}

	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*t = Timestamp(i)
		return nil
	}

	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return mismatch("", "", b, errors.New("expected an integral number of seconds"))
	}
	*t = Timestamp(int64(f))
	return nil
}

// Time returns t as a UTC time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}
