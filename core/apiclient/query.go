package apiclient

import (
	"net/url"
	"strconv"
	"time"
)

// Query builds URL query strings, skipping unset optional values.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Int sets key unconditionally.
func (q *Query) Int(key string, v int) *Query {
	q.values.Set(key, strconv.Itoa(v))
	return q
}

// Bool sets key unconditionally.
func (q *Query) Bool(key string, v bool) *Query {
	q.values.Set(key, strconv.FormatBool(v))
	return q
}

// String sets key when v is not empty.
func (q *Query) String(key, v string) *Query {
	if v != "" {
		q.values.Set(key, v)
	}
	return q
}

// Int64 sets key when v is not nil.
func (q *Query) Int64(key string, v *int64) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatInt(*v, 10))
	}
	return q
}

// Date sets key as YYYY-MM-DD when v is not nil.
func (q *Query) Date(key string, v *time.Time) *Query {
	if v != nil {
		q.values.Set(key, v.Format(time.DateOnly))
	}
	return q
}

// Values returns the encoded parameters.
func (q *Query) Values() url.Values {
	return q.values
}
