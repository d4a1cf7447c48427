/*
 * Copyright 2025 AlexeyGordiychenko.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// DateTimeLayout is the wire format for timestamp fields.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a timestamp column rendered as "YYYY-MM-DD hh:mm:ss" in JSON.
type DateTime time.Time

// NewDateTime converts a time.Time into a DateTime normalized to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC())
}

// Now returns the current instant as a DateTime.
func Now() DateTime {
	return NewDateTime(time.Now())
}

// Time returns the underlying time.Time value.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether the timestamp is unset.
func (d DateTime) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateTime) String() string {
	return time.Time(d).Format(DateTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("datetime must be a quoted string: %w", err)
	}
	t, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner. Drivers hand back time.Time, text, or bytes
// depending on the dialect.
func (d *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = DateTime{}
		return nil
	case time.Time:
		*d = NewDateTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("unsupported datetime column value %T", value)
	}
}

func (d *DateTime) scanString(s string) error {
	t, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*d = NewDateTime(t)
	return nil
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, DateTimeLayout, "2006-01-02 15:04:05.999999999-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported datetime value %q", s)
}
