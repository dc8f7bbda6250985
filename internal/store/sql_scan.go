// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

// timeColumn scans a timestamp into t. Besides time.Time values it accepts
// the text form go-sqlite3 hands back when a result column has no declared
// type, as with RETURNING clauses and derived tables.
type timeColumn struct {
	t *time.Time
}

func scanTime(t *time.Time) timeColumn {
	return timeColumn{t: t}
}

// Scan implements sql.Scanner.
func (c timeColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c.t = v.UTC()
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	case nil:
		*c.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (c timeColumn) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*c.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time.Time", s)
}
