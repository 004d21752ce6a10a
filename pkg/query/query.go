// Package query parses loosely-formatted list values from query strings and
// environment variables.
package query

import (
	"strconv"
	"strings"
)

// Int64Slice parses repeated string values into int64 IDs. Entries that do
// not parse are dropped.
func Int64Slice(vals []string) []int64 {
	var res []int64
	for _, v := range vals {
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice splits a comma-separated value into a trimmed slice,
// dropping empty entries.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
