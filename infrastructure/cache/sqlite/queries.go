// ABOUTME: Parameterized SQL builder for the SQLite session cache
// ABOUTME: Validates identifiers, keys and values before they reach the database

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"snapfind-api/core/interfaces"
)

var (
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	maxKeyLength   = 255
	maxValueLength = 8 * 1024 * 1024
)

// queryBuilder assembles a statement whose values are always bound as parameters
type queryBuilder struct {
	query  strings.Builder
	params int
	err    error
}

func validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}
	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}
	return nil
}

func (qb *queryBuilder) names(names ...string) bool {
	for _, n := range names {
		if err := validateName(n); err != nil {
			qb.err = err
			return false
		}
	}
	return qb.err == nil
}

func (qb *queryBuilder) selectFrom(table string, columns ...string) *queryBuilder {
	if qb.names(append([]string{table}, columns...)...) {
		fmt.Fprintf(&qb.query, "SELECT %s FROM %s", strings.Join(columns, ", "), table)
	}
	return qb
}

func (qb *queryBuilder) deleteFrom(table string) *queryBuilder {
	if qb.names(table) {
		fmt.Fprintf(&qb.query, "DELETE FROM %s", table)
	}
	return qb
}

func (qb *queryBuilder) upsert(table string, columns ...string) *queryBuilder {
	if qb.names(append([]string{table}, columns...)...) {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
		fmt.Fprintf(&qb.query, "INSERT OR REPLACE INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
		qb.params += len(columns)
	}
	return qb
}

var allowedOperators = map[string]bool{"=": true, "!=": true, ">": true, "<": true, ">=": true, "<=": true}

func (qb *queryBuilder) where(column, operator string) *queryBuilder {
	if !qb.names(column) {
		return qb
	}
	if !allowedOperators[operator] {
		qb.err = fmt.Errorf("invalid operator: %s", operator)
		return qb
	}
	if strings.Contains(qb.query.String(), " WHERE ") {
		qb.query.WriteString(" AND ")
	} else {
		qb.query.WriteString(" WHERE ")
	}
	fmt.Fprintf(&qb.query, "%s %s ?", column, operator)
	qb.params++
	return qb
}

// build returns the statement and the number of parameters it binds
func (qb *queryBuilder) build() (string, int, error) {
	if qb.err != nil {
		return "", 0, qb.err
	}
	return qb.query.String(), qb.params, nil
}

// cacheQueries holds the statement texts for one cache table
type cacheQueries struct {
	get, set, del, cleanup string
}

func newCacheQueries(table string) (cacheQueries, error) {
	var q cacheQueries
	steps := []struct {
		dst *string
		qb  *queryBuilder
	}{
		{&q.get, new(queryBuilder).selectFrom(table, "value").where("key", "=").where("expiry", ">")},
		{&q.set, new(queryBuilder).upsert(table, "key", "value", "expiry")},
		{&q.del, new(queryBuilder).deleteFrom(table).where("key", "=")},
		{&q.cleanup, new(queryBuilder).deleteFrom(table).where("expiry", "<=")},
	}
	for _, s := range steps {
		query, _, err := s.qb.build()
		if err != nil {
			return cacheQueries{}, err
		}
		*s.dst = query
	}
	return q, nil
}

// ValidateKey rejects keys SQLite cannot store safely and logs suspicious ones
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger != nil {
		for _, pattern := range []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"} {
			if strings.Contains(key, pattern) {
				logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
					"pattern":     pattern,
					"key_length":  len(key),
					"key_preview": truncateKey(key),
				})
				break
			}
		}
	}
	return nil
}

func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue rejects empty or oversized values
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}
