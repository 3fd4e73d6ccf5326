package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
)

const (
	pqCodeUniqueViolation      = "23505"
	pqCodeInvalidSQLStatement  = "26000"
	pqCodeProtocolViolation    = "08P01"
	pqCodeSerializationFailure = "40001"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isRetryable reports errors that a second attempt on a fresh statement can
// resolve: serialization conflicts and prepared statements dropped by a pooler.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch pqCode(err) {
	case pqCodeSerializationFailure, pqCodeInvalidSQLStatement:
		return true
	}
	return isUnnamedPreparedStatementMissing(err) || isBindParameterMismatch(err)
}

func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	if pqCode(err) == pqCodeProtocolViolation {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "prepared statement")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(msg, "prepared statement") && strings.Contains(msg, "(26000)")
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

func dedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
