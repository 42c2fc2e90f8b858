package database

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ViolationKind classifies a storage constraint error.
type ViolationKind string

const (
	ViolationUnknown ViolationKind = "unknown"
	ViolationUnique  ViolationKind = "unique"
	ViolationCheck   ViolationKind = "check"
)

// Violation is what Classify could learn from a storage error.
type Violation struct {
	Kind       ViolationKind
	Code       string
	Constraint string
	Columns    []string
}

var (
	uniqueCodes = map[string]bool{"P2002": true, "23505": true}
	checkCodes  = map[string]bool{"P2004": true, "23514": true}

	surrealIndexPattern = regexp.MustCompile("Database index `([^`]+)` already contains")
	violatesPattern     = regexp.MustCompile(`violates (unique|check) constraint "([^"]+)"`)
	constraintPattern   = regexp.MustCompile(`constraint "([^"]+)"`)
	keyDetailPattern    = regexp.MustCompile(`^Key \(([^)]+)\)=`)
)

// Classify inspects err and reports the constraint violation it carries.
// It accepts pgx and lib/pq errors, Prisma-shaped maps
// ({code, meta: {target}}), SurrealDB unique index messages and any error
// whose text names a violated constraint. Everything else, including nil,
// is ViolationUnknown.
func Classify(err any) Violation {
	v := extract(err)

	switch {
	case uniqueCodes[v.Code]:
		v.Kind = ViolationUnique
		return v.Violation
	case checkCodes[v.Code]:
		v.Kind = ViolationCheck
		return v.Violation
	}

	v.Kind = ViolationUnknown
	if m := surrealIndexPattern.FindStringSubmatch(v.message); m != nil {
		v.Kind = ViolationUnique
		v.Constraint = m[1]
	} else if m := violatesPattern.FindStringSubmatch(v.message); m != nil {
		v.Kind = ViolationKind(m[1])
		v.Constraint = m[2]
	}
	return v.Violation
}

// Lookup finds the catalog entry for a classified violation.
func (v Violation) Lookup() (Constraint, bool) {
	switch v.Kind {
	case ViolationUnique:
		return LookupUnique(v.Constraint, v.Columns)
	case ViolationCheck:
		return LookupCheck(v.Constraint)
	}
	return Constraint{}, false
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err any) bool {
	return Classify(err).Kind == ViolationUnique
}

// GetConstraintName returns the violated constraint's name when err carries one.
func GetConstraintName(err any) (string, bool) {
	v := Classify(err)
	if v.Constraint == "" {
		return "", false
	}
	return v.Constraint, true
}

type extracted struct {
	Violation
	message string
}

func extract(err any) extracted {
	switch e := err.(type) {
	case nil:
		return extracted{}
	case error:
		return fromError(e)
	case map[string]any:
		return fromMap(e)
	}
	return extracted{}
}

func fromError(err error) extracted {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return extracted{
			Violation: Violation{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Columns: detailColumns(pgErr.Detail)},
			message:   pgErr.Message,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return extracted{
			Violation: Violation{Code: string(pqErr.Code), Constraint: pqErr.Constraint, Columns: detailColumns(pqErr.Detail)},
			message:   pqErr.Message,
		}
	}

	msg := err.Error()
	out := extracted{message: msg}
	if m := constraintPattern.FindStringSubmatch(msg); m != nil {
		out.Constraint = m[1]
	}
	return out
}

func fromMap(m map[string]any) extracted {
	var out extracted
	out.Code, _ = m["code"].(string)
	out.message, _ = m["message"].(string)
	if name, ok := m["constraint"].(string); ok {
		out.Constraint = name
	}

	meta, _ := m["meta"].(map[string]any)
	switch target := meta["target"].(type) {
	case []any:
		for _, t := range target {
			if s, ok := t.(string); ok {
				out.Columns = append(out.Columns, s)
			}
		}
	case []string:
		out.Columns = append(out.Columns, target...)
	case string:
		out.Constraint = target
	}
	if name, ok := meta["constraint"].(string); ok && out.Constraint == "" {
		out.Constraint = name
	}
	if dbErr, ok := meta["database_error"].(string); ok {
		if out.Constraint == "" {
			if mm := constraintPattern.FindStringSubmatch(dbErr); mm != nil {
				out.Constraint = mm[1]
			}
		}
		if out.message == "" {
			out.message = dbErr
		}
	}
	return out
}

// detailColumns reads the column list from a Postgres unique violation
// detail such as `Key ("userId", "nameNorm")=(u1, health) already exists.`
func detailColumns(detail string) []string {
	m := keyDetailPattern.FindStringSubmatch(detail)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], ",")
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.Trim(strings.TrimSpace(p), `"`); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}
