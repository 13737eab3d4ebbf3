package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nischitkumar/Mutable/internal/domain"
)

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

func ValidatePlan(plan *domain.Plan) error {
	if len(plan.Datasets) == 0 {
		return errors.New("plan must have at least one dataset")
	}

	seen := make(map[domain.Kind]bool)
	for _, ds := range plan.Datasets {
		if err := validateDataset(ds, seen); err != nil {
			return fmt.Errorf("dataset '%s': %w", ds.Kind, err)
		}
	}

	return nil
}

func validateDataset(ds domain.Dataset, seen map[domain.Kind]bool) error {
	if _, err := domain.ParseKind(string(ds.Kind)); err != nil {
		return err
	}

	if seen[ds.Kind] {
		return fmt.Errorf("duplicate dataset kind: %s", ds.Kind)
	}
	seen[ds.Kind] = true

	if ds.Rows < 0 {
		return fmt.Errorf("rows must be >= 0, got %d", ds.Rows)
	}

	if ds.File != "" {
		if filepath.Base(ds.File) != ds.File || ds.File == "." || ds.File == ".." {
			return fmt.Errorf("file must be a bare file name: %s", ds.File)
		}
	}

	if ds.Table != "" && !IsValidIdentifier(ds.Table) {
		return fmt.Errorf("invalid table identifier: %s", ds.Table)
	}

	return nil
}

func IsValidMode(mode string) bool {
	switch mode {
	case domain.TableModeCreate, domain.TableModeTruncate, domain.TableModeAppend:
		return true
	default:
		return false
	}
}
