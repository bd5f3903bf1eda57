package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/arrenda/arrenda-api/internal/types/business"
)

// placeholderPattern matches {{identifier}} tokens. Identifiers are word
// characters only, no whitespace or nested braces.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// renderDateLayout is the date format used for lease dates and due dates in
// rendered correspondence.
const renderDateLayout = "02/01/2006"

// ExtractVariables returns the distinct placeholder names found in content,
// in first-occurrence order. Content with no placeholders yields an empty
// slice. Extraction is purely syntactic and does not check that names map to
// known fields.
func ExtractVariables(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)

	variables := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		variables = append(variables, name)
	}

	return variables
}

// RenderTemplate substitutes the supported placeholders in content with
// values from rctx, resolving due_date against the current date. Unknown
// placeholders are left untouched.
func RenderTemplate(content string, rctx *business.RenderContext) string {
	return RenderTemplateAt(content, rctx, time.Now())
}

// RenderTemplateAt is the reproducible variant of RenderTemplate: due_date
// resolves against asOf instead of the wall clock, so rendered
// correspondence can be regenerated byte-for-byte after the fact.
//
// Substitution is a single pass over the content. A resolved value that
// itself contains {{...}} syntax is emitted literally and never re-expanded.
func RenderTemplateAt(content string, rctx *business.RenderContext, asOf time.Time) string {
	if rctx == nil {
		rctx = &business.RenderContext{}
	}

	resolvers := map[string]func() (string, bool){
		"tenant_name": func() (string, bool) {
			if rctx.TenantName != nil {
				return *rctx.TenantName, true
			}
			return "", false
		},
		"property_name": func() (string, bool) {
			if rctx.PropertyName != nil {
				return *rctx.PropertyName, true
			}
			return "", false
		},
		"rent_amount": func() (string, bool) {
			if rctx.RentAmount != nil {
				return strconv.FormatFloat(*rctx.RentAmount, 'f', -1, 64), true
			}
			return "", false
		},
		"lease_start": func() (string, bool) {
			if rctx.LeaseStart != nil {
				return rctx.LeaseStart.Format(renderDateLayout), true
			}
			return "", false
		},
		"lease_end": func() (string, bool) {
			if rctx.LeaseEnd != nil {
				return rctx.LeaseEnd.Format(renderDateLayout), true
			}
			return "", false
		},
		"property_address": func() (string, bool) {
			if rctx.PropertyAddress != nil {
				return *rctx.PropertyAddress, true
			}
			return "", false
		},
		"bedrooms": func() (string, bool) {
			if rctx.Bedrooms != nil {
				return strconv.FormatInt(int64(*rctx.Bedrooms), 10), true
			}
			return "", false
		},
		"bathrooms": func() (string, bool) {
			if rctx.Bathrooms != nil {
				return strconv.FormatInt(int64(*rctx.Bathrooms), 10), true
			}
			return "", false
		},
		"due_date": func() (string, bool) {
			return asOf.Format(renderDateLayout), true
		},
	}

	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]

		resolve, known := resolvers[name]
		if !known {
			// Unknown placeholders stay literal.
			return match
		}

		value, present := resolve()
		if !present {
			// Fields missing from the context render as their label.
			return strings.ReplaceAll(name, "_", " ")
		}
		return value
	})
}
