package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-courtforms/pkg/answers"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	postalCAPattern = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`)
	zipUSPattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern = regexp.MustCompile(`^\$?\d+(,\d{3})*(\.\d{2})?$`)
)

const dateLayout = "2006-01-02"

// Option customises the engine.
type Option func(*Engine)

// WithLocale sets the locale used for messages. Unknown locales fall back to
// the catalog's base locale per key.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		if locale != "" {
			e.locale = locale
		}
	}
}

// WithCatalog injects an alternative message catalog.
func WithCatalog(catalog *Catalog) Option {
	return func(e *Engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithClock overrides the time source used for age checks. Useful in tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Engine validates answer records against declarative schemas.
type Engine struct {
	catalog *Catalog
	locale  string
	clock   func() time.Time
}

// NewEngine constructs an Engine with the embedded catalog and base locale
// unless options say otherwise.
func NewEngine(options ...Option) *Engine {
	e := &Engine{
		catalog: DefaultCatalog(),
		locale:  BaseLocale,
		clock:   time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// ValidateForm evaluates every schema entry against record. Field values are
// resolved by dotted path; fields are validated independently and all
// failures are collected.
func (e *Engine) ValidateForm(record answers.Record, schema Schema) Result {
	result := Result{Valid: true, Errors: make(map[string]string)}

	paths := make([]string, 0, len(schema))
	for path := range schema {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		field := e.ValidateField(path, answers.Resolve(record, path), schema[path], record)
		if !field.Valid {
			result.Valid = false
			result.Errors[path] = field.Message
		}
	}
	return result
}

// ValidateField evaluates rules for a single value, short-circuiting on the
// first failure.
func (e *Engine) ValidateField(path string, value any, rules Rules, record answers.Record) FieldResult {
	empty := isEmpty(value)

	if !rules.Required && empty {
		return FieldResult{Valid: true}
	}
	if rules.Required && empty {
		return e.fail("required", nil)
	}

	if result := e.checkKind(value, rules, record); !result.Valid {
		return result
	}

	if s, ok := value.(string); ok {
		if result := e.checkLength(s, rules); !result.Valid {
			return result
		}
		if rules.Pattern != nil && !rules.Pattern.MatchString(s) {
			key := rules.PatternKey
			if key == "" {
				key = "pattern"
			}
			return e.fail(key, nil)
		}
	}

	if rules.Match != "" {
		other := answers.Resolve(record, rules.Match)
		if answers.IsMissing(other) || value != other {
			key := rules.MatchKey
			if key == "" {
				key = "match"
			}
			return e.fail(key, nil)
		}
	}

	if rules.Check != nil {
		if err := rules.Check(value, record); err != nil {
			return FieldResult{Valid: false, Message: err.Error()}
		}
	}

	return FieldResult{Valid: true}
}

func (e *Engine) checkKind(value any, rules Rules, record answers.Record) FieldResult {
	switch rules.Kind {
	case KindText:
		return FieldResult{Valid: true}
	case KindEmail:
		return e.matchPattern(value, emailPattern, "email")
	case KindPhone:
		return e.matchPattern(value, phonePattern, "phone")
	case KindPostalCode:
		country := rules.Country
		if country == "" {
			country = answers.String(record, "country")
		}
		if country == "US" {
			return e.matchPattern(value, zipUSPattern, "zipCode")
		}
		return e.matchPattern(value, postalCAPattern, "postalCode")
	case KindDate:
		return e.checkDate(value, rules, record)
	case KindNumber:
		return e.checkNumber(value, rules)
	case KindCurrency:
		return e.matchPattern(value, currencyPattern, "currency")
	case KindFile:
		return e.checkFile(value, rules)
	}
	return FieldResult{Valid: true}
}

func (e *Engine) checkDate(value any, rules Rules, record answers.Record) FieldResult {
	s, ok := value.(string)
	if !ok || !datePattern.MatchString(s) {
		return e.fail("dateInvalid", nil)
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return e.fail("dateInvalid", nil)
	}

	if rules.MinDate.isSet() {
		if min := rules.MinDate.resolve(record); min != "" {
			if bound, err := time.Parse(dateLayout, min); err == nil && parsed.Before(bound) {
				return e.fail("dateMin", map[string]string{"min": min})
			}
		}
	}
	if rules.MaxDate.isSet() {
		if max := rules.MaxDate.resolve(record); max != "" {
			if bound, err := time.Parse(dateLayout, max); err == nil && parsed.After(bound) {
				return e.fail("dateMax", map[string]string{"max": max})
			}
		}
	}
	if rules.MinAge > 0 {
		if age := yearsBetween(parsed, e.clock()); age < rules.MinAge {
			return e.fail("ageMin", map[string]string{"min": strconv.Itoa(rules.MinAge)})
		}
	}
	return FieldResult{Valid: true}
}

func (e *Engine) checkNumber(value any, rules Rules) FieldResult {
	n, ok := toFloat(value)
	if !ok {
		return e.fail("numeric", nil)
	}
	if rules.Min != nil && n < *rules.Min {
		return e.fail("minValue", map[string]string{"min": formatNumber(*rules.Min)})
	}
	if rules.Max != nil && n > *rules.Max {
		return e.fail("maxValue", map[string]string{"max": formatNumber(*rules.Max)})
	}
	return FieldResult{Valid: true}
}

func (e *Engine) checkFile(value any, rules Rules) FieldResult {
	file, ok := value.(FileValue)
	if !ok {
		return FieldResult{Valid: true}
	}
	if rules.MaxSizeMB > 0 && file.Size > rules.MaxSizeMB*1024*1024 {
		return e.fail("fileSize", map[string]string{"max": strconv.FormatInt(rules.MaxSizeMB, 10)})
	}
	if len(rules.Accept) > 0 && !mimeAccepted(file, rules.Accept) {
		return e.fail("fileType", map[string]string{"types": strings.Join(rules.Accept, ", ")})
	}
	return FieldResult{Valid: true}
}

func (e *Engine) matchPattern(value any, pattern *regexp.Regexp, key string) FieldResult {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprintf("%v", value)
	}
	if !pattern.MatchString(s) {
		return e.fail(key, nil)
	}
	return FieldResult{Valid: true}
}

func (e *Engine) checkLength(s string, rules Rules) FieldResult {
	length := len([]rune(s))
	if rules.MinLength > 0 && length < rules.MinLength {
		if rules.MaxLength > 0 {
			return e.fail("lengthRange", lengthValues(rules))
		}
		return e.fail("minLength", map[string]string{"min": strconv.Itoa(rules.MinLength)})
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		if rules.MinLength > 0 {
			return e.fail("lengthRange", lengthValues(rules))
		}
		return e.fail("maxLength", map[string]string{"max": strconv.Itoa(rules.MaxLength)})
	}
	return FieldResult{Valid: true}
}

func (e *Engine) fail(key string, values map[string]string) FieldResult {
	return FieldResult{Valid: false, Message: e.catalog.Message(e.locale, key, values)}
}

func lengthValues(rules Rules) map[string]string {
	return map[string]string{
		"min": strconv.Itoa(rules.MinLength),
		"max": strconv.Itoa(rules.MaxLength),
	}
}

func isEmpty(value any) bool {
	if value == nil || answers.IsMissing(value) {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// yearsBetween counts whole years from birth to now, adjusting when the
// birthday has not yet occurred this year.
func yearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func mimeAccepted(file FileValue, accept []string) bool {
	ext := ""
	if idx := strings.LastIndex(file.Name, "."); idx >= 0 {
		ext = strings.ToLower(file.Name[idx:])
	}
	for _, candidate := range accept {
		if strings.HasSuffix(candidate, "/*") {
			if strings.HasPrefix(file.MimeType, strings.TrimSuffix(candidate, "*")) {
				return true
			}
			continue
		}
		if candidate == file.MimeType || strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}
