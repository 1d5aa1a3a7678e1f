// Package patterns implements the format predicates for every field
// type an order carries: taxpayer registry codes (RFC), population
// registry keys (CURP), case-file references, standardized bank account
// codes (CLABE), dates, monetary amounts, and bounded free text. Every
// predicate is total and side-effect free: blank or absent input is
// simply false, never an error.
//
// Predicates expect sanitized input; a value must pass through
// sanitize.Clean (or CleanAmount) before it is evaluated here.
package patterns

import (
	"regexp"
	"strconv"
	"time"
)

var (
	// RFC: 3-letter corporate or 4-letter individual prefix, 6-digit
	// incorporation/birth date, 3-character homoclave.
	rfcIndividualRE = regexp.MustCompile(`^[A-ZÑ&]{4}\d{6}[A-Z0-9]{3}$`)
	rfcCorporateRE  = regexp.MustCompile(`^[A-ZÑ&]{3}\d{6}[A-Z0-9]{3}$`)

	// CURP: 18 positions encoding name initials, birth date, sex marker,
	// birth state, internal consonants, century/homonym char, check digit.
	curpRE = regexp.MustCompile(`^[A-Z]{4}\d{6}[HM][A-Z]{2}[A-Z]{3}[A-Z0-9]\d$`)

	// Case-file reference: area / sequence / description.
	expedienteRE = regexp.MustCompile(`^[A-Z0-9-]+/\d+/\S.*$`)

	clabeRE = regexp.MustCompile(`^\d{18}$`)
	dateRE  = regexp.MustCompile(`^\d{8}$`)

	// Whole non-negative amount; a zero fractional part is tolerated
	// because some channels serialize integers as "1234.00".
	amountRE = regexp.MustCompile(`^\d+(\.0+)?$`)
)

// Validator evaluates field format predicates. Construct with New; the
// compiled patterns are shared and safe for concurrent use.
type Validator struct {
	maxLengths    map[string]int
	defaultMaxLen int
}

// New creates a Validator with per-field length limits for bounded
// text. Fields without an entry fall back to defaultMaxLen.
func New(maxLengths map[string]int, defaultMaxLen int) *Validator {
	limits := make(map[string]int, len(maxLengths))
	for k, v := range maxLengths {
		limits[k] = v
	}
	if defaultMaxLen <= 0 {
		defaultMaxLen = 200
	}
	return &Validator{maxLengths: limits, defaultMaxLen: defaultMaxLen}
}

// Default creates a Validator with the default length limits.
func Default() *Validator {
	return New(nil, 200)
}

// ValidRFC reports whether v is a well-formed taxpayer registry code,
// either the 13-character individual or the 12-character corporate form.
func (va *Validator) ValidRFC(v string) bool {
	return va.ValidRFCIndividual(v) || va.ValidRFCCorporate(v)
}

// ValidRFCIndividual reports whether v is a 13-character individual RFC.
func (va *Validator) ValidRFCIndividual(v string) bool {
	// Rune count, not byte count: the Ñ prefix letter is two bytes.
	return len([]rune(v)) == 13 && rfcIndividualRE.MatchString(v)
}

// ValidRFCCorporate reports whether v is a 12-character corporate RFC.
func (va *Validator) ValidRFCCorporate(v string) bool {
	return len([]rune(v)) == 12 && rfcCorporateRE.MatchString(v)
}

// ValidCURP reports whether v is a well-formed 18-position population
// registry key whose embedded birth date is a plausible calendar date.
func (va *Validator) ValidCURP(v string) bool {
	if len(v) != 18 || !curpRE.MatchString(v) {
		return false
	}
	return curpDatePlausible(v)
}

// curpDatePlausible checks the YYMMDD birth date embedded at positions
// 4-9. Position 16 disambiguates the century: a digit means a birth in
// the 1900s, a letter one in the 2000s.
func curpDatePlausible(curp string) bool {
	yy, _ := strconv.Atoi(curp[4:6])
	century := 1900
	if curp[16] >= 'A' && curp[16] <= 'Z' {
		century = 2000
	}
	year := century + yy

	month, _ := strconv.Atoi(curp[6:8])
	day, _ := strconv.Atoi(curp[8:10])
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ValidExpediente reports whether v is a structured case-file reference
// of the form AREA/SEQUENCE/DESCRIPTION.
func (va *Validator) ValidExpediente(v string) bool {
	return v != "" && expedienteRE.MatchString(v)
}

// ValidCLABE reports whether v is an 18-digit standardized bank
// account code.
func (va *Validator) ValidCLABE(v string) bool {
	return clabeRE.MatchString(v)
}

// ValidDate reports whether v is an 8-digit DDMMYYYY string naming a
// real calendar date. Leap days validate only in leap years.
func (va *Validator) ValidDate(v string) bool {
	if !dateRE.MatchString(v) {
		return false
	}
	_, err := time.Parse("02012006", v)
	return err == nil
}

// ValidAmount reports whether v is a non-negative whole amount with no
// thousands separators. Callers must sanitize first; raw "$1,234.56"
// style input fails here.
func (va *Validator) ValidAmount(v string) bool {
	return amountRE.MatchString(v)
}

// ValidBoundedText reports whether v is non-blank and within the length
// limit configured for the named field.
func (va *Validator) ValidBoundedText(v, field string) bool {
	if v == "" {
		return false
	}
	max, ok := va.maxLengths[field]
	if !ok {
		max = va.defaultMaxLen
	}
	return len([]rune(v)) <= max
}

// MatchesAnyIdentifier reports whether v matches any identifier,
// account, date, amount, or case-file format. The fuzzy matcher uses
// this to keep approximate comparison away from identifying fields.
func (va *Validator) MatchesAnyIdentifier(v string) bool {
	return va.ValidRFC(v) ||
		va.ValidCURP(v) ||
		va.ValidCLABE(v) ||
		va.ValidDate(v) ||
		va.ValidAmount(v) ||
		va.ValidExpediente(v)
}
