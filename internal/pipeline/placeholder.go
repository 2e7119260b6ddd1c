package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Canonical placeholder tokens recognized during substitution.
const (
	TokenUser       = "{USER}"
	TokenAmount     = "{AMOUNT}"
	TokenProfitLoss = "{PROFIT_LOSS}"
	TokenIssueType  = "{ISSUE_TYPE}"
	TokenSportName  = "{SPORT_NAME}"
	TokenEventName  = "{EVENT_NAME}"
	TokenMarketName = "{MARKET_NAME}"
)

// MissingValue is substituted for any recognized token whose field is
// absent or empty.
const MissingValue = "N/A"

// issueTypeText is the fixed expansion of {ISSUE_TYPE}. Historical
// templates embedded it as the default of the legacy issueType
// expression; it has never been record-dependent.
const issueTypeText = "odds manipulating or odds hedging"

// Sanitization precedes normalization and entity-escapes text nodes,
// so a legacy expression may reach the resolver with its quotes turned
// into &#34; and ampersands into &amp;. Both spellings must match.
const (
	quoteExpr = `(?:"|&#34;)`
	ampExpr   = `(?:&amp;|&)`
)

// legacyForms rewrites first-generation template expressions to
// canonical tokens. Patterns are the exact literals found in historical
// templates, modulo entity escaping; whitespace or punctuation variants
// intentionally do not match and render literally. New legacy forms are
// added here, never in substitution logic.
var legacyForms = []struct {
	pattern *regexp.Regexp
	token   string
}{
	{regexp.MustCompile(`\{data\.user\|\|` + quoteExpr + quoteExpr + `\}`), TokenUser},
	{regexp.MustCompile(`\{data\.totalAmount\|\|` + quoteExpr + quoteExpr + `\}`), TokenAmount},
	{regexp.MustCompile(`\{data\.profitLoss\|\|` + quoteExpr + quoteExpr + `\}`), TokenProfitLoss},
	{regexp.MustCompile(`\{data\.issueType\|\|` + quoteExpr + `odds manipulating or odds hedging` + quoteExpr + `\}`), TokenIssueType},
	{regexp.MustCompile(`\{data\.sportName\|\|` + quoteExpr + `Sport` + quoteExpr + `\}`), TokenSportName},
	{regexp.MustCompile(`\{data\.eventName\|\|` + quoteExpr + `Event` + quoteExpr + `\}`), TokenEventName},
	{regexp.MustCompile(`\{data\.marketName\|\|` + quoteExpr + `Market` + quoteExpr + `\}`), TokenMarketName},
	{regexp.MustCompile(`\{data\.marketDetails\s` + ampExpr + ampExpr + `\s\{data\.marketDetails\}\}`), ""},
}

// FieldValues carries the record-derived values available to
// substitution. Nil numeric pointers mean absent.
type FieldValues struct {
	User       string
	Amount     *float64
	ProfitLoss *float64
	SportName  string
	EventName  string
	MarketName string
}

// Resolver maps placeholder tokens in a sanitized template to field
// values. Resolution is two-phase: every legacy expression is first
// normalized to its canonical token, then every canonical token is
// substituted globally. Normalization completes fully before
// substitution begins, since it can introduce tokens substitution must
// see. Unrecognized tokens are left untouched and render literally.
type Resolver struct{}

// Resolve returns the template with all recognized placeholders
// replaced. Referentially transparent: same template and fields always
// yield the same output.
func (Resolver) Resolve(ctx context.Context, tmpl string, fields FieldValues) string {
	if ctx.Err() != nil {
		return tmpl
	}

	out := Normalize(tmpl)
	for _, sub := range substitutions(fields) {
		out = strings.ReplaceAll(out, sub.token, sub.value)
	}
	return out
}

// Normalize rewrites every known legacy expression to its canonical
// token. Unknown legacy forms stay as-is; failing to resolve later is
// an accepted degraded outcome, not an error.
func Normalize(tmpl string) string {
	for _, form := range legacyForms {
		tmpl = form.pattern.ReplaceAllString(tmpl, form.token)
	}
	return tmpl
}

// substitutions returns the token/value pairs in a fixed order so that
// field values containing token-like text cannot change the outcome
// between runs.
func substitutions(f FieldValues) []struct{ token, value string } {
	return []struct{ token, value string }{
		{TokenUser, textOrMissing(f.User)},
		{TokenAmount, amountOrMissing(f.Amount)},
		{TokenProfitLoss, amountOrMissing(f.ProfitLoss)},
		{TokenIssueType, issueTypeText},
		{TokenSportName, textOrMissing(f.SportName)},
		{TokenEventName, textOrMissing(f.EventName)},
		{TokenMarketName, textOrMissing(f.MarketName)},
	}
}

func textOrMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return MissingValue
	}
	return s
}

// amountOrMissing formats numeric fields to exactly two decimal places.
func amountOrMissing(v *float64) string {
	if v == nil {
		return MissingValue
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
