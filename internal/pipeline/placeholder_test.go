package pipeline

import (
	"context"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveSubstitutesPopulatedFields(t *testing.T) {
	var r Resolver
	got := r.Resolve(context.Background(),
		"<p>User: {USER}, Amount: {AMOUNT}</p>",
		FieldValues{User: "abcd2000", Amount: floatPtr(150)})

	want := "<p>User: abcd2000, Amount: 150.00</p>"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveMissingFieldsFallBackToNA(t *testing.T) {
	var r Resolver
	got := r.Resolve(context.Background(),
		"<p>User: {USER}, Amount: {AMOUNT}</p>",
		FieldValues{User: "", Amount: nil})

	want := "<p>User: N/A, Amount: N/A</p>"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveTokenTable(t *testing.T) {
	fields := FieldValues{
		User:       "abcd2000",
		Amount:     floatPtr(1500.5),
		ProfitLoss: floatPtr(-320),
		SportName:  "Cricket",
		EventName:  "IND vs AUS",
		MarketName: "Match Odds",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"user", "{USER}", "abcd2000"},
		{"amount two decimals", "{AMOUNT}", "1500.50"},
		{"negative profit loss", "{PROFIT_LOSS}", "-320.00"},
		{"issue type fixed text", "{ISSUE_TYPE}", "odds manipulating or odds hedging"},
		{"sport", "{SPORT_NAME}", "Cricket"},
		{"event", "{EVENT_NAME}", "IND vs AUS"},
		{"market", "{MARKET_NAME}", "Match Odds"},
	}

	var r Resolver
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(context.Background(), tt.template, fields)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestResolveReplacesEveryOccurrence(t *testing.T) {
	var r Resolver
	got := r.Resolve(context.Background(),
		"{USER} bet as {USER} and {USER} won",
		FieldValues{User: "abcd2000"})

	if strings.Contains(got, "{USER}") {
		t.Errorf("Resolve() left a token behind: %q", got)
	}
	if n := strings.Count(got, "abcd2000"); n != 3 {
		t.Errorf("Resolve() substituted %d occurrences, want 3", n)
	}
}

func TestResolveLeavesUnknownTokensUntouched(t *testing.T) {
	var r Resolver
	got := r.Resolve(context.Background(), "<p>{UNKNOWN} {USER}</p>", FieldValues{User: "x"})

	if !strings.Contains(got, "{UNKNOWN}") {
		t.Errorf("Resolve() touched an unrecognized token: %q", got)
	}
}

func TestNormalizeLegacyForms(t *testing.T) {
	tests := []struct {
		name   string
		legacy string
		want   string
	}{
		{"user", `{data.user||""}`, "{USER}"},
		{"amount", `{data.totalAmount||""}`, "{AMOUNT}"},
		{"profit loss", `{data.profitLoss||""}`, "{PROFIT_LOSS}"},
		{"issue type", `{data.issueType||"odds manipulating or odds hedging"}`, "{ISSUE_TYPE}"},
		{"sport", `{data.sportName||"Sport"}`, "{SPORT_NAME}"},
		{"event", `{data.eventName||"Event"}`, "{EVENT_NAME}"},
		{"market", `{data.marketName||"Market"}`, "{MARKET_NAME}"},
		{"market details removed", "{data.marketDetails && {data.marketDetails}}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.legacy)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.legacy, got, tt.want)
			}
		})
	}
}

func TestNormalizeEntityEscapedForms(t *testing.T) {
	// Strict sanitization runs first and entity-escapes text nodes;
	// escaped spellings of legacy expressions must still normalize.
	tests := []struct {
		name   string
		legacy string
		want   string
	}{
		{"escaped quotes", `{data.user||&#34;&#34;}`, "{USER}"},
		{"escaped default", `{data.sportName||&#34;Sport&#34;}`, "{SPORT_NAME}"},
		{"escaped ampersands", "{data.marketDetails &amp;&amp; {data.marketDetails}}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.legacy); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.legacy, got, tt.want)
			}
		})
	}
}

func TestNormalizeRequiresExactLiterals(t *testing.T) {
	// Whitespace variants of legacy expressions do not normalize and
	// render literally.
	legacy := `{data.user || ""}`
	if got := Normalize(legacy); got != legacy {
		t.Errorf("Normalize(%q) = %q, want unchanged", legacy, got)
	}
}

func TestResolveLegacyThenSubstitute(t *testing.T) {
	// Normalization must complete before substitution so tokens it
	// introduces are still substituted.
	var r Resolver
	got := r.Resolve(context.Background(),
		`<p>Dear {data.user||""}, your bet of {data.totalAmount||""} on {data.sportName||"Sport"} was voided.</p>`,
		FieldValues{User: "abcd2000", Amount: floatPtr(99.9), SportName: "Tennis"})

	want := "<p>Dear abcd2000, your bet of 99.90 on Tennis was voided.</p>"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveDeterministic(t *testing.T) {
	var r Resolver
	tmpl := `{data.user||""} {USER} {AMOUNT} {UNKNOWN}`
	fields := FieldValues{User: "u1", Amount: floatPtr(5)}

	first := r.Resolve(context.Background(), tmpl, fields)
	for i := 0; i < 10; i++ {
		if got := r.Resolve(context.Background(), tmpl, fields); got != first {
			t.Fatalf("Resolve() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestResolveCancelledContextReturnsInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var r Resolver
	tmpl := "{USER}"
	if got := r.Resolve(ctx, tmpl, FieldValues{User: "x"}); got != tmpl {
		t.Errorf("Resolve() with cancelled context = %q, want input unchanged", got)
	}
}
