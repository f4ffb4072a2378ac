package overlays

import "testing"

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		f    NumberFormat
		want string
	}{
		{"grouped", 1234567, NumberFormat{Notation: NotationStandard, Separator: true}, "1,234,567"},
		{"ungrouped", 1234567, NumberFormat{Notation: NotationStandard}, "1234567"},
		{"decimals", 1234.5, NumberFormat{Separator: true, Decimals: 2}, "1,234.50"},
		{"compact millions", 1234567, NumberFormat{Notation: NotationCompact}, "1.2M"},
		{"compact thousands", 1500, NumberFormat{Notation: NotationCompact}, "1.5K"},
		{"compact round", 1000, NumberFormat{Notation: NotationCompact}, "1K"},
		{"compact small", 999, NumberFormat{Notation: NotationCompact, Separator: true}, "999"},
		{"compact decimals", 1234567, NumberFormat{Notation: NotationCompact, Decimals: 2}, "1.23M"},
		{"abbreviate", 2500000000, NumberFormat{Notation: NotationStandard, Abbreviate: true}, "2.5B"},
		{"scientific", 1234567, NumberFormat{Notation: NotationScientific, Decimals: 2}, "1.23e6"},
		{"prefix suffix", 50, NumberFormat{Prefix: "$", Suffix: " raised"}, "$50 raised"},
		{"negative", -4200, NumberFormat{Notation: NotationCompact}, "-4.2K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCount(tt.v, tt.f); got != tt.want {
				t.Errorf("FormatCount(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestCounterNumberFormat(t *testing.T) {
	p := DefaultCounter()
	p.Prefix = "#"
	p.Value = 1234

	if got := FormatCount(p.Value, p.NumberFormat()); got != "#1,234" {
		t.Errorf("unexpected default counter rendering %q", got)
	}
}

func TestCounterPolls(t *testing.T) {
	p := DefaultCounter()
	if p.Polls() {
		t.Error("manual counters should not poll")
	}

	p.Service = ServiceGitHub
	if p.Polls() {
		t.Error("a service without a user id should not poll")
	}
	p.UserID = "octocat"
	if !p.Polls() {
		t.Error("expected github counter with user id to poll")
	}

	p.Service = ServicePoll
	if p.Polls() {
		t.Error("custom polling needs a URL")
	}
	p.Poll = "https://example.com/stats.json"
	if !p.Polls() {
		t.Error("expected custom poll URL to poll")
	}
}
