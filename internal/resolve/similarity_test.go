package resolve

import "testing"

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{
			name:  "camel case tag",
			label: "GrossProfit",
			want:  "gross profit",
		},
		{
			name:  "namespace prefix stripped",
			label: "us-gaap:CostOfRevenue",
			want:  "cost revenue",
		},
		{
			name:  "stop words and plurals",
			label: "Total revenues and other income, net",
			want:  "total revenue other income",
		},
		{
			name:  "punctuation collapsed",
			label: "Research & development",
			want:  "research development",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLabel(tt.label); got != tt.want {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "exact after normalization",
			a:    "Total revenues",
			b:    "total revenue",
			want: 1.0,
		},
		{
			name: "plural insensitive",
			a:    "Revenues",
			b:    "Revenue",
			want: 1.0,
		},
		{
			name: "disjoint labels",
			a:    "Gross profit",
			b:    "Income tax expense",
			want: 0.0,
		},
		{
			name: "empty input",
			a:    "",
			b:    "Revenue",
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	// "cost revenue" vs "total cost revenue": intersection 2, union 3
	got := Similarity("Cost of revenues", "Total cost of revenues")
	want := 2.0 / 3.0
	epsilon := 0.0001
	if diff := got - want; diff > epsilon || diff < -epsilon {
		t.Errorf("Similarity() = %v, want %v", got, want)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a, b := "Operating expenses", "Total operating expenses and other"
	if Similarity(a, b) != Similarity(b, a) {
		t.Error("Similarity should be symmetric")
	}
}
