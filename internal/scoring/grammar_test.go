package scoring

import (
	"reflect"
	"testing"
)

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect Match
	}{
		{
			name:   "job group single prefix",
			input:  "for-job-group(M16)",
			expect: Match{Kind: MatchJobGroup, Args: []string{"M16"}},
		},
		{
			name:   "job group multiple prefixes with spaces",
			input:  "for-job-group(A12, A13)",
			expect: Match{Kind: MatchJobGroup, Args: []string{"A12", "A13"}},
		},
		{
			name:   "departement list",
			input:  "for-departement(31, 75)",
			expect: Match{Kind: MatchDepartement, Args: []string{"31", "75"}},
		},
		{
			name:   "departement with empty argument is malformed",
			input:  "for-departement(31,,75)",
			expect: Match{},
		},
		{
			name:   "departement with no argument is malformed",
			input:  "for-departement()",
			expect: Match{},
		},
		{
			name:   "negation",
			input:  "not-for-women",
			expect: Match{Kind: MatchNegate, Arg: "for-women"},
		},
		{
			name:   "negation wins over inner parametrized name",
			input:  "not-for-old(50)",
			expect: Match{Kind: MatchNegate, Arg: "for-old(50)"},
		},
		{
			name:   "bare negation prefix is not a name",
			input:  "not-",
			expect: Match{},
		},
		{
			name:   "active experiment",
			input:  "for-active-experiment(lbb_integration)",
			expect: Match{Kind: MatchActiveExperiment, Arg: "lbb_integration"},
		},
		{
			name:   "active experiment without flag is malformed",
			input:  "for-active-experiment( )",
			expect: Match{},
		},
		{
			name:   "constant",
			input:  "constant(2)",
			expect: Match{Kind: MatchConstant, Arg: "2"},
		},
		{
			name:   "constant keeps the raw number",
			input:  "constant( 2.5 )",
			expect: Match{Kind: MatchConstant, Arg: "2.5"},
		},
		{
			name:   "unknown name",
			input:  "some-model",
			expect: Match{},
		},
		{
			name:   "empty name",
			input:  "",
			expect: Match{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseName(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}
