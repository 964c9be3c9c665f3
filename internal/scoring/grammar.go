package scoring

import "strings"

// MatchKind identifies which dynamic model family a name belongs to.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchJobGroup
	MatchDepartement
	MatchNegate
	MatchActiveExperiment
	MatchConstant
)

// Match is the result of parsing a model name. For MatchJobGroup and
// MatchDepartement, Args holds the trimmed comma-separated arguments. For
// the other kinds, Arg holds the single raw argument (the negated name, the
// feature flag or the literal number).
type Match struct {
	Kind MatchKind
	Arg  string
	Args []string
}

// ParseName parses a dynamic model name. It is pure and never constructs a
// model; exact static names are the registry's business and are checked
// before this grammar applies. Patterns are tried in a fixed order, so
// "not-for-old(50)" is a negation wrapping "for-old(50)" rather than an
// unmatched token; only one "not-" layer is stripped here, nested negations
// resolve recursively through the registry.
func ParseName(name string) Match {
	// Matches names like "for-job-group(M16)" or "for-job-group(A12, A13)".
	if arg, ok := functionalArg(name, "for-job-group"); ok {
		if args, ok := splitArgs(arg); ok {
			return Match{Kind: MatchJobGroup, Args: args}
		}
		return Match{}
	}
	// Matches names like "for-departement(31)" or "for-departement(31, 75)".
	if arg, ok := functionalArg(name, "for-departement"); ok {
		if args, ok := splitArgs(arg); ok {
			return Match{Kind: MatchDepartement, Args: args}
		}
		return Match{}
	}
	// Matches names like "not-for-young(25)" or "not-for-women".
	if target, ok := strings.CutPrefix(name, "not-"); ok && target != "" {
		return Match{Kind: MatchNegate, Arg: target}
	}
	// Matches names like "for-active-experiment(lbb_integration)".
	if arg, ok := functionalArg(name, "for-active-experiment"); ok && strings.TrimSpace(arg) != "" {
		return Match{Kind: MatchActiveExperiment, Arg: strings.TrimSpace(arg)}
	}
	// Matches names like "constant(2)" or "constant(2.5)".
	if arg, ok := functionalArg(name, "constant"); ok && strings.TrimSpace(arg) != "" {
		return Match{Kind: MatchConstant, Arg: strings.TrimSpace(arg)}
	}
	return Match{}
}

func functionalArg(name, fn string) (string, bool) {
	if !strings.HasPrefix(name, fn+"(") || !strings.HasSuffix(name, ")") {
		return "", false
	}
	return name[len(fn)+1 : len(name)-1], true
}

// splitArgs splits a comma-separated argument list, trimming each argument.
// An empty list, or a list with an empty argument, is malformed.
func splitArgs(raw string) ([]string, bool) {
	parts := strings.Split(raw, ",")
	args := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		args = append(args, part)
	}
	return args, true
}
