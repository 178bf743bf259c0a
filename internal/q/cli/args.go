package cli

import "fmt"

// NoArgs validates that there are no positional args.
func NoArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return UsageErrorf("expected no args, got %d", len(args))
}

// ExactArgs returns an ArgsFunc that validates that exactly n args are provided.
func ExactArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) == n {
			return nil
		}
		return UsageErrorf("expected %s, got %d", pluralArgs(n), len(args))
	}
}

// MaximumArgs returns an ArgsFunc that validates that at most n args are provided.
func MaximumArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) <= n {
			return nil
		}
		return UsageErrorf("expected at most %s, got %d", pluralArgs(n), len(args))
	}
}

// RangeArgs returns an ArgsFunc that validates that between lo and hi args are provided (inclusive).
func RangeArgs(lo, hi int) ArgsFunc {
	return func(args []string) error {
		if len(args) >= lo && len(args) <= hi {
			return nil
		}
		return UsageErrorf("expected %d to %s, got %d", lo, pluralArgs(hi), len(args))
	}
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 arg"
	}
	return fmt.Sprintf("%d args", n)
}
