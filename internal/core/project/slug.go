package project

// =============================================================================
// Slug Generation
// =============================================================================

// Slugify converts a project name to a URL- and filename-safe slug.
//
// The transformation rules are:
//   - Lowercase letters (a-z) are kept as-is
//   - Digits (0-9) are kept as-is
//   - Hyphens (-) are kept as-is
//   - Uppercase letters (A-Z) are converted to lowercase
//   - Spaces are converted to hyphens
//   - All other characters are dropped
//   - Runs of hyphens collapse to one; leading/trailing hyphens are trimmed
//
// This is a pure function with no side effects. Service names deliberately
// do NOT use it (see Options.ServicePrefix); it exists for archive names and
// other places that need a safe identifier.
//
// Example:
//
//	Slugify("One Ring")      // returns "one-ring"
//	Slugify("My App 2.0!")   // returns "my-app-20"
func Slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastHyphen := false
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+32) // convert to lowercase
			lastHyphen = false
		case r == ' ' || r == '-':
			if !lastHyphen && len(out) > 0 {
				out = append(out, '-')
				lastHyphen = true
			}
		}
		// All other characters are dropped
	}
	// Trim a trailing hyphen left by input like "name "
	if n := len(out); n > 0 && out[n-1] == '-' {
		out = out[:n-1]
	}
	return string(out)
}
