// file: services/flag_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagMatches(t *testing.T) {
	testCases := []struct {
		name      string
		submitted string
		pattern   string
		want      bool
	}{
		{
			name:      "literal pattern exact match",
			submitted: "CTF{hello}",
			pattern:   "CTF{hello}",
			want:      true,
		},
		{
			name:      "literal pattern mismatch",
			submitted: "CTF{hello}",
			pattern:   "CTF{world}",
			want:      false,
		},
		{
			name:      "literal pattern is case sensitive",
			submitted: "ctf{hello}",
			pattern:   "CTF{hello}",
			want:      false,
		},
		{
			name:      "wildcard matches any interior",
			submitted: "CTF{anything at all}",
			pattern:   "CTF{*}",
			want:      true,
		},
		{
			name:      "wildcard matches empty segment",
			submitted: "CTF{}",
			pattern:   "CTF{*}",
			want:      true,
		},
		{
			name:      "wildcard is anchored at both ends",
			submitted: "prefix CTF{x} suffix",
			pattern:   "CTF{*}",
			want:      false,
		},
		{
			name:      "dot in pattern is literal not regex",
			submitted: "CTF{aXb}",
			pattern:   "CTF{a.b}",
			want:      false,
		},
		{
			name:      "dot in pattern matches literal dot",
			submitted: "CTF{a.b}",
			pattern:   "CTF{a.b}",
			want:      true,
		},
		{
			name:      "plus stays literal alongside wildcard",
			submitted: "aab",
			pattern:   "a+b*",
			want:      false,
		},
		{
			name:      "literal plus matches itself alongside wildcard",
			submitted: "a+bXX",
			pattern:   "a+b*",
			want:      true,
		},
		{
			name:      "multiple wildcards",
			submitted: "CTF{left-middle-right}",
			pattern:   "CTF{left*right}",
			want:      true,
		},
		{
			name:      "empty submission against empty pattern",
			submitted: "",
			pattern:   "",
			want:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FlagMatches(tc.submitted, tc.pattern))
		})
	}
}

// 无通配符时必须退化为严格相等
func TestFlagMatchesLiteralEqualsComparison(t *testing.T) {
	patterns := []string{"CTF{x}", "a.b+c", "(paren)", "[set]", "^anchor$", "back\\slash"}
	for _, p := range patterns {
		assert.True(t, FlagMatches(p, p), "pattern %q should match itself", p)
		assert.False(t, FlagMatches(p+"!", p), "pattern %q should not match a longer string", p)
	}
}
