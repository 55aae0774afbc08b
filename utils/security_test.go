package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  hello  ", want: "hello"},
		{name: "strips null bytes", input: "he\x00llo", want: "hello"},
		{name: "strips control chars", input: "he\x01\x02llo", want: "hello"},
		{name: "keeps newlines and tabs", input: "line1\n\tline2", want: "line1\n\tline2"},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeString(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abcdef", 3))
	require.Equal(t, "abc", Truncate("abc", 10))
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	// The cap may fall inside a multibyte sequence; the whole rune must go
	s := "ab🚀"
	for max := 2; max < len(s); max++ {
		got := Truncate(s, max)
		require.Equal(t, "ab", got, "max %d", max)
		require.True(t, utf8.ValidString(got))
	}
	require.Equal(t, s, Truncate(s, len(s)))

	require.True(t, utf8.ValidString(Truncate("नमस्ते", 7)))
}

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("user@example.com"))
	require.True(t, IsValidEmail("a.b+c@sub.example.co.in"))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("spaces in@example.com"))
	require.False(t, IsValidEmail("a@b"))
	require.False(t, IsValidEmail(strings.Repeat("a", 250)+"@x.com"))
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("9876543210"))
	require.False(t, IsValidPhone("987654321"))
	require.False(t, IsValidPhone("98765432101"))
	require.False(t, IsValidPhone("98765abc10"))
	require.False(t, IsValidPhone("+919876543210"))
}

func TestIsValidUSN(t *testing.T) {
	tests := []struct {
		usn  string
		want bool
	}{
		{"1DS23CS042", true},
		{"1rv21is001", true},
		{"1DS26CS042", false}, // batch year out of range
		{"2DS23CS042", false},
		{"1DS23CS42", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IsValidUSN(tt.usn), "usn %q", tt.usn)
	}
}

func TestIsLinkedInURL(t *testing.T) {
	require.True(t, IsLinkedInURL("https://www.linkedin.com/in/someone"))
	require.True(t, IsLinkedInURL("linkedin.com/in/someone"))
	require.False(t, IsLinkedInURL("https://example.com/linkedin.com/"))
	require.False(t, IsLinkedInURL("https://github.com/someone"))
}

func TestIsGitHubURL(t *testing.T) {
	require.True(t, IsGitHubURL("https://github.com/org/repo"))
	require.True(t, IsGitHubURL("github.com/org/repo"))
	require.False(t, IsGitHubURL("https://gitlab.com/org/repo"))
}

func TestIsValidURL(t *testing.T) {
	require.True(t, IsValidURL("https://example.com/demo"))
	require.True(t, IsValidURL("http://example.com"))
	require.False(t, IsValidURL("ftp://example.com"))
	require.False(t, IsValidURL("example.com"))
	require.False(t, IsValidURL("://bad"))
}

func TestIsValidObjectID(t *testing.T) {
	require.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))
	require.False(t, IsValidObjectID("507f1f77bcf86cd79943901"))
	require.False(t, IsValidObjectID("507f1f77bcf86cd79943901z"))
	require.False(t, IsValidObjectID(""))
}
