package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single line block", "/** Closes a handle. */", "Closes a handle."},
		{"qt style", "/*! Closes a handle. */", "Closes a handle."},
		{"trailing member", "/**< Size in bytes. */", "Size in bytes."},
		{
			"javadoc block",
			"/**\n * Summary.\n *\n * @param x desc\n */",
			"Summary.\n\n @param x desc",
		},
		{"line comments", "/// Summary.\n/// @return zero", "Summary.\n @return zero"},
		{"bang line comments", "//! Module.\n//!< trailing", "Module.\n trailing"},
		{"crlf", "/**\r\n * a\r\n */", "a"},
		{"already bare", "  text\n  more  ", "text\n  more"},
		{"bold after continuation star", "/**\n * **Important** text\n */", "**Important** text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

const header = `#include <windows.h>

/* Not documentation. */
// Not documentation either.

/**
 * The NtClose routine closes the specified handle.
 *
 * @param Handle The handle being closed.
 * @return NTSTATUS Successful or errant status.
 */
NTSTATUS NtClose(HANDLE Handle);

typedef struct _POINT {
    LONG x; /**< Horizontal position. */
    LONG y; /**< Vertical position. */
} POINT;

/// Returns the current process id.
/// @return The id.
ULONG CurrentPid(void);
/**/
`

func TestExtract(t *testing.T) {
	blocks, err := Extract(header)
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	assert.Equal(t, Block{
		Line: 6,
		Text: "The NtClose routine closes the specified handle.\n\n @param Handle The handle being closed.\n @return NTSTATUS Successful or errant status.",
		Decl: "NTSTATUS NtClose(HANDLE Handle);",
	}, blocks[0])
	assert.Equal(t, Block{Line: 15, Text: "Horizontal position.", Decl: "LONG x;"}, blocks[1])
	assert.Equal(t, Block{Line: 16, Text: "Vertical position.", Decl: "LONG y;"}, blocks[2])
	assert.Equal(t, Block{
		Line: 19,
		Text: "Returns the current process id.\n @return The id.",
		Decl: "ULONG CurrentPid(void);",
	}, blocks[3])
}

func TestExtractScanning(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Block
	}{
		{
			"opener in string literal",
			"const char *s = \"/**\";\nint x;\n",
			nil,
		},
		{
			"opener in char literal",
			"char c = '/'; char d = '*'; char e = '\\'';\n/** Doc. */\nint x;\n",
			[]Block{{Line: 2, Text: "Doc.", Decl: "int x;"}},
		},
		{
			"escaped quote in string",
			"const char *s = \"a\\\"/**\";\n/** Doc. */\nint x;\n",
			[]Block{{Line: 2, Text: "Doc.", Decl: "int x;"}},
		},
		{
			"two comments on one line",
			"int a; /** A. */ int b; /** B. */\n",
			[]Block{
				{Line: 1, Text: "A.", Decl: "int a;"},
				{Line: 1, Text: "B.", Decl: "int b;"},
			},
		},
		{
			"empty comment before doc comment",
			"/**/ /** Doc. */\nint x;\n",
			[]Block{{Line: 1, Text: "Doc.", Decl: "int x;"}},
		},
		{
			"code after comment on same line",
			"/** Doc. */ int x; // trailing\n",
			[]Block{{Line: 1, Text: "Doc.", Decl: "int x;"}},
		},
		{
			"opener inside plain comments",
			"/* see /** here */\n// and /** here\nint x;\n",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Extract(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, blocks)
		})
	}
}

func TestExtractUnterminated(t *testing.T) {
	_, err := Extract("int a;\n/** never closed\n * text\n")
	require.EqualError(t, err, "line 2: unterminated documentation comment")
}

func TestExtractNoComments(t *testing.T) {
	blocks, err := Extract("int main(void) { return 0; }\n")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
