// # doxmd
//
// `doxmd` converts Doxygen-style documentation comments into Markdown. It is
// meant for binding generators that scrape C headers and want the API
// documentation re-expressed as Markdown doc comments.
//
// Key capabilities:
//
//   - rewrite `@param`, `@param[in]`, `@return`, `@see`, `\li`, `@note`,
//     `@c`, `@b` and friends, emitting `# Arguments`, `# Returns` and
//     `# See also` sections once each.
//   - keep unrecognised tags verbatim so nothing is silently dropped.
//   - strip comment delimiters (`-strip`) or pull every documentation comment
//     out of a header (`-extract`).
//   - keep the original text of comments with malformed attribute lists
//     (`-fallback`) instead of failing the run.
//   - ship a Cobra-powered CLI with `--help`, `--version`, shell completion,
//     and a `gen-docs` helper for publishing the CLI reference itself.
//
// The conversion itself lives in the `doxygen` package and the comment
// handling in `comment`; both can be imported directly.
//
// ## Usage
//
//	doxmd [flags] [file...]
//
// Examples:
//
//   - Convert a bare comment body from stdin:
//
//     echo '@param[in] Handle The handle.' | doxmd
//
//   - Convert every documentation comment of a header:
//
//     doxmd -extract -o docs/ntdll.md include/ntdll.h
//
//   - Convert many headers four at a time, tolerating bad comments:
//
//     doxmd -extract -fallback -j 4 include/*.h
//
// ## Supported Flags
//
//   - `-strip`: remove `/**`, `/*!`, `*/`, leading `*`, `///` and `//!`.
//   - `-extract`: treat inputs as C headers; each comment is written under a
//     `##` heading naming the declaration it documents (or `file:line`).
//   - `-fallback`: on a malformed attribute list, warn on stderr and emit the
//     original text.
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `-j N`: convert up to N files concurrently; output order follows the
//     arguments.
//   - `-config FILE`: read defaults from `FILE` instead of the nearest
//     `doxmd.toml`.
//   - `-no-color`: plain warnings.
//
// ## Configuration
//
// Defaults can be kept in a `doxmd.toml` found in the working directory or
// any parent:
//
//	[transform]
//	strip = true
//	fallback = true
//	jobs = 4
//
// Flags given on the command line always win.
//
// ## Shell Completion
//
//	doxmd completion bash        # bash
//	doxmd completion zsh         # zsh
//	doxmd completion fish | source
//	doxmd completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	doxmd gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
