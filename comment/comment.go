// Package comment finds documentation comments in C-style source and removes
// their delimiters so the body can be handed to doxygen.Transform.
package comment

import (
	"fmt"
	"strings"
)

// Block is one documentation comment found by Extract.
type Block struct {
	// Line is the 1-based line of the comment opener.
	Line int
	// Text is the comment body with delimiters removed.
	Text string
	// Decl is the code the comment documents: the code preceding a trailing
	// "/**<" comment, or else the first non-blank line after the comment.
	Decl string
}

// Strip removes block ("/**", "/*!", "*/", leading '*') and line ("///",
// "//!") comment delimiters from text.
func Strip(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "/**"), strings.HasPrefix(text, "/*!"):
		text = strings.TrimPrefix(text[3:], "<")
	case strings.HasPrefix(text, "/*"):
		text = text[2:]
	}
	text = strings.TrimSuffix(text, "*/")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "///"), strings.HasPrefix(trimmed, "//!"):
			line = strings.TrimPrefix(trimmed[3:], "<")
		case strings.HasPrefix(trimmed, "*"):
			line = strings.TrimPrefix(trimmed, "*")
		}
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Extract returns the documentation comments in src in source order. Plain
// "/*" and "//" comments and the contents of string and character literals
// are skipped.
func Extract(src string) ([]Block, error) {
	var blocks []Block
	codeStart := 0
	for i := 0; i < len(src); {
		rest := src[i:]
		switch {
		case rest[0] == '"' || rest[0] == '\'':
			i = skipLiteral(src, i)
		case strings.HasPrefix(rest, "/**/"):
			i += 4
			codeStart = i
		case strings.HasPrefix(rest, "/**"), strings.HasPrefix(rest, "/*!"):
			end := strings.Index(rest[3:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("line %d: unterminated documentation comment", lineOf(src, i))
			}
			end += i + 3 + 2
			blocks = append(blocks, Block{
				Line: lineOf(src, i),
				Text: Strip(src[i:end]),
				Decl: declFor(src, codeStart, i, end),
			})
			i, codeStart = end, end
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return blocks, nil
			}
			i = i + 2 + end + 2
			codeStart = i
		case strings.HasPrefix(rest, "///"), strings.HasPrefix(rest, "//!"):
			end := docLinesEnd(src, i)
			blocks = append(blocks, Block{
				Line: lineOf(src, i),
				Text: Strip(src[i:end]),
				Decl: declFor(src, codeStart, i, end),
			})
			i, codeStart = end, end
		case strings.HasPrefix(rest, "//"):
			i = lineEnd(src, i)
		default:
			i++
		}
	}
	return blocks, nil
}

// skipLiteral returns the index just past the literal opening at src[i].
// Unterminated literals end at the newline.
func skipLiteral(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			return j
		}
	}
	return len(src)
}

// docLinesEnd returns the end of the run of "///" or "//!" lines starting at
// src[i], excluding the final newline.
func docLinesEnd(src string, i int) int {
	end := lineEnd(src, i)
	for end < len(src) {
		next := lineEnd(src, end+1)
		if !isDocLine(src[end+1 : next]) {
			break
		}
		end = next
	}
	return end
}

func lineEnd(src string, i int) int {
	if n := strings.IndexByte(src[i:], '\n'); n >= 0 {
		return i + n
	}
	return len(src)
}

func lineOf(src string, i int) int {
	return strings.Count(src[:i], "\n") + 1
}

func isDocLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "///") || strings.HasPrefix(trimmed, "//!")
}

// declFor finds the code a comment spanning src[start:end] documents: code
// before it on the same line, else code after it on its last line, else the
// next non-blank line. codeStart is where the previous comment ended.
func declFor(src string, codeStart, start, end int) string {
	lineStart := strings.LastIndexByte(src[:start], '\n') + 1
	from := max(lineStart, codeStart)
	if before := strings.TrimSpace(src[from:start]); before != "" {
		return before
	}
	rest := src[end:lineEnd(src, end)]
	if idx := strings.Index(rest, "/*"); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[:idx]
	}
	if after := strings.TrimSpace(rest); after != "" {
		return after
	}
	for _, line := range strings.Split(src[lineEnd(src, end):], "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "/**") || strings.HasPrefix(trimmed, "/*!") || isDocLine(trimmed) {
			return ""
		}
		return trimmed
	}
	return ""
}
