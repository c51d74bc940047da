package doxygen

import (
	"strings"
)

const (
	argumentsHeader = "# Arguments"
	returnsHeader   = "# Returns"
	seeAlsoHeader   = "# See also"
)

// converter holds the state of a single Transform call.
type converter struct {
	toks *tokens
	out  strings.Builder

	argumentsEmitted bool
	returnsEmitted   bool
	seeAlsoEmitted   bool
}

// Transform converts a Doxygen comment body into Markdown. The input must
// already have its comment delimiters removed, for example with comment.Strip.
//
// Leading whitespace is dropped and indentation after each newline is
// collapsed. The only error is a malformed @param attribute list, in which
// case no output is returned.
func Transform(input string) (string, error) {
	c := &converter{toks: newTokens(input)}
	c.toks.skipWhitespace()
	for {
		r, ok := c.toks.next()
		if !ok {
			break
		}
		switch {
		case isTagMarker(r):
			name := c.toks.takeWord()
			c.toks.skipWhitespace()
			if err := c.dispatch(lookupTag(r, name)); err != nil {
				return "", err
			}
		case r == '\n':
			c.toks.skipWhitespace()
			c.out.WriteRune(r)
		default:
			c.out.WriteRune(r)
		}
	}
	return c.out.String(), nil
}

func (c *converter) dispatch(t tag) error {
	switch t.kind {
	case tagParam:
		return c.param()
	case tagCode:
		c.out.WriteString(inlineCode(c.toks.takeWord()))
	case tagRef:
		c.out.WriteString(formatRef(c.toks.takeWord()))
	case tagSee:
		c.section(&c.seeAlsoEmitted, seeAlsoHeader)
		c.out.WriteString("> " + formatRef(c.toks.takeWord()))
	case tagItalic:
		c.out.WriteString("_" + c.toks.takeWord() + "_")
	case tagBold:
		c.out.WriteString("**" + c.toks.takeWord() + "**")
	case tagNote:
		c.out.WriteString("> **Note** ")
	case tagSince:
		c.out.WriteString("> **Since** ")
	case tagDeprecated:
		c.out.WriteString("> **Deprecated** ")
	case tagRemark:
		c.out.WriteString("> ")
	case tagListItem:
		c.out.WriteString("- ")
	case tagParagraph:
		c.out.WriteString("# ")
	case tagReturns:
		c.section(&c.returnsEmitted, returnsHeader)
	case tagGroupOpen, tagGroupClose, tagBrief:
		// Groups are not supported and @brief is implied by position.
	case tagUnknown:
		c.out.WriteRune(t.marker)
		c.out.WriteString(t.name + " ")
	}
	return nil
}

// param renders "* `name` [attrs]  -" for @param, @param[attrs] and
// @param [attrs] forms.
func (c *converter) param() error {
	c.section(&c.argumentsEmitted, argumentsHeader)
	name, attrs := c.toks.takeWord(), ""
	if name == "" {
		offset := c.toks.pos
		if r, ok := c.toks.next(); !ok || r != '[' {
			return &MalformedAttributeListError{Missing: '[', Offset: offset}
		}
		list := c.toks.takeWhile(func(r rune) bool { return r != ']' })
		offset = c.toks.pos
		if r, ok := c.toks.next(); !ok || r != ']' {
			return &MalformedAttributeListError{Missing: ']', Offset: offset}
		}
		attrs = " [" + list + "] "
		c.toks.skipWhitespace()
		name = c.toks.takeWord()
	}
	c.out.WriteString("* " + inlineCode(name) + attrs + " -")
	return nil
}

// section writes header followed by a blank line unless it was written
// before in this call.
func (c *converter) section(emitted *bool, header string) {
	if *emitted {
		return
	}
	*emitted = true
	c.out.WriteString(header)
	c.out.WriteString("\n\n")
}

func inlineCode(s string) string {
	return "`" + s + "`"
}

// formatRef renders URLs as self-labelled links and anything else as code.
func formatRef(s string) string {
	if strings.Contains(s, "://") {
		return "[" + s + "](" + s + ")"
	}
	return inlineCode(s)
}
