package doxygen

type tagKind int

const (
	tagUnknown tagKind = iota
	tagParam
	tagCode
	tagRef
	tagSee
	tagItalic
	tagBold
	tagNote
	tagSince
	tagDeprecated
	tagRemark
	tagListItem
	tagParagraph
	tagReturns
	tagGroupOpen
	tagGroupClose
	tagBrief
)

var tagKinds = map[string]tagKind{
	"param":      tagParam,
	"c":          tagCode,
	"p":          tagCode,
	"ref":        tagRef,
	"see":        tagSee,
	"sa":         tagSee,
	"a":          tagItalic,
	"e":          tagItalic,
	"em":         tagItalic,
	"b":          tagBold,
	"note":       tagNote,
	"since":      tagSince,
	"deprecated": tagDeprecated,
	"remark":     tagRemark,
	"remarks":    tagRemark,
	"li":         tagListItem,
	"par":        tagParagraph,
	"returns":    tagReturns,
	"return":     tagReturns,
	"result":     tagReturns,
	"{":          tagGroupOpen,
	"}":          tagGroupClose,
	"brief":      tagBrief,
	"short":      tagBrief,
}

// tag is a parsed marker and name. Unknown tags keep both so they can be
// written back verbatim.
type tag struct {
	kind   tagKind
	marker rune
	name   string
}

func lookupTag(marker rune, name string) tag {
	return tag{kind: tagKinds[name], marker: marker, name: name}
}

func isTagMarker(r rune) bool {
	return r == '@' || r == '\\'
}
