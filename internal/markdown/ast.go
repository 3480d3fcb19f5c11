// Package markdown defines the parsed document model and the CommonMark
// parser adapter that produces it.
package markdown

// Document is the parsed form of one markdown source file. It is immutable
// once produced; a reload replaces it wholesale.
type Document struct {
	Blocks    []Block
	Footnotes []Footnote
}

// Footnote is a collected footnote definition. References in the text carry
// the same index, so the trailing footnote section can be matched up without
// a label lookup.
type Footnote struct {
	Index  int
	Blocks []Block
}

// Block is a tagged block-level node.
type Block interface {
	blockNode()
}

type Heading struct {
	Level int // 1..6
	Text  []Inline
}

func (Heading) blockNode() {}

type Paragraph struct {
	Text []Inline
}

func (Paragraph) blockNode() {}

// CodeBlock carries raw literal lines. They are never re-wrapped.
type CodeBlock struct {
	Info   string // language tag of a fenced block, "" when absent
	Lines  []string
	Fenced bool
}

func (CodeBlock) blockNode() {}

type List struct {
	Ordered bool
	Start   int
	Items   []ListItem
}

func (List) blockNode() {}

// TaskState is the checkbox state of a task-list item.
type TaskState int

const (
	TaskNone TaskState = iota
	TaskOpen
	TaskDone
)

type ListItem struct {
	Task   TaskState
	Blocks []Block
}

type Blockquote struct {
	Blocks []Block
}

func (Blockquote) blockNode() {}

type ThematicBreak struct{}

func (ThematicBreak) blockNode() {}

type Table struct {
	Header []Cell
	Rows   [][]Cell
	Align  []Alignment
}

func (Table) blockNode() {}

// Cell is one table cell's inline content.
type Cell []Inline

type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// InlineKind tags an Inline node.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineEmphasis
	InlineStrong
	InlineStrike
	InlineCode
	InlineLink
	InlineFootnoteRef
	InlineHardBreak
)

// Inline is a styled run of paragraph-level content. Container kinds
// (emphasis, strong, strike, link) carry Children; leaf kinds carry Literal.
type Inline struct {
	Kind        InlineKind
	Literal     string
	Children    []Inline
	Destination string // link target; not interactively used
	Index       int    // footnote reference index
}
