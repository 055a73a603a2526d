package model

// Path represents a file system path.
type Path string

// NodeKind names the control-flow construct a condition block was taken from.
type NodeKind string

const (
	// NodeIf is an if statement.
	NodeIf NodeKind = "IfStatement"
	// NodeWhile is a while loop.
	NodeWhile NodeKind = "WhileStatement"
	// NodeFor is a for loop, classic or enhanced.
	NodeFor NodeKind = "ForStatement"
	// NodeDo is a do/while loop.
	NodeDo NodeKind = "DoStatement"
	// NodeSwitch is a switch statement or expression.
	NodeSwitch NodeKind = "SwitchStatement"
	// NodeTernary is a conditional expression. It is only indexed when
	// ternary blocks are enabled.
	NodeTernary NodeKind = "TernaryExpression"
)

// IsStatement reports whether the kind is one of the statement kinds.
func (k NodeKind) IsStatement() bool {
	switch k {
	case NodeIf, NodeWhile, NodeFor, NodeDo, NodeSwitch:
		return true
	case NodeTernary:
		return false
	}

	return false
}

// BlockKey is the loose join key shared by mutations and condition blocks.
type BlockKey struct {
	Class string
	Line  int
}

// ConditionBlock is a control-flow node reported by the condition extractor.
type ConditionBlock struct {
	ClassName string
	Line      int
	Kind      NodeKind
	Condition string
}

// Key returns the (class, line) key of the block.
func (b ConditionBlock) Key() BlockKey {
	return BlockKey{Class: b.ClassName, Line: b.Line}
}

// FileExtraction holds the condition blocks found in a single source file.
// Err is set when the file could not be read or parsed; Blocks is then empty.
type FileExtraction struct {
	Path      Path
	ClassName string
	Blocks    []ConditionBlock
	Err       error
}

// ExtractionSummary aggregates the outcome of a source tree extraction.
type ExtractionSummary struct {
	FilesScanned    int
	FilesWithBlocks int
	Blocks          int
	Failures        []FileExtraction
}
