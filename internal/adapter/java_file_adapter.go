package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	m "github.com/mouse-blink/mutmap/internal/model"
)

// DefaultMaxFileSize is the largest source file the Java adapter will parse.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

var (
	// ErrFileTooLarge is returned when a source file exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned for source that is not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
	// ErrSyntax is returned in strict mode when the syntax tree contains errors.
	ErrSyntax = errors.New("syntax error")
)

// tree-sitter-java node types mapped to the reported node kinds.
var javaConditionNodes = map[string]m.NodeKind{
	"if_statement":           m.NodeIf,
	"while_statement":        m.NodeWhile,
	"for_statement":          m.NodeFor,
	"enhanced_for_statement": m.NodeFor,
	"do_statement":           m.NodeDo,
	"switch_statement":       m.NodeSwitch,
	"switch_expression":      m.NodeSwitch,
	"ternary_expression":     m.NodeTernary,
}

// JavaFileAdapter encapsulates Java parsing and condition-block detection so
// the domain layer can walk source trees without knowing about tree-sitter.
type JavaFileAdapter interface {
	// Parse builds a syntax tree for src. The caller must Close the tree.
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)

	// PackageName returns the declared package of the compilation unit, or "".
	PackageName(root *sitter.Node, src []byte) string

	// ClassName derives the class identity used in the dump: the file stem,
	// qualified with packageName when one is declared.
	ClassName(path m.Path, packageName string) string

	// ExtractConditions walks the tree in pre-order and reports every
	// control-flow node with its guarding expression.
	ExtractConditions(root *sitter.Node, src []byte, className string) []m.ConditionBlock

	// Extensions returns the file extensions this adapter handles.
	Extensions() []string
}

// JavaFileAdapterOption configures a LocalJavaFileAdapter.
type JavaFileAdapterOption func(*LocalJavaFileAdapter)

// WithMaxFileSize sets the maximum file size the adapter will parse.
func WithMaxFileSize(bytes int64) JavaFileAdapterOption {
	return func(a *LocalJavaFileAdapter) {
		if bytes > 0 {
			a.maxFileSize = bytes
		}
	}
}

// WithTernary controls whether ternary expressions are reported.
func WithTernary(include bool) JavaFileAdapterOption {
	return func(a *LocalJavaFileAdapter) {
		a.includeTernary = include
	}
}

// WithStrict makes Parse fail on trees that contain syntax errors.
func WithStrict(strict bool) JavaFileAdapterOption {
	return func(a *LocalJavaFileAdapter) {
		a.strict = strict
	}
}

// LocalJavaFileAdapter is a JavaFileAdapter backed by tree-sitter-java.
// It is safe for concurrent use: each Parse call creates its own parser.
type LocalJavaFileAdapter struct {
	maxFileSize    int64
	includeTernary bool
	strict         bool
}

// NewLocalJavaFileAdapter constructs a LocalJavaFileAdapter. By default it is
// strict and skips ternary expressions.
func NewLocalJavaFileAdapter(opts ...JavaFileAdapterOption) *LocalJavaFileAdapter {
	a := &LocalJavaFileAdapter{
		maxFileSize: DefaultMaxFileSize,
		strict:      true,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Extensions returns the Java source extension.
func (a *LocalJavaFileAdapter) Extensions() []string {
	return []string{".java"}
}

// Parse builds a tree-sitter syntax tree for the given Java source.
func (a *LocalJavaFileAdapter) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	if int64(len(src)) > a.maxFileSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(src), a.maxFileSize)
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidContent)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, fmt.Errorf("%w: tree-sitter returned nil root node", ErrSyntax)
	}

	if a.strict && root.HasError() {
		line := firstErrorLine(root)

		tree.Close()

		return nil, fmt.Errorf("%w at line %d", ErrSyntax, line)
	}

	return tree, nil
}

// PackageName returns the package declared by the compilation unit.
func (a *LocalJavaFileAdapter) PackageName(root *sitter.Node, src []byte) string {
	if root == nil {
		return ""
	}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child == nil || child.Type() != "package_declaration" {
			continue
		}

		for j := 0; j < int(child.NamedChildCount()); j++ {
			name := child.NamedChild(j)
			if name.Type() == "scoped_identifier" || name.Type() == "identifier" {
				return singleLine(name.Content(src))
			}
		}
	}

	return ""
}

// ClassName returns package.FileStem, or FileStem without a package.
func (a *LocalJavaFileAdapter) ClassName(path m.Path, packageName string) string {
	base := filepath.Base(string(path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if packageName == "" {
		return stem
	}

	return packageName + "." + stem
}

// ExtractConditions reports control-flow nodes in encounter (pre-order) order.
func (a *LocalJavaFileAdapter) ExtractConditions(root *sitter.Node, src []byte, className string) []m.ConditionBlock {
	var blocks []m.ConditionBlock

	walkNamed(root, func(node *sitter.Node) {
		kind, ok := javaConditionNodes[node.Type()]
		if !ok {
			return
		}

		if kind == m.NodeTernary && !a.includeTernary {
			return
		}

		blocks = append(blocks, m.ConditionBlock{
			ClassName: className,
			Line:      int(node.StartPoint().Row) + 1,
			Kind:      kind,
			Condition: conditionText(node, src),
		})
	})

	return blocks
}

func walkNamed(node *sitter.Node, visit func(*sitter.Node)) {
	if node == nil {
		return
	}

	visit(node)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		walkNamed(node.NamedChild(i), visit)
	}
}

func conditionText(node *sitter.Node, src []byte) string {
	switch node.Type() {
	case "enhanced_for_statement":
		return enhancedForHeader(node, src)
	case "for_statement", "ternary_expression":
		return fieldText(node, "condition", src)
	}

	cond := node.ChildByFieldName("condition")
	if cond == nil {
		cond = firstNamedChildOfType(node, "parenthesized_expression")
	}

	if cond == nil {
		return ""
	}

	return singleLine(unwrapParens(cond.Content(src)))
}

func enhancedForHeader(node *sitter.Node, src []byte) string {
	typ := node.ChildByFieldName("type")
	name := node.ChildByFieldName("name")
	value := node.ChildByFieldName("value")

	if typ == nil || name == nil || value == nil {
		return ""
	}

	return singleLine(fmt.Sprintf("%s %s : %s", typ.Content(src), name.Content(src), value.Content(src)))
}

func fieldText(node *sitter.Node, field string, src []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}

	return singleLine(child.Content(src))
}

func firstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}

	return nil
}

func unwrapParens(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		return strings.TrimSpace(text[1 : len(text)-1])
	}

	return text
}

func firstErrorLine(root *sitter.Node) int {
	line := 0

	var find func(node *sitter.Node) bool

	find = func(node *sitter.Node) bool {
		if node == nil || !node.HasError() && !node.IsMissing() {
			return false
		}

		if node.Type() == "ERROR" || node.IsMissing() {
			line = int(node.StartPoint().Row) + 1
			return true
		}

		for i := 0; i < int(node.ChildCount()); i++ {
			if find(node.Child(i)) {
				return true
			}
		}

		return false
	}

	if !find(root) {
		line = int(root.StartPoint().Row) + 1
	}

	return line
}
