package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mutmap/internal/model"
)

var calcSource = strings.Join([]string{
	"package org.example;",                      // 1
	"",                                          // 2
	"public class Calc {",                       // 3
	"    public int run(int x, int[] items) {",  // 4
	"        if (x > 0) {",                      // 5
	"            x--;",                          // 6
	"        }",                                 // 7
	"        while (x < 10) {",                  // 8
	"            x++;",                          // 9
	"        }",                                 // 10
	"        for (int i = 0; i < x; i++) {",     // 11
	"            x += i;",                       // 12
	"        }",                                 // 13
	"        for (int item : items) {",          // 14
	"            x += item;",                    // 15
	"        }",                                 // 16
	"        do {",                              // 17
	"            x--;",                          // 18
	"        } while (x > 5);",                  // 19
	"        switch (x) {",                      // 20
	"            case 1:",                       // 21
	"                break;",                    // 22
	"            default:",                      // 23
	"                break;",                    // 24
	"        }",                                 // 25
	"        int y = x > 3 ? 1 : 2;",            // 26
	"        return y;",                         // 27
	"    }",                                     // 28
	"}",                                         // 29
}, "\n")

func extractAll(t *testing.T, adapter *LocalJavaFileAdapter, path m.Path, src string) []m.ConditionBlock {
	t.Helper()

	tree, err := adapter.Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	className := adapter.ClassName(path, adapter.PackageName(root, []byte(src)))

	return adapter.ExtractConditions(root, []byte(src), className)
}

func TestLocalJavaFileAdapter_ExtractConditions(t *testing.T) {
	adapter := NewLocalJavaFileAdapter()

	blocks := extractAll(t, adapter, "src/main/java/org/example/Calc.java", calcSource)

	want := []m.ConditionBlock{
		{ClassName: "org.example.Calc", Line: 5, Kind: m.NodeIf, Condition: "x > 0"},
		{ClassName: "org.example.Calc", Line: 8, Kind: m.NodeWhile, Condition: "x < 10"},
		{ClassName: "org.example.Calc", Line: 11, Kind: m.NodeFor, Condition: "i < x"},
		{ClassName: "org.example.Calc", Line: 14, Kind: m.NodeFor, Condition: "int item : items"},
		{ClassName: "org.example.Calc", Line: 17, Kind: m.NodeDo, Condition: "x > 5"},
		{ClassName: "org.example.Calc", Line: 20, Kind: m.NodeSwitch, Condition: "x"},
	}
	assert.Equal(t, want, blocks)
}

func TestLocalJavaFileAdapter_Ternary(t *testing.T) {
	adapter := NewLocalJavaFileAdapter(WithTernary(true))

	blocks := extractAll(t, adapter, "Calc.java", calcSource)
	require.Len(t, blocks, 7)

	last := blocks[len(blocks)-1]
	assert.Equal(t, m.NodeTernary, last.Kind)
	assert.Equal(t, 26, last.Line)
	assert.Equal(t, "x > 3", last.Condition)
}

func TestLocalJavaFileAdapter_NestedSameLine(t *testing.T) {
	src := "class Nested {\n  void f(boolean a, boolean b) {\n    if (a) { if (b) { return; } }\n  }\n}\n"
	adapter := NewLocalJavaFileAdapter()

	blocks := extractAll(t, adapter, "Nested.java", src)

	assert.Equal(t, []m.ConditionBlock{
		{ClassName: "Nested", Line: 3, Kind: m.NodeIf, Condition: "a"},
		{ClassName: "Nested", Line: 3, Kind: m.NodeIf, Condition: "b"},
	}, blocks)
}

func TestLocalJavaFileAdapter_MultiLineCondition(t *testing.T) {
	src := "class Multi {\n  void f(int a, int b) {\n    while (a > 0 &&\n           b > 0) {\n      a--;\n    }\n  }\n}\n"
	adapter := NewLocalJavaFileAdapter()

	blocks := extractAll(t, adapter, "Multi.java", src)

	require.Len(t, blocks, 1)
	assert.Equal(t, 3, blocks[0].Line)
	assert.Equal(t, "a > 0 && b > 0", blocks[0].Condition)
}

func TestLocalJavaFileAdapter_ClassName(t *testing.T) {
	adapter := NewLocalJavaFileAdapter()

	assert.Equal(t, "org.example.Calc", adapter.ClassName("a/b/Calc.java", "org.example"))
	assert.Equal(t, "Calc", adapter.ClassName("Calc.java", ""))
	assert.Equal(t, []string{".java"}, adapter.Extensions())
}

func TestLocalJavaFileAdapter_ParseFailures(t *testing.T) {
	broken := []byte("class Broken {\n  void f( {\n}\n")

	t.Run("strict rejects syntax errors", func(t *testing.T) {
		adapter := NewLocalJavaFileAdapter()

		_, err := adapter.Parse(context.Background(), broken)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSyntax))
	})

	t.Run("lenient keeps partial trees", func(t *testing.T) {
		adapter := NewLocalJavaFileAdapter(WithStrict(false))

		tree, err := adapter.Parse(context.Background(), broken)
		require.NoError(t, err)
		tree.Close()
	})

	t.Run("file too large", func(t *testing.T) {
		adapter := NewLocalJavaFileAdapter(WithMaxFileSize(8))

		_, err := adapter.Parse(context.Background(), []byte(calcSource))
		assert.True(t, errors.Is(err, ErrFileTooLarge))
	})

	t.Run("invalid utf8", func(t *testing.T) {
		adapter := NewLocalJavaFileAdapter()

		_, err := adapter.Parse(context.Background(), []byte{0xff, 0xfe, 0xfd})
		assert.True(t, errors.Is(err, ErrInvalidContent))
	})

	t.Run("cancelled context", func(t *testing.T) {
		adapter := NewLocalJavaFileAdapter()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.Parse(ctx, []byte(calcSource))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
