package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, input string, args ...string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(input), &out, &errOut)
	require.NoError(t, app.Run(append([]string{"avl-repl"}, args...)))
	return out.String(), errOut.String()
}

func TestREPL_InsertAndQuery(t *testing.T) {
	out, _ := runApp(t, "insert 10 20 30\nshow\nstats\ninorder\nhas 20 25\nlevels\n")
	assert.Contains(t, out, "inserted 10\ninserted 20\ninserted 30\n")
	assert.Contains(t, out, "       /------+ 30 [+0]\n|------+ 20 [+0]\n       \\------+ 10 [+0]\n")
	assert.Contains(t, out, "tree: main  nodes: 3  height: 2\n")
	assert.Contains(t, out, "10 20 30\n")
	assert.Contains(t, out, "20: true\n25: false\n")
	assert.Contains(t, out, "0: 20[+0]\n1: 10[+0] 30[+0]\n")
}

func TestREPL_RejectsInvalidInput(t *testing.T) {
	out, logs := runApp(t, "insert 1 x 2\nstats\nhas y\n")
	assert.Contains(t, out, `error: invalid value "x"`)
	assert.Contains(t, out, "nodes: 0  height: 0")
	assert.Contains(t, out, `error: invalid value "y"`)
	assert.Contains(t, logs, "rejected input")
}

func TestREPL_ClearConfirmation(t *testing.T) {
	out, _ := runApp(t, "insert 1 2\nclear\nn\nstats\nclear\ny\nstats\nclear\n")
	assert.Contains(t, out, "clear 2 nodes from main? [y/N] cancelled\n")
	assert.Contains(t, out, "nodes: 2  height: 2")
	assert.Contains(t, out, "cleared main\n")
	assert.Contains(t, out, "nodes: 0  height: 0")
	assert.Contains(t, out, "tree is already empty\n")
}

func TestREPL_PreloadNoConfirm(t *testing.T) {
	out, logs := runApp(t, "stats\nclear\nstats\n", "--no-confirm", "--log-level", "debug", "-p", "5,5,7")
	assert.Contains(t, out, "inserted 5\n5 already present\ninserted 7\n")
	assert.Contains(t, out, "nodes: 2  height: 2")
	assert.Contains(t, out, "cleared main\n")
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, logs, "duplicate ignored")
	assert.Contains(t, logs, "cleared")
}

func TestREPL_NamedTrees(t *testing.T) {
	out, _ := runApp(t, "insert 1\nuse other\ninsert 2 3\nstats\ntrees\nuse main\nstats\nquit\ninsert 9\n")
	assert.Contains(t, out, "using tree other\n")
	assert.Contains(t, out, "tree: other  nodes: 2  height: 2")
	assert.Contains(t, out, "  main (1 nodes)\n* other (2 nodes)\n")
	assert.Contains(t, out, "tree: main  nodes: 1  height: 1")
	assert.NotContains(t, out, "inserted 9")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out, _ := runApp(t, "frobnicate\nhelp")
	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, "Commands:")
}

func TestREPL_BadConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(""), &out, &errOut)
	assert.Error(t, app.Run([]string{"avl-repl", "--log-level", "loud"}))
}

func TestParseValues(t *testing.T) {
	vs, err := parseValues([]string{"3", "-1", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1, 0}, vs)

	_, err = parseValues([]string{"3", "1.5"})
	var ie *InvalidInputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "1.5", ie.Input)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	_, err = parseValues([]string{"99999999999999999999"})
	assert.True(t, errors.Is(err, strconv.ErrRange))
}

func TestPrintTree(t *testing.T) {
	tree := Trees.New[int]()
	var buf bytes.Buffer
	printTree(&buf, tree)
	assert.Equal(t, "(empty)\n", buf.String())

	for _, v := range []int{10, 20, 30, 40} {
		tree.Insert(v)
	}
	buf.Reset()
	printTree(&buf, tree)
	assert.Equal(t, strings.Join([]string{
		"              /------+ 40 [+0]",
		"       /------+ 30 [-1]",
		"|------+ 20 [-1]",
		"       \\------+ 10 [+0]",
		"",
	}, "\n"), buf.String())
}
