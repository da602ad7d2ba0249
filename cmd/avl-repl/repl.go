package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/g-m-twostay/go-avl/cmd/avl-repl/config"
	"github.com/rs/zerolog"
)

// REPL holds the state of the interactive session. It owns every tree it
// works on; the current one is tree, registered under name.
type REPL struct {
	cfg         *config.Config
	log         zerolog.Logger
	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	trees *haxmap.Map[string, *Trees.AVLTree[int]]
	names *Trees.AVLTree[string]
	name  string
	tree  *Trees.AVLTree[int]
}

func NewREPL(cfg *config.Config, log zerolog.Logger, in io.Reader, out io.Writer, interactive bool) *REPL {
	r := &REPL{
		cfg:         cfg,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		trees:       haxmap.New[string, *Trees.AVLTree[int]](),
		names:       Trees.New[string](),
	}
	r.use(cfg.DefaultTree)
	return r
}

// use switches to the tree called name, creating it on first use.
func (r *REPL) use(name string) {
	t, ok := r.trees.Get(name)
	if !ok {
		t = Trees.New[int]()
		r.trees.Set(name, t)
		r.names.Insert(name)
		r.log.Debug().Str("tree", name).Msg("created tree")
	}
	r.name, r.tree = name, t
}

// Run reads commands until quit or end of input.
func (r *REPL) Run() error {
	if r.interactive {
		fmt.Fprintln(r.out, "AVL REPL - type 'help' for available commands, 'quit' to exit")
	}
	for {
		if r.interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}
		input, err := r.reader.ReadString('\n')
		if input = strings.TrimSpace(input); input != "" && !r.handleCommand(input) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		r.printHelp()

	case "quit", "exit":
		return false

	case "insert", "i", "add":
		r.cmdInsert(args)

	case "clear":
		r.cmdClear(len(args) > 0 && (args[0] == "-f" || args[0] == "--force"))

	case "show", "print":
		printTree(r.out, r.tree)

	case "levels":
		for d, lv := range r.tree.Levels() {
			fmt.Fprintf(r.out, "%d:", d)
			for _, n := range lv {
				fmt.Fprintf(r.out, " %d[%+d]", n.Value(), r.tree.BalanceFactor(n))
			}
			fmt.Fprintln(r.out)
		}

	case "inorder":
		var sb strings.Builder
		next := r.tree.InOrder()
		for v, ok := next(); ok; v, ok = next() {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		fmt.Fprintln(r.out, sb.String())

	case "stats":
		fmt.Fprintf(r.out, "tree: %s  nodes: %d  height: %d\n", r.name, r.tree.CountNodes(), r.tree.Height())

	case "has":
		vs, err := parseValues(args)
		if err != nil {
			r.reject(err)
			break
		}
		for _, v := range vs {
			fmt.Fprintf(r.out, "%d: %t\n", v, r.tree.Has(v))
		}

	case "use":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "usage: use <name>")
			break
		}
		r.use(args[0])
		fmt.Fprintf(r.out, "using tree %s\n", r.name)

	case "trees":
		next := r.names.InOrder()
		for n, ok := next(); ok; n, ok = next() {
			mark := " "
			if n == r.name {
				mark = "*"
			}
			t, _ := r.trees.Get(n)
			fmt.Fprintf(r.out, "%s %s (%d nodes)\n", mark, n, t.Size())
		}

	default:
		fmt.Fprintf(r.out, "unknown command %q, type 'help'\n", cmd)
	}
	return true
}

func (r *REPL) reject(err error) {
	r.log.Warn().Err(err).Str("tree", r.name).Msg("rejected input")
	fmt.Fprintf(r.out, "error: %v\n", err)
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "usage: insert <value>...")
		return
	}
	vs, err := parseValues(args)
	if err != nil {
		r.reject(err)
		return
	}
	r.insert(vs...)
}

func (r *REPL) insert(vs ...int) {
	for _, v := range vs {
		if r.tree.Insert(v) {
			r.log.Debug().Str("tree", r.name).Int("value", v).Int("height", r.tree.Height()).Msg("inserted")
			fmt.Fprintf(r.out, "inserted %d\n", v)
		} else {
			r.log.Debug().Str("tree", r.name).Int("value", v).Msg("duplicate ignored")
			fmt.Fprintf(r.out, "%d already present\n", v)
		}
	}
}

func (r *REPL) cmdClear(force bool) {
	if r.tree.Root() == nil {
		fmt.Fprintln(r.out, "tree is already empty")
		return
	}
	if r.cfg.ConfirmClear && !force {
		fmt.Fprintf(r.out, "clear %d nodes from %s? [y/N] ", r.tree.Size(), r.name)
		answer, _ := r.reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(r.out, "cancelled")
			return
		}
	}
	n := r.tree.Size()
	r.tree.Clear()
	r.log.Debug().Str("tree", r.name).Int("nodes", n).Msg("cleared")
	fmt.Fprintf(r.out, "cleared %s\n", r.name)
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Commands:
  insert <v>...   insert integers (aliases: i, add)
  clear [-f]      remove every node, -f skips the confirmation
  show            draw the tree with balance factors
  levels          list nodes level by level
  inorder         list values in ascending order
  stats           node count and height
  has <v>...      membership
  use <name>      switch to (or create) a named tree
  trees           list named trees
  help            this text
  quit            leave
`)
}
