// Interactive shell command: one live hash table per session, driven
// by line-based commands. The table exists only for the session; only
// benchmark results are ever persisted.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tidyware/stockroom/internal/datagen"
	"github.com/tidyware/stockroom/pkg/hashtable"
	"github.com/tidyware/stockroom/pkg/types"
)

const shellHelp = `Commands:
  create [capacity]                    create a new table (default capacity from config)
  insert <id> <name> <category> <stock>  insert a product
  search <id>                          look up a product
  delete <id>                          remove a product
  update <id> [name=V] [category=V] [stock=N]  partial update
  show [limit]                         print the first slots (default 20)
  stats                                print table statistics
  seed [n]                             insert n sample products (default 20)
  reset-collisions                     zero the collision counter
  help                                 print this help
  quit                                 leave the shell`

// defaultShowLimit is how many slots "show" prints without an argument.
const defaultShowLimit = 20

// defaultSeedCount is how many sample products "seed" inserts without
// an argument.
const defaultSeedCount = 20

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive inventory session",
	Long: `Shell starts an interactive session holding one hash table. The table
lives only for the duration of the session.

Example session:
  > create 100
  > insert P0001 Laptop Electronics 5
  > search P0001
  > stats
  > quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := &session{
			defaultCapacity: shellDefaultCapacity(),
			rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
			out:             cmd.OutOrStdout(),
		}
		return sess.run(cmd.InOrStdin())
	},
}

// shellDefaultCapacity returns the configured default table capacity.
func shellDefaultCapacity() int {
	if configDefaultCapacity > 0 {
		return configDefaultCapacity
	}
	return defaultCapacity
}

// session holds the state of one interactive shell.
type session struct {
	table           *hashtable.Table
	defaultCapacity int
	rng             *rand.Rand
	out             io.Writer
}

// run reads commands line by line until quit or EOF.
func (s *session) run(in io.Reader) error {
	fmt.Fprintln(s.out, "stockroom shell (type 'help' for commands)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if !s.dispatch(scanner.Text()) {
			return nil
		}
	}
}

// dispatch executes one command line. It returns false when the
// session should end.
func (s *session) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "create":
		s.cmdCreate(args)
	case "insert":
		s.cmdInsert(args)
	case "search":
		s.cmdSearch(args)
	case "delete":
		s.cmdDelete(args)
	case "update":
		s.cmdUpdate(args)
	case "show":
		s.cmdShow(args)
	case "stats":
		s.cmdStats()
	case "seed":
		s.cmdSeed(args)
	case "reset-collisions":
		s.cmdResetCollisions()
	case "quit", "exit":
		fmt.Fprintln(s.out, "bye")
		return false
	default:
		fmt.Fprintf(s.out, "unknown command %q (type 'help')\n", cmd)
	}
	return true
}

// requireTable prints a hint and returns false when no table exists yet.
func (s *session) requireTable() bool {
	if s.table == nil {
		fmt.Fprintln(s.out, "no table yet; run 'create' first")
		return false
	}
	return true
}

func (s *session) cmdCreate(args []string) {
	capacity := s.defaultCapacity
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "invalid capacity %q\n", args[0])
			return
		}
		capacity = n
	}

	s.table = hashtable.New(capacity)
	fmt.Fprintf(s.out, "created table with %d slots (expected capacity %d)\n", s.table.Size(), capacity)
}

func (s *session) cmdInsert(args []string) {
	if !s.requireTable() {
		return
	}
	if len(args) != 4 {
		fmt.Fprintln(s.out, "usage: insert <id> <name> <category> <stock>")
		return
	}
	stock, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Fprintf(s.out, "invalid stock %q\n", args[3])
		return
	}

	p := &types.Product{ID: args[0], Name: args[1], Category: args[2], Stock: stock}
	if s.table.Insert(p) {
		fmt.Fprintf(s.out, "inserted %s\n", p)
	} else {
		fmt.Fprintf(s.out, "ID %q already exists\n", p.ID)
	}
}

func (s *session) cmdSearch(args []string) {
	if !s.requireTable() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: search <id>")
		return
	}

	if p := s.table.Search(args[0]); p != nil {
		fmt.Fprintf(s.out, "found: %s\n", p)
	} else {
		fmt.Fprintf(s.out, "ID %q not found\n", args[0])
	}
}

func (s *session) cmdDelete(args []string) {
	if !s.requireTable() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: delete <id>")
		return
	}

	if s.table.Delete(args[0]) {
		fmt.Fprintf(s.out, "deleted %q\n", args[0])
	} else {
		fmt.Fprintf(s.out, "ID %q not found\n", args[0])
	}
}

func (s *session) cmdUpdate(args []string) {
	if !s.requireTable() {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "usage: update <id> [name=V] [category=V] [stock=N]")
		return
	}

	update, err := parseUpdate(args[1:])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	if s.table.Update(args[0], update) {
		fmt.Fprintf(s.out, "updated: %s\n", s.table.Search(args[0]))
	} else {
		fmt.Fprintf(s.out, "ID %q not found\n", args[0])
	}
}

// parseUpdate builds a partial update from key=value arguments.
func parseUpdate(args []string) (types.ProductUpdate, error) {
	var update types.ProductUpdate
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return types.ProductUpdate{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "name":
			v := value
			update.Name = &v
		case "category":
			v := value
			update.Category = &v
		case "stock":
			n, err := strconv.Atoi(value)
			if err != nil {
				return types.ProductUpdate{}, fmt.Errorf("invalid stock %q", value)
			}
			update.Stock = &n
		default:
			return types.ProductUpdate{}, fmt.Errorf("unknown field %q (name, category, stock)", key)
		}
	}
	return update, nil
}

func (s *session) cmdShow(args []string) {
	if !s.requireTable() {
		return
	}
	limit := defaultShowLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "invalid limit %q\n", args[0])
			return
		}
		limit = n
	}

	stats := s.table.Stats()
	fmt.Fprintf(s.out, "size %d | elements %d | load factor %.2f%% | collisions %d\n",
		stats.Size, stats.Elements, stats.LoadFactor, stats.Collisions)

	for i, chain := range s.table.Chains(limit) {
		if len(chain) == 0 {
			fmt.Fprintf(s.out, "[%4d] -> empty\n", i)
			continue
		}
		parts := make([]string, len(chain))
		for j, p := range chain {
			parts[j] = p.String()
		}
		fmt.Fprintf(s.out, "[%4d] -> %s", i, strings.Join(parts, " -> "))
		if len(chain) > 1 {
			fmt.Fprintf(s.out, " [%d elements]", len(chain))
		}
		fmt.Fprintln(s.out)
	}
}

func (s *session) cmdStats() {
	if !s.requireTable() {
		return
	}
	stats := s.table.Stats()

	if flagJSON {
		printJSON(s.out, stats)
		return
	}
	fmt.Fprintf(s.out, "size:             %d\n", stats.Size)
	fmt.Fprintf(s.out, "elements:         %d\n", stats.Elements)
	fmt.Fprintf(s.out, "load factor:      %.2f%%\n", stats.LoadFactor)
	fmt.Fprintf(s.out, "collisions:       %d\n", stats.Collisions)
	fmt.Fprintf(s.out, "occupied slots:   %d\n", stats.OccupiedSlots)
	fmt.Fprintf(s.out, "max chain length: %d\n", stats.MaxChainLength)
}

func (s *session) cmdSeed(args []string) {
	if !s.requireTable() {
		return
	}
	n := defaultSeedCount
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "invalid count %q\n", args[0])
			return
		}
		n = v
	}

	inserted := 0
	for _, p := range datagen.Products(s.rng, n) {
		if s.table.Insert(p) {
			inserted++
		}
	}
	fmt.Fprintf(s.out, "seeded %d of %d sample products\n", inserted, n)
}

func (s *session) cmdResetCollisions() {
	if !s.requireTable() {
		return
	}
	s.table.ResetCollisions()
	fmt.Fprintln(s.out, "collision counter reset")
}
