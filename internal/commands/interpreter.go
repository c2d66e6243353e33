// Package commands runs the lines typed after ":" on the timer screen.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/kballard/go-shellquote"

	"github.com/jask/cubetimer/internal/database/repository"
	"github.com/jask/cubetimer/internal/graphics"
	"github.com/jask/cubetimer/internal/prefs"
	"github.com/jask/cubetimer/internal/stats"
)

var (
	ErrEmptyCommand  = errors.New("empty command")
	ErrUnclosedQuote = errors.New("unclosed quote")
	ErrAliasLoop     = errors.New("alias expands too deeply")
)

// maxAliasDepth bounds alias expansion so self-referencing aliases stop.
const maxAliasDepth = 8

// Session is what the commands act on.
type Session interface {
	Current() repository.Session
	Open(ctx context.Context, name string) error
	SolveList() []repository.Solve
	Solve(n int) (repository.Solve, error)
	Results() []stats.Result
	AveragesAt(n int) (ao5, ao12 string)
	Summary() stats.Summary
	AddSolve(ctx context.Context, centis int64) (repository.Solve, error)
	DNF(ctx context.Context) error
	PlusTwo(ctx context.Context) error
	Delete(ctx context.Context, n int) error
	DeleteAll(ctx context.Context) error
	SetPuzzle(ctx context.Context, puzzle int) error
	SetScrambleLength(ctx context.Context, length int) error
	ExportTSV(w io.Writer) error
}

// Outcome tells the driver what to do after a line has run.
type Outcome struct {
	Status  string
	Failed  bool
	Page    string
	Confirm *Confirm
	Quit    bool
}

// Confirm is a pending y/n question.
type Confirm struct {
	Prompt string
	run    func(ctx context.Context) Outcome
}

// Answer resolves the question; "no" cancels.
func (c *Confirm) Answer(ctx context.Context, yes bool) Outcome {
	if !yes {
		return Outcome{Status: "cancelled"}
	}
	return c.run(ctx)
}

// Interpreter parses and runs command lines.
type Interpreter struct {
	Session Session
	Aliases map[string]string
	// AliasFile, when set, receives aliases defined at runtime.
	AliasFile string
	// Create opens export targets; os.Create when nil.
	Create func(path string) (io.WriteCloser, error)
}

type handler func(in *Interpreter, ctx context.Context, args []string) Outcome

var builtins map[string]handler

func init() {
	builtins = map[string]handler{
		"alias":  (*Interpreter).alias,
		"s":      (*Interpreter).set,
		"i":      (*Interpreter).info,
		"c":      (*Interpreter).change,
		"rm":     (*Interpreter).remove,
		"d":      (*Interpreter).dnf,
		"p":      (*Interpreter).plusTwo,
		"a":      (*Interpreter).add,
		"export": (*Interpreter).export,
		"q":      (*Interpreter).quit,
	}
}

// New returns an interpreter with a copy of aliases.
func New(s Session, aliases map[string]string) *Interpreter {
	in := &Interpreter{Session: s, Aliases: map[string]string{}}
	for k, v := range aliases {
		in.Aliases[k] = v
	}
	return in
}

// Run executes every ";"-separated command on the line. A confirmation or
// quit stops the rest of the line.
func (in *Interpreter) Run(ctx context.Context, line string) Outcome {
	return in.run(ctx, line, 0)
}

func (in *Interpreter) run(ctx context.Context, line string, depth int) Outcome {
	if depth > maxAliasDepth {
		return failure(ErrAliasLoop)
	}
	segments, err := splitCommands(line)
	if err != nil {
		return failure(err)
	}
	var out Outcome
	var statuses []string
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" && len(segments) > 1 {
			continue
		}
		res := in.runOne(ctx, seg, depth)
		if res.Status != "" {
			statuses = append(statuses, res.Status)
		}
		out.Failed = out.Failed || res.Failed
		if res.Page != "" {
			out.Page = res.Page
		}
		if res.Confirm != nil || res.Quit {
			out.Confirm, out.Quit = res.Confirm, res.Quit
			break
		}
	}
	out.Status = strings.Join(statuses, "; ")
	return out
}

func (in *Interpreter) runOne(ctx context.Context, segment string, depth int) Outcome {
	args, err := shellquote.Split(segment)
	if err != nil {
		return failure(fmt.Errorf("%w: %s", ErrUnclosedQuote, strings.TrimSpace(segment)))
	}
	if len(args) == 0 {
		return failure(ErrEmptyCommand)
	}
	name := args[0]
	if h, ok := builtins[name]; ok {
		return h(in, ctx, args[1:])
	}
	if expansion, ok := in.Aliases[name]; ok {
		return in.run(ctx, expansion+" "+shellquote.Join(args[1:]...), depth+1)
	}
	msg := name + ": invalid command"
	if hint := in.suggest(name); hint != "" {
		msg += " (did you mean " + hint + "?)"
	}
	return Outcome{Status: msg, Failed: true}
}

// RunStartup runs lines without surfacing their output and returns the
// statuses of the ones that failed.
func (in *Interpreter) RunStartup(ctx context.Context, lines []string) []string {
	var failed []string
	for _, line := range lines {
		if out := in.Run(ctx, line); out.Failed {
			failed = append(failed, out.Status)
		}
	}
	return failed
}

// Names lists built-in commands and aliases, sorted.
func (in *Interpreter) Names() []string {
	names := make([]string, 0, len(builtins)+len(in.Aliases))
	for n := range builtins {
		names = append(names, n)
	}
	for n := range in.Aliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (in *Interpreter) suggest(name string) string {
	best, bestDist := "", 3
	for _, n := range in.Names() {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// splitCommands cuts line at semicolons outside quotes.
func splitCommands(line string) ([]string, error) {
	var out []string
	var cur strings.Builder
	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ';':
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnclosedQuote, strings.TrimSpace(line))
	}
	return append(out, cur.String()), nil
}

func failure(err error) Outcome {
	return Outcome{Status: err.Error(), Failed: true}
}

func usage(name, text string) Outcome {
	return Outcome{Status: name + ": usage: " + text, Failed: true}
}

func (in *Interpreter) alias(ctx context.Context, args []string) Outcome {
	if len(args) < 2 {
		return usage("alias", "alias NAME EXPANSION")
	}
	name := args[0]
	if _, ok := builtins[name]; ok {
		return Outcome{Status: "alias: " + name + " is a built-in command", Failed: true}
	}
	expansion := args[1]
	if len(args) > 2 {
		expansion = shellquote.Join(args[1:]...)
	}
	if in.AliasFile != "" {
		if err := prefs.AddAlias(in.AliasFile, name, expansion); err != nil {
			return failure(fmt.Errorf("alias: %w", err))
		}
	}
	in.Aliases[name] = expansion
	return Outcome{Status: "alias " + name + " = " + expansion}
}

func (in *Interpreter) set(ctx context.Context, args []string) Outcome {
	if len(args) != 2 {
		return usage("s", "s p N | s sl N")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return Outcome{Status: "s: " + args[1] + " is not a number", Failed: true}
	}
	switch args[0] {
	case "p":
		if err := in.Session.SetPuzzle(ctx, n); err != nil {
			return failure(fmt.Errorf("s p: %w", err))
		}
		return Outcome{Status: fmt.Sprintf("puzzle set to %dx%d", n, n)}
	case "sl":
		if err := in.Session.SetScrambleLength(ctx, n); err != nil {
			return failure(fmt.Errorf("s sl: %w", err))
		}
		return Outcome{Status: fmt.Sprintf("scramble length set to %d", n)}
	default:
		return usage("s", "s p N | s sl N")
	}
}

func (in *Interpreter) info(ctx context.Context, args []string) Outcome {
	switch len(args) {
	case 0:
		return Outcome{Page: in.overviewPage()}
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return usage("i", "i [N]")
		}
		sv, err := in.Session.Solve(n)
		if err != nil {
			return failure(fmt.Errorf("i: %w", err))
		}
		ao5, ao12 := in.Session.AveragesAt(n)
		result := stats.Result{Centis: sv.Centis, Penalty: stats.Penalty(sv.Penalty)}
		return Outcome{Page: fmt.Sprintf(graphics.SolvePage, n, result, ao5, ao12, sv.Scramble)}
	default:
		return usage("i", "i [N]")
	}
}

func (in *Interpreter) overviewPage() string {
	cur := in.Session.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "SESSION %s\n\n", cur.Name)
	fmt.Fprintf(&b, "Puzzle: %dx%d\n", cur.Puzzle, cur.Puzzle)
	fmt.Fprintf(&b, "Scramble length: %d\n\n", cur.ScrambleLength)
	for _, line := range in.Session.Summary().Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	results := in.Session.Results()
	if len(results) > 0 {
		b.WriteString("\nTimes:")
		for i, r := range results {
			if i%6 == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%d. %s", i+1, r)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n\npress any key to exit")
	return b.String()
}

func (in *Interpreter) change(ctx context.Context, args []string) Outcome {
	if len(args) != 1 {
		return usage("c", "c NAME")
	}
	name := args[0]
	if !ValidSessionName(name) {
		return Outcome{Status: "c: session names must be printable", Failed: true}
	}
	if err := in.Session.Open(ctx, name); err != nil {
		return failure(fmt.Errorf("c: %w", err))
	}
	return Outcome{Status: "session " + name}
}

// ValidSessionName reports whether name is non-empty and printable.
func ValidSessionName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func (in *Interpreter) remove(ctx context.Context, args []string) Outcome {
	if len(args) != 1 {
		return usage("rm", "rm N | rm all")
	}
	if args[0] == "all" {
		count := len(in.Session.SolveList())
		return Outcome{Confirm: &Confirm{
			Prompt: fmt.Sprintf("delete all %d solves? (y/n)", count),
			run: func(ctx context.Context) Outcome {
				if err := in.Session.DeleteAll(ctx); err != nil {
					return failure(fmt.Errorf("rm: %w", err))
				}
				return Outcome{Status: fmt.Sprintf("deleted %d solves", count)}
			},
		}}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("rm", "rm N | rm all")
	}
	if err := in.Session.Delete(ctx, n); err != nil {
		return failure(fmt.Errorf("rm: %w", err))
	}
	return Outcome{Status: fmt.Sprintf("deleted solve %d", n)}
}

func (in *Interpreter) dnf(ctx context.Context, args []string) Outcome {
	if err := in.Session.DNF(ctx); err != nil {
		return failure(fmt.Errorf("d: %w", err))
	}
	return Outcome{Status: "last solve marked DNF"}
}

func (in *Interpreter) plusTwo(ctx context.Context, args []string) Outcome {
	if err := in.Session.PlusTwo(ctx); err != nil {
		return failure(fmt.Errorf("p: %w", err))
	}
	return Outcome{Status: "last solve +2"}
}

func (in *Interpreter) add(ctx context.Context, args []string) Outcome {
	if len(args) != 1 {
		return usage("a", "a TIME")
	}
	centis, err := stats.ParseSeconds(args[0])
	if err != nil {
		return failure(fmt.Errorf("a: %w", err))
	}
	sv, err := in.Session.AddSolve(ctx, centis)
	if err != nil {
		return failure(fmt.Errorf("a: %w", err))
	}
	return Outcome{Status: fmt.Sprintf("added solve %d: %s", sv.Seq, stats.FormatCentis(centis))}
}

func (in *Interpreter) export(ctx context.Context, args []string) Outcome {
	if len(args) != 1 {
		return usage("export", "export PATH")
	}
	create := in.Create
	if create == nil {
		create = func(path string) (io.WriteCloser, error) { return os.Create(path) }
	}
	f, err := create(args[0])
	if err != nil {
		return failure(fmt.Errorf("export: %w", err))
	}
	err = in.Session.ExportTSV(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return failure(fmt.Errorf("export: %w", err))
	}
	return Outcome{Status: fmt.Sprintf("exported %d solves to %s", len(in.Session.SolveList()), args[0])}
}

func (in *Interpreter) quit(ctx context.Context, args []string) Outcome {
	return Outcome{Quit: true}
}
