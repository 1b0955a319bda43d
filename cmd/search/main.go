package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"adminsearch-be/internal/repository/memory"
	"adminsearch-be/pkg/search"

	"github.com/fatih/color"
)

// Runs the dashboard search against the sample records without a server.
//
//	go run ./cmd/search -q rahul
//	go run ./cmd/search -q flagged -select content:content-2
//	go run ./cmd/search            (one query per line, ":N" selects result N)
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run returns the exit code so deferred cleanup happens before main exits.
func run(args []string, in io.Reader, out io.Writer) int {
	flags := flag.NewFlagSet("search", flag.ContinueOnError)
	flags.SetOutput(out)
	query := flags.String("q", "", "query to run once; reads queries from stdin when empty")
	limit := flags.Int("limit", search.DefaultLimit, "maximum number of results")
	selectRef := flags.String("select", "", "result to select after the query, as type:id")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	engine := search.NewEngine(memory.NewSampleRecordSource(),
		search.WithLimit(*limit),
		search.WithLatency(0),
		search.WithNavigator(search.NavigatorFunc(func(path string) {
			fmt.Fprintln(out, color.MagentaString("→ navigate to %s", path))
		})),
		search.WithResultHandler(func(r search.Result) {
			fmt.Fprintln(out, color.MagentaString("→ open %s %s in place", r.Type(), r.ID()))
		}),
	)
	defer engine.CancelPending()

	if *query != "" {
		engine.Search(*query)
		printResults(out, engine)
		if *selectRef != "" {
			if err := selectByRef(engine, *selectRef); err != nil {
				fmt.Fprintln(out, color.RedString("Failed: %v", err))
				return 1
			}
		}
		return 0
	}

	fmt.Fprintln(out, color.CyanString("Admin search (sample data). Empty line clears, :N selects, Ctrl-D quits."))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0
		}
		line := scanner.Text()

		switch {
		case line == "":
			engine.Clear()
			fmt.Fprintln(out, color.YellowString("cleared"))
		case strings.HasPrefix(line, ":"):
			var n int
			if _, err := fmt.Sscanf(line, ":%d", &n); err != nil {
				fmt.Fprintln(out, color.RedString("expected :N"))
				continue
			}
			results := engine.Results()
			if n < 1 || n > len(results) {
				fmt.Fprintln(out, color.RedString("no result %d", n))
				continue
			}
			engine.SelectResult(results[n-1])
		default:
			engine.Search(line)
			printResults(out, engine)
		}
	}
}

func printResults(out io.Writer, engine *search.Engine) {
	results := engine.Results()
	if len(results) == 0 {
		fmt.Fprintln(out, color.YellowString("No results for %q", engine.Query()))
		return
	}

	fmt.Fprintln(out, color.GreenString("%d result(s) for %q", len(results), engine.Query()))
	for i, r := range results {
		fmt.Fprintf(out, "%2d. %s %s\n    %s\n",
			i+1,
			typeLabel(r.Type()),
			color.New(color.Bold).Sprint(r.Title()),
			r.Description(),
		)
	}
}

func typeLabel(t search.ResultType) string {
	label := fmt.Sprintf("[%s]", t)
	switch t {
	case search.ResultTypeUser:
		return color.BlueString(label)
	case search.ResultTypeTransaction:
		return color.GreenString(label)
	case search.ResultTypeWithdrawal:
		return color.YellowString(label)
	default:
		return color.CyanString(label)
	}
}

func selectByRef(engine *search.Engine, ref string) error {
	typ, id, ok := strings.Cut(ref, ":")
	if !ok {
		return fmt.Errorf("select must look like type:id, got %q", ref)
	}
	for _, r := range engine.Results() {
		if string(r.Type()) == typ && r.ID() == id {
			engine.SelectResult(r)
			return nil
		}
	}
	return fmt.Errorf("%s %s is not among the results", typ, id)
}
