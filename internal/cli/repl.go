package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/loginwidget/internal/loginwidget"
)

// executor is the command surface the loop needs; App satisfies it and
// tests can provide a stub.
type executor interface {
	Exec(ctx context.Context, args []string) (loginwidget.Authorization, error)
	Help()
}

// runREPL reads one command per line from scanner and dispatches it to e,
// printing the prompt and any command error to out. Empty lines are skipped.
// The loop ends on EOF, on "exit" or "quit", or when ctx is cancelled.
func runREPL(ctx context.Context, e executor, scanner *bufio.Scanner, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(out, "wc> ")
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			return
		case "help":
			e.Help()
		default:
			if _, err := e.Exec(ctx, parts); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		}
	}
}
