package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/core/ports"
	"github.com/ceasedesk/console/internal/core/usecase"
)

// Deps are the use cases the console drives.
type Deps struct {
	Upload   *usecase.UploadFlow
	Bulk     *usecase.BulkUploadFlow
	Chat     *usecase.ChatFlow
	Board    *usecase.ReviewBoard
	Exporter ports.TableExporter
}

// Console is the interactive surface: it reads one command per line,
// dispatches into the flows and renders their state. All state lives in the
// use cases; the console holds none of its own.
type Console struct {
	deps Deps
	in   io.Reader
	out  io.Writer
}

func New(deps Deps, in io.Reader, out io.Writer) *Console {
	return &Console{deps: deps, in: in, out: out}
}

func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "ceasedesk: cease & desist classification console")
	fmt.Fprintln(c.out, `type "help" for commands`)

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		c.dispatch(ctx, line)
	}
}

func (c *Console) dispatch(ctx context.Context, line string) {
	args := strings.Fields(line)
	command := args[0]
	rest := args[1:]

	switch command {
	case "help":
		c.printHelp()
	case "select":
		c.cmdSelect(rest)
	case "upload":
		c.cmdUpload(ctx)
	case "files":
		c.cmdFiles(rest)
	case "bulk":
		c.cmdBulk(ctx)
	case "chat":
		c.cmdChat(ctx, strings.TrimSpace(strings.TrimPrefix(line, "chat")))
	case "transcript":
		renderMessages(c.out, c.deps.Chat.Messages())
	case "review":
		c.cmdReview(ctx)
	case "metrics":
		renderMetrics(c.out, c.deps.Board.Metrics())
	case "show":
		c.cmdShow(rest)
	case "filter":
		c.cmdFilter(rest)
	case "clear":
		c.cmdClear(rest)
	case "options":
		c.cmdOptions(rest)
	case "export":
		c.cmdExport(rest)
	default:
		fmt.Fprintf(c.out, "unknown command %q\n", command)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `commands:
  select <path>                    stage one document for classification
  upload                           classify the staged document
  files <path> [path...]           stage documents for bulk classification
  bulk                             classify all staged documents in one batch
  chat <message>                   talk to the assistant
  transcript                       show the conversation so far
  review                           fetch metrics and the four review tables
  metrics                          show the headline metrics
  show <table>                     render a table through its filters
  filter <table> <column> <v1,v2>  keep only the listed values visible
  clear <table>                    lift every filter on a table
  options <table> <column>         list the selectable values for a column
  export <table> <path.xlsx>       write the filtered table to a workbook
  quit                             leave
tables: audit_logs, approved_documents, classification_logs, further_evaluation
`)
}

func (c *Console) cmdSelect(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: select <path>")
		return
	}
	file, err := readPayload(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	c.deps.Upload.SelectFile(file)
	fmt.Fprintf(c.out, "selected %s (%d bytes)\n", file.Name, len(file.Content))
}

func (c *Console) cmdUpload(ctx context.Context) {
	record, err := c.deps.Upload.Submit(ctx)
	if err != nil {
		c.printFlowError(err, c.deps.Upload.ErrorMessage())
		return
	}
	renderRecord(c.out, *record)
}

func (c *Console) cmdFiles(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "usage: files <path> [path...]")
		return
	}
	files := make([]domain.FilePayload, 0, len(args))
	for _, path := range args {
		file, err := readPayload(path)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return
		}
		files = append(files, file)
	}
	c.deps.Bulk.SelectFiles(files)
	fmt.Fprintf(c.out, "selected %d files\n", len(files))
}

func (c *Console) cmdBulk(ctx context.Context) {
	entries, err := c.deps.Bulk.Submit(ctx)
	if err != nil {
		c.printFlowError(err, c.deps.Bulk.ErrorMessage())
		return
	}
	renderBulk(c.out, entries)
}

func (c *Console) cmdChat(ctx context.Context, text string) {
	if text == "" {
		fmt.Fprintln(c.out, "usage: chat <message>")
		return
	}
	reply, err := c.deps.Chat.Send(ctx, text)
	if err != nil {
		c.printFlowError(err, c.deps.Chat.ErrorMessage())
		return
	}
	fmt.Fprintf(c.out, "assistant: %s\n", reply)
}

func (c *Console) cmdReview(ctx context.Context) {
	if err := c.deps.Board.Load(ctx); err != nil {
		c.printFlowError(err, c.deps.Board.ErrorMessage())
		return
	}
	renderMetrics(c.out, c.deps.Board.Metrics())
	for _, key := range domain.TableKeys() {
		fmt.Fprintf(c.out, "  %s: %d rows\n", key, len(c.deps.Board.Rows(key)))
	}
}

func (c *Console) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: show <table>")
		return
	}
	table, err := parseTable(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	renderTable(c.out, c.deps.Board.Columns(table), c.deps.Board.Visible(table))
}

func (c *Console) cmdFilter(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.out, "usage: filter <table> <column> <v1,v2,...>")
		return
	}
	table, err := parseTable(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	values := splitValues(args[2])
	c.deps.Board.SetFilter(table, args[1], values)
	fmt.Fprintf(c.out, "%s: %s in %v, %d rows visible\n",
		table, args[1], values, len(c.deps.Board.Visible(table)))
}

func (c *Console) cmdClear(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: clear <table>")
		return
	}
	table, err := parseTable(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	c.deps.Board.ClearFilters(table)
	fmt.Fprintf(c.out, "%s: filters cleared, %d rows visible\n", table, len(c.deps.Board.Visible(table)))
}

func (c *Console) cmdOptions(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: options <table> <column>")
		return
	}
	table, err := parseTable(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	options := c.deps.Board.FilterOptions(table, args[1])
	if len(options) == 0 {
		fmt.Fprintf(c.out, "no values for %s.%s\n", table, args[1])
		return
	}
	fmt.Fprintln(c.out, strings.Join(options, ", "))
}

func (c *Console) cmdExport(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: export <table> <path.xlsx>")
		return
	}
	table, err := parseTable(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	rows := c.deps.Board.Visible(table)
	if err := c.deps.Exporter.Export(args[1], string(table), c.deps.Board.Columns(table), rows); err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "wrote %d rows to %s\n", len(rows), args[1])
}

// printFlowError prefers the flow's user-facing banner over the raw error.
func (c *Console) printFlowError(err error, banner string) {
	if banner != "" {
		fmt.Fprintf(c.out, "error: %s\n", banner)
		return
	}
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func readPayload(path string) (domain.FilePayload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.FilePayload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.FilePayload{Name: baseName(path), Content: content}, nil
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

func parseTable(name string) (domain.TableKey, error) {
	for _, key := range domain.TableKeys() {
		if string(key) == name {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown table %q", name)
}

// splitValues parses a comma-separated selection, dropping empty items.
func splitValues(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
