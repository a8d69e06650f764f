package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bitpack/bitfield"
	"github.com/wippyai/bitpack/schema"
)

func main() {
	var (
		schemaFile  = flag.String("schema", "", "Path to schema file")
		recordName  = flag.String("record", "", "Show a single record (optional)")
		list        = flag.Bool("list", false, "List record names and sizes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose compiler logging")
	)
	flag.Parse()

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -schema <file.bfs> [-record name]")
		fmt.Fprintln(os.Stderr, "       inspect -schema <file.bfs> -list")
		fmt.Fprintln(os.Stderr, "       inspect -schema <file.bfs> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bitfield.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*schemaFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*schemaFile, *recordName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaFile, recordName string, listOnly bool) error {
	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	records, err := schema.Compile(string(data))
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	st := newStyles(term.IsTerminal(int(os.Stdout.Fd())))

	fmt.Printf("Schema: %s (%s)\n", schemaFile, humanize.Bytes(uint64(len(data))))
	fmt.Printf("Records: %d\n\n", len(records))

	if listOnly {
		for _, rec := range records {
			fmt.Printf("  %s  %d bytes (%d bits)\n",
				st.record.Render(rec.Name()), rec.ByteSize(), rec.TotalBits())
		}
		return nil
	}

	shown := 0
	for _, rec := range records {
		if recordName != "" && rec.Name() != recordName {
			continue
		}
		fmt.Println(renderRecord(rec, st))
		shown++
	}

	if recordName != "" && shown == 0 {
		return fmt.Errorf("record %q not found in schema", recordName)
	}
	return nil
}

type styles struct {
	title  lipgloss.Style
	record lipgloss.Style
	field  lipgloss.Style
	typ    lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(tty bool) styles {
	if !tty {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		record: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98FB98")),
		field:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		typ:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func renderRecord(rec *bitfield.CompiledRecord, st styles) string {
	var b strings.Builder

	b.WriteString(st.title.Render(rec.Name()))
	b.WriteString(st.dim.Render(fmt.Sprintf("  %d bytes / %d bits", rec.ByteSize(), rec.TotalBits())))
	b.WriteString("\n")

	b.WriteString(st.dim.Render(fmt.Sprintf("  %-12s %-16s %-8s %-6s %s", "field", "type", "carrier", "bits", "range")))
	b.WriteString("\n")

	for _, f := range rec.Fields() {
		rangeStr := fmt.Sprintf("[%d, %d)", f.Offset, f.Offset+f.Bits)
		b.WriteString(fmt.Sprintf("  %s %s %-8s %-6d %s\n",
			st.field.Render(fmt.Sprintf("%-12s", f.Name)),
			st.typ.Render(fmt.Sprintf("%-16s", f.Spec.String())),
			f.Spec.Carrier(),
			f.Bits,
			rangeStr,
		))
	}

	return b.String()
}
