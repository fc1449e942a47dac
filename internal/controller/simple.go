package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D9FF"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
)

// SimpleUI implements UI on a cobra command's output.
type SimpleUI struct {
	cmd     *cobra.Command
	format  Format
	verbose bool

	mu sync.Mutex
}

// NewSimpleUI creates a SimpleUI. Source events are printed only when verbose
// is set; diagnostics are always printed.
func NewSimpleUI(cmd *cobra.Command, format Format, verbose bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format, verbose: verbose}
}

// AnnounceLoaded implements adapter.FrontendSink.
func (s *SimpleUI) AnnounceLoaded(ctx context.Context, source m.SourceDescriptor) {
	if ctx.Err() != nil || !s.verbose {
		return
	}

	s.printf("%s %s\n", dimStyle.Render("loaded"), describe(source))
}

// AnnounceRemoved implements adapter.FrontendSink.
func (s *SimpleUI) AnnounceRemoved(ctx context.Context, source m.SourceDescriptor) {
	if ctx.Err() != nil || !s.verbose {
		return
	}

	s.printf("%s %s\n", dimStyle.Render("removed"), describe(source))
}

// Diagnostic implements adapter.FrontendSink.
func (s *SimpleUI) Diagnostic(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s\n", warningStyle.Render(message))
}

// DisplaySources prints the registered sources.
func (s *SimpleUI) DisplaySources(ctx context.Context, sources []m.SourceReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.printYAML(sources)
	}

	s.printf("%s\n%s", headingStyle.Render("Sources"), renderSourcesTable(sources))

	return nil
}

// DisplayLocations prints resolved locations under title.
func (s *SimpleUI) DisplayLocations(ctx context.Context, title string, locations []m.LocationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.printYAML(locations)
	}

	s.printf("%s\n%s", headingStyle.Render(title), renderLocationsTable(locations))

	return nil
}

// DisplayStats prints the source map load counters.
func (s *SimpleUI) DisplayStats(ctx context.Context, stats m.LoadSummary) {
	if ctx.Err() != nil || s.format == FormatYAML {
		return
	}

	s.printf("%s\n", dimStyle.Render(fmt.Sprintf(
		"source maps: %d loaded, %d failed, %d/%d fallbacks succeeded",
		stats.Loaded, stats.Failed, stats.FallbackSucceeded, stats.FallbackAttempts,
	)))
}

func renderSourcesTable(sources []m.SourceReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Ref", "Kind", "Name", "Location", "Map", "Refs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	mapped := 0

	for _, source := range sources {
		refs := ""
		if source.Kind == m.KindMapped {
			mapped++
			refs = strconv.Itoa(source.References)
		}

		table.Append([]string{
			strconv.Itoa(int(source.Source.SourceReference)),
			string(source.Kind),
			source.Source.Name,
			location(source.Source, source.URL),
			string(source.MapStatus),
			refs,
		})
	}

	table.SetFooter([]string{"", "", "", fmt.Sprintf("Total Sources %d", len(sources)), fmt.Sprintf("Mapped %d", mapped), ""})
	table.Render()

	return tableBuffer.String()
}

func renderLocationsTable(locations []m.LocationReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Line", "Column", "Mapped", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, loc := range locations {
		table.Append([]string{
			location(loc.Source, loc.URL),
			strconv.Itoa(loc.Location.Line),
			strconv.Itoa(loc.Location.Column),
			strconv.FormatBool(loc.Mapped),
			loc.Reason,
		})
	}

	table.Render()

	return tableBuffer.String()
}

func location(source m.SourceDescriptor, rawURL string) string {
	if source.Path != "" {
		return string(source.Path)
	}

	return rawURL
}

func describe(source m.SourceDescriptor) string {
	if source.Path != "" {
		return string(source.Path)
	}

	return fmt.Sprintf("%s (ref %d)", source.Name, source.SourceReference)
}

func (s *SimpleUI) printYAML(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := yaml.NewEncoder(s.cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.write(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	s.write(s.cmd.ErrOrStderr(), format, args...)
}

func (s *SimpleUI) write(w io.Writer, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(w, format, args...)
}
