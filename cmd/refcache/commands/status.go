package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/refcache/internal/ui/output"
	"go.trai.ch/refcache/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of every cache file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(options(cmd))
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func renderStatus(w io.Writer, report *domain.CacheReport) {
	out := output.New(w)

	if report.Dir == "" {
		_, _ = fmt.Fprintln(w, output.Paint(out, style.Circle+" caching is disabled", style.Muted))
		return
	}

	stored := string(report.Stored)
	if stored == "" {
		stored = "none"
	}
	_, _ = fmt.Fprintf(w, "cache dir    %s\n", report.Dir)
	_, _ = fmt.Fprintf(w, "fingerprint  %s\n", report.Current)
	if report.FingerprintChanged {
		_, _ = fmt.Fprintf(w, "stored       %s %s\n", stored, output.Paint(out, "(changed)", style.Caution))
	} else {
		_, _ = fmt.Fprintf(w, "stored       %s\n", stored)
	}
	_, _ = fmt.Fprintln(w)

	for _, entry := range report.Entries {
		icon, color, detail := entryStyle(entry)
		_, _ = fmt.Fprintf(w, "%s %s%s\n",
			output.Paint(out, icon, color),
			style.CacheName.Render(entry.Kind.String()),
			output.Paint(out, detail, color),
		)
	}
}

func entryStyle(entry domain.CacheEntryStatus) (string, lipgloss.Color, string) {
	switch {
	case entry.Usable:
		return style.Check, style.Success, fmt.Sprintf("%d B", entry.Size)
	case entry.Reason == "corrupted":
		return style.Cross, style.Failure, entry.Reason
	case !entry.Present:
		return style.Circle, style.Muted, entry.Reason
	default:
		return style.Warning, style.Caution, entry.Reason
	}
}
