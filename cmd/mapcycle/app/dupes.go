package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/srcdskit/mapcycle/internal/cmd/output"
	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

// DuplicateGroup is one shared prefix with the level names carrying it.
type DuplicateGroup struct {
	Prefix string   `json:"prefix"`
	Maps   []string `json:"maps"`
}

// NewDupesCommand creates the dupes command.
func (a *App) NewDupesCommand() *cobra.Command {
	var workshopDir string

	cmd := &cobra.Command{
		Use:   "dupes [mapcycle-file]",
		Short: "List maps that look like duplicate versions of the same content",
		Long: `Dupes reports level names sharing a common underscore-delimited prefix,
which usually means different versions of the same map ended up in the
rotation together (for example ctf_2fort next to ctf_2fort_snowy).

Workshop entries whose content has been downloaded are cross-referenced
against the plain names too, catching a map kept in the rotation after its
workshop version was added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDupes(cmd, args[0], workshopDir)
		},
	}

	cmd.Flags().StringVar(&workshopDir, "workshop-dir", "", "the game's workshop directory (autodetected from the mapcycle path if not supplied)")

	return cmd
}

// runDupes loads the rotation and renders the duplicate report.
func (a *App) runDupes(cmd *cobra.Command, path, workshopDir string) error {
	doc, err := mapcycle.Load(path)
	if err != nil {
		return err
	}

	index := a.installedIndex(path, workshopDir)
	report := duplicateReport(doc, index)

	if len(report) == 0 {
		if !a.config.Quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No shared map prefixes found.")
		}
		return nil
	}
	return a.renderDuplicates(cmd.OutOrStdout(), report)
}

// duplicateReport combines intra-document shared prefixes with the
// workshop-to-local cross-reference, ordered by prefix for stable output.
func duplicateReport(doc mapcycle.Document, index mapcycle.Index) []DuplicateGroup {
	groups := mapcycle.SharedPrefixGroups(doc)
	for entry, names := range mapcycle.PossibleWorkshopDuplicates(doc, index) {
		groups[entry] = names
	}

	prefixes := make([]string, 0, len(groups))
	for prefix := range groups {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	report := make([]DuplicateGroup, 0, len(groups))
	for _, prefix := range prefixes {
		report = append(report, DuplicateGroup{Prefix: prefix, Maps: groups[prefix]})
	}
	return report
}

// renderDuplicates writes the duplicate report in the configured output
// format.
func (a *App) renderDuplicates(w io.Writer, report []DuplicateGroup) error {
	format := output.DetectFormat(a.config.Output)
	return output.NewFormatter(format).Format(w, report)
}
