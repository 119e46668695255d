package app

import (
	"github.com/spf13/cobra"

	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

// NewResolveCommand creates the resolve command.
func (a *App) NewResolveCommand() *cobra.Command {
	var (
		workshopDir string
		dryRun      bool
		backup      bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [mapcycle-file]",
		Short: "Rewrite shorthand workshop entries to their full map names",
		Long: `Resolve rewrites shorthand workshop entries like "workshop/454796385" into
the annotated form "workshop/koth_octothorpe_classic_beta01.ugc454796385".

The map must have been downloaded into the game's workshop directory for its
name to be known; entries without installed content are left as they are.
The game only reads the numeric identifier, so this is cosmetic either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args[0], workshopDir, dryRun, backup)
		},
	}

	cmd.Flags().StringVar(&workshopDir, "workshop-dir", "", "the game's workshop directory (autodetected from the mapcycle path if not supplied)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "do not write the modified mapcycle back, only display changes")
	cmd.Flags().BoolVar(&backup, "backup", false, "save a backup copy of the mapcycle on successful change")

	return cmd
}

// runResolve rewrites short-form entries in place and writes the file back.
func (a *App) runResolve(cmd *cobra.Command, path, workshopDir string, dryRun, backup bool) error {
	doc, err := mapcycle.Load(path)
	if err != nil {
		return err
	}

	index := a.installedIndex(path, workshopDir)

	next := doc.Clone()
	for i, entry := range next {
		next[i] = mapcycle.ResolveShortform(entry, index)
	}

	return a.writeBack(cmd, path, doc, next, dryRun, backup)
}
