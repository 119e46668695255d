package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srcdskit/mapcycle/internal/steam"
	"github.com/srcdskit/mapcycle/pkg/errors"
	"github.com/srcdskit/mapcycle/pkg/mapcycle"
	"github.com/srcdskit/mapcycle/pkg/reconcile"
)

// syncFlags holds the flags of the sync command.
type syncFlags struct {
	apiKey         string
	collections    []string
	includeTags    []string
	excludeTags    []string
	workshopDir    string
	dryRun         bool
	backup         bool
	longNames      bool
	listDuplicates bool
}

// NewSyncCommand creates the sync command.
func (a *App) NewSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync [mapcycle-file]",
		Short: "Import workshop collections into a mapcycle file",
		Long: `Sync imports the maps of one or more Steam Workshop collections into a
mapcycle file as "workshop/<id>" entries.

The collections are the single source of truth for workshop content: every
workshop entry not present in the imported set is removed, including entries
added by hand. Maps the server operator maintains directly belong in the file
as plain entries, which sync never touches.

A Steam Web API key is required, either via --api-key or the STEAM_API_KEY
environment variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSync(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.apiKey, "api-key", "", "Steam Web API key (falls back to STEAM_API_KEY)")
	cmd.Flags().StringArrayVarP(&flags.collections, "collection", "c", nil, "workshop collection to retrieve maps from (repeatable)")
	cmd.Flags().StringArrayVar(&flags.includeTags, "include-workshop-tag", nil, "allow workshop entries that carry one or more of these tags")
	cmd.Flags().StringArrayVar(&flags.excludeTags, "exclude-workshop-tag", nil, "ignore workshop entries that carry this tag")
	cmd.Flags().StringVar(&flags.workshopDir, "workshop-dir", "", "the game's workshop directory (autodetected from the mapcycle path if not supplied)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "do not write the modified mapcycle back, only display changes")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "save a backup copy of the mapcycle on successful change")
	cmd.Flags().BoolVar(&flags.longNames, "long-workshop-names", false, "use full workshop map names for downloaded maps")
	cmd.Flags().BoolVar(&flags.listDuplicates, "list-duplicates", false, "list maps that share prefixes (possible duplicates)")

	return cmd
}

// runSync performs the import and write-back for one mapcycle file.
func (a *App) runSync(cmd *cobra.Command, path string, flags *syncFlags) error {
	apiKey := flags.apiKey
	if apiKey == "" {
		apiKey = a.config.APIKey
	}
	if apiKey == "" {
		return &errors.ConfigError{
			Component: "sync",
			Message:   "no Steam Web API key provided: set STEAM_API_KEY or pass --api-key",
			Err:       errors.ErrAPIKeyRequired,
		}
	}

	out := cmd.OutOrStdout()
	if flags.dryRun {
		if flags.backup {
			fmt.Fprintln(out, "Ignoring --backup flag as this is a dry run.")
		}
		if a.config.Quiet {
			fmt.Fprintln(out, "Ignoring --quiet flag as this is a dry run.")
		}
	}

	doc, err := mapcycle.Load(path)
	if err != nil {
		return err
	}
	next := doc.Clone()

	if len(flags.collections) > 0 {
		a.logger.Info().
			Strs("collections", flags.collections).
			Msg("Importing workshop collections")

		importer := steam.NewImporter(steam.NewClient(apiKey))
		desired, err := importer.DesiredEntries(cmd.Context(), flags.collections, flags.includeTags, flags.excludeTags)
		if err != nil {
			return err
		}
		next = reconcile.Workshop(next, desired)
	}

	index := a.installedIndex(path, flags.workshopDir)

	if flags.longNames {
		for i, entry := range next {
			next[i] = mapcycle.ResolveShortform(entry, index)
		}
	}

	if flags.listDuplicates {
		report := duplicateReport(next, index)
		if len(report) > 0 {
			if err := a.renderDuplicates(out, report); err != nil {
				return err
			}
		}
	}

	return a.writeBack(cmd, path, doc, next, flags.dryRun, flags.backup)
}

// writeBack persists the transformed document if it differs from the
// original, after an optional backup copy, and reports the change summary.
func (a *App) writeBack(cmd *cobra.Command, path string, before, after mapcycle.Document, dryRun, backup bool) error {
	out := cmd.OutOrStdout()
	name := filepath.Base(path)

	added := mapcycle.Difference(after, before)
	removed := mapcycle.Difference(before, after)

	if len(added)+len(removed) == 0 {
		if !a.config.Quiet {
			fmt.Fprintf(out, "No changed workshop maps. No modification has been made to %s.\n", name)
		}
		return nil
	}

	if dryRun {
		fmt.Fprintf(out, "%s has not been modified due to being a dry run. "+
			"The following changes (+%d, -%d) would have been made:\n", name, len(added), len(removed))
	} else {
		if backup {
			backupPath, err := mapcycle.Backup(path)
			if err != nil {
				return err
			}
			if backupPath != "" {
				fmt.Fprintf(out, "Copied mapcycle %s to backup at %s\n", name, backupPath)
			}
		}
		if err := after.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Made the following changes (+%d, -%d) to %s:\n", len(added), len(removed), name)
	}

	// Memo and comment lines are bookkeeping; only list actual maps.
	addedMaps := mapNames(added)
	removedMaps := mapNames(removed)
	if len(addedMaps) > 0 {
		fmt.Fprintf(out, "+ %v\n", addedMaps)
	}
	if len(removedMaps) > 0 {
		fmt.Fprintf(out, "- %v\n", removedMaps)
	}
	if len(addedMaps)+len(removedMaps) == 0 {
		fmt.Fprintln(out, "+/- []")
	}
	return nil
}

// mapNames filters comment and blank lines out of a change list.
func mapNames(doc mapcycle.Document) []string {
	out := make([]string, 0, len(doc))
	for _, entry := range doc {
		if !mapcycle.IsComment(entry) {
			out = append(out, entry)
		}
	}
	return out
}
