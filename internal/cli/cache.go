package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchboard/pkg/cache"
)

// cacheCommand manages the on-disk artifact cache used by render.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the cache location and size",
			RunE: withFileCache(func(cmd *cobra.Command, dir string, fc *cache.FileCache) error {
				n, size, err := fc.Stats()
				if err != nil {
					return err
				}
				printKeyValue("Directory", dir)
				printKeyValue("Entries", n)
				printKeyValue("Size", formatBytes(size))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Remove expired and unreadable artifacts",
			RunE: withFileCache(func(cmd *cobra.Command, dir string, fc *cache.FileCache) error {
				n, err := fc.Prune()
				if err != nil {
					return err
				}
				printSuccess("Pruned %d cached %s", n, pluralize(n, "artifact"))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached artifacts",
			RunE: withFileCache(func(cmd *cobra.Command, dir string, fc *cache.FileCache) error {
				if err := fc.Clear(); err != nil {
					return err
				}
				printSuccess("Cleared cached artifacts")
				printDetail("Directory: %s", dir)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory path",
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

// withFileCache opens the cache directory for fn. A missing directory means
// an empty cache and fn is not called.
func withFileCache(fn func(cmd *cobra.Command, dir string, fc *cache.FileCache) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dir, err := cacheDir()
		if err != nil {
			return fmt.Errorf("get cache dir: %w", err)
		}
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			printInfo("Cache is empty")
			return nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return err
		}
		defer fc.Close()
		return fn(cmd, dir, fc)
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGT"[exp])
}
