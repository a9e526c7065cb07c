package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/blobposter/pkg/config"
	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/pipeline"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// defaultOutput is the base path used when --output is not given.
const defaultOutput = "poster"

// watchDebounce coalesces bursts of file events (editors often write twice).
const watchDebounce = 200 * time.Millisecond

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string
	formats string
	scale   float64
	points  bool
	noCache bool
	watch   bool
	poster  posterFlags
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a poster to PNG, SVG, PDF or JSON",
		Long: `Render a poster of translucent blobs.

Settings come from the config file, overridden by any flags given here.
The same seed and settings always produce the same poster.`,
		Example: `  blobposter generate
  blobposter generate --seed 7 --layers 12 -f png,svg -o art/poster
  blobposter generate --mode single --color sky
  blobposter generate --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormats(parseFormats(opts.formats)); err != nil {
				return err
			}
			if opts.watch {
				return c.runWatch(cmd.Context(), cmd.Flags(), &opts)
			}
			_, err := c.runGenerate(cmd.Context(), cmd.Flags(), &opts, true)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format) or base path (default "poster")`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "size multiplier for png, svg and pdf output")
	cmd.Flags().BoolVar(&opts.points, "points", false, "include blob outlines in json output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the palette or config file changes")
	opts.poster.register(cmd.Flags())

	return cmd
}

// resolvePoster merges the config file and flags into a poster config and
// opens the palette store.
func (c *CLI) resolvePoster(fs *pflag.FlagSet, pf *posterFlags) (*config.Config, poster.Config, *palette.Store, error) {
	file, err := c.loadConfig()
	if err != nil {
		return nil, poster.Config{}, nil, err
	}
	cfg, err := file.PosterConfig()
	if err != nil {
		return nil, poster.Config{}, nil, err
	}
	if err := pf.apply(fs, &cfg); err != nil {
		return nil, poster.Config{}, nil, err
	}
	store, err := c.openStore(file)
	if err != nil {
		return nil, poster.Config{}, nil, err
	}
	return file, cfg, store, nil
}

// runGenerate renders once and writes the outputs. It returns the files that
// were read, for watch mode.
func (c *CLI) runGenerate(ctx context.Context, fs *pflag.FlagSet, opts *generateOpts, spin bool) ([]string, error) {
	logger := loggerFromContext(ctx)

	file, cfg, store, err := c.resolvePoster(fs, &opts.poster)
	if err != nil {
		return nil, err
	}
	inputs := []string{store.Path()}
	if file.Path() != "" {
		inputs = append(inputs, file.Path())
	}

	var entries []palette.Entry
	if cfg.Mode.UsesStore() {
		if entries, err = store.Read(); err != nil {
			return inputs, err
		}
		logger.Debug("read palette", "entries", len(entries), "path", store.Path())
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return inputs, err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Config:  cfg,
		Formats: parseFormats(opts.formats),
		Scale:   opts.scale,
		Points:  opts.points,
		Logger:  logger,
	}

	var sp *Spinner
	if spin && logger.GetLevel() > log.DebugLevel {
		sp = newSpinnerWithContext(ctx, "Rendering poster...")
		sp.Start()
	}
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts, entries)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return inputs, err
	}

	paths, err := writeArtifacts(opts.output, popts.Formats, result.Artifacts)
	if err != nil {
		return inputs, err
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))

	printSuccess("Poster generated")
	printStats(result.Stats.Layers, result.Stats.Colors, result.Poster.Config.Seed, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return inputs, nil
}

// runWatch renders, then re-renders whenever one of the input files changes
// until ctx is cancelled. Render errors are reported and watching continues.
func (c *CLI) runWatch(ctx context.Context, fs *pflag.FlagSet, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	inputs, err := c.runGenerate(ctx, fs, opts, false)
	if err != nil {
		if len(inputs) == 0 {
			return err
		}
		printError("%v", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]bool, len(inputs))
	dirs := make(map[string]bool)
	for _, p := range inputs {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Watch parent dirs: editors often replace the file on save.
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	printInfo("Watching %s", strings.Join(inputs, ", "))
	printDetail("Press Ctrl+C to stop")

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			printInfo("Stopped watching")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(ev.Name)
			if !watched[abs] || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", "file", ev.Name, "op", ev.Op.String())
			fire = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			if _, err := c.runGenerate(ctx, fs, opts, false); err != nil {
				printError("%v", err)
			}
		}
	}
}

// basePath derives the base output path. Known format extensions are
// stripped so "-o art.png -f png,svg" writes art.png and art.svg.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where one format is written. A single format honours an
// explicit file name as given.
func outputPath(output, format string, single bool) string {
	if single && output != "" && strings.EqualFold(filepath.Ext(output), "."+format) {
		return output
	}
	return basePath(output) + "." + format
}

// writeArtifacts writes every rendered format in request order and returns
// the paths written.
func writeArtifacts(output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			continue
		}
		path := outputPath(output, f, len(formats) == 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return paths, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
