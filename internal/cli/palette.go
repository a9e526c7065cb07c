package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/palette"
)

// paletteCommand creates the palette management command.
func (c *CLI) paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"colors"},
		Short:   "Manage the palette file blobs are colored from",
		Long: `Manage the palette file blobs are colored from.

The palette is a CSV file with a name,r,g,b header and one color per row,
channels as floats in [0,1]. It is created with three starter colors the
first time it is read.`,
	}

	cmd.AddCommand(c.paletteListCommand())
	cmd.AddCommand(c.paletteAddCommand())
	cmd.AddCommand(c.paletteUpdateCommand())
	cmd.AddCommand(c.paletteDeleteCommand())
	cmd.AddCommand(c.paletteShowCommand())
	cmd.AddCommand(c.palettePathCommand())

	return cmd
}

// store loads the config and opens the palette store.
func (c *CLI) store() (*palette.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return c.openStore(cfg)
}

func (c *CLI) paletteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all palette entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.store()
			if err != nil {
				return err
			}
			entries, err := s.Read()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("Palette is empty")
				printNextStep("Add a color", "blobposter palette add coral --hex #ff7f50")
				return nil
			}
			fmt.Println(paletteTable(entries))
			printDetail("%d entries in %s", len(entries), s.Path())
			return nil
		},
	}
}

// paletteTable renders entries with their channels, hex code and a swatch.
func paletteTable(entries []palette.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Name,
			formatChannel(e.R),
			formatChannel(e.G),
			formatChannel(e.B),
			e.Hex(),
			swatch(e, 6),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Name", "R", "G", "B", "Hex", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0 || col == 5:
				return base.Foreground(colorDim)
			case col == 1:
				return base.Foreground(colorWhite)
			case col >= 2 && col <= 4:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return base
		}).
		Render()
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func (c *CLI) paletteAddCommand() *cobra.Command {
	var hex string

	cmd := &cobra.Command{
		Use:   "add NAME [R G B]",
		Short: "Append a color to the palette",
		Long: `Append a color to the palette.

Give the channels either as three floats in [0,1] or with --hex. Names
need not be unique; lookups use the first match.`,
		Example: `  blobposter palette add coral 1 0.5 0.31
  blobposter palette add coral --hex "#ff7f50"`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := entryFromArgs(args, hex, cmd.Flags().Changed("hex"))
			if err != nil {
				return err
			}
			s, err := c.store()
			if err != nil {
				return err
			}
			if err := s.Add(e.Name, e.R, e.G, e.B); err != nil {
				return err
			}
			printSuccess("Added %s %s", StyleHighlight.Render(e.Name), swatch(e, 2))
			printDetail("%s", e.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&hex, "hex", "", "color as #rrggbb instead of R G B")
	return cmd
}

// entryFromArgs builds an entry from "NAME R G B" or "NAME" plus --hex.
func entryFromArgs(args []string, hex string, useHex bool) (palette.Entry, error) {
	name := args[0]
	switch {
	case useHex && len(args) == 1:
		return palette.FromHex(name, hex)
	case useHex:
		return palette.Entry{}, perrors.New(perrors.ErrCodeInvalidInput, "give either R G B or --hex, not both")
	case len(args) != 4:
		return palette.Entry{}, perrors.New(perrors.ErrCodeInvalidInput, "expected NAME R G B or NAME --hex #rrggbb")
	}

	var rgb [3]float64
	for i, a := range args[1:] {
		v, err := parseChannel(a)
		if err != nil {
			return palette.Entry{}, err
		}
		rgb[i] = v
	}
	return palette.NewEntry(name, rgb[0], rgb[1], rgb[2]), nil
}

// parseChannel coerces a channel argument to a float. Values outside [0,1]
// are stored as given.
func parseChannel(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid channel value %q", s)
	}
	return v, nil
}

func (c *CLI) paletteUpdateCommand() *cobra.Command {
	var r, g, b float64
	var hex string

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Change channels of the first entry with NAME",
		Long: `Change channels of the first entry with NAME.

Only the channels you pass are changed. --hex replaces all three.`,
		Example: `  blobposter palette update sky --g 0.8
  blobposter palette update sun --hex "#ffd166"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			u, err := updateFromFlags(cmd, r, g, b, hex)
			if err != nil {
				return err
			}
			if u.IsZero() {
				return perrors.New(perrors.ErrCodeInvalidInput, "nothing to update: pass --r, --g, --b or --hex")
			}
			s, err := c.store()
			if err != nil {
				return err
			}
			err = s.Update(name, u)
			if perrors.IsNotFound(err) {
				printWarning("%s not found", name)
				return nil
			}
			if err != nil {
				return err
			}
			e, err := s.Lookup(name)
			if err != nil {
				return err
			}
			printSuccess("Updated %s %s", StyleHighlight.Render(name), swatch(e, 2))
			printDetail("%s", e.String())
			return nil
		},
	}

	cmd.Flags().Float64Var(&r, "r", 0, "red channel")
	cmd.Flags().Float64Var(&g, "g", 0, "green channel")
	cmd.Flags().Float64Var(&b, "b", 0, "blue channel")
	cmd.Flags().StringVar(&hex, "hex", "", "all channels as #rrggbb")
	cmd.MarkFlagsMutuallyExclusive("hex", "r")
	cmd.MarkFlagsMutuallyExclusive("hex", "g")
	cmd.MarkFlagsMutuallyExclusive("hex", "b")
	return cmd
}

// updateFromFlags collects the channels the user actually passed.
func updateFromFlags(cmd *cobra.Command, r, g, b float64, hex string) (palette.Update, error) {
	fs := cmd.Flags()
	if fs.Changed("hex") {
		e, err := palette.FromHex("", hex)
		if err != nil {
			return palette.Update{}, err
		}
		return palette.Update{R: palette.Channel(e.R), G: palette.Channel(e.G), B: palette.Channel(e.B)}, nil
	}
	var u palette.Update
	if fs.Changed("r") {
		u.R = palette.Channel(r)
	}
	if fs.Changed("g") {
		u.G = palette.Channel(g)
	}
	if fs.Changed("b") {
		u.B = palette.Channel(b)
	}
	return u, nil
}

func (c *CLI) paletteDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Remove every entry with NAME",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := c.store()
			if err != nil {
				return err
			}
			n, err := s.Delete(name)
			if err != nil {
				return err
			}
			if n == 0 {
				printWarning("%s not found", name)
				return nil
			}
			printSuccess("Deleted %s (%d %s)", StyleHighlight.Render(name), n, plural(n, "entry", "entries"))
			return nil
		},
	}
}

func (c *CLI) paletteShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show the first entry with NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := c.store()
			if err != nil {
				return err
			}
			e, err := s.Lookup(name)
			if perrors.IsNotFound(err) {
				printWarning("%s not found", name)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(swatch(e, 12))
			printKeyValue("Name", e.Name)
			printKeyValue("RGB", fmt.Sprintf("%s %s %s", formatChannel(e.R), formatChannel(e.G), formatChannel(e.B)))
			printKeyValue("Hex", e.Hex())
			return nil
		},
	}
}

func (c *CLI) palettePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the palette file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.store()
			if err != nil {
				return err
			}
			fmt.Println(s.Path())
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
