package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// Control styles
var (
	controlSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	controlNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	controlDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const sliderWidth = 24

// maxJumpSeed bounds seeds picked by the "r" key.
const maxJumpSeed = 1_000_000

// =============================================================================
// Controls
// =============================================================================

type controlID int

const (
	ctrlLayers controlID = iota
	ctrlSeed
	ctrlWobbleMin
	ctrlWobbleMax
	ctrlRadiusMin
	ctrlRadiusMax
	ctrlMode
	ctrlColor
	numControls
)

var controlLabels = [numControls]string{
	ctrlLayers:    "Layers",
	ctrlSeed:      "Seed",
	ctrlWobbleMin: "Wobble min",
	ctrlWobbleMax: "Wobble max",
	ctrlRadiusMin: "Radius min",
	ctrlRadiusMax: "Radius max",
	ctrlMode:      "Palette",
	ctrlColor:     "Color",
}

// =============================================================================
// PosterModel - Interactive poster settings
// =============================================================================

// PosterModel is the bubbletea model for tuning poster settings. Numeric
// controls are bounded to the slider ranges; the seed is unbounded.
type PosterModel struct {
	Config  poster.Config
	Entries []palette.Entry // palette store, for single mode and the preview
	Cursor  int

	// Confirmed is set when the user pressed enter.
	Confirmed bool
}

// NewPosterModel creates a model starting from cfg, pulled into the slider
// bounds.
func NewPosterModel(cfg poster.Config, entries []palette.Entry) PosterModel {
	cfg.SetDefaults()
	cfg.Layers = clampInt(cfg.Layers, poster.MinLayers, poster.MaxLayers)
	cfg.Wobble.Min = clampFloat(cfg.Wobble.Min, poster.MinWobble, poster.MaxWobble)
	cfg.Wobble.Max = clampFloat(cfg.Wobble.Max, poster.MinWobble, poster.MaxWobble)
	cfg.Radius.Min = clampFloat(cfg.Radius.Min, poster.MinRadius, poster.MaxRadius)
	cfg.Radius.Max = clampFloat(cfg.Radius.Max, poster.MinRadius, poster.MaxRadius)
	if cfg.Color == "" && len(entries) > 0 {
		cfg.Color = entries[0].Name
	}
	return PosterModel{Config: cfg, Entries: entries}
}

func (m PosterModel) Init() tea.Cmd {
	return nil
}

func (m PosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.Confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j", "tab":
		if m.Cursor < int(numControls)-1 {
			m.Cursor++
		}
	case "left", "h", "-":
		m.adjust(-1)
	case "right", "l", "+":
		m.adjust(1)
	case "r":
		// next seed is derived from the current one, so sessions replay
		m.Config.Seed = int64(poster.NewSource(m.Config.Seed).IntN(maxJumpSeed))
	}
	return m, nil
}

// adjust moves the selected control one step in direction dir.
func (m *PosterModel) adjust(dir int) {
	const step = 0.01
	c := &m.Config
	switch controlID(m.Cursor) {
	case ctrlLayers:
		c.Layers = clampInt(c.Layers+dir, poster.MinLayers, poster.MaxLayers)
	case ctrlSeed:
		c.Seed = max(c.Seed+int64(dir), 0)
	case ctrlWobbleMin:
		c.Wobble.Min = stepFloat(c.Wobble.Min, dir, step, poster.MinWobble, poster.MaxWobble)
	case ctrlWobbleMax:
		c.Wobble.Max = stepFloat(c.Wobble.Max, dir, step, poster.MinWobble, poster.MaxWobble)
	case ctrlRadiusMin:
		c.Radius.Min = stepFloat(c.Radius.Min, dir, step, poster.MinRadius, poster.MaxRadius)
	case ctrlRadiusMax:
		c.Radius.Max = stepFloat(c.Radius.Max, dir, step, poster.MinRadius, poster.MaxRadius)
	case ctrlMode:
		c.Mode = cycle(poster.Modes, c.Mode, dir)
	case ctrlColor:
		if len(m.Entries) == 0 {
			return
		}
		names := make([]string, len(m.Entries))
		for i, e := range m.Entries {
			names[i] = e.Name
		}
		c.Color = cycle(names, c.Color, dir)
	}
}

func (m PosterModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Poster Settings"))
	b.WriteString("\n")
	b.WriteString(controlDimStyle.Render("↑/↓ select  ←/→ adjust  r new seed  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i := range int(numControls) {
		id := controlID(i)
		cursor := "  "
		style := controlNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = controlSelectedStyle
		}
		if id == ctrlColor && m.Config.Mode != poster.ModeSingle {
			style = controlDimStyle
		}
		line := fmt.Sprintf("%s%-11s %s", cursor, controlLabels[id], m.value(id))
		b.WriteString(style.Render(line))
		if bar := m.slider(id); bar != "" {
			b.WriteString("  " + bar)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(controlDimStyle.Render("colors ") + swatchRow(m.previewColors()))
	b.WriteString("\n")
	return b.String()
}

func (m PosterModel) value(id controlID) string {
	c := m.Config
	switch id {
	case ctrlLayers:
		return fmt.Sprintf("%d", c.Layers)
	case ctrlSeed:
		return fmt.Sprintf("%d", c.Seed)
	case ctrlWobbleMin:
		return fmt.Sprintf("%.2f", c.Wobble.Min)
	case ctrlWobbleMax:
		return fmt.Sprintf("%.2f", c.Wobble.Max)
	case ctrlRadiusMin:
		return fmt.Sprintf("%.2f", c.Radius.Min)
	case ctrlRadiusMax:
		return fmt.Sprintf("%.2f", c.Radius.Max)
	case ctrlMode:
		return string(c.Mode)
	case ctrlColor:
		if c.Color == "" {
			return "none"
		}
		return c.Color
	}
	return ""
}

func (m PosterModel) slider(id controlID) string {
	c := m.Config
	switch id {
	case ctrlLayers:
		return sliderBar(float64(c.Layers), poster.MinLayers, poster.MaxLayers)
	case ctrlWobbleMin:
		return sliderBar(c.Wobble.Min, poster.MinWobble, poster.MaxWobble)
	case ctrlWobbleMax:
		return sliderBar(c.Wobble.Max, poster.MinWobble, poster.MaxWobble)
	case ctrlRadiusMin:
		return sliderBar(c.Radius.Min, poster.MinRadius, poster.MaxRadius)
	case ctrlRadiusMax:
		return sliderBar(c.Radius.Max, poster.MinRadius, poster.MaxRadius)
	}
	return ""
}

// previewColors lists the colors the current mode can draw from.
func (m PosterModel) previewColors() []palette.Entry {
	switch m.Config.Mode {
	case poster.ModeBuiltin:
		return palette.Builtin()
	case poster.ModeSingle:
		if i := palette.Find(m.Entries, m.Config.Color); i >= 0 {
			return m.Entries[i : i+1]
		}
		return nil
	}
	return m.Entries
}

// sliderBar draws a fixed-width track with a knob at v's position.
func sliderBar(v, lo, hi float64) string {
	pos := 0
	if hi > lo {
		pos = int(math.Round((v - lo) / (hi - lo) * (sliderWidth - 1)))
	}
	pos = clampInt(pos, 0, sliderWidth-1)
	return controlDimStyle.Render(strings.Repeat("━", pos)) +
		StyleHighlight.Render("●") +
		controlDimStyle.Render(strings.Repeat("━", sliderWidth-1-pos))
}

// =============================================================================
// Command
// =============================================================================

func (c *CLI) tuiCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Tune poster settings interactively, then render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, store, err := c.resolvePoster(cmd.Flags(), &opts.poster)
			if err != nil {
				return err
			}
			entries, err := store.Read()
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPosterModel(cfg, entries), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			m := final.(PosterModel)
			if !m.Confirmed {
				printInfo("Cancelled")
				return nil
			}

			// Hand the chosen settings to generate as explicit flags.
			fs := cmd.Flags()
			for name, v := range tunedFlags(m.Config) {
				if err := fs.Set(name, v); err != nil {
					return err
				}
			}
			_, err = c.runGenerate(cmd.Context(), fs, &opts, true)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format) or base path (default "poster")`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "size multiplier for png, svg and pdf output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	opts.poster.register(cmd.Flags())

	return cmd
}

// tunedFlags formats the settings the model controls the way their flags
// parse them.
func tunedFlags(cfg poster.Config) map[string]string {
	return map[string]string{
		"layers":     strconv.Itoa(cfg.Layers),
		"seed":       strconv.FormatInt(cfg.Seed, 10),
		"wobble-min": strconv.FormatFloat(cfg.Wobble.Min, 'g', -1, 64),
		"wobble-max": strconv.FormatFloat(cfg.Wobble.Max, 'g', -1, 64),
		"radius-min": strconv.FormatFloat(cfg.Radius.Min, 'g', -1, 64),
		"radius-max": strconv.FormatFloat(cfg.Radius.Max, 'g', -1, 64),
		"mode":       string(cfg.Mode),
		"color":      cfg.Color,
	}
}

// =============================================================================
// Helpers
// =============================================================================

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// stepFloat moves v by dir steps, rounded to the step grid and clamped.
func stepFloat(v float64, dir int, step, lo, hi float64) float64 {
	v = math.Round((v+float64(dir)*step)/step) * step
	return clampFloat(v, lo, hi)
}

// cycle returns the element dir positions after cur, wrapping around.
// An unknown cur starts from the first element.
func cycle[T comparable](items []T, cur T, dir int) T {
	i := 0
	for j, it := range items {
		if it == cur {
			i = j
			break
		}
	}
	n := len(items)
	return items[((i+dir)%n+n)%n]
}
