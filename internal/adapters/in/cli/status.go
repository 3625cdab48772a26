package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/components"
	"github.com/bnema/devfile-wizard/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/devfile-wizard/internal/boundaries/in"
	"github.com/bnema/devfile-wizard/internal/domain"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the devfile state",
		Long: `Show where the devfile lives, whether it could be loaded, how the next save
will behave and what the document contains.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), renderStatus(a.Store))
		},
	}
}

func renderStatus(store in.DevfileStore) string {
	probe := store.Probe()

	lines := []string{
		cliRenderTitle("Devfile"),
		styles.RenderField("Path", probe.Path),
		styles.RenderField("Probe", components.ProbeBadge(probe.Result)),
		styles.RenderField("Strategy", components.StrategyBadge(store.Strategy())),
	}

	if err := store.Blocked(); err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Theme.Box.Render(strings.Join(lines, "\n")),
			styles.Theme.BoxError.Render(styles.RenderError(err.Error())),
		)
	}

	doc := store.Current()
	if doc == nil {
		lines = append(lines, cliRenderMuted("No devfile loaded"))
		return styles.Theme.Box.Render(strings.Join(lines, "\n"))
	}

	origin := "new, not saved yet"
	if store.Loaded() {
		origin = "loaded from disk"
	}

	counts := countItems(doc)
	lines = append(lines,
		styles.RenderField("Name", doc.Metadata.Name+" "+cliRenderMuted("("+origin+")")),
		styles.RenderField("Schema", doc.SchemaVersion),
		styles.RenderField("Components", fmt.Sprintf("%d (%d containers)", counts.components, counts.containers)),
		styles.RenderField("Endpoints", strconv.Itoa(counts.endpoints)),
		styles.RenderField("Env vars", strconv.Itoa(counts.env)),
		styles.RenderField("Commands", strconv.Itoa(counts.commands)),
	)

	if !store.Loaded() && probe.Result == domain.ProbeNotExist {
		lines = append(lines, styles.RenderInfo("Not written yet. Run 'devfile save' to create it."))
	}

	blocks := []string{styles.Theme.Box.Render(strings.Join(lines, "\n"))}
	if len(doc.Components) > 0 {
		blocks = append(blocks, componentTable(doc))
	}
	if len(doc.Commands) > 0 {
		blocks = append(blocks, commandTable(doc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

type itemCounts struct {
	components int
	containers int
	endpoints  int
	env        int
	commands   int
}

func countItems(doc *domain.Devfile) itemCounts {
	c := itemCounts{
		components: len(doc.Components),
		commands:   len(doc.Commands),
	}
	for _, comp := range doc.ContainerComponents() {
		c.containers++
		c.endpoints += len(comp.Container.Endpoints)
		c.env += len(comp.Container.Env)
	}
	return c
}

func componentTable(doc *domain.Devfile) string {
	rows := make([][]string, 0, len(doc.Components))
	for _, comp := range doc.Components {
		switch {
		case comp.Container != nil:
			ports := make([]string, 0, len(comp.Container.Endpoints))
			for _, e := range comp.Container.Endpoints {
				ports = append(ports, fmt.Sprintf("%s:%d", e.Name, e.TargetPort))
			}
			rows = append(rows, []string{comp.Name, "container", comp.Container.Image, strings.Join(ports, ", ")})
		case comp.Volume != nil:
			rows = append(rows, []string{comp.Name, "volume", comp.Volume.Size, ""})
		default:
			rows = append(rows, []string{comp.Name, "other", "", ""})
		}
	}

	return components.RenderTable([]components.TableColumn{
		{Title: "Name"},
		{Title: "Kind"},
		{Title: "Image / Size", Width: 48},
		{Title: "Endpoints", Width: 32},
	}, rows)
}

func commandTable(doc *domain.Devfile) string {
	rows := make([][]string, 0, len(doc.Commands))
	for _, cmd := range doc.Commands {
		if cmd.Exec == nil {
			rows = append(rows, []string{cmd.ID, "", "", ""})
			continue
		}
		rows = append(rows, []string{cmd.ID, cmd.Exec.Label, cmd.Exec.Component, cmd.Exec.CommandLine})
	}

	return components.RenderTable([]components.TableColumn{
		{Title: "ID"},
		{Title: "Label", Width: 24},
		{Title: "Component"},
		{Title: "Command line", Width: 40},
	}, rows)
}
