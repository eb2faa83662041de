package cli

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/ufpeltheme/internal/teachers"
)

func newTeachersCmd(a *app) *cobra.Command {
	var showTiers bool

	cmd := &cobra.Command{
		Use:   "teachers <courseid>...",
		Short: "Show the teachers line of one or more courses",
		Long: `Look up course teachers through the shared cache, querying the host
database on a miss, and print the line shown in the course header.

With --tiers, also print how many lookups each cache tier answered.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("invalid course id %q", arg)
				}
				ids = append(ids, id)
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(teachers.Collectors()...)

			lookup, err := a.teacherLookup(ctx)
			if err != nil {
				return err
			}
			session := lookup.NewSession()
			tr := a.translator()

			table := NewTable([]string{"COURSE", "TEACHERS"})
			table.SetColumnMaxWidth(1, 72)
			for _, id := range ids {
				names, err := session.Teachers(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to look up course %d: %w", id, err)
				}
				text := teachers.FormatText(tr, a.cfg.Lang, names)
				if text == "" {
					text = "-"
				}
				table.AddRow([]string{strconv.FormatInt(id, 10), text})
			}

			out := table.Render()
			if showTiers {
				tiers, err := tierTable(registry)
				if err != nil {
					return err
				}
				out += "\n" + tiers
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&showTiers, "tiers", false, "print lookups answered per cache tier")
	return cmd
}

// tierTable renders the teacher lookup counters gathered from g.
func tierTable(g prometheus.Gatherer) (string, error) {
	families, err := g.Gather()
	if err != nil {
		return "", fmt.Errorf("failed to gather lookup metrics: %w", err)
	}

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "ufpeltheme_teacher_lookups_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "tier" {
					counts[lp.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}

	table := NewTable([]string{"TIER", "LOOKUPS"})
	for _, tier := range []string{teachers.TierMemory, teachers.TierDurable, teachers.TierSource} {
		table.AddRow([]string{tier, strconv.FormatFloat(counts[tier], 'f', 0, 64)})
	}
	return table.Render(), nil
}
