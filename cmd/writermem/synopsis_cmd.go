package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func synopsisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synopsis",
		Short: "Derived synopsis views",
	}

	show := &cobra.Command{
		Use: "show",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.ExtractSynopsis())
		},
	}

	set := &cobra.Command{
		Use: "set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var u memory.SynopsisState
			u.ProtagonistAttitude, _ = cmd.Flags().GetString("attitude")
			u.CoreRelationships, _ = cmd.Flags().GetString("relationships")
			u.EmotionalTheme, _ = cmd.Flags().GetString("theme")
			u.GenreContrast, _ = cmd.Flags().GetString("contrast")
			u.EndingAftertaste, _ = cmd.Flags().GetString("aftertaste")
			state, err := svc.UpdateSynopsis(u)
			if err != nil {
				return err
			}
			return printJSON(state)
		},
	}
	set.Flags().String("attitude", "", "protagonist attitude")
	set.Flags().String("relationships", "", "core relationships")
	set.Flags().String("theme", "", "emotional theme")
	set.Flags().String("contrast", "", "genre-vs-emotion contrast")
	set.Flags().String("aftertaste", "", "ending aftertaste")

	checklist := &cobra.Command{
		Use: "checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.SynopsisChecklist())
		},
	}

	render := &cobra.Command{
		Use:  "render <full|brief|pitch>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := svc.RenderSynopsis(args[0])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.AddCommand(show, set, checklist, render)
	return cmd
}
