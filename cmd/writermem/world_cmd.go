package main

import (
	"github.com/spf13/cobra"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func worldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "World-building notes, rules and locations",
	}

	show := &cobra.Command{
		Use: "show",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.Document().World)
		},
	}

	set := &cobra.Command{
		Use: "set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w memory.World
			w.Name, _ = cmd.Flags().GetString("name")
			w.Era, _ = cmd.Flags().GetString("era")
			w.Atmosphere, _ = cmd.Flags().GetString("atmosphere")
			w.CulturalNotes, _ = cmd.Flags().GetString("culture")
			w.Notes, _ = cmd.Flags().GetString("notes")
			cur := svc.Document().World
			if rule, _ := cmd.Flags().GetString("rule"); rule != "" {
				category, _ := cmd.Flags().GetString("rule-category")
				w.Rules = append(cur.Rules,
					memory.WorldRule{Category: category, Description: rule})
			}
			if loc, _ := cmd.Flags().GetString("location"); loc != "" {
				w.Locations = append(cur.Locations, memory.Location{Name: loc})
			}
			updated, err := svc.UpdateWorld(w)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}
	set.Flags().String("name", "", "world or setting name")
	set.Flags().String("era", "", "time period")
	set.Flags().String("atmosphere", "", "overall atmosphere")
	set.Flags().String("culture", "", "cultural notes")
	set.Flags().String("notes", "", "free-form notes")
	set.Flags().String("rule", "", "world rule to append")
	set.Flags().String("rule-category", "", "category for --rule")
	set.Flags().String("location", "", "location to append")

	cmd.AddCommand(show, set)
	return cmd
}

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Recurring themes and their anchors",
	}

	add := &cobra.Command{
		Use:  "add <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th := memory.Theme{Name: args[0]}
			th.Description, _ = cmd.Flags().GetString("description")
			th.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
			th.Characters, _ = cmd.Flags().GetStringSlice("characters")
			th.Scenes, _ = cmd.Flags().GetStringSlice("scenes")
			added, err := svc.AddTheme(th)
			if err != nil {
				return err
			}
			return printJSON(added)
		},
	}
	add.Flags().String("description", "", "what the theme is about")
	add.Flags().StringSlice("keywords", nil, "searchable keywords")
	add.Flags().StringSlice("characters", nil, "characters carrying the theme")
	add.Flags().StringSlice("scenes", nil, "scene ids carrying the theme")

	remove := &cobra.Command{
		Use:  "remove <id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := svc.RemoveTheme(args[0])
			if err != nil {
				return err
			}
			if !ok {
				cmd.PrintErrf("no theme %q\n", args[0])
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use: "list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.ListThemes())
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
