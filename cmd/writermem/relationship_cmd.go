package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/relationship"
)

func relationshipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationship",
		Aliases: []string{"rel"},
		Short:   "Manage the character relationship graph",
	}

	add := &cobra.Command{
		Use:  "add <from> <to> <type>",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dynamic, _ := cmd.Flags().GetString("dynamic")
			r, err := svc.AddRelationship(args[0], args[1], args[2], dynamic)
			if err != nil {
				return err
			}
			return printJSON(r)
		},
	}
	add.Flags().String("dynamic", "", "free-text dynamic descriptor")

	get := &cobra.Command{
		Use:  "get <a> <b>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := svc.GetRelationship(args[0], args[1])
			if r == nil {
				return fmt.Errorf("no relationship between %q and %q", args[0], args[1])
			}
			return printJSON(r)
		},
	}

	update := &cobra.Command{
		Use:  "update <a> <b>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u relationship.Update
			u.Type, _ = cmd.Flags().GetString("type")
			u.Dynamic, _ = cmd.Flags().GetString("dynamic")
			u.SpeechLevel, _ = cmd.Flags().GetString("speech-level")
			u.Notes, _ = cmd.Flags().GetString("notes")
			r, err := svc.UpdateRelationship(args[0], args[1], u)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("no relationship between %q and %q", args[0], args[1])
			}
			return printJSON(r)
		},
	}
	update.Flags().String("type", "", "relationship type")
	update.Flags().String("dynamic", "", "free-text dynamic descriptor")
	update.Flags().String("speech-level", "", "speech level override")
	update.Flags().String("notes", "", "free notes")

	remove := &cobra.Command{
		Use:  "remove <a> <b>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := svc.RemoveRelationship(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no relationship between %q and %q", args[0], args[1])
			}
			fmt.Println("removed")
			return nil
		},
	}

	event := &cobra.Command{
		Use:  "event <a> <b> <change>",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := memory.RelationshipEvent{Change: args[2]}
			ev.Catalyst, _ = cmd.Flags().GetString("catalyst")
			ev.SceneID, _ = cmd.Flags().GetString("scene")
			added, err := svc.AddRelationshipEvent(args[0], args[1], ev)
			if err != nil {
				return err
			}
			if added == nil {
				return fmt.Errorf("no relationship between %q and %q", args[0], args[1])
			}
			return printJSON(added)
		},
	}
	event.Flags().String("catalyst", "", "what triggered the change")
	event.Flags().String("scene", "", "scene id the change belongs to")

	arc := &cobra.Command{
		Use:  "arc <a> <b>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(svc.RelationshipArc(args[0], args[1]))
			return nil
		},
	}

	connections := &cobra.Command{
		Use:  "connections <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.Connections(args[0]))
		},
	}

	web := &cobra.Command{
		Use: "web",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.RelationshipWeb())
		},
	}

	renderMap := &cobra.Command{
		Use: "map",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(svc.RelationshipMap())
			return nil
		},
	}

	cmd.AddCommand(add, get, update, remove, event, arc, connections, web, renderMap)
	return cmd
}
