package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/writermem/internal/character"
	"github.com/vampirenirmal/writermem/internal/memory"
)

func characterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Manage characters",
	}

	add := &cobra.Command{
		Use:  "add <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := memory.Character{Name: args[0]}
			c.Arc, _ = cmd.Flags().GetString("arc")
			c.Tone, _ = cmd.Flags().GetString("tone")
			c.SpeechLevel, _ = cmd.Flags().GetString("speech-level")
			c.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
			c.Attitude, _ = cmd.Flags().GetString("attitude")
			c.Notes, _ = cmd.Flags().GetString("notes")
			added, err := svc.AddCharacter(c)
			if err != nil {
				return err
			}
			return printJSON(added)
		},
	}
	addProfileFlags(add)

	update := &cobra.Command{
		Use:  "update <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u character.Update
			u.Arc, _ = cmd.Flags().GetString("arc")
			u.Tone, _ = cmd.Flags().GetString("tone")
			u.SpeechLevel, _ = cmd.Flags().GetString("speech-level")
			if cmd.Flags().Changed("keywords") {
				u.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
			}
			u.Attitude, _ = cmd.Flags().GetString("attitude")
			u.Notes, _ = cmd.Flags().GetString("notes")
			c, err := svc.UpdateCharacter(args[0], u)
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("character %q not found", args[0])
			}
			return printJSON(c)
		},
	}
	addProfileFlags(update)

	remove := &cobra.Command{
		Use:  "remove <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := svc.RemoveCharacter(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("character %q not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}

	list := &cobra.Command{
		Use: "list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.ListCharacters())
		},
	}

	alias := &cobra.Command{
		Use:  "alias <name> <alias>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			removeFlag, _ := cmd.Flags().GetBool("remove")
			var ok bool
			var err error
			if removeFlag {
				ok, err = svc.RemoveAlias(args[0], args[1])
			} else {
				ok, err = svc.AddAlias(args[0], args[1])
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("character %q not found", args[0])
			}
			fmt.Println("ok")
			return nil
		},
	}
	alias.Flags().Bool("remove", false, "remove the alias instead of adding it")

	emotion := &cobra.Command{
		Use:  "emotion <name> <emotion>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := memory.EmotionPoint{Emotion: args[1]}
			p.Trigger, _ = cmd.Flags().GetString("trigger")
			p.SceneID, _ = cmd.Flags().GetString("scene")
			p.Intensity, _ = cmd.Flags().GetInt("intensity")
			added, err := svc.AddEmotionPoint(args[0], p)
			if err != nil {
				return err
			}
			if added == nil {
				return fmt.Errorf("character %q not found", args[0])
			}
			return printJSON(added)
		},
	}
	emotion.Flags().String("trigger", "", "what caused the emotion")
	emotion.Flags().String("scene", "", "scene id the emotion belongs to")
	emotion.Flags().Int("intensity", 0, "intensity 1-5, default 3")

	timeline := &cobra.Command{
		Use:  "timeline <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if arc, _ := cmd.Flags().GetBool("arc"); arc {
				fmt.Println(svc.EmotionArc(args[0]))
				return nil
			}
			return printJSON(svc.EmotionTimeline(args[0]))
		},
	}
	timeline.Flags().Bool("arc", false, "print the arc string instead of the raw timeline")

	lint := &cobra.Command{
		Use:  "lint <name> <line>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := svc.LintDialogue(args[0], args[1])
			if result == nil {
				return fmt.Errorf("character %q not found", args[0])
			}
			return printJSON(result)
		},
	}

	profile := &cobra.Command{
		Use:  "profile <name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md := svc.Profile(args[0])
			if md == "" {
				return fmt.Errorf("character %q not found", args[0])
			}
			fmt.Println(md)
			return nil
		},
	}

	cmd.AddCommand(add, update, remove, list, alias, emotion, timeline, lint, profile)
	return cmd
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("arc", "", "character arc")
	cmd.Flags().String("tone", "", "tone description")
	cmd.Flags().String("speech-level", "", "formal, informal, casual, or mixed")
	cmd.Flags().StringSlice("keywords", nil, "signature keywords")
	cmd.Flags().String("attitude", "", "attitude description")
	cmd.Flags().String("notes", "", "free notes")
}
