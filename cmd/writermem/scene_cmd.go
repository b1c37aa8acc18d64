package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func sceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage scenes and cuts",
	}

	add := &cobra.Command{
		Use:  "add <title>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := memory.Scene{Title: args[0]}
			sc.Chapter, _ = cmd.Flags().GetString("chapter")
			sc.Characters, _ = cmd.Flags().GetStringSlice("characters")
			sc.NarrationTone, _ = cmd.Flags().GetString("narration-tone")
			sc.Notes, _ = cmd.Flags().GetString("notes")
			added, err := svc.AddScene(sc)
			if err != nil {
				return err
			}
			return printJSON(added)
		},
	}
	add.Flags().String("chapter", "", "chapter label")
	add.Flags().StringSlice("characters", nil, "participating character names")
	add.Flags().String("narration-tone", "", "narration tone")
	add.Flags().String("notes", "", "free notes")

	remove := &cobra.Command{
		Use:  "remove <scene-id>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := svc.RemoveScene(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("scene %q not found", args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}

	reorder := &cobra.Command{
		Use:  "reorder <scene-id>...",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return svc.ReorderScenes(args)
		},
	}

	list := &cobra.Command{
		Use: "list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if chapter, _ := cmd.Flags().GetString("chapter"); chapter != "" {
				return printJSON(svc.ScenesByChapter(chapter))
			}
			if name, _ := cmd.Flags().GetString("character"); name != "" {
				return printJSON(svc.ScenesByCharacter(name))
			}
			if tag, _ := cmd.Flags().GetString("emotion"); tag != "" {
				return printJSON(svc.ScenesByEmotion(tag))
			}
			return printJSON(svc.ListScenes())
		},
	}
	list.Flags().String("chapter", "", "filter by chapter")
	list.Flags().String("character", "", "filter by participant")
	list.Flags().String("emotion", "", "filter by emotion tag")

	cut := &cobra.Command{
		Use:   "cut",
		Short: "Manage cuts within a scene",
	}

	cutAdd := &cobra.Command{
		Use:  "add <scene-id> <type> <content>",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := memory.Cut{Type: args[1], Content: args[2]}
			c.Character, _ = cmd.Flags().GetString("character")
			c.Emotion, _ = cmd.Flags().GetString("emotion")
			added, err := svc.AddCut(args[0], c)
			if err != nil {
				return err
			}
			if added == nil {
				return fmt.Errorf("scene %q not found", args[0])
			}
			return printJSON(added)
		},
	}
	cutAdd.Flags().String("character", "", "attributed character")
	cutAdd.Flags().String("emotion", "", "emotion tag")

	cutRemove := &cobra.Command{
		Use:  "remove <scene-id> <order>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("cut order must be a number: %w", err)
			}
			ok, err := svc.RemoveCut(args[0], order)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no cut %d in scene %q", order, args[0])
			}
			fmt.Println("removed")
			return nil
		},
	}

	cutReorder := &cobra.Command{
		Use:  "reorder <scene-id> <index>...",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes := make([]int, 0, len(args)-1)
			for _, raw := range args[1:] {
				n, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("cut index must be a number: %w", err)
				}
				indexes = append(indexes, n)
			}
			return svc.ReorderCuts(args[0], indexes)
		},
	}
	cut.AddCommand(cutAdd, cutRemove, cutReorder)

	tag := &cobra.Command{
		Use:  "tag <scene-id> <emotion>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			removeFlag, _ := cmd.Flags().GetBool("remove")
			var ok bool
			var err error
			if removeFlag {
				ok, err = svc.UntagScene(args[0], args[1])
			} else {
				ok, err = svc.TagScene(args[0], args[1])
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("scene %q not found", args[0])
			}
			fmt.Println("ok")
			return nil
		},
	}
	tag.Flags().Bool("remove", false, "remove the tag instead of adding it")

	stats := &cobra.Command{
		Use: "stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.EmotionStats())
		},
	}

	flow := &cobra.Command{
		Use: "flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(svc.SceneFlow())
		},
	}

	cmd.AddCommand(add, remove, reorder, list, cut, tag, stats, flow)
	return cmd
}
