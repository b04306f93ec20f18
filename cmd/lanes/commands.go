package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandeepkv93/lanes/internal/model"
	"github.com/sandeepkv93/lanes/internal/service"
	"github.com/sandeepkv93/lanes/internal/views"
	"github.com/spf13/cobra"
)

func (a *app) withService(fn func(ctx context.Context, svc *service.Service) error) error {
	svc, closeStore, _, err := a.openService(a.consoleLogger())
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(context.Background(), svc)
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board lane by lane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(ctx context.Context, svc *service.Service) error {
				tasks := svc.GetTasks(ctx)
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(tasks)
				}
				writeLanes(cmd, tasks)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tasks in their stored JSON shape")
	return cmd
}

func writeLanes(cmd *cobra.Command, tasks []model.Task) {
	out := cmd.OutOrStdout()
	for i, status := range model.Statuses {
		if i > 0 {
			fmt.Fprintln(out)
		}
		var lane []model.Task
		for _, t := range tasks {
			if t.Status == status {
				lane = append(lane, t)
			}
		}
		fmt.Fprintf(out, "%s (%d)\n", status.Label(), len(lane))
		for _, t := range lane {
			line := fmt.Sprintf("  %s  %s", t.ID, t.Title)
			if t.Due != "" {
				line += "  Due: " + views.FormatDue(t.Due)
			}
			fmt.Fprintln(out, line)
		}
	}
}

func newAddCmd(a *app) *cobra.Command {
	var due, status string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := model.ParseStatus(status)
			if err != nil {
				return err
			}
			return a.withService(func(ctx context.Context, svc *service.Service) error {
				task, err := svc.AddTask(ctx, service.NewTask{
					Title:  strings.Join(args, " "),
					Due:    due,
					Status: st,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), task.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", string(model.StatusTodo), "lane: todo, doing or done")
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another lane",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := model.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return a.withService(func(ctx context.Context, svc *service.Service) error {
				if err := svc.UpdateTaskStatus(ctx, args[0], st); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s to %s\n", args[0], st)
				return nil
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task permanently",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(ctx context.Context, svc *service.Service) error {
				if err := svc.DeleteTask(ctx, args[0], false); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config, store and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, paths, err := a.resolveConfig()
			if err != nil {
				return err
			}
			cfgPath := a.configPath
			if cfgPath == "" {
				cfgPath = paths.ConfigPath
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config: %s\n", cfgPath)
			fmt.Fprintf(out, "store:  %s (%s)\n", cfg.Store.Path, cfg.Store.Backend)
			fmt.Fprintf(out, "log:    %s\n", cfg.Log.File)
			return nil
		},
	}
}
