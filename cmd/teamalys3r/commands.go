package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/teamalys3r/internal/config"
	"github.com/kingrea/teamalys3r/internal/watch"
)

func newWatchCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file_path>",
		Short: "Re-run the analysis every time the relation file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(func() error {
				input := args[0]
				runner := c.runner()
				rerun := func() error {
					_, err := runner.Run(input, c.outputPath)
					if err != nil {
						c.printError(err)
					}
					return err
				}
				_ = rerun()

				w, err := watch.New(input, rerun, watch.WithLogger(c.logger.Logger))
				if err != nil {
					return err
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				c.logger.Info("watch started", zap.String("path", w.Path()))
				return w.Run(ctx)
			})
		},
	}
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "SVG output path (default: input name with .svg)")
	return cmd
}

func newIndexCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "index <file_path> <member>",
		Short: "Print the work index of a single member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(func() error {
				return c.runner().Index(args[0], args[1])
			})
		},
	}
}

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.DefaultFilename + " in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.dir()
			if err != nil {
				return err
			}
			path := filepath.Join(dir, config.DefaultFilename)
			created, err := config.WriteDefault(path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(c.out, "Wrote %s\n", path)
			} else {
				fmt.Fprintf(c.out, "%s already exists\n", path)
			}
			return nil
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "%s %s\n", programName, version)
		},
	}
}
