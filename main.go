package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appsvc "github.com/km-arc/go-scaffold/app"
	"github.com/km-arc/go-scaffold/framework/app"
)

const version = "0.1.0"

func newApplication() *app.Application {
	application := app.New()
	application.Register(&appsvc.AppServiceProvider{Version: version})
	return application
}

func main() {
	root := &cobra.Command{
		Use:     "scaffold",
		Short:   "Service scaffold built around a string-keyed DI injector",
		Version: version,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Boot the application and serve HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApplication().Run()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "bindings",
		Short: "List registered bindings, classes, and shared abstractions",
		RunE: func(cmd *cobra.Command, args []string) error {
			application := newApplication()
			application.Boot()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "bindings:")
			for from, to := range application.Bindings() {
				fmt.Fprintf(out, "  %s -> %s\n", from, to)
			}
			fmt.Fprintln(out, "classes:")
			for _, class := range application.RegisteredClasses() {
				fmt.Fprintf(out, "  %s\n", class)
			}
			fmt.Fprintln(out, "shared:")
			for _, abstract := range application.SharedAbstractions() {
				fmt.Fprintf(out, "  %s\n", abstract)
			}
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
