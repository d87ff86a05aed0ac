package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zok213/RealEstate-sub001/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "landplan",
		Short: "Industrial-estate land subdivision engine",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Run the two-stage subdivision pipeline and print the plan as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a project without running the solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func exportCmd() *cobra.Command {
	var format string
	var out string
	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Solve and export the plan (geojson, dxf, xlsx, or pdf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], format, out)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "geojson", "output format: geojson, dxf, xlsx, pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: plan.<format> in the project directory)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve the plan over a local HTTP preview API",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return server.New(args[0], port).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8745, "port to listen on")
	return cmd
}
