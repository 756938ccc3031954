package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "ai-planning-studio/docs" // Swagger docs
)

// @title       AI Planning Studio API
// @description Turns a subject, free-form notes and uploaded study material into a day-by-day study plan.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ai-planning-studio",
		Short:         "AI study plan backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := serveCMD()
	root.AddCommand(serve, extractCMD(), calendarAuthCMD())

	// bare invocation serves, like the container entrypoint expects,
	// and accepts the same flags as `serve`
	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE

	return root
}
