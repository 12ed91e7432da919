package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/norce-drilling/wellbore-api/pkg/client"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wellbore-cli",
		Short: "Command-line client for the WellBore API",
		Long: `wellbore-cli talks to a running wellbore-api service.

Examples:
  wellbore-cli list
  wellbore-cli list --meta
  wellbore-cli get 9a1b...
  wellbore-cli delete 9a1b...
  wellbore-cli usage --server http://localhost:8080/WellBore/api`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("WELLBORE_API_URL")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080" + client.DefaultBasePath
	}
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", defaultServer, "Base URL of the API, including its base path")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 20*time.Second, "Request timeout")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newUsageCmd(opts))
	return cmd
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.server, client.WithTimeout(o.timeout))
}
