package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tasks v%s (commit: %s, built: %s)\n",
				Version, GitCommit, BuildTime)
		},
	}
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print every configuration key with the value tasks would use,
after defaults, the config file and TASKS_* environment variables
have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if used := v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "# %s\n", used)
			}

			keys := v.AllKeys()
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%s = %v\n", k, v.Get(k))
			}
			return nil
		},
	}
}
