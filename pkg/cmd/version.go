package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/auctionlab/depthchart/pkg/version"
)

func init() {
	RootCmd.Version = version.Version
	RootCmd.AddCommand(VersionCmd)
}

func versionString() string {
	return fmt.Sprintf("depthchart %s (%s, %s/%s)", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// VersionCmd prints the build version together with the go runtime it was built with.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the depthchart build version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
		return err
	},
}
