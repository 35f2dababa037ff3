package main

import (
	"fmt"
	"os"

	"github.com/sysglance/sysglance/internal/fsinfo"
	"github.com/sysglance/sysglance/internal/netinfo"
	"github.com/sysglance/sysglance/internal/render"
	"github.com/sysglance/sysglance/internal/sysinfo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sysglance",
		Short: "Print an overview of the host system",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("no_color") {
				color.NoColor = true
			}

			report := render.Report{
				OS:      sysinfo.GetOSInfo(),
				Runtime: sysinfo.GetRuntimeInfo(),
				Clock:   sysinfo.GetClockInfo(),
				Network: netinfo.Get(),
			}
			report.Filesystem, report.HasFilesystem = fsinfo.Get()

			render.Write(cmd.OutOrStdout(), report)
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
