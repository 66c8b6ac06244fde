// Copyright © 2016 Abcum Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	stdlog "log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcum/nftoptim/cache"
	"github.com/abcum/nftoptim/cnf"
	"github.com/abcum/nftoptim/log"
	"github.com/abcum/nftoptim/optimize"
)

var opts = &cnf.Options{}

var mainCmd = &cobra.Command{
	Use:   "nftoptim",
	Short: "Rule-merging optimizer for packet-filter rule chains",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(opts.Logging.Level)
		log.SetOutput(opts.Logging.Output)
		log.SetFormat(opts.Logging.Format)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Build a demo rule chain in memory and run the optimizer over it",
	RunE: func(cmd *cobra.Command, args []string) error {

		c, err := cache.New(opts.Cache.Size)
		if err != nil {
			return err
		}

		res, err := optimize.OptimizeCommands(demoCommands(), optimize.Options{
			Printer:     printer{},
			Lines:       lineRecoverer{},
			Diagnostics: os.Stdout,
			ColumnCap:   opts.Optimize.ColumnCap,
			Workers:     opts.Optimize.Workers,
			Cache:       c,
		})
		if err != nil {
			return err
		}

		stdlog.Printf("chains seen: %d, chains optimized: %d, rules removed: %d",
			res.ChainsSeen, res.ChainsOptimized, res.RulesRemoved)

		return nil
	},
}

func init() {

	mainCmd.AddCommand(
		optimizeCmd,
		versionCmd,
	)

	mainCmd.PersistentFlags().StringVarP(&opts.Logging.Level, "log", "l", "info", "Set the logging level")
	mainCmd.PersistentFlags().StringVarP(&opts.Logging.Output, "log-output", "", "stdout", "Set the logging output sink")
	mainCmd.PersistentFlags().StringVarP(&opts.Logging.Format, "log-format", "", "text", "Set the logging output format")
	optimizeCmd.Flags().IntVarP(&opts.Optimize.ColumnCap, "column-cap", "c", 32, "Maximum number of distinct selector columns per chain")
	optimizeCmd.Flags().IntVarP(&opts.Optimize.Workers, "workers", "w", 1, "Number of chains to optimize concurrently")
	optimizeCmd.Flags().Int64VarP(&opts.Cache.Size, "cache-size", "", 1024, "Maximum number of memoized chain passes to retain")

}

// Run runs the cli app.
func Run() {
	if err := mainCmd.Execute(); err != nil {
		stdlog.Println(err)
		os.Exit(-1)
	}
}
