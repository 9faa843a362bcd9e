package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mit.edu/dsg/zero100"
	"mit.edu/dsg/zero100/config"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/util/logger"
)

var (
	cfg       = config.Default()
	tableName string
	aggName   string
	verbose   bool
	// compareRows sizes the regular table loaded next to the synthetic one.
	compareRows int
)

var rootCmd = &cobra.Command{
	Use:   "zero100",
	Short: "plan and run queries against the zero100 custom scan",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.L.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "print the plan chosen for the query",
	Args:  cobra.NoArgs,
	RunE:  runExplain,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "execute the query and print its rows",
	Args:  cobra.NoArgs,
	RunE:  runQuery,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.TableName, "zero-table", cfg.TableName, "name of the table served by the custom scan")
	pf.IntVar(&cfg.BlockCapacity, "capacity", cfg.BlockCapacity, "number of integers the custom scan produces")
	pf.StringVar(&tableName, "table", "", "table to query (default: the --zero-table)")
	pf.StringVar(&aggName, "agg", "sum", "aggregate over the first column: sum, count, min, max or none")
	pf.IntVar(&compareRows, "numbers", 100, "rows loaded into the regular table 'numbers'")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log planning and execution at debug level")

	rootCmd.AddCommand(explainCmd, runCmd)
}

func buildQuery() (*zero100.Engine, *planner.Query, error) {
	e, err := zero100.NewEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]int32, compareRows)
	for i := range rows {
		rows[i] = []int32{int32(i)}
	}
	if _, err := e.CreateTable("numbers", []string{"v"}, rows); err != nil {
		return nil, nil, err
	}

	table := tableName
	if table == "" {
		table = cfg.TableName
	}

	var q *planner.Query
	switch aggName {
	case "none":
		q, err = e.ScanQuery(table)
	case "sum":
		q, err = e.AggregateQuery(table, planner.AggSum)
	case "count":
		q, err = e.AggregateQuery(table, planner.AggCount)
	case "min":
		q, err = e.AggregateQuery(table, planner.AggMin)
	case "max":
		q, err = e.AggregateQuery(table, planner.AggMax)
	default:
		err = errors.Errorf("unknown aggregate %q", aggName)
	}
	return e, q, err
}

func runExplain(cmd *cobra.Command, args []string) error {
	e, q, err := buildQuery()
	if err != nil {
		return err
	}
	plan, err := e.Explain(q)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), plan)
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	e, q, err := buildQuery()
	if err != nil {
		return err
	}
	rows, err := e.Execute(q)
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "(%d rows)\n", len(rows))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.L.WithError(err).Error("zero100 failed")
		os.Exit(1)
	}
}
