package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/dimacs"
	"github.com/msharpe248/bsat-sub001/sat"
	"github.com/msharpe248/bsat-sub001/solver"
)

var startTime time.Time

func getFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug,d",
			Usage: "Debug logging",
		},
		cli.BoolTFlag{
			Name:  "verbosity,verb",
			Usage: "Verbosity mode",
		},
		cli.StringFlag{
			Name:  "input-file, in",
			Usage: "Input cnf file for solving (required)",
			Value: "None",
		},
		cli.StringFlag{
			Name:  "config-file, conf",
			Usage: "YAML file with solver options",
		},
		cli.StringFlag{
			Name:  "solver",
			Usage: "Solver family: " + strings.Join(sat.Kinds(), ", "),
			Value: string(sat.KindCDCL),
		},
		cli.IntFlag{
			Name:  "cpu-time-limit",
			Usage: "Limit on solving time allowed in seconds",
			Value: -1,
		},
	}
}

func validateFlags(c *cli.Context) error {
	if c.String("input-file") == "None" {
		return fmt.Errorf("input-file is required")
	}
	return nil
}

func loadConfig(c *cli.Context) (solver.Config, error) {
	cfg := solver.DefaultConfig()
	if path := c.String("config-file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		cfg, err = solver.ConfigFromYAML(f)
		if err != nil {
			return cfg, err
		}
	}
	if limit := c.Int("cpu-time-limit"); limit > 0 {
		cfg.TimeLimit = time.Duration(limit) * time.Second
	}
	cfg.Verbose = c.Bool("verbosity")
	return cfg, nil
}

func printProblemStatistics(f *cnf.Formula) {
	fmt.Printf("c ============================[ Problem Statistics ]=============================\n")
	fmt.Printf("c |                                                                             |\n")
	fmt.Printf("c |  Number of variables:  %12d                                         |\n", f.NumVars)
	fmt.Printf("c |  Number of clauses:    %12d                                         |\n", len(f.Clauses))
	fmt.Printf("c ================================================================================\n")
}

func printStatistics(stats solver.Stats) {
	elapsed := time.Since(startTime).Seconds()
	fmt.Printf("c ================================================================================\n")
	fmt.Printf("c restarts: %12d\n", stats.Restarts)
	fmt.Printf("c conflicts: %12d (%.02f / sec)\n", stats.Conflicts, float64(stats.Conflicts)/elapsed)
	fmt.Printf("c decisions: %12d (%.02f / sec)\n", stats.Decisions, float64(stats.Decisions)/elapsed)
	fmt.Printf("c propagations: %12d (%.02f / sec)\n", stats.Propagations, float64(stats.Propagations)/elapsed)
	fmt.Printf("c learnt clauses: %12d\n", stats.LearntClauses)
	fmt.Printf("c reduce DB: %12d\n", stats.ReduceDBs)
	fmt.Printf("c removed clauses: %12d\n", stats.RemovedClauses)
	fmt.Printf("c cpu time: %12f\n", elapsed)
}

func setInterrupt() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("c INTERRUPT")
		fmt.Println("\ns INDETERMINATE")
		os.Exit(0)
	}()
}

func init() {
	startTime = time.Now()
}

func main() {
	app := cli.NewApp()
	app.Name = "bsat"
	app.Usage = "A CDCL SAT solver with specialized polynomial and local-search backends"
	app.Flags = getFlags()

	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("debug") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	}

	app.Action = func(c *cli.Context) error {
		if err := validateFlags(c); err != nil {
			fmt.Println(err)
			cli.ShowAppHelpAndExit(c, 2)
		}

		fp, err := os.Open(c.String("input-file"))
		if err != nil {
			return err
		}
		defer fp.Close()

		f, err := dimacs.Parse(fp)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if c.Bool("verbosity") {
			printProblemStatistics(f)
		}
		setInterrupt()

		result, err := sat.Solve(f, cfg, sat.Kind(c.String("solver")))
		if err != nil {
			return err
		}
		if c.Bool("verbosity") {
			printStatistics(result.Stats)
		}
		switch result.Status {
		case solver.StatusSatisfiable:
			fmt.Println("\ns SATISFIABLE")
			if err := dimacs.WriteModel(os.Stdout, result.Model); err != nil {
				return err
			}
		case solver.StatusUnsatisfiable:
			fmt.Println("\ns UNSATISFIABLE")
		default:
			if result.Reason != "" {
				fmt.Printf("c %s\n", result.Reason)
			}
			fmt.Println("\ns INDETERMINATE")
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
