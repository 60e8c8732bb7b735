package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/behavior-sim/behavior-sim/planner"
	"github.com/behavior-sim/behavior-sim/planner/cost"
	"github.com/behavior-sim/behavior-sim/planner/road"
	"github.com/behavior-sim/behavior-sim/planner/trace"
)

var (
	// CLI flags for the road configuration
	logLevel        string  // Log verbosity level
	scenarioPath    string  // Path to a scenario YAML file (optional)
	numLanes        int     // Number of lanes on the road
	speedLimit      float64 // Target speed for the ego vehicle
	maxAcceleration float64 // Hard acceleration magnitude limit
	goalS           float64 // Longitudinal goal position
	goalLane        int     // Goal lane index

	// CLI flags for the ego start state
	startLane  int     // Ego starting lane
	startS     float64 // Ego starting position
	startSpeed float64 // Ego starting speed

	// CLI flags for the harness
	cycles       int    // Number of planning cycles to run
	trafficCount int    // Number of randomly generated traffic vehicles
	seed         int64  // Seed for traffic generation
	traceLevel   string // Decision trace level
	horizon      int    // Rollout steps per candidate maneuver
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "behavior-sim",
	Short: "Discrete behavior planner for a vehicle on a multi-lane road",
}

// runCmd executes the planning harness using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the behavior planning harness",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		scenario := scenarioFromFlags()
		if scenarioPath != "" {
			loaded, err := LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
			}
			scenario = loaded
		}
		if scenario.Cycles == 0 {
			scenario.Cycles = cycles
		}

		logrus.Infof("Starting harness with %d lanes, speed limit %.1f, %d cycles",
			scenario.Road.LanesAvailable, scenario.Road.TargetSpeed, scenario.Cycles)

		ego := planner.NewVehicle(scenario.Ego.Lane, scenario.Ego.S, scenario.Ego.V, scenario.Ego.A)
		sel := planner.NewStateSelector(cost.New(cost.DefaultWeights()))
		sel.Horizon = horizon
		tr := trace.NewPlanningTrace(trace.TraceLevel(traceLevel))

		r, err := road.New(scenario.Road, ego, sel, tr)
		if err != nil {
			logrus.Fatalf("Failed to set up road: %v", err)
		}
		for _, tp := range scenario.Traffic {
			r.AddTraffic(road.TrafficVehicle{ID: tp.ID, Lane: tp.Lane, S: tp.S, V: tp.V})
		}
		if len(scenario.Traffic) == 0 && trafficCount > 0 {
			rng := road.NewPartitionedRNG(road.NewSimulationKey(seed))
			r.GenerateTraffic(trafficCount, rng, scenario.Road.GoalS)
		}

		results, err := r.Run(scenario.Cycles)
		if err != nil {
			logrus.Fatalf("Planning failed: %v", err)
		}

		printResults(results, tr)
		logrus.Info("Run complete.")
	},
}

// scenarioFromFlags assembles a Scenario from the CLI flag values, used when
// no scenario file is given.
func scenarioFromFlags() *Scenario {
	return &Scenario{
		Road: planner.RoadConfig{
			TargetSpeed:     speedLimit,
			MaxAcceleration: maxAcceleration,
			LanesAvailable:  numLanes,
			GoalS:           goalS,
			GoalLane:        goalLane,
		},
		Ego:    EgoStart{Lane: startLane, S: startS, V: startSpeed},
		Cycles: cycles,
	}
}

// printResults writes the per-cycle outcomes and, when tracing was on, the
// aggregated decision summary.
func printResults(results []road.CycleResult, tr *trace.PlanningTrace) {
	for _, res := range results {
		fmt.Printf("cycle %3d  %-4s  lane=%d  s=%8.2f  v=%6.2f  a=%6.2f\n",
			res.Cycle, res.State, res.Lane, res.S, res.V, res.A)
	}
	if !tr.Enabled() {
		return
	}
	summary := trace.Summarize(tr)
	fmt.Printf("\ndecisions: %d over %d cycles, mean winning cost %.2f, max %.2f\n",
		summary.TotalDecisions, summary.Cycles, summary.MeanWinningCost, summary.MaxWinningCost)
	states := make([]string, 0, len(summary.WinsByState))
	for state := range summary.WinsByState {
		states = append(states, state)
	}
	sort.Strings(states)
	for _, state := range states {
		fmt.Printf("  %-4s won %d cycles (%d evaluations)\n",
			state, summary.WinsByState[state], summary.EvaluationsByState[state])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a scenario YAML file")

	// Road configuration
	runCmd.Flags().IntVar(&numLanes, "lanes", 3, "Number of lanes on the road")
	runCmd.Flags().Float64Var(&speedLimit, "speed-limit", 20, "Target speed for the ego vehicle")
	runCmd.Flags().Float64Var(&maxAcceleration, "max-acceleration", 10, "Hard acceleration magnitude limit")
	runCmd.Flags().Float64Var(&goalS, "goal-s", 300, "Longitudinal goal position")
	runCmd.Flags().IntVar(&goalLane, "goal-lane", 0, "Goal lane index")

	// Ego start state
	runCmd.Flags().IntVar(&startLane, "start-lane", 1, "Ego starting lane")
	runCmd.Flags().Float64Var(&startS, "start-s", 0, "Ego starting position")
	runCmd.Flags().Float64Var(&startSpeed, "start-speed", 0, "Ego starting speed")

	// Harness configuration
	runCmd.Flags().IntVar(&cycles, "cycles", 30, "Number of planning cycles to run")
	runCmd.Flags().IntVar(&trafficCount, "traffic", 6, "Number of randomly generated traffic vehicles")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random traffic generation")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().IntVar(&horizon, "horizon", planner.DefaultTrajectoryHorizon, "Rollout steps per candidate maneuver")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
