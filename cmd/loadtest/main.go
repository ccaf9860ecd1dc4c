package main

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sonar-pr-decoration/internal/handler"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type loadOptions struct {
	targetHost string
	projects   []string
	token      string
	rps        int
	duration   time.Duration
	protobuf   bool
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	opts := loadOptions{
		targetHost: "http://localhost:8080",
		projects:   []string{"my-project"},
		rps:        5,
		duration:   time.Minute,
	}

	root := &cobra.Command{
		Use:   "loadtest",
		Short: "Load test of the pull request list endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.rps <= 0 {
				return fmt.Errorf("rate must be positive, got %d", opts.rps)
			}
			if len(opts.projects) == 0 {
				return fmt.Errorf("at least one project key is required")
			}
			metrics := runAttack(opts, logger)
			printReport(metrics)
			return nil
		},
	}

	root.Flags().StringVar(&opts.targetHost, "target", opts.targetHost, "base url of the service")
	root.Flags().StringSliceVar(&opts.projects, "project", opts.projects, "project keys to request (repeatable)")
	root.Flags().StringVar(&opts.token, "token", "", "user token sent as bearer credentials")
	root.Flags().IntVar(&opts.rps, "rate", opts.rps, "requests per second")
	root.Flags().DurationVar(&opts.duration, "duration", opts.duration, "attack duration")
	root.Flags().BoolVar(&opts.protobuf, "protobuf", false, "request protobuf responses instead of JSON")

	if err := root.Execute(); err != nil {
		logger.Fatalf("Load test failed: %v", err)
	}
}

// Targeter
func makeTargeter(opts loadOptions) vegeta.Targeter {
	header := http.Header{}
	header.Set("Accept", "application/json")
	if opts.protobuf {
		header.Set("Accept", handler.MIMEProtobuf)
	}
	if opts.token != "" {
		header.Set("Authorization", "Bearer "+opts.token)
	}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.Body = nil
		t.Header = header

		// 95% list, 5% worker_count
		if rand.Float64() < 0.95 {
			project := opts.projects[rand.IntN(len(opts.projects))]
			t.URL = fmt.Sprintf("%s/api/project_pull_requests/list?project=%s", opts.targetHost, url.QueryEscape(project))
			return nil
		}

		t.URL = opts.targetHost + "/api/ce/worker_count"
		return nil
	}
}

// Attack
func runAttack(opts loadOptions, logger *logrus.Logger) *vegeta.Metrics {
	rate := vegeta.Rate{Freq: opts.rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)
	go func() {
		if _, ok := <-stop; ok {
			logger.Info("Interrupted, stopping attack")
			attacker.Stop()
		}
	}()

	var metrics vegeta.Metrics

	logger.WithFields(logrus.Fields{
		"target":   opts.targetHost,
		"rate":     opts.rps,
		"duration": opts.duration.String(),
	}).Info("Starting attack")
	for res := range attacker.Attack(makeTargeter(opts), rate, opts.duration, "pull-request-list") {
		metrics.Add(res)
	}
	metrics.Close()

	return &metrics
}

func printReport(metrics *vegeta.Metrics) {
	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, count := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, count)
	}
}
