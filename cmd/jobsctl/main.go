package main

// Query the job aggregator from the command line:
//   go run ./cmd/jobsctl -keywords golang -remote true
//   go run ./cmd/jobsctl -id 12345

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/url"
	"os"

	"jobprep-backend/internal/jobs"
	"jobprep-backend/internal/shared/config"
	"jobprep-backend/internal/shared/telemetry"
)

func main() {
	var (
		keywords = flag.String("keywords", "", "match title, company, description or tags")
		category = flag.String("category", "", "match a tag")
		location = flag.String("location", "", "match location")
		remote   = flag.String("remote", "", "true or false")
		id       = flag.String("id", "", "fetch a single job by id")
	)
	flag.Parse()

	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)

	client := &http.Client{Timeout: cfg.JobsHTTPTimeout}
	agg := jobs.NewAggregator(
		jobs.NewRemoteOK(cfg.RemoteOKURL, client),
		jobs.NewRemotive(cfg.RemotiveURL, client),
	)
	ctx := context.Background()

	var out any
	if *id != "" {
		job, ok := agg.GetJobByID(ctx, *id)
		if !ok {
			telemetry.Error("jobsctl.not_found", map[string]any{"id": *id})
			os.Exit(1)
		}
		out = job
	} else {
		values := url.Values{}
		values.Set("keywords", *keywords)
		values.Set("category", *category)
		values.Set("location", *location)
		values.Set("remote", *remote)
		filter, err := jobs.ParseFilter(values)
		if err != nil {
			telemetry.Error("jobsctl.invalid_filter", map[string]any{"error": err.Error()})
			os.Exit(2)
		}
		out = agg.GetJobs(ctx, filter)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		telemetry.Error("jobsctl.encode_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
