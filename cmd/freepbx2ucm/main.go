// Command freepbx2ucm converts a FreePBX Bulk Extensions CSV export into the
// CSV format accepted by the Grandstream UCM bulk-import facility.
//
// Example:
//
//	freepbx2ucm -in freepbx_extensions.csv -out ucm_export.csv -prettyname
//
// The built-in output mapping can be dumped with -dump-mapping, edited, and
// passed back with -mapping; no code changes are needed to reshape the
// output.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/veryxcit/freepbx2ucm/internal/config"
	"github.com/veryxcit/freepbx2ucm/internal/mapping"
	"github.com/veryxcit/freepbx2ucm/internal/metrics"
	"github.com/veryxcit/freepbx2ucm/internal/metrics/prompush"
	"github.com/veryxcit/freepbx2ucm/internal/pipeline"
)

func main() {
	var (
		cfg               config.Config
		dumpMapping       bool
		validateOnly      bool
		metricsBackendFlg string
		pushGatewayURLFlg string
	)

	flag.StringVar(&cfg.InputPath, "in", "", "input FreePBX Bulk Extensions CSV (required)")
	flag.StringVar(&cfg.OutputPath, "out", config.DefaultOutputPath, "output UCM import CSV")
	flag.StringVar(&cfg.MappingPath, "mapping", "", "YAML mapping override (default: built-in mapping)")
	flag.StringVar(&cfg.RejectsPath, "rejects", "", "optional CSV audit file for rejected rows")
	flag.BoolVar(&cfg.AllRandom, "allrandom", false, "generate random secrets instead of zero-filling existing ones")
	flag.BoolVar(&cfg.PrettyName, "prettyname", false, `convert names like "FIRST LAST" to "First Last"`)
	flag.BoolVar(&cfg.UseFaxEmail, "usefaxemail", false, "prefer the primary email, falling back to the fax email")
	flag.BoolVar(&cfg.BypassCount, "bypasscount", false, "do not abort on a row accounting mismatch")
	flag.StringVar(&cfg.Job, "job", config.DefaultJob, "job name used for metrics labeling")
	flag.BoolVar(&cfg.Verbose, "v", false, "enable verbose logs")
	flag.BoolVar(&dumpMapping, "dump-mapping", false, "print the built-in mapping YAML and exit")
	flag.BoolVar(&validateOnly, "validate", false, "validate the configuration and mapping, then exit")
	flag.StringVar(&metricsBackendFlg, "metrics-backend", "none", "metrics backend to use (pushgateway, none)")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.Parse()

	if dumpMapping {
		os.Stdout.Write(mapping.DefaultYAML())
		return
	}

	// Validate run configuration.
	issues := config.Validate(cfg)

	// Load the mapping definition and fold its issues in.
	def := mapping.Default()
	if cfg.MappingPath != "" {
		var err error
		def, err = mapping.LoadFile(cfg.MappingPath)
		if err != nil {
			fatalf("%v", err)
		}
	}
	issues = append(issues, def.Validate()...)

	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if config.HasError(issues) {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}
	if validateOnly {
		log.Printf("configuration is valid")
		return
	}

	setupMetrics(metricsBackendFlg, pushGatewayURLFlg, cfg.Job, cfg.Verbose)

	start := time.Now()
	sum, err := pipeline.Run(cfg, def, os.Stdout)
	metrics.RecordRun(cfg.Job, err, time.Since(start))
	if ferr := metrics.Flush(); ferr != nil {
		log.Printf("metrics: flush error: %v", ferr)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.Verbose {
		log.Printf("exported %d of %d data rows to %s in %s",
			sum.Exported, sum.TotalRows-1, cfg.OutputPath, time.Since(start).Truncate(time.Millisecond))
	}
}

// setupMetrics decides the metrics backend: flag, then env, then none.
func setupMetrics(backendName, gatewayURL, job string, verbose bool) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	switch backendName {
	case "pushgateway":
		if gatewayURL == "" {
			gatewayURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gatewayURL == "" {
			gatewayURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend(job, gatewayURL)
		if err != nil {
			log.Printf("metrics: failed to init pushgateway backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: backend=%s url=%s job=%s", backendName, gatewayURL, job)
		}
		metrics.SetBackend(b)

	case "", "none":
		// metrics disabled; nop backend remains

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
