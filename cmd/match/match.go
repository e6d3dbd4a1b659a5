// Package match provides the match command, which checks observed numbers
// against a caller-ID watchlist.
package match

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/logger"
	"github.com/endorses/telnum/internal/pkg/metrics"
	"github.com/endorses/telnum/internal/pkg/numcompare"
	"github.com/endorses/telnum/internal/pkg/output"
	"github.com/endorses/telnum/internal/pkg/phonematcher"
	"github.com/endorses/telnum/internal/pkg/signals"
)

// Result is the JSON output for one observed number.
type Result struct {
	Observed string `json:"observed"`
	Matched  bool   `json:"matched"`
	Number   string `json:"number,omitempty"`
	Key      string `json:"key,omitempty"`
}

// Summary is the JSON output of match --count.
type Summary struct {
	Observed int `json:"observed"`
	Matched  int `json:"matched"`
}

var (
	watchlist   []string
	countOnly   bool
	fromStdin   bool
	watchConfig bool
	metricsAddr string
)

// MatchCmd matches observed numbers against the watchlist.
var MatchCmd = &cobra.Command{
	Use:   "match <observed>...",
	Short: "Match observed numbers against a watchlist",
	Long: `Match observed numbers or SIP/tel URIs against a watchlist.

The watchlist comes from --watchlist or the watchlist config key. Numbers
are compared the way the network country requires (loose by default).

With --stdin, observed numbers are read one per line and a JSON result is
written per line until EOF or SIGINT. SIGHUP reloads the watchlist from
the config file, and so does every write to it with --watch-config.
--metrics-addr serves Prometheus counters while streaming. --count prints
only how many of the arguments matched.`,
	Example: `  telnum match --watchlist "+1 650-555-1212" 6505551212 "sip:+16505551212@gw.example.com"
  telnum match --network-country BR 11987654321
  telnum match --count --watchlist 911,112 911 112 6505551212
  tail -f calls.log | telnum match --stdin --watch-config --metrics-addr :9464`,
	Args: func(cmd *cobra.Command, args []string) error {
		if fromStdin {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		numbers := cmdutil.GetStringSliceConfig("watchlist", watchlist)
		if len(numbers) == 0 {
			return cmdutil.Usagef("watchlist is empty (use --watchlist or set watchlist in config)")
		}

		country := cmdutil.GetStringConfig("country.network", "")
		m := NewMatcher(cfg.Compare, country)
		m.UpdateNumbers(numbers)
		logger.Debug("Watchlist loaded",
			"numbers", m.Size(),
			"keys", m.Keys(),
			"mode", cfg.Compare.ModeFor(country))

		if countOnly && fromStdin {
			return cmdutil.Usagef("--count cannot be combined with --stdin")
		}
		if countOnly {
			return output.WriteJSON(cmd.OutOrStdout(), Count(m, args))
		}
		if !fromStdin {
			return output.WriteJSON(cmd.OutOrStdout(), MatchAll(m, args))
		}

		var exp *metrics.Exporter
		if metricsAddr != "" {
			exp = metrics.NewExporter()
			exp.SetWatchlistSize(m.Size())
			exp.Enable(metricsAddr)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := exp.Shutdown(ctx); err != nil {
					logger.Warn("Failed to stop metrics server", "error", err)
				}
			}()
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		r := &reloader{m: m, exp: exp}
		if watchConfig {
			path := viper.ConfigFileUsed()
			if path == "" {
				return cmdutil.Usagef("--watch-config needs a config file")
			}
			stopWatch, err := watchFile(ctx, path, func() { _ = r.reload() })
			if err != nil {
				return err
			}
			defer stopWatch()
		}

		stopSignals := signals.SetupHandler(ctx, cancel)
		stopReload := signals.OnReload(ctx, func() { _ = r.reload() })

		err = Stream(ctx, m, cmd.InOrStdin(), cmd.OutOrStdout(), exp)
		// Both handlers wait for ctx before returning.
		cancel()
		stopReload()
		stopSignals()
		return err
	},
}

func init() {
	MatchCmd.Flags().StringSliceVarP(&watchlist, "watchlist", "w", nil, "Watchlist numbers")
	MatchCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Only print how many observed numbers matched")
	MatchCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read observed numbers from stdin, one per line")
	MatchCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "Reload the watchlist when the config file changes (with --stdin)")
	MatchCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (with --stdin)")
}

// errEmptyWatchlist keeps the previous watchlist in place.
var errEmptyWatchlist = errors.New("reloaded watchlist is empty")

// applyWatchlist loads the watchlist currently held by viper into m.
func applyWatchlist(m *phonematcher.Matcher) error {
	numbers := cmdutil.GetStringSliceConfig("watchlist", watchlist)
	if len(numbers) == 0 {
		logger.Warn("Reloaded watchlist is empty, keeping previous one")
		return errEmptyWatchlist
	}
	m.UpdateNumbers(numbers)
	logger.Info("Watchlist reloaded", "numbers", m.Size())
	return nil
}

// Stream matches every non-blank line of r, writing one JSON result per
// line to w, until r is exhausted or ctx is done. exp may be nil.
func Stream(ctx context.Context, m *phonematcher.Matcher, r io.Reader, w io.Writer, exp *metrics.Exporter) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}
		errCh <- sc.Err()
	}()

	enc := json.NewEncoder(w)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errCh; err != nil {
					return fmt.Errorf("failed to read observed numbers: %w", err)
				}
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			start := time.Now()
			res := MatchAll(m, []string{line})[0]
			exp.RecordMatch(res.Matched, time.Since(start))
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
	}
}

// NewMatcher returns a matcher comparing numbers as policy requires in
// country.
func NewMatcher(policy numcompare.Policy, country string) *phonematcher.Matcher {
	if policy.ModeFor(country) == numcompare.ModeLoose {
		return phonematcher.New()
	}
	return phonematcher.NewWithCompare(func(a, b string) bool {
		return policy.Compare(a, b, country)
	})
}

// MatchAll matches every observed number.
func MatchAll(m *phonematcher.Matcher, observed []string) []Result {
	results := make([]Result, len(observed))
	for i, obs := range observed {
		results[i].Observed = obs
		if res, ok := m.MatchWithDetails(obs); ok {
			results[i].Matched = true
			results[i].Number = res.Matched
			results[i].Key = res.Key
		}
	}
	return results
}

// Count reports how many observed numbers match the watchlist.
func Count(m *phonematcher.Matcher, observed []string) Summary {
	sum := Summary{Observed: len(observed)}
	for _, ok := range m.MatchBatch(observed) {
		if ok {
			sum.Matched++
		}
	}
	return sum
}
