package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hcbtrack/hcb/pkg/calllog"
	"github.com/hcbtrack/hcb/pkg/cli/internal/output"
	"github.com/hcbtrack/hcb/pkg/fixtures"
	"github.com/hcbtrack/hcb/pkg/httputil"
	"github.com/hcbtrack/hcb/pkg/soap"
	"github.com/spf13/cobra"
)

// CallsPath lists the calls the mock server has received.
const CallsPath = "/_calls"

var mockOpsFile string

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local mock of the service",
	Long: `Run a local mock of the service serving sample responses.

By default the built-in sample school "springfield" is served, with login
` + fixtures.Username + ` / ` + fixtures.Password + `. --fixtures replaces the sample
responses with <dir>/s1100.xml, s1157.xml and s1158.xml; --ops loads a full
operation list from YAML. Received calls are listed at ` + CallsPath + `.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mockCfg, err := mockConfig()
		if err != nil {
			return err
		}
		handler, err := newMockHandler(mockCfg, calllog.NewMemoryStore(0))
		if err != nil {
			return err
		}

		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.Mock.Port)))
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return serveMock(cmd.Context(), ln, handler, mockCfg)
	},
}

func mockConfig() (*soap.Config, error) {
	switch {
	case mockOpsFile != "":
		return soap.LoadConfig(mockOpsFile)
	case cfg.Mock.FixturesDir != "":
		return fixtures.FromDir(cfg.Mock.FixturesDir)
	default:
		return fixtures.DefaultConfig(), nil
	}
}

// newMockHandler routes the SOAP endpoint and the call listing.
func newMockHandler(mockCfg *soap.Config, calls *calllog.MemoryStore) (http.Handler, error) {
	h, err := soap.NewHandler(mockCfg)
	if err != nil {
		return nil, err
	}
	h.SetLogger(logger)
	h.SetCallLog(calls)

	mux := http.NewServeMux()
	mux.Handle(h.Pattern(), h)
	mux.HandleFunc("GET "+CallsPath, func(w http.ResponseWriter, r *http.Request) {
		filter := &calllog.Filter{
			Operation: r.URL.Query().Get("operation"),
			FaultOnly: r.URL.Query().Get("fault") == "true",
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				httputil.WriteBadRequest(w, "invalid_limit", "limit must be a non-negative number")
				return
			}
			filter.Limit = n
		}
		httputil.WriteJSON(w, http.StatusOK, calls.List(filter))
	})
	mux.HandleFunc("DELETE "+CallsPath, func(w http.ResponseWriter, r *http.Request) {
		calls.Clear()
		httputil.WriteNoContent(w)
	})
	return mux, nil
}

func serveMock(ctx context.Context, ln net.Listener, handler http.Handler, mockCfg *soap.Config) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	path := mockCfg.Path
	if path == "" {
		path = soap.DefaultPath
	}
	output.Printf("Mock service listening on http://%s%s\n", ln.Addr(), path)
	logger.Info("mock server started", "addr", ln.Addr().String(), "operations", len(mockCfg.Operations))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("mock server stopping")
	return srv.Shutdown(shutdownCtx)
}

func init() {
	mockCmd.Flags().Int("port", 0, "Port to listen on (default: 8181, or HCB_MOCK_PORT)")
	mockCmd.Flags().String("fixtures", "", "Directory of <operation>.xml responses")
	mockCmd.Flags().StringVar(&mockOpsFile, "ops", "", "YAML file listing operations")
	rootCmd.AddCommand(mockCmd)
}
