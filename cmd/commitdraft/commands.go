package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/commitdraft/internal/config"
	"github.com/roivaz/commitdraft/internal/hook"
	"github.com/roivaz/commitdraft/internal/logging"
	"github.com/roivaz/commitdraft/internal/mcp"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Stage (or commit) pending changes with a drafted message; meant to run after a coding session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd.Context(), cmd.OutOrStdout(), newLogger("commitdraft"))
	},
}

const hookSetupNotice = "Invalid commit message hook configuration, skipping"

// runHook never fails the session on bad configuration: setup errors are
// logged and reported on out like any other skip.
func runHook(ctx context.Context, out io.Writer, log logging.Logger) error {
	mode, err := hook.ParseMode(config.CommitMode())
	if err != nil {
		return skipHook(out, log, err)
	}
	d, err := newDrafter(log)
	if err != nil {
		return skipHook(out, log, err)
	}
	runner, err := hook.New(hook.Config{
		Repo:    newRepo(),
		Context: newContextReader(log),
		Drafter: d,
		Mode:    mode,
		Staged:  config.Staged(),
		Out:     out,
		Logger:  log,
	})
	if err != nil {
		return skipHook(out, log, err)
	}
	_, err = runner.Run(ctx)
	return err
}

func skipHook(out io.Writer, log logging.Logger, cause error) error {
	log.Error(cause, "hook setup failed")
	_, err := fmt.Fprintln(out, hookSetupNotice)
	return err
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Print a drafted commit message without touching the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("commitdraft")
		d, err := newDrafter(log)
		if err != nil {
			return err
		}
		diffText, err := diffFromFlags(cmd)
		if err != nil {
			return err
		}
		msg := d.Draft(diffText, newContextReader(log).Read())
		_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.String())
		return err
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the facts, concepts and draft extracted from a diff",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger("commitdraft")
		format, _ := cmd.Flags().GetString("output")
		format, err := normalizeFormat(format)
		if err != nil {
			return err
		}
		d, err := newDrafter(log)
		if err != nil {
			return err
		}
		diffText, err := diffFromFlags(cmd)
		if err != nil {
			return err
		}
		report := d.Report(diffText, newContextReader(log).Read())
		return writeReport(cmd.OutOrStdout(), format, report)
	},
}

var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Serve the drafting pipeline as MCP tools",
	RunE:  runMCPServer,
}

func init() {
	for _, c := range []*cobra.Command{draftCmd, analyzeCmd} {
		c.Flags().String("diff-file", "", "Read the diff from this file (\"-\" for stdin) instead of git")
	}
	analyzeCmd.Flags().StringP("output", "o", "yaml", "Output format: yaml, json or text")

	flags := mcpServerCmd.Flags()
	flags.String("transport", "", "MCP transport: http or stdio (default from mcp_transport)")
	flags.String("host", "", "HTTP host (default from mcp_host)")
	flags.Int("port", 0, "HTTP port (default from mcp_port)")
}

func diffFromFlags(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("diff-file"); path != "" {
		return readDiffInput(path, cmd.InOrStdin())
	}
	return newRepo().Diff(cmd.Context(), config.Staged()), nil
}

func writeReport(w io.Writer, format string, report any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		_, err := fmt.Fprintf(w, "%+v\n", report)
		return err
	default:
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	log := newLogger("mcp-server")
	d, err := newDrafter(log)
	if err != nil {
		return err
	}
	srv := mcp.New(mcp.DefaultConfig(d))

	transport, _ := cmd.Flags().GetString("transport")
	if transport == "" {
		transport = config.MCPTransport()
	}
	if transport == "stdio" {
		return srv.ServeStdio()
	}

	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		host = config.MCPHost()
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = config.MCPPort()
	}
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
