package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofisch25/InClassEmpApp/internal/config"
	"github.com/sofisch25/InClassEmpApp/internal/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server over stdio.

This lets AI agents work with the employee records and the operations
log through MCP tools instead of spawning CLI commands. Mutating tools
validate input and record audit entries exactly like the interactive
menu.

Available Tools:
  list_employees     List records, optionally filtered
  get_employee       Look up one record by id
  create_employee    Create a validated record
  update_employee    Change fields of a record
  delete_employee    Remove a record
  salary_statistics  Salary statistics, overall or per department
  salary_report      The full analytics report
  query_audit_log    Read-only SQL against the operations database
  get_audit_schema   Operations database schema

Examples:
  empapp serve                              # All tools, configured timeout
  empapp serve --tools list_employees,get_employee
  empapp serve --timeout 2h                 # Stop after 2 idle hours
  empapp serve --timeout 0                  # Never time out
  empapp serve status                       # Check if a server is running
  empapp serve stop                         # Stop a running server`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// serveStatusCmd reports whether a server process is running.
var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether an MCP server is running",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkServerStatus()
	},
}

// serveStopCmd stops a running server process.
var serveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running MCP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var (
	serveTools   string
	serveTimeout string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(serveStatusCmd)
	serveCmd.AddCommand(serveStopCmd)

	serveCmd.Flags().StringVar(&serveTools, "tools", "", "Comma-separated list of tools to expose (default: all)")
	serveCmd.Flags().StringVar(&serveTimeout, "timeout", "", "Inactivity timeout, e.g. 30m (0 for no timeout; defaults to the configured value)")
}

func runServe(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	timeout := time.Duration(env.cfg.Server.InactivityTimeout) * time.Minute
	if serveTimeout != "" {
		timeout, err = parseDuration(serveTimeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
	}

	var tools []string
	if serveTools != "" {
		for _, t := range strings.Split(serveTools, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tools = append(tools, t)
			}
		}
	}

	srv, err := mcp.New(env.store, env.audit, env.changes, mcp.Config{
		Name:    env.cfg.Server.Name,
		Version: env.cfg.Server.Version,
		Tools:   tools,
		Timeout: timeout,
	}, env.log)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.Close()

	if err := writePIDFile(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write PID file: %v\n", err)
	}
	defer removePIDFile()

	// Graceful shutdown on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "\nempapp serve: shutting down\n")
		srv.Close()
		removePIDFile()
		os.Exit(0)
	}()

	// Startup info goes to stderr: stdout carries the MCP protocol.
	fmt.Fprintf(os.Stderr, "empapp serve: starting MCP server\n")
	fmt.Fprintf(os.Stderr, "empapp serve: tools: %v\n", srv.ListTools())
	if timeout > 0 {
		fmt.Fprintf(os.Stderr, "empapp serve: timeout: %v\n", timeout)
	}

	return srv.ServeStdio()
}

func parseDuration(s string) (time.Duration, error) {
	if s == "0" || s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func getPIDFilePath() (string, error) {
	configDir, err := config.FindConfigDir(".")
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "serve.pid"), nil
}

func writePIDFile() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func removePIDFile() {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return
	}
	os.Remove(pidPath)
}

func checkServerStatus() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		fmt.Println("Status: not running (empapp not initialized)")
		return nil
	}

	data, err := os.ReadFile(pidPath)
	if err != nil {
		fmt.Println("Status: not running")
		return nil
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		fmt.Println("Status: not running (invalid PID file)")
		return nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		fmt.Println("Status: not running")
		removePIDFile()
		return nil
	}

	// On Unix FindProcess always succeeds; signal 0 probes for liveness.
	err = process.Signal(syscall.Signal(0))
	if err != nil {
		fmt.Println("Status: not running (stale PID file)")
		removePIDFile()
		return nil
	}

	fmt.Printf("Status: running (PID %d)\n", pid)
	return nil
}

func stopServer() error {
	pidPath, err := getPIDFilePath()
	if err != nil {
		return fmt.Errorf("empapp not initialized")
	}

	data, err := os.ReadFile(pidPath)
	if err != nil {
		fmt.Println("No server running")
		return nil
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		removePIDFile()
		return fmt.Errorf("invalid PID file")
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		removePIDFile()
		fmt.Println("No server running")
		return nil
	}

	// SIGTERM lets the server remove its own PID file on the way out.
	err = process.Signal(syscall.SIGTERM)
	if err != nil {
		removePIDFile()
		fmt.Println("Server already stopped")
		return nil
	}

	fmt.Printf("Stopped server (PID %d)\n", pid)
	return nil
}
