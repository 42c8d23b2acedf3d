// Package mcp provides an MCP (Model Context Protocol) server for empapp.
// It lets AI agents operate on the employee records and the operations log
// through MCP tools instead of CLI commands.
package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/report"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// watchdogInterval is how often the inactivity checker wakes up.
const watchdogInterval = 30 * time.Second

// Server wraps the MCP server with the record store, the audit log, and
// the in-memory salary change log.
type Server struct {
	mcpServer    *server.MCPServer
	store        *store.FileStore
	audit        *audit.Log
	changes      *analytics.ChangeLog
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	stopped      chan struct{}
	watchOnce    sync.Once
	closeOnce    sync.Once
	mu           sync.RWMutex
	log          zerolog.Logger
}

// Config holds server configuration.
type Config struct {
	Name    string        // Server name reported to clients (default empapp)
	Version string        // Server version reported to clients
	Tools   []string      // Which tools to expose (empty = all)
	Timeout time.Duration // Inactivity timeout (0 = run forever)
}

// AllTools lists all available tools.
var AllTools = []string{
	"list_employees", "get_employee", "create_employee", "update_employee",
	"delete_employee", "salary_statistics", "salary_report",
	"query_audit_log", "get_audit_schema",
}

// New creates an MCP server over the given store and audit log. The server
// takes ownership of the audit handle; Close releases it.
func New(st *store.FileStore, auditLog *audit.Log, changes *analytics.ChangeLog, cfg Config, logger zerolog.Logger) (*Server, error) {
	name := cfg.Name
	if name == "" {
		name = "empapp"
	}
	version := cfg.Version
	if version == "" {
		version = "1.0.0"
	}

	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		store:        st,
		audit:        auditLog,
		changes:      changes,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
		stopped:      make(chan struct{}),
		log:          logger,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server.
func (s *Server) registerTool(name string) error {
	switch name {
	case "list_employees":
		s.registerListTool()
	case "get_employee":
		s.registerGetTool()
	case "create_employee":
		s.registerCreateTool()
	case "update_employee":
		s.registerUpdateTool()
	case "delete_employee":
		s.registerDeleteTool()
	case "salary_statistics":
		s.registerStatisticsTool()
	case "salary_report":
		s.registerReportTool()
	case "query_audit_log":
		s.registerAuditQueryTool()
	case "get_audit_schema":
		s.registerAuditSchemaTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
	return nil
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	s.StartWatchdog()
	return server.ServeStdio(s.mcpServer)
}

// StartWatchdog launches the inactivity checker when a timeout is
// configured. It is a no-op otherwise and safe to call more than once.
func (s *Server) StartWatchdog() {
	if s.timeout <= 0 {
		return
	}
	s.watchOnce.Do(func() { go s.timeoutChecker() })
}

// timeoutChecker monitors for inactivity and exits once the configured
// timeout elapses without a tool call.
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(watchdogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopped:
			return
		case <-ticker.C:
			s.mu.RLock()
			elapsed := time.Since(s.lastActivity)
			s.mu.RUnlock()

			if elapsed > s.timeout {
				s.log.Warn().Dur("timeout", s.timeout).Msg("inactivity timeout, shutting down")
				fmt.Fprintf(os.Stderr, "empapp serve: timeout after %v of inactivity\n", s.timeout)
				os.Exit(0)
			}
		}
	}
}

// updateActivity updates the last activity timestamp.
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// Close stops the watchdog and releases the audit database handle.
func (s *Server) Close() error {
	s.closeOnce.Do(func() { close(s.stopped) })
	if s.audit != nil {
		return s.audit.Close()
	}
	return nil
}

// ListTools returns the list of registered tools.
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}

// ToolSchema describes a tool's name, description, and parameters.
type ToolSchema struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Parameters  []ParameterSchema `json:"parameters" yaml:"parameters"`
}

// ParameterSchema describes a single tool parameter.
type ParameterSchema struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// toolSchemaRegistry holds the schema definitions for all tools.
// These mirror the mcp.NewTool() definitions in the register*Tool() functions.
var toolSchemaRegistry = map[string]ToolSchema{
	"list_employees": {
		Name:        "list_employees",
		Description: "List employee records, optionally filtered by department or type.",
		Parameters: []ParameterSchema{
			{Name: "department", Type: "string", Description: "Filter by department code (exact match)"},
			{Name: "type", Type: "string", Description: "Filter by record type: Employee or Manager"},
		},
	},
	"get_employee": {
		Name:        "get_employee",
		Description: "Look up a single employee record by id.",
		Parameters: []ParameterSchema{
			{Name: "id", Type: "string", Description: "Employee id to look up", Required: true},
		},
	},
	"create_employee": {
		Name:        "create_employee",
		Description: "Create a new employee or manager record. All fields are validated; the operation is recorded in the audit log.",
		Parameters: []ParameterSchema{
			{Name: "id", Type: "string", Description: "Unique employee id (stored upper-cased)", Required: true},
			{Name: "first_name", Type: "string", Description: "First name (letters only)", Required: true},
			{Name: "last_name", Type: "string", Description: "Last name (letters only)", Required: true},
			{Name: "department", Type: "string", Description: "Department code, 2-3 letters", Required: true},
			{Name: "phone_number", Type: "string", Description: "Phone number with exactly 10 digits", Required: true},
			{Name: "salary", Type: "number", Description: "Annual salary (default 0)"},
			{Name: "manager", Type: "boolean", Description: "Create a manager instead of a regular employee"},
			{Name: "team_size", Type: "number", Description: "Direct reports (managers only)"},
			{Name: "office_number", Type: "string", Description: "Office designation (managers only)"},
		},
	},
	"update_employee": {
		Name:        "update_employee",
		Description: "Update fields of an existing record. Only the provided fields change; the operation is recorded in the audit log.",
		Parameters: []ParameterSchema{
			{Name: "id", Type: "string", Description: "Employee id to update", Required: true},
			{Name: "first_name", Type: "string", Description: "New first name"},
			{Name: "last_name", Type: "string", Description: "New last name"},
			{Name: "department", Type: "string", Description: "New department code"},
			{Name: "phone_number", Type: "string", Description: "New phone number"},
			{Name: "salary", Type: "number", Description: "New annual salary"},
			{Name: "team_size", Type: "number", Description: "New team size (managers only)"},
			{Name: "office_number", Type: "string", Description: "New office designation (managers only)"},
		},
	},
	"delete_employee": {
		Name:        "delete_employee",
		Description: "Delete an employee record by id. The operation is recorded in the audit log.",
		Parameters: []ParameterSchema{
			{Name: "id", Type: "string", Description: "Employee id to delete", Required: true},
		},
	},
	"salary_statistics": {
		Name:        "salary_statistics",
		Description: "Salary statistics (count, average, min, max, median, total) over all records or one department.",
		Parameters: []ParameterSchema{
			{Name: "department", Type: "string", Description: "Restrict statistics to one department"},
		},
	},
	"salary_report": {
		Name:        "salary_report",
		Description: "Full salary analytics report: overall, by department, by type, gap analysis, top earners, recent changes.",
		Parameters: []ParameterSchema{
			{Name: "format", Type: "string", Description: "Output format: json (default) or text"},
		},
	},
	"query_audit_log": {
		Name:        "query_audit_log",
		Description: "Run a read-only SELECT query against the operations log database. Non-SELECT statements are rejected.",
		Parameters: []ParameterSchema{
			{Name: "query", Type: "string", Description: "SQL SELECT query to execute", Required: true},
		},
	},
	"get_audit_schema": {
		Name:        "get_audit_schema",
		Description: "Describe the operations log database: tables and their columns.",
		Parameters:  []ParameterSchema{},
	},
}

// GetToolSchemas returns schemas for all registered tools.
func (s *Server) GetToolSchemas() []ToolSchema {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schemas := make([]ToolSchema, 0, len(s.tools))
	for name := range s.tools {
		if schema, ok := toolSchemaRegistry[name]; ok {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}

// CallTool dispatches a tool call by name with the given arguments.
// Returns the JSON (or text, for the text report) result string.
func (s *Server) CallTool(name string, args map[string]interface{}) (string, error) {
	s.mu.RLock()
	registered := s.tools[name]
	s.mu.RUnlock()

	if !registered {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	switch name {
	case "list_employees":
		department, _ := args["department"].(string)
		typeFilter, _ := args["type"].(string)
		return s.executeList(department, typeFilter)

	case "get_employee":
		id, _ := args["id"].(string)
		if id == "" {
			return "", fmt.Errorf("id parameter is required")
		}
		return s.executeGet(id)

	case "create_employee":
		ca, err := parseCreateArgs(args)
		if err != nil {
			return "", err
		}
		return s.executeCreate(ca)

	case "update_employee":
		id, _ := args["id"].(string)
		if id == "" {
			return "", fmt.Errorf("id parameter is required")
		}
		return s.executeUpdate(id, args)

	case "delete_employee":
		id, _ := args["id"].(string)
		if id == "" {
			return "", fmt.Errorf("id parameter is required")
		}
		return s.executeDelete(id)

	case "salary_statistics":
		department, _ := args["department"].(string)
		return s.executeStatistics(department)

	case "salary_report":
		format, _ := args["format"].(string)
		if format == "" {
			format = "json"
		}
		return s.executeReport(format)

	case "query_audit_log":
		query, _ := args["query"].(string)
		if query == "" {
			return "", fmt.Errorf("query parameter is required")
		}
		return s.executeAuditQuery(query)

	case "get_audit_schema":
		return s.executeAuditSchema()

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// makeHandler adapts CallTool to the mcp-go handler signature. Tool errors
// come back as error results, not protocol errors.
func (s *Server) makeHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.updateActivity()

		result, err := s.CallTool(name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

// Tool registration

func (s *Server) registerListTool() {
	tool := mcp.NewTool("list_employees",
		mcp.WithDescription("List employee records, optionally filtered by department or type."),
		mcp.WithString("department",
			mcp.Description("Filter by department code (exact match)"),
		),
		mcp.WithString("type",
			mcp.Description("Filter by record type: Employee or Manager"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("list_employees"))
}

func (s *Server) registerGetTool() {
	tool := mcp.NewTool("get_employee",
		mcp.WithDescription("Look up a single employee record by id."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Employee id to look up"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("get_employee"))
}

func (s *Server) registerCreateTool() {
	tool := mcp.NewTool("create_employee",
		mcp.WithDescription("Create a new employee or manager record. All fields are validated; the operation is recorded in the audit log."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Unique employee id (stored upper-cased)"),
		),
		mcp.WithString("first_name",
			mcp.Required(),
			mcp.Description("First name (letters only)"),
		),
		mcp.WithString("last_name",
			mcp.Required(),
			mcp.Description("Last name (letters only)"),
		),
		mcp.WithString("department",
			mcp.Required(),
			mcp.Description("Department code, 2-3 letters"),
		),
		mcp.WithString("phone_number",
			mcp.Required(),
			mcp.Description("Phone number with exactly 10 digits"),
		),
		mcp.WithNumber("salary",
			mcp.Description("Annual salary (default 0)"),
		),
		mcp.WithBoolean("manager",
			mcp.Description("Create a manager instead of a regular employee"),
		),
		mcp.WithNumber("team_size",
			mcp.Description("Direct reports (managers only)"),
		),
		mcp.WithString("office_number",
			mcp.Description("Office designation (managers only)"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("create_employee"))
}

func (s *Server) registerUpdateTool() {
	tool := mcp.NewTool("update_employee",
		mcp.WithDescription("Update fields of an existing record. Only the provided fields change; the operation is recorded in the audit log."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Employee id to update"),
		),
		mcp.WithString("first_name",
			mcp.Description("New first name"),
		),
		mcp.WithString("last_name",
			mcp.Description("New last name"),
		),
		mcp.WithString("department",
			mcp.Description("New department code"),
		),
		mcp.WithString("phone_number",
			mcp.Description("New phone number"),
		),
		mcp.WithNumber("salary",
			mcp.Description("New annual salary"),
		),
		mcp.WithNumber("team_size",
			mcp.Description("New team size (managers only)"),
		),
		mcp.WithString("office_number",
			mcp.Description("New office designation (managers only)"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("update_employee"))
}

func (s *Server) registerDeleteTool() {
	tool := mcp.NewTool("delete_employee",
		mcp.WithDescription("Delete an employee record by id. The operation is recorded in the audit log."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Employee id to delete"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("delete_employee"))
}

func (s *Server) registerStatisticsTool() {
	tool := mcp.NewTool("salary_statistics",
		mcp.WithDescription("Salary statistics (count, average, min, max, median, total) over all records or one department."),
		mcp.WithString("department",
			mcp.Description("Restrict statistics to one department"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("salary_statistics"))
}

func (s *Server) registerReportTool() {
	tool := mcp.NewTool("salary_report",
		mcp.WithDescription("Full salary analytics report: overall, by department, by type, gap analysis, top earners, recent changes."),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or text"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("salary_report"))
}

func (s *Server) registerAuditQueryTool() {
	tool := mcp.NewTool("query_audit_log",
		mcp.WithDescription("Run a read-only SELECT query against the operations log database. Non-SELECT statements are rejected."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("SQL SELECT query to execute"),
		),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("query_audit_log"))
}

func (s *Server) registerAuditSchemaTool() {
	tool := mcp.NewTool("get_audit_schema",
		mcp.WithDescription("Describe the operations log database: tables and their columns."),
	)

	s.mcpServer.AddTool(tool, s.makeHandler("get_audit_schema"))
}

// Execution functions (implementations)

// createArgs carries the parsed create_employee arguments.
type createArgs struct {
	id         string
	firstName  string
	lastName   string
	department string
	phone      string
	salary     float64
	manager    bool
	teamSize   int
	office     string
}

func parseCreateArgs(args map[string]interface{}) (createArgs, error) {
	var ca createArgs

	required := []struct {
		key string
		dst *string
	}{
		{"id", &ca.id},
		{"first_name", &ca.firstName},
		{"last_name", &ca.lastName},
		{"department", &ca.department},
		{"phone_number", &ca.phone},
	}
	for _, r := range required {
		v, _ := args[r.key].(string)
		if v == "" {
			return ca, fmt.Errorf("%s parameter is required", r.key)
		}
		*r.dst = v
	}

	if v, ok := args["salary"].(float64); ok {
		ca.salary = v
	}
	if v, ok := args["manager"].(bool); ok {
		ca.manager = v
	}
	if v, ok := args["team_size"].(float64); ok {
		ca.teamSize = int(v)
	}
	if v, ok := args["office_number"].(string); ok {
		ca.office = v
	}

	return ca, nil
}

func (s *Server) executeList(department, typeFilter string) (string, error) {
	recs, err := s.store.Search(store.Filter{Department: department, Type: typeFilter})
	if err != nil {
		return "", fmt.Errorf("load records: %w", err)
	}

	switch {
	case department != "":
		s.audit.Record(audit.OpSelect, audit.SearchStatement("department", strings.ToUpper(department)),
			fmt.Sprintf("Found %d employees", len(recs)))
	case typeFilter != "":
		s.audit.Record(audit.OpSelect, audit.SearchStatement("employee_type", typeFilter),
			fmt.Sprintf("Found %d employees", len(recs)))
	default:
		s.audit.Record(audit.OpSelect, audit.SelectAllStatement,
			fmt.Sprintf("Retrieved %d employees", len(recs)))
	}

	employees := make([]map[string]interface{}, 0, len(recs))
	for _, rec := range recs {
		employees = append(employees, recordPayload(rec))
	}

	return toJSON(map[string]interface{}{
		"count":     len(recs),
		"employees": employees,
	})
}

func (s *Server) executeGet(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	rec := s.store.FindByID(id)
	if rec == nil {
		return "", fmt.Errorf("employee %s not found", id)
	}

	s.audit.Record(audit.OpSelect, audit.SearchStatement("id", id), "Found 1 employees")

	return toJSON(map[string]interface{}{"employee": recordPayload(rec)})
}

func (s *Server) executeCreate(ca createArgs) (string, error) {
	ca.id = strings.ToUpper(strings.TrimSpace(ca.id))

	var rec employee.Record
	if ca.manager {
		mgr, err := employee.NewManager(ca.id, ca.firstName, ca.lastName, ca.department, ca.phone, ca.salary, ca.teamSize, ca.office)
		if err != nil {
			return "", err
		}
		rec = mgr
	} else {
		emp, err := employee.New(ca.id, ca.firstName, ca.lastName, ca.department, ca.phone, ca.salary)
		if err != nil {
			return "", err
		}
		rec = emp
	}

	if !s.store.Add(rec) {
		return "", fmt.Errorf("employee %s already exists or could not be stored", rec.ID())
	}

	base := rec.Base()
	s.audit.Record(audit.OpInsert,
		audit.InsertStatement(rec.ID(), base.FullName(), base.Department(), base.Salary(), time.Now()),
		fmt.Sprintf("Created %s: %s", rec.Type(), rec.ID()))
	s.changes.Record(rec, 0, base.Salary(), analytics.ChangeCreate)

	return toJSON(map[string]interface{}{
		"status":   "created",
		"employee": recordPayload(rec),
	})
}

func (s *Server) executeUpdate(id string, args map[string]interface{}) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	rec := s.store.FindByID(id)
	if rec == nil {
		return "", fmt.Errorf("employee %s not found", id)
	}

	mgr, isManager := rec.(*employee.Manager)
	if !isManager {
		if _, ok := args["team_size"]; ok {
			return "", fmt.Errorf("team_size applies only to managers")
		}
		if _, ok := args["office_number"]; ok {
			return "", fmt.Errorf("office_number applies only to managers")
		}
	}

	base := rec.Base()
	oldSalary := base.Salary()

	if v, ok := args["first_name"].(string); ok && v != "" {
		if err := base.SetFirstName(v); err != nil {
			return "", err
		}
	}
	if v, ok := args["last_name"].(string); ok && v != "" {
		if err := base.SetLastName(v); err != nil {
			return "", err
		}
	}
	if v, ok := args["department"].(string); ok && v != "" {
		if err := base.SetDepartment(v); err != nil {
			return "", err
		}
	}
	if v, ok := args["phone_number"].(string); ok && v != "" {
		if err := base.SetPhoneNumber(v); err != nil {
			return "", err
		}
	}

	salaryChanged := false
	if v, ok := args["salary"].(float64); ok {
		if err := base.SetSalary(v); err != nil {
			return "", err
		}
		salaryChanged = v != oldSalary
	}

	if isManager {
		if v, ok := args["team_size"].(float64); ok {
			if err := mgr.SetTeamSize(int(v)); err != nil {
				return "", err
			}
		}
		if v, ok := args["office_number"].(string); ok && v != "" {
			mgr.SetOfficeNumber(v)
		}
	}

	if !s.store.Update(id, rec) {
		return "", fmt.Errorf("employee %s could not be updated", id)
	}

	s.audit.Record(audit.OpUpdate,
		audit.UpdateStatement(id, base.FullName(), base.Department()),
		fmt.Sprintf("Updated employee: %s", id))
	if salaryChanged {
		s.changes.Record(rec, oldSalary, base.Salary(), analytics.ChangeUpdate)
	}

	return toJSON(map[string]interface{}{
		"status":   "updated",
		"employee": recordPayload(rec),
	})
}

func (s *Server) executeDelete(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	rec := s.store.FindByID(id)
	if rec == nil {
		return "", fmt.Errorf("employee %s not found", id)
	}
	oldSalary := rec.Base().Salary()

	if !s.store.Delete(id) {
		return "", fmt.Errorf("employee %s could not be deleted", id)
	}

	s.audit.Record(audit.OpDelete, audit.DeleteStatement(id),
		fmt.Sprintf("Deleted employee: %s", id))
	s.changes.Record(rec, oldSalary, 0, analytics.ChangeDelete)

	return toJSON(map[string]interface{}{
		"status": "deleted",
		"id":     id,
	})
}

func (s *Server) executeStatistics(department string) (string, error) {
	recs, err := s.store.Search(store.Filter{Department: department})
	if err != nil {
		return "", fmt.Errorf("load records: %w", err)
	}

	result := map[string]interface{}{
		"statistics": analytics.Stats(recs),
	}
	if department != "" {
		result["department"] = strings.ToUpper(strings.TrimSpace(department))
	}

	return toJSON(result)
}

func (s *Server) executeReport(format string) (string, error) {
	recs, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load records: %w", err)
	}

	rep := report.Gather(recs, s.changes)

	switch format {
	case "text":
		return report.RenderText(rep), nil
	case "json":
		return toJSON(rep)
	default:
		return "", fmt.Errorf("invalid format: %q (expected json or text)", format)
	}
}

func (s *Server) executeAuditQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return "", fmt.Errorf("only SELECT queries are allowed")
	}
	if strings.Contains(strings.TrimSuffix(trimmed, ";"), ";") {
		return "", fmt.Errorf("only a single SELECT statement is allowed")
	}

	rows, err := s.audit.DB().Query(trimmed)
	if err != nil {
		return "", fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("read columns: %w", err)
	}

	data := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return "", fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate rows: %w", err)
	}

	return toJSON(map[string]interface{}{
		"success":   true,
		"row_count": len(data),
		"data":      data,
	})
}

// columnInfo mirrors one PRAGMA table_info row.
type columnInfo struct {
	CID        int     `json:"cid"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	NotNull    int     `json:"notnull"`
	Default    *string `json:"dflt_value"`
	PrimaryKey int     `json:"pk"`
}

func (s *Server) executeAuditSchema() (string, error) {
	db := s.audit.DB()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return "", fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return "", fmt.Errorf("iterate tables: %w", err)
	}
	rows.Close()

	schema := make(map[string]interface{}, len(tables))
	for _, table := range tables {
		cols, err := tableColumns(db, table)
		if err != nil {
			return "", err
		}
		schema[table] = cols
	}

	return toJSON(map[string]interface{}{
		"success": true,
		"schema":  schema,
	})
}

func tableColumns(db *sql.DB, table string) ([]columnInfo, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("describe table %s: %w", table, err)
	}
	defer rows.Close()

	var cols []columnInfo
	for rows.Next() {
		var c columnInfo
		if err := rows.Scan(&c.CID, &c.Name, &c.Type, &c.NotNull, &c.Default, &c.PrimaryKey); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", table, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns of %s: %w", table, err)
	}
	return cols, nil
}

// Helper functions

func toJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// recordPayload flattens a record into the JSON shape the tools return.
func recordPayload(rec employee.Record) map[string]interface{} {
	base := rec.Base()

	payload := map[string]interface{}{
		"id":           base.ID(),
		"first_name":   base.FirstName(),
		"last_name":    base.LastName(),
		"department":   base.Department(),
		"phone_number": base.FormattedPhone(),
		"salary":       base.Salary(),
		"type":         string(rec.Type()),
	}
	if mgr, ok := rec.(*employee.Manager); ok {
		payload["team_size"] = mgr.TeamSize()
		payload["office_number"] = mgr.OfficeNumber()
	}
	return payload
}
