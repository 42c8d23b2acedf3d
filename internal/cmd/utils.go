package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/sofisch25/InClassEmpApp/internal/analytics"
	"github.com/sofisch25/InClassEmpApp/internal/audit"
	"github.com/sofisch25/InClassEmpApp/internal/config"
	"github.com/sofisch25/InClassEmpApp/internal/employee"
	"github.com/sofisch25/InClassEmpApp/internal/output"
	"github.com/sofisch25/InClassEmpApp/internal/store"
)

// appEnv bundles the wired collaborators every command needs: resolved
// config, the root logger, the record store, the operations log, and the
// in-memory salary change history for this process.
type appEnv struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   *store.FileStore
	audit   *audit.Log
	changes *analytics.ChangeLog

	logClose func()
}

// newAppEnv loads config, builds the logger, and opens the store and the
// operations database. Callers must Close the returned env.
func newAppEnv() (*appEnv, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	logger, logClose, err := buildLogger(cfg)
	if err != nil {
		return nil, err
	}

	st := store.Open(cfg.DataPath(), logger)

	auditLog, err := audit.Open(cfg.AuditPath(), logger)
	if err != nil {
		logClose()
		return nil, fmt.Errorf("open operations log: %w", err)
	}

	return &appEnv{
		cfg:      cfg,
		log:      logger,
		store:    st,
		audit:    auditLog,
		changes:  analytics.NewChangeLog(logger),
		logClose: logClose,
	}, nil
}

// Close releases the operations database and the log file, if any.
func (a *appEnv) Close() {
	if a.audit != nil {
		a.audit.Close()
	}
	if a.logClose != nil {
		a.logClose()
	}
}

// buildLogger constructs the root logger from config. A configured log
// file gets plain JSON lines; otherwise output goes to stderr through a
// console writer. --verbose forces debug level.
func buildLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return logger, func() { f.Close() }, nil
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, func() {}, nil
}

// resolveFormat picks the output format: the --format flag when set,
// otherwise the configured default.
func resolveFormat(cfg *config.Config) (output.Format, error) {
	if outputFormat != "" {
		return output.ParseFormat(outputFormat)
	}
	return output.ParseFormat(cfg.Output.Format)
}

// recordView is the structured (yaml/json) projection of a record.
type recordView struct {
	ID         string  `yaml:"id" json:"id"`
	FirstName  string  `yaml:"first_name" json:"first_name"`
	LastName   string  `yaml:"last_name" json:"last_name"`
	Department string  `yaml:"department" json:"department"`
	Phone      string  `yaml:"phone" json:"phone"`
	Salary     float64 `yaml:"salary" json:"salary"`
	Type       string  `yaml:"type" json:"type"`
	TeamSize   *int    `yaml:"team_size,omitempty" json:"team_size,omitempty"`
	Office     string  `yaml:"office,omitempty" json:"office,omitempty"`
}

func newRecordView(rec employee.Record) recordView {
	base := rec.Base()
	v := recordView{
		ID:         base.ID(),
		FirstName:  base.FirstName(),
		LastName:   base.LastName(),
		Department: base.Department(),
		Phone:      base.FormattedPhone(),
		Salary:     base.Salary(),
		Type:       string(rec.Type()),
	}
	if mgr, ok := rec.(*employee.Manager); ok {
		size := mgr.TeamSize()
		v.TeamSize = &size
		v.Office = mgr.OfficeNumber()
	}
	return v
}

func newRecordViews(recs []employee.Record) []recordView {
	views := make([]recordView, len(recs))
	for i, rec := range recs {
		views[i] = newRecordView(rec)
	}
	return views
}

// renderRecordTable writes the fixed-width listing used by the menu and
// the table-format subcommands. Managers get an indented detail line.
func renderRecordTable(w io.Writer, recs []employee.Record, title string) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "\nNo employees found.")
		return
	}

	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "%-10s %-25s %-12s %-15s %-10s\n", "ID", "Name", "Department", "Phone", "Type")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, rec := range recs {
		base := rec.Base()
		fmt.Fprintf(w, "%-10s %-25s %-12s %-15s %-10s\n",
			base.ID(), base.FullName(), base.Department(), base.FormattedPhone(), rec.Type())
		if mgr, ok := rec.(*employee.Manager); ok {
			fmt.Fprintf(w, "%10s Team Size: %d, Office: %s\n", "", mgr.TeamSize(), mgr.OfficeNumber())
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "Total: %d employees\n", len(recs))
}

// renderRecordDetails writes the single-record card shown before edits
// and deletions.
func renderRecordDetails(w io.Writer, rec employee.Record) {
	base := rec.Base()

	fmt.Fprintln(w, "\nEMPLOYEE DETAILS:")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "ID: %s\n", base.ID())
	fmt.Fprintf(w, "Name: %s\n", base.FullName())
	fmt.Fprintf(w, "Department: %s\n", base.Department())
	fmt.Fprintf(w, "Phone: %s\n", base.FormattedPhone())
	fmt.Fprintf(w, "Salary: %s\n", formatMoney(base.Salary()))
	fmt.Fprintf(w, "Type: %s\n", rec.Type())

	if mgr, ok := rec.(*employee.Manager); ok {
		fmt.Fprintf(w, "Team Size: %d\n", mgr.TeamSize())
		fmt.Fprintf(w, "Office: %s\n", mgr.OfficeNumber())
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// formatMoney renders an amount as $#,###.##.
func formatMoney(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// recordCreated persists audit and analytics entries for a new record.
func recordCreated(env *appEnv, rec employee.Record) {
	base := rec.Base()
	env.audit.Record(audit.OpInsert,
		audit.InsertStatement(rec.ID(), base.FullName(), base.Department(), base.Salary(), time.Now()),
		fmt.Sprintf("Created %s: %s", rec.Type(), rec.ID()))
	env.changes.Record(rec, 0, base.Salary(), analytics.ChangeCreate)
}

// recordUpdated persists audit and analytics entries for an edit. The
// change record is only written when the salary actually moved.
func recordUpdated(env *appEnv, rec employee.Record, oldSalary float64) {
	base := rec.Base()
	env.audit.Record(audit.OpUpdate,
		audit.UpdateStatement(rec.ID(), base.FullName(), base.Department()),
		fmt.Sprintf("Updated employee: %s", rec.ID()))
	if base.Salary() != oldSalary {
		env.changes.Record(rec, oldSalary, base.Salary(), analytics.ChangeUpdate)
	}
}

// recordDeleted persists audit and analytics entries for a removal.
func recordDeleted(env *appEnv, rec employee.Record) {
	env.audit.Record(audit.OpDelete, audit.DeleteStatement(rec.ID()),
		fmt.Sprintf("Deleted employee: %s", rec.ID()))
	env.changes.Record(rec, rec.Base().Salary(), 0, analytics.ChangeDelete)
}
