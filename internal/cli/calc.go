package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"labor-planner/internal/api"
	"labor-planner/internal/catalog"
	"labor-planner/internal/client"
	"labor-planner/internal/config"
	"labor-planner/internal/model"
	"labor-planner/internal/planning"
	"labor-planner/internal/store"
	"labor-planner/pkg/utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

type calcOptions struct {
	inbound  string
	outbound string
	hours    string
	worked   string
	abs      string
	factors  []string
	remote   string
	session  string
	format   string
	save     string
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	opts := &calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the headcount for a shift",
		Long: `Calculate the recommended headcount per process.

Volumes are whole units; --worked, --abs and --factor take percentages (0-100).
Without --remote the catalog configured in the config file is used directly.`,
		Example: `  laborplan calc --inbound 15000 --outbound 12000 --hours 8
  laborplan calc --inbound 15000 --outbound 0 --hours 8 --factor <processId>=50 --format csv
  laborplan calc --inbound 360 --outbound 0 --hours 8 --remote http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.inbound, "inbound", "", "Inbound volume for the shift")
	f.StringVar(&opts.outbound, "outbound", "", "Outbound volume for the shift")
	f.StringVar(&opts.hours, "hours", "", "Working hours per shift")
	f.StringVar(&opts.worked, "worked", "", "Worked hours percent (default from config)")
	f.StringVar(&opts.abs, "abs", "", "Absenteeism percent (default from config)")
	f.StringArrayVar(&opts.factors, "factor", nil, "Volume consideration of a process as <processId>=<percent> (repeatable)")
	f.StringVar(&opts.remote, "remote", "", "Base URL of a laborplan server; calculate there instead of locally")
	f.StringVar(&opts.session, "session", "", "Session id sent to the remote server")
	f.StringVarP(&opts.format, "format", "o", formatTable, "Output format: table, json or csv")
	f.StringVar(&opts.save, "save", "", "Also save CSV and JSON results under <dir>/<calculation id>/")
	return cmd
}

func runCalc(cmd *cobra.Command, root *rootOptions, opts *calcOptions) error {
	format := strings.ToLower(opts.format)
	if format != formatTable && format != formatJSON && format != formatCSV {
		return fmt.Errorf("unknown format %q (want table, json or csv)", opts.format)
	}
	factors, err := utils.ParseKeyValues(opts.factors)
	if err != nil {
		return fmt.Errorf("--factor: %w", err)
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	in, err := planning.ValidateForm(planning.RawForm{
		InboundVolume:        opts.inbound,
		OutboundVolume:       opts.outbound,
		WorkingHoursPerShift: opts.hours,
		ProcessVolumeFactor:  factors,
		WorkedHoursPercent:   opts.worked,
		AbsPercent:           opts.abs,
	}, cfg.Corrections())
	if err != nil {
		var verr *planning.ValidationError
		if errors.As(err, &verr) {
			printValidation(cmd.ErrOrStderr(), verr)
		}
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		res    planning.Result
		calcID string
	)
	if opts.remote != "" {
		res, calcID, err = calculateRemote(ctx, cfg, opts, in)
	} else {
		res, err = calculateLocal(ctx, cfg, in)
	}
	if calcID == "" {
		calcID = uuid.New().String()
	}
	if err != nil {
		var verr *planning.ValidationError
		if errors.As(err, &verr) {
			printValidation(cmd.ErrOrStderr(), verr)
		}
		return err
	}

	if err := writeResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, res); err != nil {
		return err
	}
	if opts.save != "" {
		paths, err := saveResult(utils.NewOutputManager(opts.save), calcID, res)
		if err != nil {
			return err
		}
		for _, p := range paths {
			PrintSuccess(cmd.ErrOrStderr(), "Saved "+p)
		}
	}
	return nil
}

func calculateLocal(ctx context.Context, cfg config.Config, in model.PlanningInput) (planning.Result, error) {
	var db *store.DB
	if cfg.Catalog.Source == config.CatalogSourceStore {
		var err error
		if db, err = store.Open(cfg.Database.Path); err != nil {
			return planning.Result{}, err
		}
		defer db.Close()
	}
	snap, err := catalog.Load(ctx, api.NewCatalogSource(cfg, db), cfg.Catalog.Concurrency)
	if err != nil {
		return planning.Result{}, err
	}
	return planning.Calculate(in, snap, cfg.SupportPolicy()), nil
}

func calculateRemote(ctx context.Context, cfg config.Config, opts *calcOptions, in model.PlanningInput) (planning.Result, string, error) {
	sessionID := opts.session
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c := client.New(opts.remote, sessionID, cfg.ClientTimeout())
	resp, err := c.Calculate(ctx, requestFromInput(in))
	if err != nil {
		return planning.Result{}, "", err
	}

	res := planning.Result{Rows: resp.Rows}
	for _, is := range resp.Issues {
		res.Issues = append(res.Issues, &planning.ComputationError{ProcessID: is.ProcessID, Code: is.Code})
	}
	return res, resp.CalculationID, nil
}

// requestFromInput turns validated input back into the wire request.
// Factors are already fractions at this point.
func requestFromInput(in model.PlanningInput) model.CalculateRequest {
	inbound := float64(in.InboundVolume)
	outbound := float64(in.OutboundVolume)
	hours := in.WorkingHoursPerShift
	worked := in.WorkedHoursPercent
	abs := in.AbsPercent
	factors := make(map[string]*float64, len(in.ProcessVolumeFactor))
	for id, f := range in.ProcessVolumeFactor {
		factors[id] = &f
	}
	return model.CalculateRequest{
		InboundVolume:        &inbound,
		OutboundVolume:       &outbound,
		WorkingHoursPerShift: &hours,
		ProcessVolumeFactor:  factors,
		WorkedHoursPercent:   &worked,
		AbsPercent:           &abs,
	}
}

func writeResult(out, errOut io.Writer, format string, res planning.Result) error {
	switch format {
	case formatJSON:
		return planning.WriteJSON(out, res)
	case formatCSV:
		printIssues(errOut, res.Issues)
		return planning.WriteCSV(out, res.Rows)
	}

	printIssues(errOut, res.Issues)
	if len(res.Rows) == 0 {
		_, _ = dimColor.Fprintln(out, "No process could be computed")
		return nil
	}
	_, err := fmt.Fprintln(out, renderTable(res.Rows))
	return err
}

var savedFiles = []string{"headcount.csv", "headcount.json"}

// saveResult writes every saved format of res into the directory of calcID.
func saveResult(om *utils.OutputManager, calcID string, res planning.Result) ([]string, error) {
	paths := make([]string, 0, len(savedFiles))
	for _, name := range savedFiles {
		path, err := om.FilePath(calcID, name)
		if err != nil {
			return nil, err
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		if utils.FileType(name) == formatCSV {
			err = planning.WriteCSV(f, res.Rows)
		} else {
			err = planning.WriteJSON(f, res)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
