package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stock-regul/core/storage"
	"stock-regul/feature/stock/category"
	"stock-regul/feature/stock/models"
	"stock-regul/feature/stock/reconcile"
	"stock-regul/feature/stock/regulate"
	"stock-regul/feature/stock/snapshot"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the stock reconciliation pipeline against the staged
// snapshots and keeps the latest report available for the API.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	cfg    Config

	mu     sync.RWMutex
	latest *RunReport
}

// NewService creates a new stock reconciliation service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		cfg:    cfg,
	}
}

// RunOptions controls a reconciliation run.
type RunOptions struct {
	// SkipUpload computes the report without persisting the workbook.
	SkipUpload bool
}

// RunSummary aggregates counters for one reconciliation run.
type RunSummary struct {
	ReflexLines    int             `json:"reflex_lines"`
	M3Lines        int             `json:"m3_lines"`
	UnmappedReflex int             `json:"unmapped_reflex"`
	UnmappedM3     int             `json:"unmapped_m3"`
	WideRows       int             `json:"wide_rows"`
	PurchaseOrders int             `json:"purchase_orders"`
	ReliquatRows   int             `json:"reliquat_rows"`
	RegulationRows int             `json:"regulation_rows"`
	WithdrawTotal  decimal.Decimal `json:"withdraw_total"`
	Actions        int             `json:"actions"`
	Fulfilled      int             `json:"fulfilled"`
	Partial        int             `json:"partial"`
	Unfulfilled    int             `json:"unfulfilled"`
}

// RunReport is the complete outcome of one reconciliation run.
type RunReport struct {
	GeneratedAt    time.Time              `json:"generated_at"`
	ExecutionTime  string                 `json:"execution_time"`
	Summary        RunSummary             `json:"summary"`
	WideRows       []models.WideRow       `json:"-"`
	PurchaseOrders []models.WideRow       `json:"-"`
	Reliquat       []models.ReliquatRow   `json:"-"`
	Regulation     []models.RegulationRow `json:"-"`
	Allocations    []regulate.Allocation  `json:"allocations"`
	Actions        []models.Action        `json:"actions"`
}

// Inputs carries the standardized datasets a run consumes.
type Inputs struct {
	Reflex         []models.ReflexLine
	M3             []models.M3Line
	PurchaseOrders map[string]struct{}
	Rules          category.Rules
	Depots         []string
	Company        int
}

// BuildReport executes the reconciliation pipeline on in-memory inputs:
// categorization, the dual-regime correspondence, the reliquat, the
// regulation cascade and the corrective-action allocation.
func BuildReport(in Inputs) (*RunReport, error) {
	policy, err := regulate.NewPolicy(in.Depots)
	if err != nil {
		return nil, err
	}

	reflex := category.NewReflexCategorizer(in.Rules.ReflexMapping).Apply(in.Reflex)
	m3 := category.NewM3Categorizer(in.Rules.M3Rules).Apply(in.M3)
	for i := range m3 {
		m3[i].SMS = m3[i].Depot == regulate.DepotSMS
	}

	wide := reconcile.New(in.Depots).Build(reflex, m3)
	reliquat := reconcile.FindReliquat(m3, reflex)

	var core, pos []models.WideRow
	for i := range wide {
		if wide[i].Lot != "" {
			if _, ok := in.PurchaseOrders[wide[i].Lot]; ok {
				wide[i].PurchaseOrder = true
				pos = append(pos, wide[i])
				continue
			}
		}
		core = append(core, wide[i])
	}

	regulation := policy.Apply(core)
	allocations := regulate.NewAllocator(in.Company, in.Depots).Allocate(regulation, m3)

	report := &RunReport{
		GeneratedAt:    time.Now().UTC(),
		WideRows:       core,
		PurchaseOrders: pos,
		Reliquat:       reliquat,
		Regulation:     regulation,
		Allocations:    allocations,
	}
	report.Summary = RunSummary{
		ReflexLines:    len(reflex),
		M3Lines:        len(m3),
		WideRows:       len(core),
		PurchaseOrders: len(pos),
		ReliquatRows:   len(reliquat),
		RegulationRows: len(regulation),
	}
	for i := range reflex {
		if reflex[i].Category == models.CategoryUnmappedReflex {
			report.Summary.UnmappedReflex++
		}
	}
	for i := range m3 {
		if m3[i].Category == models.CategoryUnmappedM3 {
			report.Summary.UnmappedM3++
		}
	}
	for i := range regulation {
		report.Summary.WithdrawTotal = report.Summary.WithdrawTotal.Add(regulation[i].WithdrawTotal)
	}
	for i := range allocations {
		switch allocations[i].Status {
		case regulate.StatusFulfilled:
			report.Summary.Fulfilled++
		case regulate.StatusPartial:
			report.Summary.Partial++
		case regulate.StatusUnfulfilled:
			report.Summary.Unfulfilled++
		}
		report.Actions = append(report.Actions, allocations[i].Actions...)
	}
	report.Summary.Actions = len(report.Actions)
	return report, nil
}

// Run fetches the staged snapshots, executes the pipeline and uploads
// the run workbook. The report is cached for the API.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	start := time.Now()

	rules, err := category.LoadRules(s.cfg.RulesPath)
	if err != nil {
		return nil, err
	}

	reflexRows, err := snapshot.FetchRows(ctx, s.client, s.bucket, s.cfg.ReflexObject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reflex snapshot: %w", err)
	}
	reflex, err := snapshot.StandardizeReflex(reflexRows)
	if err != nil {
		return nil, err
	}

	m3Rows, err := snapshot.FetchRows(ctx, s.client, s.bucket, s.cfg.M3Object)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch m3 snapshot: %w", err)
	}
	m3, err := snapshot.StandardizeM3(m3Rows)
	if err != nil {
		return nil, err
	}

	poRows, err := snapshot.FetchRows(ctx, s.client, s.bucket, s.cfg.POObject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase order list: %w", err)
	}
	pos, err := snapshot.ParsePOList(poRows)
	if err != nil {
		return nil, err
	}

	report, err := BuildReport(Inputs{
		Reflex:         reflex,
		M3:             m3,
		PurchaseOrders: pos,
		Rules:          *rules,
		Depots:         s.cfg.DepotColumns(),
		Company:        s.cfg.Company,
	})
	if err != nil {
		return nil, err
	}
	report.ExecutionTime = time.Since(start).String()

	if !opts.SkipUpload {
		f, err := snapshot.BuildRunWorkbook(
			s.cfg.DepotColumns(),
			report.WideRows,
			report.Reliquat,
			report.Regulation,
			report.Allocations,
			report.PurchaseOrders,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build run workbook: %w", err)
		}
		defer f.Close()
		if err := snapshot.Upload(ctx, s.client, s.bucket, s.cfg.OutputObject, f); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	s.logger.Info("Reconciliation run complete",
		zap.Int("wide_rows", report.Summary.WideRows),
		zap.Int("reliquat_rows", report.Summary.ReliquatRows),
		zap.Int("regulation_rows", report.Summary.RegulationRows),
		zap.Int("actions", report.Summary.Actions),
		zap.Int("unfulfilled", report.Summary.Unfulfilled),
		zap.String("execution_time", report.ExecutionTime))
	return report, nil
}

// Latest returns the most recent run report, or nil when no run has
// completed yet.
func (s *Service) Latest() *RunReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Stage extracts all upstream sources and uploads them as snapshot
// objects for the next run.
func (s *Service) Stage(ctx context.Context) error {
	sources := []struct {
		table   string
		columns []string
		object  string
	}{
		{ReflexSource, ReflexColumns, s.cfg.ReflexObject},
		{M3Source, M3Columns, s.cfg.M3Object},
		{POSource, POColumns, s.cfg.POObject},
	}
	for _, src := range sources {
		count, err := StageSnapshot(ctx, s.db, s.client, s.bucket, src.object, src.table, src.columns)
		if err != nil {
			return err
		}
		s.logger.Info("Snapshot staged",
			zap.String("source", src.table),
			zap.String("object", src.object),
			zap.Int("rows", count))
	}
	return nil
}
