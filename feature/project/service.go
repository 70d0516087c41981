package project

import (
	"context"
	"fmt"
	"time"

	"p5-manager/core/reconcile"
	"p5-manager/core/registry"
	"p5-manager/core/storage"

	"go.uber.org/zap"
)

// Service scaffolds and updates sketch projects.
type Service struct {
	store  storage.Store
	reg    registry.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new project service over a sketch directory store.
func NewService(store storage.Store, reg registry.Client, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		reg:    reg,
		logger: logger,
		now:    time.Now,
	}
}

// GenerateOptions controls sketch generation.
type GenerateOptions struct {
	// Name is the sketch name, used for the page title and the record.
	Name string
	// Version is the p5.js version to pin.
	Version string
	// Mode is the delivery mode for the library reference.
	Mode reconcile.Mode
	// Minified selects the minified artifact.
	Minified bool
}

// UpdateOptions controls an update of an existing sketch. Empty fields keep
// the values recorded in sketch.json.
type UpdateOptions struct {
	Version string
	Mode    reconcile.Mode
}

// Generate scaffolds a new sketch in the service's store: templates,
// reconciled index.html, local library copy (local mode), type definitions
// and the sketch.json record.
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) (*Record, error) {
	exists, err := s.store.Exists(RecordFile)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("directory already holds a sketch (%s exists)", RecordFile)
	}

	if err := s.store.Write(SketchFile, []byte(sketchTemplate)); err != nil {
		return nil, err
	}
	if err := s.store.Write(StyleFile, []byte(styleTemplate)); err != nil {
		return nil, err
	}

	markup := fmt.Sprintf(indexTemplate, opts.Name)
	outcome, err := reconcile.ReconcileWithDefaults(markup, opts.Version, opts.Mode, reconcile.Preferences{Minified: opts.Minified})
	if err != nil {
		return nil, fmt.Errorf("reconcile generated index.html: %w", err)
	}
	if err := s.store.Write(IndexFile, []byte(outcome.Markup)); err != nil {
		return nil, err
	}

	if err := s.syncLibrary(ctx, opts.Version, opts.Mode, opts.Minified); err != nil {
		return nil, err
	}
	s.syncTypes(ctx, opts.Version)

	now := s.now()
	rec := &Record{
		Name:      opts.Name,
		Version:   opts.Version,
		Mode:      opts.Mode,
		Minified:  opts.Minified,
		Provider:  referenceProvider(outcome.Reference),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := rec.Save(s.store); err != nil {
		return nil, err
	}

	s.logger.Info("sketch generated",
		zap.String("name", opts.Name),
		zap.String("version", opts.Version),
		zap.String("mode", string(opts.Mode)),
	)
	return rec, nil
}

// Update reconciles the sketch's index.html for a new version or mode and
// brings the local library copy, type definitions and record in line with
// it. A no-anchor outcome leaves every file untouched; the caller decides
// whether that is fatal.
func (s *Service) Update(ctx context.Context, opts UpdateOptions) (*reconcile.Outcome, error) {
	rec, err := LoadRecord(s.store)
	if err != nil {
		return nil, fmt.Errorf("not a sketch directory: %w", err)
	}

	version := opts.Version
	if version == "" {
		version = rec.Version
	}
	mode := opts.Mode
	if mode == "" {
		mode = rec.Mode
	}

	markup, err := s.store.Read(IndexFile)
	if err != nil {
		return nil, err
	}

	outcome, err := reconcile.ReconcileWithDefaults(string(markup), version, mode, reconcile.Preferences{Minified: rec.Minified})
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", IndexFile, err)
	}

	if outcome.Strategy == reconcile.StrategyNoAnchor {
		s.logger.Warn("index.html has no library reference, marker or head; nothing to update")
		return &outcome, nil
	}

	if err := s.store.Write(IndexFile, []byte(outcome.Markup)); err != nil {
		return nil, err
	}

	// The document is the authority on the minification actually in effect.
	minified := rec.Minified
	if match, ok := reconcile.Classify(outcome.Reference); ok {
		minified = match.Minified
	}

	if err := s.syncLibrary(ctx, version, mode, minified); err != nil {
		return nil, err
	}
	s.syncTypes(ctx, version)

	rec.Version = version
	rec.Mode = mode
	rec.Minified = minified
	rec.Provider = referenceProvider(outcome.Reference)
	rec.UpdatedAt = s.now()
	if err := rec.Save(s.store); err != nil {
		return nil, err
	}

	s.logger.Info("sketch updated",
		zap.String("version", version),
		zap.String("mode", string(mode)),
		zap.String("strategy", string(outcome.Strategy)),
		zap.String("reference", outcome.Reference),
	)
	return &outcome, nil
}

// syncLibrary downloads the library into libraries/ in local mode and clears
// stale copies otherwise. The variant not in use (plain vs minified) is
// always removed so the directory never holds two versions of the library.
func (s *Service) syncLibrary(ctx context.Context, version string, mode reconcile.Mode, minified bool) error {
	chosen := reconcile.SynthesizeURL(version, reconcile.ModeLocal, reconcile.Preferences{Minified: minified})
	other := reconcile.SynthesizeURL(version, reconcile.ModeLocal, reconcile.Preferences{Minified: !minified})

	if mode != reconcile.ModeLocal {
		if err := s.store.Delete(chosen); err != nil {
			return err
		}
		return s.store.Delete(other)
	}

	url := reconcile.SynthesizeURL(version, reconcile.ModeCDN, reconcile.Preferences{Minified: minified})
	data, err := s.reg.Download(ctx, url)
	if err != nil {
		return fmt.Errorf("download library: %w", err)
	}

	if err := s.store.Write(chosen, data); err != nil {
		return err
	}
	return s.store.Delete(other)
}

// syncTypes refreshes the p5 type definitions. Failures are logged, not
// fatal: typings only feed editor autocompletion.
func (s *Service) syncTypes(ctx context.Context, version string) {
	url := fmt.Sprintf(typesURLTemplate, version)
	data, err := s.reg.Download(ctx, url)
	if err != nil {
		s.logger.Warn("type definitions unavailable", zap.String("version", version), zap.Error(err))
		return
	}
	if err := s.store.Write(TypesFile, data); err != nil {
		s.logger.Warn("could not write type definitions", zap.Error(err))
	}
}

// referenceProvider extracts the CDN provider a reference encodes, or empty
// for local and unclassifiable references.
func referenceProvider(ref string) reconcile.Provider {
	match, ok := reconcile.Classify(ref)
	if !ok || match.Provider == reconcile.ProviderLocal {
		return ""
	}
	return match.Provider
}
