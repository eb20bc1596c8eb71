// Package importer orchestrates the two top-level operations: importing a
// GCS sheet into a fresh character record, and updating an existing record
// against its sheet. File-level failures are fatal and leave the record
// untouched; everything recoverable is batched and shown at the end.
package importer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gmkit/gcssync/internal/game/character"
	"github.com/gmkit/gcssync/internal/game/ruleset"
	"github.com/gmkit/gcssync/internal/gcs"
	"github.com/gmkit/gcssync/internal/reconcile"
	"github.com/gmkit/gcssync/internal/report"
	"github.com/gmkit/gcssync/internal/ui"
)

// Store is the record persistence surface the importer needs.
type Store interface {
	Load(path string) (*character.Record, error)
	Save(path string, rec *character.Record) error
}

// Importer wires the extraction, reconciliation, and persistence layers
// together for one tool invocation.
type Importer struct {
	log         *zap.Logger
	calc        *ruleset.Calculator
	store       Store
	ui          ui.UI
	genericGear []string
}

// New constructs an Importer.
//
// Precondition: all collaborators must be non-nil; genericGear may be empty.
func New(log *zap.Logger, calc *ruleset.Calculator, store Store, u ui.UI, genericGear []string) *Importer {
	return &Importer{log: log, calc: calc, store: store, ui: u, genericGear: genericGear}
}

// Import builds a fresh record from the sheet at xmlPath and writes it to
// recordPath, replacing whatever record was there.
//
// Postcondition: on error no record file is written; on success the
// returned change list is never empty.
func (im *Importer) Import(xmlPath, recordPath string) ([]string, error) {
	rep := report.NewOperation(im.log, "import")
	sheet, err := gcs.LoadSheet(xmlPath)
	if err != nil {
		return nil, err
	}
	fresh := gcs.NewExtractor(im.calc, rep).Extract(sheet, xmlPath)

	rec := character.New()
	changes := reconcile.New(im.ui, rep, im.genericGear).Apply(rec, fresh, reconcile.ModeImport)

	if err := im.store.Save(recordPath, rec); err != nil {
		return nil, err
	}
	im.finish(rep)
	return changes, nil
}

// Update loads the record at recordPath, re-extracts its sheet, and merges
// the differences back. overrideXML, when non-empty, replaces the sheet
// path remembered in the record.
//
// Postcondition: on error the record file is untouched; on success the
// record's gcs-file field points at the sheet that was read.
func (im *Importer) Update(recordPath, overrideXML string) ([]string, error) {
	rec, err := im.store.Load(recordPath)
	if err != nil {
		return nil, err
	}
	xmlPath := rec.GCSFile
	if overrideXML != "" {
		xmlPath = overrideXML
	}
	if xmlPath == "" {
		return nil, fmt.Errorf("record %s does not name a GCS file; pass one explicitly", recordPath)
	}

	rep := report.NewOperation(im.log, "update")
	sheet, err := gcs.LoadSheet(xmlPath)
	if err != nil {
		return nil, err
	}
	fresh := gcs.NewExtractor(im.calc, rep).Extract(sheet, xmlPath)

	changes := reconcile.New(im.ui, rep, im.genericGear).Apply(rec, fresh, reconcile.ModeUpdate)

	if err := im.store.Save(recordPath, rec); err != nil {
		return nil, err
	}
	im.finish(rep)
	return changes, nil
}

// finish surfaces the operation's batched recoverable problems.
func (im *Importer) finish(rep *report.Reporter) {
	if problems := rep.Flush(); len(problems) > 0 {
		im.ui.Notify(problems)
	}
}
