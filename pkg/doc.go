// Package pkg provides the libraries behind tuscaviz, the performance figure
// renderer of the TUSCA cough classifier.
//
// # Overview
//
// tuscaviz turns a fixed classification report (a 4x4 confusion matrix and
// per-class AUC targets) into three figures: a confusion matrix heatmap,
// ROC curves, and a dashboard combining both.
//
// # Architecture
//
// The data flow of a run:
//
//	[report] package (compiled-in TUSCA report)
//	         ↓
//	    [roc] package (synthesize one curve per class)
//	         ↓
//	    [render] packages (heatmap, roccurve, dashboard)
//	         ↓
//	PNG/SVG/PDF/JSON artifacts
//
// [pipeline] drives these stages, consulting [cache] for previously rendered
// artifacts and reporting through [observability] hooks.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	sink := &pipeline.FileSink{Dir: "."}
//	result, err := runner.Execute(ctx, report.TUSCA(), pipeline.Options{Sink: sink.Write})
//	if err != nil {
//	    return err
//	}
//
// # Main Packages
//
//   - [report]: report data model and the TUSCA literals
//   - [roc]: ROC curve synthesis from target AUCs
//   - [render]: figure renderers and PDF conversion
//   - [pipeline]: orchestration, file naming, JSON export
//   - [cache]: render cache (file-backed or disabled)
//   - [errors]: coded errors
//   - [fonts]: embedded Go fonts for raster and vector output
//   - [observability]: metrics and tracing hooks
//   - [buildinfo]: version information set at build time
//
// [report]: github.com/ispi-lubango/tuscaviz/pkg/report
// [roc]: github.com/ispi-lubango/tuscaviz/pkg/roc
// [render]: github.com/ispi-lubango/tuscaviz/pkg/render
// [pipeline]: github.com/ispi-lubango/tuscaviz/pkg/pipeline
// [cache]: github.com/ispi-lubango/tuscaviz/pkg/cache
// [errors]: github.com/ispi-lubango/tuscaviz/pkg/errors
// [fonts]: github.com/ispi-lubango/tuscaviz/pkg/fonts
// [observability]: github.com/ispi-lubango/tuscaviz/pkg/observability
// [buildinfo]: github.com/ispi-lubango/tuscaviz/pkg/buildinfo
package pkg
