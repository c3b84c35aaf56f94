// Package pkg provides the core libraries for orgchart.
//
// # Overview
//
// Orgchart turns a flat roster of members, each naming the member they
// report to, into a layered chart: managers above their reports, one row
// per reporting generation. The pkg directory is organized into these areas:
//
//  1. [roster] - Loading members from CSV, XLSX or JSON
//  2. [hierarchy] and [dag] - The reporting graph and its validation
//  3. [layout] - Row ordering and coordinates
//  4. [render] - Raster and node-link output
//  5. [pipeline] - Orchestration (load → layer → layout → render → save)
//
// # Architecture
//
// The data flow through orgchart:
//
//	roster file (.csv, .xlsx, .json)
//	         ↓
//	    [roster] (ordered, de-duplicated members)
//	         ↓
//	    [hierarchy] (manager → member edges, dangling/cycle checks)
//	         ↓
//	    [dag/transform] (Kahn generations, graph rebuilt in generation order)
//	         ↓
//	    [layout] (multipartite coordinates, optional barycentric ordering)
//	         ↓
//	    [render/chart] PNG, [render/nodelink] DOT/SVG, [io] JSON
//
// Every stage returns new values; members and the hierarchy graph are never
// mutated after they are built.
//
// # Quick Start
//
// Run the whole pipeline and save the PNG:
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Execute(ctx, pipeline.Options{Input: "data/data.csv"})
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.Save(ctx, res, pipeline.FixedPath("chart.png"))
//
// Or drive the stages yourself:
//
//	ros, _ := roster.Load("data/data.csv", roster.DefaultOptions())
//	g, _ := hierarchy.Build(ros)
//	l, _ := hierarchy.Layer(g)
//	lay := layout.Multipartite(l.Layers, layout.Options{})
//	res, _ := chart.Render(chart.Input{Graph: l.Graph, Roster: ros, Layout: lay}, config.Default(), nil)
//
// # Supporting Packages
//
// [config] - Chart style: defaults, TOML/YAML files, .env and ORGCHART_*
// environment overrides.
//
// [errors] - Coded errors (FILE_NOT_FOUND, DANGLING_REFERENCE, CYCLE, ...)
// shared by every stage.
//
// [fonts] - The embedded Go font used for labels and Graphviz output.
//
// [observability] - Optional hooks for metrics on pipeline stages and icons.
//
// [buildinfo] - Version information injected at build time.
package pkg
