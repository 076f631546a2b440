package report

import (
	"github.com/shopspring/decimal"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/chart"
	"remote-report/src/pkg/imagetable"
	"remote-report/src/pkg/remotes"
	"remote-report/src/pkg/render"
)

/*
Compose renders the four report images in body order:
department chart, department table, five-day chart and today's roster table.
*/
func Compose(dataset remotes.Dataset, cfg Config, labels remotes.Labels) (artifacts []render.Artifact, e *xerr.Error) {
	opts := chart.Options{DPI: cfg.DPI, ReferenceLine: cfg.ReferenceLine, DateLayout: cfg.DateLayout}
	threshold := decimal.NewFromFloat(cfg.Threshold)

	steps := []func() (render.Artifact, *xerr.Error){
		chart.DepartmentPercentChart(dataset.Departments, opts).Render,
		func() (render.Artifact, *xerr.Error) {
			return imagetable.DepartmentTable(dataset.Departments, labels, threshold).Render(cfg.DPI)
		},
		chart.FiveDayCountChart(dataset.FiveDayByDate, opts).Render,
		func() (render.Artifact, *xerr.Error) {
			return imagetable.RosterTable(dataset.Today, dataset.FiveDay, labels).Render(cfg.DPI)
		},
	}

	artifacts = make([]render.Artifact, 0, len(steps))
	for _, step := range steps {
		artifact, e := step()
		if e != nil {
			return nil, e
		}
		tl.Log(tl.Debug, palette.CyanDim, "Rendered '%s' (%vx%v, %v bytes)", artifact.Name, artifact.Width, artifact.Height, len(artifact.PNG))
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}
