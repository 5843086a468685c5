package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"af-server/models/activity"
)

// RenderActivityMap renders the given activities as a scatter overlay on
// a world map and writes the chart HTML to w. Records without
// coordinates are left off the chart.
func RenderActivityMap(w io.Writer, activities []activity.Activity) error {
	points := make([]opts.GeoData, 0, len(activities))
	for _, a := range activities {
		if !a.HasCoordinates() {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  a.Name,
			Value: []float64{*a.Location.Lng, *a.Location.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Nearby Activities",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Activities", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return geo.Render(w)
}
