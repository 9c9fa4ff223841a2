package heatmap

// RenderParams are the heat-layer options handed to the map renderer. Radius
// and blur are screen pixels; MaxIntensity is the ceiling the renderer
// normalizes against.
type RenderParams struct {
	Radius       float64 `json:"radius"`
	Blur         float64 `json:"blur"`
	MaxIntensity float64 `json:"max_intensity"`
	MaxZoom      int     `json:"max_zoom"`
	MinOpacity   float64 `json:"min_opacity"`
}

// DefaultGradient maps intensity stops to render colours, blue through red.
var DefaultGradient = map[string]string{
	"0.0": "#0000ff",
	"0.1": "#0040ff",
	"0.2": "#0080ff",
	"0.3": "#00bfff",
	"0.4": "#00ffff",
	"0.5": "#00ff80",
	"0.6": "#80ff00",
	"0.7": "#ffff00",
	"0.8": "#ff8000",
	"0.9": "#ff4000",
	"1.0": "#ff0000",
}

// BaseRenderParams picks radius, blur and max intensity for the given point
// count. Sparse data gets large soft blobs so isolated points still read as
// clusters; dense data gets tight rendering so points do not merge into a
// single blob.
func BaseRenderParams(pointCount int) RenderParams {
	params := RenderParams{MaxZoom: 16, MinOpacity: 0.2}

	switch {
	case pointCount < 10:
		params.Radius, params.Blur, params.MaxIntensity = 80, 60, 0.4
	case pointCount < 25:
		params.Radius, params.Blur, params.MaxIntensity = 70, 50, 0.5
	case pointCount < 50:
		params.Radius, params.Blur, params.MaxIntensity = 60, 40, 0.6
	case pointCount < 100:
		params.Radius, params.Blur, params.MaxIntensity = 50, 35, 0.7
	case pointCount < 250:
		params.Radius, params.Blur, params.MaxIntensity = 40, 30, 0.8
	default:
		params.Radius, params.Blur, params.MaxIntensity = 35, 25, 0.9
	}

	return params
}

// ZoomMultiplier returns the radius/blur scale factor for a zoom level.
// Screen pixels per degree grow with zoom, so the multiplier shrinks to keep
// the rendered blobs visually proportionate.
func ZoomMultiplier(zoomLevel int) float64 {
	switch {
	case zoomLevel < 10:
		return 2.0
	case zoomLevel < 12:
		return 1.8
	case zoomLevel < 14:
		return 1.6
	default:
		return 1.4
	}
}

// RescaleForZoom applies the zoom multiplier to radius and blur, leaving the
// other options untouched.
func RescaleForZoom(base RenderParams, zoomLevel int) RenderParams {
	multiplier := ZoomMultiplier(zoomLevel)
	rescaled := base
	rescaled.Radius = base.Radius * multiplier
	rescaled.Blur = base.Blur * multiplier
	return rescaled
}
