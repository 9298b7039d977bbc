package generator

import (
	"fmt"
	"html/template"

	"github.com/Zachdehooge/dewpoint-map/internal/app"
	"github.com/Zachdehooge/dewpoint-map/internal/propsymbol"
)

// symbolJSON is one city marker as the page script reads it.
type symbolJSON struct {
	City string          `json:"city"`
	Lat  float64         `json:"lat"`
	Lon  float64         `json:"lon"`
	View propsymbol.View `json:"view"`
}

var mapTemplate = template.Must(template.New("dewpoints").Funcs(template.FuncMap{
	"toJSON": toJSON,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
   <meta charset="UTF-8"/>
   <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
   <title>Dew Points of US Cities, {{ .FirstYear }}–{{ .LastYear }}</title>
   <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
   <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
   <style>
      :root {
         --bg-color: #121212;
         --text-color: #e0e0e0;
         --card-bg: #1e1e1e;
         --card-border: #333;
         --symbol-fill: #00827D;
      }
      html { background-color: #121212; }
      body {
         font-family: Arial, sans-serif;
         max-width: 1200px;
         margin: 0 auto;
         padding: 20px;
         background-color: var(--bg-color);
         color: var(--text-color);
      }
      #map {
         height: 600px; width: 100%;
         border: 2px solid var(--card-border);
         border-radius: 5px; margin-top: 20px;
      }
      #panel {
         display: flex; align-items: center; gap: 10px;
         background-color: var(--card-bg); padding: 10px;
         border: 1px solid var(--card-border); border-radius: 5px; margin-top: 10px;
      }
      .range-slider { flex: 1; }
      .step { background: none; border: none; cursor: pointer; }
      .step img { width: 24px; height: 24px; }
      #decade { font-weight: bold; min-width: 3em; text-align: right; }
      .map-legend {
         background-color: var(--card-bg); padding: 10px;
         border-radius: 5px; margin-top: 10px;
         border: 1px solid var(--card-border);
      }
      .legend-color {
         display: inline-block; width: 14px; height: 14px; border-radius: 50%;
         background-color: var(--symbol-fill); border: 1px solid #000; margin-right: 6px;
      }
      h1, h4 { color: var(--text-color); }
   </style>
   <script>
      const host = {{ toJSON .Host }};
      const style = {{ toJSON .Style }};
      const symbols = {{ toJSON .Symbols }};
      const frames = {{ toJSON .Frames }};
      let map;
      let markers = [];

      function createMap() {
          map = L.map('map', { center: host.center, zoom: host.zoom });

          L.tileLayer(host.tiles.url, {
              minZoom: host.tiles.minZoom,
              maxZoom: host.tiles.maxZoom,
              attribution: host.tiles.attribution,
              ext: host.tiles.ext
          }).addTo(map);

          createPropSymbols();
          createSequenceControls();
      }

      function createPropSymbols() {
          symbols.forEach(function (s) {
              const layer = L.circleMarker([s.lat, s.lon], Object.assign({}, style, { radius: s.view.radius }));
              layer.bindPopup(s.view.popup, { offset: L.point(s.view.offset[0], s.view.offset[1]) });
              layer.addTo(map);
              markers.push(layer);
          });
      }

      // Views are null for cities without a reading; those keep their current symbol.
      function updatePropSymbols(index) {
          const frame = frames[index];
          frame.views.forEach(function (view, i) {
              if (!view) return;
              const layer = markers[i];
              layer.setRadius(view.radius);
              const popup = layer.getPopup();
              popup.options.offset = L.point(view.offset[0], view.offset[1]);
              popup.setContent(view.popup).update();
          });
          document.querySelector('#decade').textContent = frame.year;
      }

      function createSequenceControls() {
          const slider = document.querySelector('.range-slider');
          const last = frames.length - 1;

          document.querySelectorAll('.step').forEach(function (step) {
              step.addEventListener('click', function () {
                  let index = Number(slider.value);
                  if (step.id === 'forward') {
                      index = index + 1 > last ? 0 : index + 1;
                  } else if (step.id === 'reverse') {
                      index = index - 1 < 0 ? last : index - 1;
                  }
                  slider.value = index;
                  updatePropSymbols(index);
              });
          });

          slider.addEventListener('input', function () {
              updatePropSymbols(Number(this.value));
          });
      }

      document.addEventListener('DOMContentLoaded', createMap);
   </script>
</head>
<body>
   <h1>Average Dew Point by Decade</h1>
   <h4>Last updated: {{ .LastUpdated }}</h4>

   <div id="map"></div>

   <div id="panel">
      <button class="step" id="reverse" title="Previous decade"><img src="img/reverse.png" alt="reverse"></button>
      <input class="range-slider" type="range" min="0" max="{{ .Max }}" step="1" value="{{ .Index }}">
      <button class="step" id="forward" title="Next decade"><img src="img/forward.png" alt="forward"></button>
      <span id="decade">{{ .Year }}</span>
   </div>

   <div class="map-legend">
      <span class="legend-color"></span>
      Circle area scales with dew point (°F) relative to the lowest reading, {{ .Baseline }}°F.
      {{ len .Symbols }} cities, {{ .FirstYear }}–{{ .LastYear }}.
   </div>
</body>
</html>
`))

// GenerateMapHTML writes the proportional symbol page for state to outputPath.
// The page opens on the controller's current attribute.
func GenerateMapHTML(state *app.State, outputPath string) error {
	if state == nil {
		return fmt.Errorf("no map state to render")
	}

	symbols := state.Renderer.Symbols()
	list := make([]symbolJSON, 0, len(symbols))
	for _, s := range symbols {
		list = append(list, symbolJSON{City: s.City, Lat: s.Lat(), Lon: s.Lon(), View: s.View})
	}

	attrs := state.Attributes
	data := struct {
		Host        interface{}
		Style       propsymbol.Style
		Symbols     []symbolJSON
		Frames      []propsymbol.Frame
		Max         int
		Index       int
		Year        string
		FirstYear   string
		LastYear    string
		Baseline    string
		LastUpdated string
	}{
		Host:        state.Host,
		Style:       state.Renderer.Style(),
		Symbols:     list,
		Frames:      state.Frames(),
		Max:         state.Controller.Max(),
		Index:       state.Controller.Index(),
		Year:        propsymbol.Year(state.Controller.Attribute()),
		FirstYear:   propsymbol.Year(attrs[0]),
		LastYear:    propsymbol.Year(attrs[len(attrs)-1]),
		Baseline:    formatValue(state.Scaler.Baseline()),
		LastUpdated: lastUpdated(),
	}

	return writeAtomic(mapTemplate, data, outputPath)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%g", v)
}
