package server

const tmplDashboard = `
{{define "dashboard"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<style>
*{box-sizing:border-box}
body{margin:0;font-family:'Segoe UI',sans-serif;background:linear-gradient(120deg,#f0f2f6,#e6f0ff);color:#1f2933}
.layout{display:flex;min-height:100vh}
aside{width:260px;flex-shrink:0;background:#fff;padding:16px;box-shadow:2px 0 10px rgba(0,0,0,0.05)}
aside h3{padding:8px;border-radius:8px;color:#fff;text-align:center;margin-top:0}
aside select{width:100%;padding:8px;border-radius:8px;border:1px solid #ccd}
aside ul{list-style:none;padding:0;font-size:14px}
aside li{padding:4px 0;border-bottom:1px solid #f0f0f0}
main{flex:1;padding:20px 28px}
h1{margin:0}
.caption{color:#6b7280;margin-top:4px}
.metrics{display:flex;gap:20px;margin:20px 0}
.metric{flex:1}
.metric .lbl{font-size:14px;color:#6b7280}
.metric .val{font-size:32px;font-weight:600}
hr{border:none;border-top:1px solid #dde;margin:20px 0}
.card-container{display:flex;gap:20px;margin-top:10px}
.card{flex:1;padding:20px;border-radius:15px;color:#fff;font-weight:bold;text-align:center;box-shadow:0 0 15px rgba(255,255,255,0.3);transition:0.3s}
.card:hover{transform:translateY(-6px);box-shadow:0 0 25px rgba(255,255,255,0.6)}
.card h2{margin:0 0 6px}
.card p{margin:0}
.heading{padding:10px 15px;border-radius:10px;color:#fff;text-shadow:1px 1px 4px rgba(0,0,0,0.4);margin:28px 0 12px}
.h-map{background:linear-gradient(90deg,#ff6f61,#ffb88c)}
.h-table{background:linear-gradient(90deg,#007bff,#00c6ff)}
.h-chart{background:linear-gradient(90deg,#28a745,#a8e063)}
#map{height:460px;border-radius:15px}
.table-card{background:#fff;padding:20px;border-radius:15px;box-shadow:0 4px 15px rgba(0,0,0,0.08);overflow-x:auto}
table{width:100%;border-collapse:collapse}
th{text-align:left;padding:12px;background:#f1f5f9}
td{padding:12px;border-bottom:1px solid #eee}
tr:nth-child(even){background:#fafafa}
tr:hover{background:#f1f7ff}
.badge{padding:6px 12px;border-radius:20px;color:#fff;font-weight:bold;font-size:13px}
.chart-card{background:#fff;padding:20px;border-radius:15px;box-shadow:0 4px 15px rgba(0,0,0,0.08)}
.legend{list-style:none;padding:0;display:flex;gap:16px;justify-content:center}
.legend .sw{display:inline-block;width:12px;height:12px;border-radius:3px;margin-right:6px;vertical-align:middle}
.empty{color:#6b7280;text-align:center;padding:20px}
svg text{font-family:'Segoe UI',sans-serif;font-size:12px;fill:#374151}
{{.PaletteCSS}}
</style>
</head>
<body>
<div class="layout">
<aside>
  <h3>Filters</h3>
  <form method="get" action="/">
    <label for="status">Status</label>
    <select id="status" name="status" onchange="this.form.submit()">
      {{range .View.Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}{{if .Disabled}} disabled{{end}}>{{.Label}}</option>
      {{end}}
    </select>
    <noscript><button type="submit">Apply</button></noscript>
  </form>
  <h4>Recent Reports</h4>
  <ul>
    {{range .View.Reports}}<li>📍 {{.Recent}}</li>
    {{else}}<li class="empty">No reports</li>
    {{end}}
  </ul>
</aside>
<main>
  <h1>🛣️ {{.Title}}</h1>
  <div class="caption">{{.Caption}}</div>

  <div class="metrics">
    <div class="metric"><div class="lbl">Total Reports</div><div class="val">{{.View.Total}}</div></div>
    {{range .View.Cards}}<div class="metric"><div class="lbl">{{.Label}}</div><div class="val">{{.Count}}</div></div>
    {{end}}
  </div>

  <hr>

  <div class="card-container">
    {{range .View.Cards}}<div class="card {{.Badge}}"><h2>{{.Count}}</h2><p>{{.Label}}</p></div>
    {{end}}
  </div>

  <h2 class="heading {{.MapHeading.Class}}">{{.MapHeading.Text}}</h2>
  <div id="map"></div>

  <h2 class="heading {{.TableHeading.Class}}">{{.TableHeading.Text}}</h2>
  <div class="table-card">
    <table>
      <tr><th>📍 Location</th><th>🚧 Status</th></tr>
      {{range .View.Rows}}<tr><td>{{.Location}}</td><td><span class="badge {{.Badge}}">{{.Status}}</span></td></tr>
      {{else}}<tr><td colspan="2" class="empty">No reports match this filter</td></tr>
      {{end}}
    </table>
  </div>

  <h2 class="heading {{.ChartHeading.Class}}">{{.ChartHeading.Text}}</h2>
  <div class="chart-card">
    {{with .View.Pie}}
    <svg id="status-donut" width="{{num .Size}}" height="{{num .Size}}" viewBox="0 0 {{num .Size}} {{num .Size}}" role="img">
      {{range .Slices}}<path d="{{.Path}}" fill="{{.Hex}}" fill-rule="evenodd"><title>{{.Label}}: {{.Count}} ({{.Share}}%)</title></path>
      {{end}}
    </svg>
    <ul class="legend">
      {{range .Slices}}<li><span class="sw" style="background: {{.Hex}}"></span>{{.Label}} {{.Count}}</li>
      {{else}}<li class="empty">No reports match this filter</li>
      {{end}}
    </ul>
    {{end}}
  </div>

  <h3>{{.AreaHeading}}</h3>
  <div class="chart-card">
    {{$labelW := .BarLabelW}}
    {{with .View.Bars}}
    <svg id="area-bars" width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}" role="img">
      {{range .Ticks}}<line x1="{{num .X}}" y1="10" x2="{{num .X}}" y2="{{num (add $.View.Bars.Height -30)}}" stroke="#e5e7eb"/>
      <text x="{{num .X}}" y="{{num (add $.View.Bars.Height -14)}}" text-anchor="middle">{{.Value}}</text>
      {{end}}
      {{range .Bars}}<text x="{{num (add $labelW -8)}}" y="{{num (add .Y 34)}}" text-anchor="end">{{.Location}}</text>
      <rect x="{{num $labelW}}" y="{{num (add .Y 20)}}" width="{{num .Width}}" height="20" fill="{{$.View.Bars.Color}}"><title>{{.Location}}: {{.Count}}</title></rect>
      {{end}}
      <text x="{{num (add $labelW 210)}}" y="{{num .Height}}" text-anchor="middle">{{$.BarAxisTitle}}</text>
      <text x="12" y="{{num (add .Height -200)}}" transform="rotate(-90 12 {{num (add .Height -200)}})" text-anchor="middle">{{$.BarAreaTitle}}</text>
    </svg>
    {{end}}
  </div>
</main>
</div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script>
(function () {
  var map = L.map('map').setView([{{.Map.CenterLat}}, {{.Map.CenterLon}}], {{.Map.Zoom}});
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    maxZoom: 19,
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);
  fetch({{.Map.GeoJSONURL}})
    .then(function (r) { return r.json(); })
    .then(function (fc) {
      L.geoJSON(fc, {
        pointToLayer: function (f, ll) {
          return L.circle(ll, {
            radius: f.properties.radius,
            color: f.properties.hex,
            fillColor: f.properties.hex,
            fillOpacity: 0.8,
            weight: 1
          }).bindTooltip(f.properties.location + ' — ' + f.properties.status);
        }
      }).addTo(map);
    });
})();
</script>
</body>
</html>
{{end}}`
