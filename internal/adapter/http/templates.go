package http

import (
	"html/template"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/domain"
	"github.com/couchcryptid/drought-dashboard/internal/view"
)

var funcMap = template.FuncMap{
	"fmtDate": view.FormatDate,
	"isoDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(domain.DateLayout)
	},
	"css": func(s string) template.CSS { return template.CSS(s) }, //nolint:gosec // colors come from the catalog
}

var pageTemplate = template.Must(template.New("page").Funcs(funcMap).Parse(tmplDashboard))

const tmplDashboard = `
{{define "dashboard"}}<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Prediksi Kekeringan Ogan Ilir</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:system-ui,sans-serif;background:#f7f9fb;color:#1f2933;font-size:14px;line-height:1.5;display:flex;min-height:100vh}
aside{width:260px;flex-shrink:0;background:#fff;border-right:1px solid #e4e7eb;padding:20px}
aside h2{font-size:15px;margin-bottom:16px}
aside label{display:block;font-size:12px;color:#52606d;margin:12px 0 4px}
aside select,aside input{width:100%;padding:6px 8px;border:1px solid #cbd2d9;border-radius:4px;font-size:13px}
aside button{margin-top:16px;width:100%;padding:8px;border:0;border-radius:4px;background:#1f6feb;color:#fff;cursor:pointer}
main{flex:1;padding:24px 32px;max-width:1200px}
h1{font-size:22px;margin-bottom:4px}
h2{font-size:17px;margin:24px 0 8px}
hr{border:0;border-top:1px solid #e4e7eb;margin:20px 0}
.sub{color:#52606d}
.caption{color:#7b8794;font-size:12px;margin-bottom:12px}
.banner{padding:10px 14px;border-radius:6px;margin:12px 0}
.banner.warn{background:#fff8e1;border:1px solid #f5c26b}
.banner.err{background:#fdecea;border:1px solid #f5a3a3}
.banner.info{background:#e8f1fd;border:1px solid #a7c5f2}
.status{display:flex;gap:16px;align-items:stretch}
.metric{flex:1;background:#fff;border:1px solid #e4e7eb;border-radius:8px;padding:16px}
.metric .lbl{font-size:12px;color:#7b8794}
.metric .val{font-size:24px;font-weight:700}
.card{flex:2;border-radius:10px;padding:20px;text-align:center;color:#fff;display:flex;align-items:center;justify-content:center}
.card h3{font-size:20px}
.chart{background:#fff;border:1px solid #e4e7eb;border-radius:8px;padding:8px;overflow-x:auto}
.chart svg{max-width:100%;height:auto}
.strip{display:flex;height:14px;margin-top:6px;border-radius:3px;overflow:hidden}
.strip span{flex:1;min-width:1px}
details{background:#fff;border:1px solid #e4e7eb;border-radius:8px;padding:12px 16px}
summary{cursor:pointer;font-weight:600}
.legend{display:flex;align-items:flex-start;gap:10px;margin-top:10px}
.swatch{width:20px;height:20px;border-radius:5px;flex-shrink:0}
footer{margin-top:24px;font-size:11px;color:#9aa5b1}
</style>
</head>
<body>
<aside>
<h2>Panel Kontrol</h2>
<form method="get" action="/">
<label for="district">Pilih Kecamatan:</label>
<select id="district" name="district">
{{- range .SubDistricts}}
<option value="{{.}}"{{if eq . $.SubDistrict}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- if not .MaxDate.IsZero}}
<label for="date">Pilih Tanggal Prediksi:</label>
<input type="date" id="date" name="date" value="{{isoDate .SelectedDate}}" min="{{isoDate .MinDate}}" max="{{isoDate .MaxDate}}">
{{- end}}
<button type="submit">Tampilkan</button>
</form>
</aside>
<main>
<h1>Dashboard Prediksi Kekeringan Ogan Ilir</h1>
<p class="sub">Analisis dan visualisasi data prediksi tingkat kekeringan per kecamatan di Kabupaten Ogan Ilir.</p>
<hr>
{{- range .Warnings}}
<div class="banner warn">{{.}}</div>
{{- end}}
{{- if eq .State "load_error"}}
<div class="banner err">{{.Message}}</div>
<div class="banner err">Gagal memuat data. Mohon periksa kembali path folder dan nama file CSV.</div>
{{- else}}
<h2>Status Prediksi di Kecamatan: <b>{{.SubDistrict}}</b></h2>
{{- if not .SelectedDate.IsZero}}
<p class="caption">Data untuk tanggal: <b>{{fmtDate .SelectedDate}}</b></p>
{{- end}}
{{- with .Status}}
<div class="status">
<div class="metric"><div class="lbl">Level Prediksi</div><div class="val">{{.Label}}</div></div>
<div class="card" style="background-color: {{css .Level.Color}}"><h3>{{.Label}}</h3></div>
</div>
<div class="banner info"><b>Deskripsi:</b> {{.Level.Description}}</div>
<div class="banner info"><b>Rekomendasi:</b> {{.Level.Advisory}}</div>
{{- else}}
<div class="banner warn">{{.Message}}</div>
{{- end}}
<hr>
<h2>Grafik Historis Tingkat Kekeringan</h2>
<p class="sub">Visualisasi tren prediksi kekeringan di <b>Kecamatan {{.SubDistrict}}</b> dari waktu ke waktu.</p>
<div class="chart">
{{- if .ChartSVG}}
{{.ChartSVG}}
{{- else}}
<p class="caption">{{if .NoChart}}{{.NoChart}}{{else}}Tidak ada data untuk ditampilkan.{{end}}</p>
{{- end}}
{{- if .Chart}}
<div class="strip">
{{- range .Chart}}<span style="background-color: {{css .Color}}" title="{{fmtDate .Date}}: {{.Label}}"></span>{{end}}
</div>
{{- end}}
</div>
{{- end}}
<hr>
<details>
<summary>Klik di sini untuk melihat penjelasan setiap kelas kekeringan</summary>
{{- range .Legend}}
<div class="legend">
<div class="swatch" style="background-color: {{css .Color}}"></div>
<div><b>{{.Name}}:</b> {{.Description}}<br><span class="sub">{{.Advisory}}</span></div>
</div>
{{- end}}
</details>
<footer>Dibuat {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</footer>
</main>
</body>
</html>
{{end}}
`
