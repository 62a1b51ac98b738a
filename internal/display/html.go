package display

import (
	"bytes"
	"html/template"

	"github.com/i474232898/weather-cli/internal/weather"
)

// page is the data bound to pageTemplate. html/template escapes every field
// for its context, so upstream strings such as the location name and
// description cannot inject markup.
type page struct {
	Location    string
	Coords      string
	Timezone    string
	Icon        string
	Description string
	Family      weather.Condition
	Temp        string
	FeelsLike   string
	TempMin     string
	TempMax     string
	TempColor   template.CSS
	TempPct     int
	Feeling     string
	Humidity    string
	Pressure    string
	WindSpeed   string
	WindDir     string
	Gust        string
	Clouds      int
	Cloudiness  string
	Visibility  string
	Sunrise     string
	Sunset      string
	Moon        string
	Updated     string
	PoweredBy   string
}

func (v *view) html() (string, error) {
	p := page{
		Location:    v.location,
		Coords:      v.coords,
		Timezone:    v.timezone,
		Icon:        v.icon,
		Description: v.cond.Description,
		Family:      weather.FamilyOf(v.cond.Icon),
		Temp:        v.temp,
		FeelsLike:   v.feelsLike,
		TempMin:     v.tempMin,
		TempMax:     v.tempMax,
		// Band colors come from a fixed table, never from input.
		TempColor:  template.CSS(v.band.CSS()),
		TempPct:    GaugePercent(v.celsius),
		Feeling:    v.feeling.String(),
		Humidity:   v.humidity,
		Pressure:   v.pressure,
		WindSpeed:  v.windSpeed,
		WindDir:    v.windDir,
		Gust:       v.gust,
		Clouds:     clampPercent(v.rec.Clouds.All),
		Cloudiness: v.cloudiness,
		Visibility: v.visibility,
		Sunrise:    v.sunrise,
		Sunset:     v.sunset,
		Moon:       MoonPhase(),
		Updated:    v.updated,
		PoweredBy:  poweredBy,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func clampPercent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Weather - {{.Location}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
            padding: 20px;
        }
        body.condition-rain, body.condition-storm { background: linear-gradient(135deg, #4b6cb7 0%, #182848 100%); }
        body.condition-snow, body.condition-mist { background: linear-gradient(135deg, #bdc3c7 0%, #2c3e50 100%); }
        .container {
            background: white;
            border-radius: 20px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            max-width: 800px;
            width: 100%;
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            text-align: center;
        }
        .header h1 { font-size: 2.5em; margin-bottom: 10px; }
        .location { font-size: 1.2em; opacity: 0.9; }
        .coords { font-size: 0.9em; opacity: 0.8; margin-top: 5px; }
        .main-weather {
            display: flex;
            align-items: center;
            justify-content: space-around;
            padding: 40px 20px;
            background: linear-gradient(to right, rgba(102, 126, 234, 0.1), rgba(118, 75, 162, 0.1));
            border-bottom: 2px solid #ecf0f1;
        }
        .weather-icon { font-size: 5em; }
        .weather-main { text-align: left; }
        .temperature { font-size: 3.5em; font-weight: bold; color: {{.TempColor}}; margin: 10px 0; }
        .condition { font-size: 1.3em; color: #2c3e50; text-transform: capitalize; }
        .feeling { color: #7f8c8d; margin-top: 5px; }
        .section { margin-bottom: 30px; }
        .section-title {
            font-size: 1.3em;
            font-weight: bold;
            color: #2c3e50;
            margin-bottom: 15px;
            padding-bottom: 10px;
            border-bottom: 2px solid #667eea;
        }
        .row { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; padding: 0 20px; }
        .full-width { grid-column: 1 / -1; }
        .detail-item { background: #f8f9fa; padding: 20px; border-radius: 10px; border-left: 4px solid #667eea; }
        .detail-label { font-size: 0.9em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 1px; margin-bottom: 8px; }
        .detail-value { font-size: 1.5em; font-weight: bold; color: #2c3e50; }
        .sun-moon { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; padding: 0 20px 20px; }
        .sun-moon-item {
            background: linear-gradient(135deg, #ffd89b 0%, #ff6b6b 100%);
            padding: 20px;
            border-radius: 10px;
            color: white;
            text-align: center;
        }
        .sun-moon-item.sunset { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); }
        .sun-moon-time { font-size: 2em; font-weight: bold; margin: 10px 0; }
        .footer { background: #ecf0f1; padding: 20px; text-align: center; font-size: 0.9em; color: #7f8c8d; }
        .progress-bar { background: #ecf0f1; height: 8px; border-radius: 4px; overflow: hidden; margin-top: 10px; }
        .progress-fill { background: linear-gradient(to right, #667eea, #764ba2); height: 100%; }
        .progress-fill.temperature-fill { background: {{.TempColor}}; }
        @media (max-width: 600px) {
            .header h1 { font-size: 2em; }
            .temperature { font-size: 2.5em; }
            .row, .sun-moon { grid-template-columns: 1fr; }
            .main-weather { flex-direction: column; }
        }
    </style>
</head>
<body class="condition-{{.Family}}">
    <div class="container">
        <div class="header">
            <h1>{{.Icon}}</h1>
            <div class="location">{{.Location}}</div>
            <div class="coords">📍 {{.Coords}} | {{.Timezone}}</div>
        </div>

        <div class="main-weather">
            <div class="weather-icon">{{.Icon}}</div>
            <div class="weather-main">
                <div class="condition">{{.Description}}</div>
                <div class="temperature">{{.Temp}}</div>
                <div class="feeling">Feels like: {{.FeelsLike}} · {{.Feeling}}</div>
                <div class="progress-bar">
                    <div class="progress-fill temperature-fill" style="width: {{.TempPct}}%;"></div>
                </div>
            </div>
        </div>

        <div style="padding: 30px 20px;">
            <div class="section">
                <div class="section-title">🌡️ Temperature Details</div>
                <div class="row">
                    <div class="detail-item">
                        <div class="detail-label">Current</div>
                        <div class="detail-value">{{.Temp}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">Feels Like</div>
                        <div class="detail-value">{{.FeelsLike}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">Min</div>
                        <div class="detail-value">{{.TempMin}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">Max</div>
                        <div class="detail-value">{{.TempMax}}</div>
                    </div>
                </div>
            </div>

            <div class="section">
                <div class="section-title">💨 Atmospheric Conditions</div>
                <div class="row">
                    <div class="detail-item">
                        <div class="detail-label">💧 Humidity</div>
                        <div class="detail-value">{{.Humidity}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">🎈 Pressure</div>
                        <div class="detail-value">{{.Pressure}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">💨 Wind Speed</div>
                        <div class="detail-value">{{.WindSpeed}}</div>
                    </div>
                    <div class="detail-item">
                        <div class="detail-label">🧭 Direction</div>
                        <div class="detail-value">{{.WindDir}}</div>
                    </div>
                    {{- if .Gust}}
                    <div class="detail-item full-width">
                        <div class="detail-label">🌬️ Wind Gust</div>
                        <div class="detail-value">{{.Gust}}</div>
                    </div>
                    {{- end}}
                    <div class="detail-item full-width">
                        <div class="detail-label">☁️ Cloudiness</div>
                        <div class="detail-value">{{.Clouds}}% · {{.Cloudiness}}</div>
                        <div class="progress-bar">
                            <div class="progress-fill" style="width: {{.Clouds}}%;"></div>
                        </div>
                    </div>
                    <div class="detail-item full-width">
                        <div class="detail-label">👁️ Visibility</div>
                        <div class="detail-value">{{.Visibility}}</div>
                    </div>
                </div>
            </div>

            <div class="section">
                <div class="section-title">☀️ Sun &amp; Moon</div>
                <div class="sun-moon">
                    <div class="sun-moon-item">
                        <div>🌅 Sunrise</div>
                        <div class="sun-moon-time">{{.Sunrise}}</div>
                    </div>
                    <div class="sun-moon-item sunset">
                        <div>🌇 Sunset</div>
                        <div class="sun-moon-time">{{.Sunset}}</div>
                    </div>
                </div>
            </div>
        </div>

        <div class="footer">
            <p>🌤️ Weather CLI | 🔗 {{.PoweredBy}} | {{.Moon}}</p>
            <p>Last updated: {{.Updated}}</p>
        </div>
    </div>
</body>
</html>
`
