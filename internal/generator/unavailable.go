package generator

import (
	"html/template"
)

var unavailableTemplate = template.Must(template.New("unavailable").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
   <meta charset="UTF-8"/>
   <title>Dew Points of US Cities: data unavailable</title>
   <style>
      body {
         font-family: Arial, sans-serif;
         max-width: 800px;
         margin: 0 auto;
         padding: 20px;
         background-color: #121212;
         color: #e0e0e0;
      }
      .unavailable {
         border: 1px solid #a52a2a;
         background-color: #3d1a1a;
         padding: 10px;
         border-radius: 5px;
      }
   </style>
</head>
<body>
   <h1>Average Dew Point by Decade</h1>
   <div class="unavailable">
      <h2>Data unavailable</h2>
      <p>The dew point data could not be loaded, so no map was drawn.</p>
      {{ if .Reason }}<p><small>{{ .Reason }}</small></p>{{ end }}
   </div>
   <h4>Last attempt: {{ .LastUpdated }}</h4>
</body>
</html>
`))

// GenerateUnavailableHTML writes a page telling the reader the data could not be loaded.
func GenerateUnavailableHTML(reason error, outputPath string) error {
	data := struct {
		Reason      string
		LastUpdated string
	}{
		LastUpdated: lastUpdated(),
	}
	if reason != nil {
		data.Reason = reason.Error()
	}
	return writeAtomic(unavailableTemplate, data, outputPath)
}
