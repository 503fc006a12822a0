package present

// DefaultIcon is shown for condition keywords missing from the table
const DefaultIcon = "🌤️"

var conditionIcons = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
	"Snow":         "❄️",
	"Mist":         "🌫️",
	"Fog":          "🌫️",
	"Haze":         "🌫️",
	"Smoke":        "🌫️",
	"Dust":         "🌫️",
	"Sand":         "🌫️",
	"Ash":          "🌫️",
	"Squall":       "💨",
	"Tornado":      "🌪️",
}

// Icon maps a condition keyword ("Clear", "Rain", ...) to its symbol. Lookup is
// case-sensitive, matching the API's labels.
func Icon(conditionKind string) string {
	if icon, ok := conditionIcons[conditionKind]; ok {
		return icon
	}
	return DefaultIcon
}
