package mirror

// Info identifies a selected package index.
type Info struct {
	URL   string
	Label string
}

// Rule maps a set of country codes to a mirror. Rules are evaluated in order;
// the first rule containing the detected country wins.
type Rule struct {
	Countries []string
	Mirror    Info
}

// DefaultRules is the built-in country-to-mirror table. Regions not listed
// fall through to the default index (no mirror).
var DefaultRules = []Rule{
	{
		Countries: []string{"CN"},
		Mirror:    Info{URL: "https://pypi.tuna.tsinghua.edu.cn/simple", Label: "Tsinghua TUNA"},
	},
	{
		Countries: []string{"HK", "MO", "TW", "SG"},
		Mirror:    Info{URL: "https://mirrors.aliyun.com/pypi/simple", Label: "Aliyun"},
	},
}

// DefaultEndpoints are the geolocation lookup services probed in order.
// Each returns a JSON document carrying a two-letter country code.
var DefaultEndpoints = []string{
	"https://ipinfo.io/json",
	"https://ipapi.co/json",
	"http://ip-api.com/json",
}

func (r *Rule) matches(country string) bool {
	for _, c := range r.Countries {
		if c == country {
			return true
		}
	}
	return false
}
