// Package mockupstream serves canned OpenWeatherMap and ip-api responses for local runs and tests
package mockupstream

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Place is a canned location with its current conditions in metric units
type Place struct {
	Name          string
	Lat           float64
	Lon           float64
	TempC         float64
	Humidity      float64
	WindMS        float64
	ConditionCode int
	Description   string
}

// Places are matched to a request when both coordinates are within half a degree
var Places = []Place{
	{Name: "Kyiv", Lat: 50.45, Lon: 30.52, TempC: 14.0, Humidity: 71, WindMS: 3.4, ConditionCode: 803, Description: "broken clouds"},
	{Name: "London", Lat: 51.51, Lon: -0.13, TempC: 15.0, Humidity: 76, WindMS: 5.1, ConditionCode: 500, Description: "light rain"},
	{Name: "Paris", Lat: 48.86, Lon: 2.35, TempC: 18.0, Humidity: 68, WindMS: 2.2, ConditionCode: 800, Description: "clear sky"},
}

// FailingAPIKey makes the weather endpoints answer 500
const FailingAPIKey = "servererror"

// Options configures the fake upstream
type Options struct {
	// IPLocation is reported by the ip-api endpoint
	IPLocation Place
	// Now anchors timestamps. Nil means time.Now.
	Now func() time.Time
}

type weatherEntry struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// NewRouter builds the fake upstream routes
func NewRouter(opts Options) *gin.Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IPLocation.Name == "" {
		opts.IPLocation = Places[0]
	}

	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/json", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"lat":    opts.IPLocation.Lat,
			"lon":    opts.IPLocation.Lon,
		})
	})

	r.GET("/weather", func(c *gin.Context) {
		place, imperial, ok := parseQuery(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"name":    place.Name,
			"dt":      opts.Now().Unix(),
			"weather": []weatherEntry{{ID: place.ConditionCode, Description: place.Description}},
			"main": gin.H{
				"temp":     temperature(place.TempC, imperial),
				"humidity": place.Humidity,
			},
			"wind": gin.H{"speed": windSpeed(place.WindMS, imperial)},
		})
	})

	r.GET("/forecast/daily", func(c *gin.Context) {
		place, imperial, ok := parseQuery(c)
		if !ok {
			return
		}

		days := 7
		if cnt, err := strconv.Atoi(c.Query("cnt")); err == nil && cnt > 0 {
			days = cnt
		}

		start := opts.Now().UTC().Truncate(24 * time.Hour).Add(12 * time.Hour)
		list := make([]gin.H, 0, days)
		for i := 0; i < days; i++ {
			swing := float64(i%3) - 1
			list = append(list, gin.H{
				"dt": start.AddDate(0, 0, i).Unix(),
				"temp": gin.H{
					"min": temperature(place.TempC-4+swing, imperial),
					"max": temperature(place.TempC+4+swing, imperial),
				},
				"weather": []weatherEntry{{ID: place.ConditionCode, Description: place.Description}},
			})
		}

		c.JSON(http.StatusOK, gin.H{"list": list})
	})

	return r
}

func parseQuery(c *gin.Context) (Place, bool, bool) {
	appID := c.Query("appid")
	if appID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key"})
		return Place{}, false, false
	}
	if appID == FailingAPIKey {
		c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal error"})
		return Place{}, false, false
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"cod": 400, "message": "wrong latitude or longitude"})
		return Place{}, false, false
	}

	return nearest(lat, lon), c.Query("units") == "imperial", true
}

func nearest(lat, lon float64) Place {
	for _, p := range Places {
		if math.Abs(p.Lat-lat) <= 0.5 && math.Abs(p.Lon-lon) <= 0.5 {
			return p
		}
	}
	return Place{Lat: lat, Lon: lon, TempC: 10, Humidity: 50, WindMS: 1, ConditionCode: 802, Description: "scattered clouds"}
}

func temperature(celsius float64, imperial bool) float64 {
	if imperial {
		return math.Round((celsius*9/5+32)*10) / 10
	}
	return celsius
}

func windSpeed(ms float64, imperial bool) float64 {
	if imperial {
		return math.Round(ms*2.23694*10) / 10
	}
	return ms
}
