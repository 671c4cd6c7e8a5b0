package trends

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every knob that influences a scrape run. All values
// originate from Viper so the pipeline can be tuned via files or env vars,
// though the shipped defaults are the supported configuration.
type Config struct {
	APIBaseURL  string
	PageURL     string
	CountryCode string
	PeriodDays  int
	Limit       int
	UserAgent   string
	Referer     string
	APITimeout  time.Duration
	PageTimeout time.Duration
	PoliteDelay time.Duration
}

// LoadConfig constructs a Config by reading from Viper.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		APIBaseURL:  v.GetString("trends.api_url"),
		PageURL:     v.GetString("trends.page_url"),
		CountryCode: v.GetString("trends.country_code"),
		PeriodDays:  v.GetInt("trends.period_days"),
		Limit:       v.GetInt("trends.limit"),
		UserAgent:   v.GetString("trends.user_agent"),
		Referer:     v.GetString("trends.referer"),
		APITimeout:  v.GetDuration("http.api_timeout"),
		PageTimeout: v.GetDuration("http.page_timeout"),
		PoliteDelay: v.GetDuration("trends.polite_delay"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("trends.api_url must be set")
	}
	if c.PageURL == "" {
		return fmt.Errorf("trends.page_url must be set")
	}
	if c.PeriodDays <= 0 {
		return fmt.Errorf("trends.period_days must be > 0")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("trends.limit must be > 0")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("trends.user_agent must be set")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("http.api_timeout must be > 0")
	}
	if c.PageTimeout <= 0 {
		return fmt.Errorf("http.page_timeout must be > 0")
	}
	if c.PoliteDelay < 0 {
		return fmt.Errorf("trends.polite_delay must be >= 0")
	}
	return nil
}
