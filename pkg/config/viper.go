// Package config is responsible for initializing the application's
// configuration. It uses the Viper library to read settings from a config
// file and environment variables, with build-time defaults that make the
// tool runnable with no configuration at all.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// browserUA mimics a current desktop Chrome. The Creative Center endpoints
// reject requests without a plausible browser identity.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/124.0.0.0 Safari/537.36"

const creativeCenterPage = "https://ads.tiktok.com/business/creativecenter/inspiration/popular/hashtag/pc/en"

// InitConfig initializes the application's configuration using Viper. It
// sets defaults, defines config file search paths, and enables environment
// variable overrides. Designed to be called once at startup.
func InitConfig() {
	// --- Set Search Paths ---
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.creator-toolkit")

	// --- Set Defaults ---
	// An empty country code requests the all-regions view, matching the
	// Creative Center's default.
	viper.SetDefault("trends.country_code", "")
	viper.SetDefault("trends.period_days", 7)
	viper.SetDefault("trends.limit", 50)
	viper.SetDefault("trends.user_agent", browserUA)
	viper.SetDefault("trends.referer", creativeCenterPage)
	viper.SetDefault("trends.api_url", "https://ads.tiktok.com/creative_radar_api/v1/popular_trend/hashtag/list")
	viper.SetDefault("trends.page_url", creativeCenterPage)
	viper.SetDefault("trends.polite_delay", "500ms")

	viper.SetDefault("http.api_timeout", "15s")
	viper.SetDefault("http.page_timeout", "20s")

	viper.SetDefault("output.json_path", "hashtags.json")
	viper.SetDefault("output.excel_enabled", true)
	// Empty excel_path selects a dated tiktok_hashtags_YYYYMMDD.xlsx name.
	viper.SetDefault("output.excel_path", "")

	viper.SetDefault("logging.development", false)

	// --- Environment Variables ---
	viper.SetEnvPrefix("CREATOR_TOOLKIT") // e.g. CREATOR_TOOLKIT_TRENDS_PERIOD_DAYS=30
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// --- Read Config File ---
	// A missing config file is fine: defaults and env vars carry the run.
	_ = viper.ReadInConfig()
}
