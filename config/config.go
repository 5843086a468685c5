package config

import "os"

// Redis Config
const REDIS_DB_ADDRESS_DEFAULT = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Search defaults
const DEFAULT_SEARCH_RADIUS_KM = 10.0

// Cache refresher config
const CACHE_REFRESHER_SCHEDULE_MINUTES = 60
const CACHE_REFRESH_RADIUS_KM = 10.0

// Google Places API
const PLACES_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api/place"
const PLACES_MAX_RESULTS = 20

// Gemini
const GEMINI_MODEL = "gemini-1.5-pro"

// Environment variable names read at startup.
const ENV_APP_ENV = "APP_ENV"
const ENV_GOOGLE_API_KEY = "GOOGLE_API_KEY"
const ENV_GOOGLE_GENAI_API_KEY = "GOOGLE_GENAI_API_KEY"
const ENV_REDIS_ADDRESS = "REDIS_ADDR"

// AppEnv returns the runtime environment, defaulting to "dev" so a bare
// checkout runs against mock clients.
func AppEnv() string {
	if env := os.Getenv(ENV_APP_ENV); env != "" {
		return env
	}
	return "dev"
}

func RedisAddress() string {
	if addr := os.Getenv(ENV_REDIS_ADDRESS); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS_DEFAULT
}

// GoogleAPIKey is the Places API key.
func GoogleAPIKey() string {
	return os.Getenv(ENV_GOOGLE_API_KEY)
}

// GoogleGenAIKey is the Gemini API key.
func GoogleGenAIKey() string {
	return os.Getenv(ENV_GOOGLE_GENAI_API_KEY)
}
