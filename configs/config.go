package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	MetaAppID            string
	MetaAppSecret        string
	MetaRedirectURI      string
	LinkedinClientID     string
	LinkedinClientSecret string
	LinkedinRedirectURI  string
	TiktokClientKey      string
	TiktokClientSecret   string
	TiktokRedirectURI    string
	PostgresURI          string
	BaseURL              string
	R2                   R2
	SecretKey            string
	CookieName           string
}

func LoadConfig() *Config {
	return &Config{
		MetaAppID:            getEnv("META_APP_ID", ""),
		MetaAppSecret:        getEnv("META_APP_SECRET", ""),
		MetaRedirectURI:      getEnv("META_REDIRECT_URI", ""),
		LinkedinClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
		LinkedinClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
		LinkedinRedirectURI:  getEnv("LINKEDIN_REDIRECT_URI", ""),
		TiktokClientKey:      getEnv("TIKTOK_CLIENT_KEY", ""),
		TiktokClientSecret:   getEnv("TIKTOK_CLIENT_SECRET", ""),
		TiktokRedirectURI:    getEnv("TIKTOK_REDIRECT_URI", ""),
		PostgresURI:          getEnv("POSTGRES_URI", ""),
		BaseURL:              getEnv("BASE_URL", "http://localhost:3000"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "agencyhub_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
