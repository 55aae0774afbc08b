package config

import "os"

// Environment-driven configuration. LoadConfig must run after godotenv has
// loaded the .env file, so these are plain vars rather than constants.
var (
	// Server
	Port      string
	ClientUrl string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// SMTP
	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Admin bearer tokens
	AdminToken       string
	AdminSelectToken string

	// Public display values for the payment page
	RegistrationFee string
	UpiID           string
)

// LoadConfig reads the configuration from environment variables
func LoadConfig() {
	Port = getEnv("PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")

	MongoURI = getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	MongoDatabase = getEnv("MONGODB_DB", "hackman-v8")

	MailHost = getEnv("EMAIL_HOST", "smtp.gmail.com")
	MailPort = getEnv("EMAIL_PORT", "587")
	MailUsername = os.Getenv("EMAIL_USER")
	MailPassword = os.Getenv("EMAIL_PASS")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.0-flash")

	AdminToken = os.Getenv("ADMIN_TOKEN")
	AdminSelectToken = os.Getenv("ADMIN_SELECT_TOKEN")

	RegistrationFee = getEnv("REGISTRATION_FEE", "500")
	UpiID = os.Getenv("UPI_ID")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
