package configs

type Bot struct {
	Token           string `env:"TELEGRAM_BOT_TOKEN,notEmpty"`
	UpdateTimeout   int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
	HealthcheckAddr string `env:"BOT_HEALTHCHECK_ADDR" envDefault:":8080"`
}

// Backend is the REST API the bot relays users to.
type Backend struct {
	URL       string `env:"BACKEND_URL,notEmpty"`
	JWTSecret string `env:"API_JWT_SECRET"`
}
