package configs

type Expiry struct {
	Cron string `env:"EXPIRY_CRON" envDefault:"*/10 * * * *"`
}
