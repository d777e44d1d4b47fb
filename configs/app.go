package configs

type App struct {
	Environment string `env:"ENVIRONMENT,notEmpty"`
	BotUsername string `env:"BOT_USERNAME" envDefault:"TicTacToeBot"`
	WebBaseURL  string `env:"WEB_BASE_URL" envDefault:"http://localhost:8000"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
