package configs

import "time"

type API struct {
	Addr            string        `env:"API_ADDR" envDefault:":8000"`
	BasePath        string        `env:"API_BASE_PATH" envDefault:"/api/v1"`
	JWTSecret       string        `env:"API_JWT_SECRET"`
	ShutdownTimeout time.Duration `env:"API_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func (c API) AuthEnabled() bool {
	return c.JWTSecret != ""
}
