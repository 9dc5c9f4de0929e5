package suggestions

import "time"

type Config struct {
	// BaseURL points at a server exposing GET /api/random-animals.
	BaseURL string        `env:"SUGGESTIONS_BASE_URL" envDefault:"http://127.0.0.1:8080"`
	Timeout time.Duration `env:"SUGGESTIONS_TIMEOUT" envDefault:"3s"`
	Count   int           `env:"SUGGESTIONS_COUNT" envDefault:"3"`
}
