package configs

// Catalog selects where brief templates and performance patterns come
// from. An empty Path uses the embedded default catalog.
type Catalog struct {
	Path  string `env:"PATH"`
	Watch bool   `env:"WATCH" envDefault:"true"`
}
